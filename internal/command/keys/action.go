package keys

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251207-go-pkg-envload/internal/config"
	"github.com/lwmacct/251207-go-pkg-envload/pkg/envgen"
)

func action(ctx context.Context, cmd *cli.Command) error {
	cfg, err := config.FromEnv()
	if err != nil {
		return fmt.Errorf("load tool config: %w", err)
	}
	config.SetupLogger(cfg.Log)

	source := cmd.Args().First()
	if source == "" {
		return fmt.Errorf("missing source file argument")
	}

	file, err := envgen.ParseFile(source, nil)
	if err != nil {
		return err
	}

	rows, err := file.Keys(cmd.String("type"), cmd.String("prefix"))
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "FIELD\tKEY\tSTRATEGY\tDESC")
	for _, row := range rows {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", row.Field, row.Key, row.Strategy, row.Desc)
	}

	return w.Flush()
}
