package gen

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251207-go-pkg-envload/internal/config"
	"github.com/lwmacct/251207-go-pkg-envload/pkg/envgen"
)

func action(ctx context.Context, cmd *cli.Command) error {
	// 工具配置：默认值 → 环境变量(ENVGEN_*) → CLI flags
	cfg, err := config.FromEnv()
	if err != nil {
		return fmt.Errorf("load tool config: %w", err)
	}
	config.SetupLogger(cfg.Log)

	source := cmd.Args().First()
	if source == "" {
		return fmt.Errorf("missing source file argument")
	}

	file, err := envgen.ParseFile(source, cmd.StringSlice("type"))
	if err != nil {
		return err
	}

	// flags 显式设置时覆盖环境配置
	pkgName := cfg.Gen.Package
	if cmd.IsSet("package") {
		pkgName = cmd.String("package")
	}
	suffix := cfg.Gen.Suffix
	if cmd.IsSet("suffix") {
		suffix = cmd.String("suffix")
	}

	generated, err := envgen.Generate(file, pkgName)
	if err != nil {
		return err
	}

	output := cmd.String("output")
	if output == "" {
		output = strings.TrimSuffix(source, ".go") + suffix
	}

	if err := os.WriteFile(output, generated, 0o600); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}

	slog.Info("Generated env loader", "source", source, "output", output, "structs", len(file.Structs))

	return nil
}
