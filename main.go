package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251207-go-pkg-envload/internal/command/gen"
	"github.com/lwmacct/251207-go-pkg-envload/internal/command/keys"
)

// version 由构建注入：-ldflags "-X main.version=v1.2.3"
var version = "dev"

func main() {
	app := &cli.Command{
		Name:    "envload",
		Usage:   "环境变量配置加载工具",
		Version: version,
		Commands: []*cli.Command{
			gen.Command,
			keys.Command,
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
