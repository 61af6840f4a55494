// Package gen 提供环境变量加载代码的生成命令。
package gen

import (
	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251207-go-pkg-envload/internal/command"
)

// Command 代码生成命令
var Command = &cli.Command{
	Name:      "gen",
	Usage:     "为结构体生成环境变量加载实现",
	ArgsUsage: "<source.go>",
	Action:    action,
	Flags: []cli.Flag{
		&cli.StringSliceFlag{
			Name:    "type",
			Aliases: []string{"t"},
			Usage:   "要处理的结构体类型名，可重复；为空时处理文件内全部结构体",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "输出文件路径；为空时使用 <源文件名><后缀>",
		},
		&cli.StringFlag{
			Name:  "suffix",
			Value: command.Defaults.Gen.Suffix,
			Usage: "默认输出文件后缀",
		},
		&cli.StringFlag{
			Name:  "package",
			Value: command.Defaults.Gen.Package,
			Usage: "覆盖输出文件的包名",
		},
	},
}
