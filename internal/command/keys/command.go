// Package keys 提供环境变量 key 清单命令。
package keys

import (
	"github.com/urfave/cli/v3"
)

// Command key 清单命令
var Command = &cli.Command{
	Name:      "keys",
	Usage:     "列出结构体派生的环境变量 key",
	ArgsUsage: "<source.go>",
	Action:    action,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "type",
			Aliases: []string{"t"},
			Usage:   "根结构体类型名；为空时使用文件内第一个结构体",
		},
		&cli.StringFlag{
			Name:    "prefix",
			Aliases: []string{"p"},
			Usage:   "根 key 前缀；为空时从字段名直接派生",
		},
	},
}
