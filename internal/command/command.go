// Package command 提供 envgen 工具的命令行功能。
package command

import "github.com/lwmacct/251207-go-pkg-envload/internal/config"

// Defaults 为默认配置的单一来源。
var Defaults = config.DefaultConfig()
