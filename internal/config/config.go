// Package config 提供 envgen 命令行工具自身的配置。
//
// 工具配置通过 pkg/envload 从进程环境加载（自举），key 前缀为 ENVGEN：
//   - ENVGEN_LOG_LEVEL / ENVGEN_LOG_FORMAT
//   - ENVGEN_GEN_SUFFIX / ENVGEN_GEN_PACKAGE
//
// 缺失的 key 保留默认值，CLI flags 的显式设置优先于环境变量。
package config

import (
	"log/slog"
	"os"
	"strings"

	"github.com/lwmacct/251207-go-pkg-envload/pkg/envload"
)

// KeyPrefix 环境变量 key 前缀。
const KeyPrefix = "ENVGEN"

// Config 工具配置。
type Config struct {
	Log LogConfig `desc:"日志配置"`
	Gen GenConfig `desc:"生成配置"`
}

// LogConfig 日志配置。
type LogConfig struct {
	Level  string `desc:"日志级别 (debug/info/warn/error)"`
	Format string `desc:"日志格式 (text/json)"`
}

// GenConfig 代码生成配置。
type GenConfig struct {
	Suffix  string `desc:"默认输出文件后缀"`
	Package string `desc:"覆盖输出文件包名，空表示沿用源文件"`
}

// DefaultConfig 返回默认配置。
func DefaultConfig() Config {
	return Config{
		Log: LogConfig{Level: "info", Format: "text"},
		Gen: GenConfig{Suffix: "_env.go"},
	}
}

// FromEnv 在默认值之上套用进程环境的覆盖。
func FromEnv() (Config, error) {
	cfg := DefaultConfig()
	if err := envload.Bind(envload.System, KeyPrefix, &cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// SetupLogger 按日志配置初始化全局 slog。
func SetupLogger(cfg LogConfig) {
	var level slog.Level
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}
