package envload

import (
	"errors"
	"os"
	"unicode/utf8"
)

// Source 键值命名空间，加载协议唯一的取值入口。
//
// Lookup 的三种结果：
//   - (value, nil) — key 存在且为合法文本
//   - ("", [ErrNotPresent]) — key 不存在
//   - ("", [ErrNotText]) — key 存在但值不是合法文本
//
// 实现也可以返回其他错误（例如远端存储故障），调用方会原样向上传播。
// 加载协议自身不写入命名空间，并发读取是否安全取决于实现。
type Source interface {
	Lookup(key string) (string, error)
}

// System 进程环境变量命名空间。
var System Source = systemSource{}

type systemSource struct{}

func (systemSource) Lookup(key string) (string, error) {
	value, ok := os.LookupEnv(key)
	if !ok {
		return "", ErrNotPresent
	}
	if !utf8.ValidString(value) {
		return "", ErrNotText
	}

	return value, nil
}

// MapSource map 形式的命名空间，测试与注入默认值的场景使用。
type MapSource map[string]string

func (m MapSource) Lookup(key string) (string, error) {
	value, ok := m[key]
	if !ok {
		return "", ErrNotPresent
	}

	return value, nil
}

// ChainSource 按顺序查找多个命名空间，首个命中生效。
// 非缺失错误会立即传播，不再继续向后查找。
type ChainSource []Source

func (c ChainSource) Lookup(key string) (string, error) {
	for _, src := range c {
		value, err := src.Lookup(key)
		if err == nil {
			return value, nil
		}
		if !errors.Is(err, ErrNotPresent) {
			return "", err
		}
	}

	return "", ErrNotPresent
}
