package envload

import (
	"encoding"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

// Unmarshaler 从单个字符串值解析自身，对应加载协议的 parse 能力。
// 解析失败返回 [ErrInvalidFormat]，或携带更具体 key 的 [Error]。
type Unmarshaler interface {
	UnmarshalEnv(value string) error
}

// KeyLoader 自定义"按 key 加载"策略。
// [Optional] 与 envgen 生成的组合类型实现该接口，[Load] 会优先分发给它。
type KeyLoader interface {
	LoadEnv(src Source, key string) error
}

// FileKeyLoader 自定义"值或文件"加载策略，[LoadOrFile] 会优先分发给它。
type FileKeyLoader interface {
	LoadEnvOrFile(src Source, key string) error
}

// FileSuffix 文件回退查找使用的次级 key 后缀，固定不可配置。
const FileSuffix = "_FILE"

// Load 从命名空间按 key 加载 v（按 key 加载策略）。
//
// v 必须是指针。分发顺序：
//  1. v 实现 [KeyLoader] → 委托给自定义策略
//  2. 默认策略：查找 key，缺失/非文本返回携带该 key 的 [Error]，
//     否则调用 [Unmarshal] 解析，解析失败同样携带该 key
func Load(src Source, key string, v any) error {
	if loader, ok := v.(KeyLoader); ok {
		return loader.LoadEnv(src, key)
	}

	value, err := src.Lookup(key)
	if err != nil {
		return keyError(key, err)
	}

	return keyError(key, Unmarshal(v, value))
}

// LoadOrFile 从命名空间按 key 加载 v，key 缺失时回退到 key+"_FILE"
// 指向的文件（值或文件策略）。
//
// 规则：
//   - 主 key 存在 → 直接解析，文件永远不会被读取
//   - 主 key 缺失 → 查找次级 key；若也缺失，返回携带次级 key 的缺失错误
//   - 次级 key 存在 → 把值当作路径读取整个文件；读取失败归为携带
//     次级 key 的通用错误；文件内容的解析失败携带主 key
//   - 主 key 查找的非缺失错误立即传播，不会再查次级 key
func LoadOrFile(src Source, key string, v any) error {
	if loader, ok := v.(FileKeyLoader); ok {
		return loader.LoadEnvOrFile(src, key)
	}

	value, err := lookupOrFile(src, key)
	if err != nil {
		return err
	}

	return keyError(key, Unmarshal(v, value))
}

// lookupOrFile 执行"值或文件"查找，返回待解析的文本。
// 返回的错误已携带主 key 或次级 key；对返回文本的解析错误由调用方归属到主 key。
func lookupOrFile(src Source, key string) (string, error) {
	value, err := src.Lookup(key)
	switch {
	case err == nil:
		return value, nil
	case errors.Is(err, ErrNotPresent):
		fileKey := key + FileSuffix
		path, fileErr := src.Lookup(fileKey)
		if fileErr != nil {
			return "", keyError(fileKey, fileErr)
		}
		content, readErr := os.ReadFile(path)
		if readErr != nil {
			return "", &Error{Key: fileKey, Err: fmt.Errorf("read file: %w", readErr)}
		}

		return string(content), nil
	default:
		return "", keyError(key, err)
	}
}

// Unmarshal 把单个字符串值解析到 v，即 parse 能力的默认实现。
//
// 支持实现 [Unmarshaler] 的类型、string、bool、全部标准宽度的有符号/无符号
// 整数、float32/float64、time.Duration，以及 encoding.TextUnmarshaler。
// 整数按十进制解析。返回的错误不携带 key，由调用方附加。
func Unmarshal(v any, value string) error {
	switch dst := v.(type) {
	case Unmarshaler:
		return dst.UnmarshalEnv(value)
	case *string:
		*dst = value
		return nil
	case *bool:
		parsed, err := strconv.ParseBool(value)
		if err != nil {
			return ErrInvalidFormat
		}
		*dst = parsed
		return nil
	case *int:
		return setSigned(dst, value, strconv.IntSize)
	case *int8:
		return setSigned(dst, value, 8)
	case *int16:
		return setSigned(dst, value, 16)
	case *int32:
		return setSigned(dst, value, 32)
	case *int64:
		return setSigned(dst, value, 64)
	case *uint:
		return setUnsigned(dst, value, strconv.IntSize)
	case *uint8:
		return setUnsigned(dst, value, 8)
	case *uint16:
		return setUnsigned(dst, value, 16)
	case *uint32:
		return setUnsigned(dst, value, 32)
	case *uint64:
		return setUnsigned(dst, value, 64)
	case *float32:
		return setFloat(dst, value, 32)
	case *float64:
		return setFloat(dst, value, 64)
	case *time.Duration:
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return ErrInvalidFormat
		}
		*dst = parsed
		return nil
	case encoding.TextUnmarshaler:
		if err := dst.UnmarshalText([]byte(value)); err != nil {
			return ErrInvalidFormat
		}
		return nil
	default:
		return fmt.Errorf("unsupported type %T", v)
	}
}

func setSigned[T ~int | ~int8 | ~int16 | ~int32 | ~int64](dst *T, value string, bits int) error {
	parsed, err := strconv.ParseInt(value, 10, bits)
	if err != nil {
		return ErrInvalidFormat
	}
	*dst = T(parsed)

	return nil
}

func setUnsigned[T ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64](dst *T, value string, bits int) error {
	parsed, err := strconv.ParseUint(value, 10, bits)
	if err != nil {
		return ErrInvalidFormat
	}
	*dst = T(parsed)

	return nil
}

func setFloat[T ~float32 | ~float64](dst *T, value string, bits int) error {
	parsed, err := strconv.ParseFloat(value, bits)
	if err != nil {
		return ErrInvalidFormat
	}
	*dst = T(parsed)

	return nil
}
