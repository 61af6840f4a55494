package envload

import (
	"errors"
	"fmt"
)

// Optional 可缺省字段的包装：key 缺失是成功的空结果，存在则委托内部类型解析。
// 组合类型把它套在字段的内部类型外面，即可让整个字段变为非必填。
type Optional[T any] struct {
	value   T
	present bool
}

// Some 构造已填充的 Optional。
func Some[T any](value T) Optional[T] {
	return Optional[T]{value: value, present: true}
}

// Present 报告值是否存在。
func (o Optional[T]) Present() bool { return o.present }

// Get 返回内部值与存在标记。
func (o Optional[T]) Get() (T, bool) { return o.value, o.present }

// MustGet 返回内部值，值缺失时 panic。
func (o Optional[T]) MustGet() T {
	if !o.present {
		panic("envload: Optional value not present")
	}

	return o.value
}

// String 实现 fmt.Stringer：空结果输出 <none>，存在时按内部值的默认格式输出。
// 经由 Stringer 输出保证 [Masked] 等内部类型的渲染约定不被绕过。
func (o Optional[T]) String() string {
	if !o.present {
		return "<none>"
	}

	return fmt.Sprint(o.value)
}

// UnmarshalEnv 解析"存在"形式：委托内部类型，成功后标记 present。
func (o *Optional[T]) UnmarshalEnv(value string) error {
	if err := Unmarshal(&o.value, value); err != nil {
		return err
	}
	o.present = true

	return nil
}

// LoadEnv 实现 [KeyLoader]：key 缺失时成功返回空结果；
// 其他查找结果（存在，或非缺失错误）委托内部类型的解析与错误处理。
func (o *Optional[T]) LoadEnv(src Source, key string) error {
	value, err := src.Lookup(key)
	if err != nil {
		if errors.Is(err, ErrNotPresent) {
			*o = Optional[T]{}
			return nil
		}

		return keyError(key, err)
	}

	return keyError(key, o.UnmarshalEnv(value))
}

// LoadEnvOrFile 实现 [FileKeyLoader]：先探测主 key，缺失再探测 key+"_FILE"；
// 两者都缺失时成功返回空结果；任一存在则按"值/读文件后解析"处理，
// 文件内容的解析失败携带主 key；任何非缺失错误立即传播。
func (o *Optional[T]) LoadEnvOrFile(src Source, key string) error {
	value, err := lookupOrFile(src, key)
	if err != nil {
		if errors.Is(err, ErrNotPresent) {
			*o = Optional[T]{}
			return nil
		}

		return err
	}

	return keyError(key, o.UnmarshalEnv(value))
}
