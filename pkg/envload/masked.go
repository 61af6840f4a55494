package envload

import "log/slog"

// maskToken 脱敏输出的固定标记。
const maskToken = "***"

// Masked 敏感值包装：解析与加载行为与内部类型完全一致，
// 但任何文本渲染（fmt、结构化日志、JSON 导出）都只输出固定脱敏标记，
// 永远不会泄露持有的值。包装独占内部值，不与外部共享。
//
// 典型用途是密码、token 等不允许出现在诊断输出中的字段：
//
//	type DB struct {
//	    DSN      string
//	    Password envload.Masked[string]
//	}
type Masked[T any] struct {
	value T
}

// NewMasked 包装一个已有值。
func NewMasked[T any](value T) Masked[T] {
	return Masked[T]{value: value}
}

// Value 返回内部值。这是取出真实内容的唯一途径。
func (m Masked[T]) Value() T { return m.value }

// UnmarshalEnv 逐字委托内部类型解析。
func (m *Masked[T]) UnmarshalEnv(value string) error {
	return Unmarshal(&m.value, value)
}

// String 实现 fmt.Stringer，恒为脱敏标记。
func (m Masked[T]) String() string { return maskToken }

// GoString 实现 fmt.GoStringer，%#v 同样不泄露。
func (m Masked[T]) GoString() string { return maskToken }

// LogValue 实现 slog.LogValuer，结构化日志中恒为脱敏标记。
func (m Masked[T]) LogValue() slog.Value { return slog.StringValue(maskToken) }

// MarshalJSON JSON 导出时恒为脱敏标记。
func (m Masked[T]) MarshalJSON() ([]byte, error) {
	return []byte(`"` + maskToken + `"`), nil
}
