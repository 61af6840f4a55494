package envload

import (
	"errors"
	"fmt"
)

// 错误原因哨兵。所有加载失败最终归为这几类原因之一，
// 并通过 [Error] 附带触发失败的环境变量 key。
var (
	// ErrNotPresent 命名空间中不存在该 key。
	ErrNotPresent = errors.New("variable not present")

	// ErrNotText 值存在但不是合法文本（例如非 UTF-8 编码）。
	ErrNotText = errors.New("variable value is not valid text")

	// ErrInvalidFormat 文本存在但无法解析为目标类型。
	// 底层解析器的具体错误会被丢弃，保证所有叶子类型行为一致。
	ErrInvalidFormat = errors.New("variable value has invalid format")

	// ErrNoTextForm 组合类型没有扁平文本形式，不能通过 parse 路径构造。
	// envgen 生成的 UnmarshalEnv 无条件返回该错误。
	ErrNoTextForm = errors.New("composite type has no textual form")
)

// Error 把失败原因与触发失败的 key 绑定在一起。
//
// Key 始终是失败发生点正在解析的那个 key：嵌套组合类型深处的失败、
// 文件回退查找 *_FILE 的失败，携带的都是最具体的 key，而非外层组合的 key。
// 原因可用 errors.Is 对哨兵判断；文件读取等 I/O 失败是普通的包装错误。
type Error struct {
	Key string
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("env %s: %v", e.Key, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// keyError 为 err 附加 key；已携带 key 的错误原样保留（内层 key 更具体）。
func keyError(key string, err error) error {
	if err == nil {
		return nil
	}
	var envErr *Error
	if errors.As(err, &envErr) {
		return err
	}

	return &Error{Key: key, Err: err}
}
