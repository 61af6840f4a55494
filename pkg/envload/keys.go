package envload

import "strings"

// JoinKey 拼接环境变量 key：两段都转为大写，用下划线连接。
// prefix 为空（根调用）时直接返回大写的 name。
//
// 仅面向 ASCII 标识符；连接符与大小写规则固定，不可按字段配置。
func JoinKey(prefix, name string) string {
	if prefix == "" {
		return strings.ToUpper(name)
	}

	return strings.ToUpper(prefix) + "_" + strings.ToUpper(name)
}

// FieldKey 把 Go 字段标识符转换为 key 片段（大写蛇形）。
//
// 在小写/数字到大写的边界、连续大写后接小写的边界插入下划线：
//   - ID       → ID
//   - GuestID  → GUEST_ID
//   - HTTPAddr → HTTP_ADDR
//
// 仅处理 ASCII 标识符。
func FieldKey(ident string) string {
	var b strings.Builder
	b.Grow(len(ident) + 2)

	for i := range len(ident) {
		ch := ident[i]
		if isUpper(ch) && i > 0 {
			prev := ident[i-1]
			nextLower := i+1 < len(ident) && isLower(ident[i+1])
			if isLower(prev) || isDigit(prev) || (isUpper(prev) && nextLower) {
				b.WriteByte('_')
			}
		}
		b.WriteByte(toUpper(ch))
	}

	return b.String()
}

func isUpper(ch byte) bool { return ch >= 'A' && ch <= 'Z' }
func isLower(ch byte) bool { return ch >= 'a' && ch <= 'z' }
func isDigit(ch byte) bool { return ch >= '0' && ch <= '9' }

func toUpper(ch byte) byte {
	if isLower(ch) {
		return ch - 'a' + 'A'
	}

	return ch
}
