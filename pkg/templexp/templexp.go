package templexp

import (
	"fmt"
	"os"
	"strings"
)

// ═══════════════════════════════════════════════════════════════════════════
// 模板数据对象
// ═══════════════════════════════════════════════════════════════════════════

// LookupFunc 变量查找函数，返回值与是否存在。
type LookupFunc func(name string) (string, bool)

// templateData 单次展开的变量视图：底层查找函数加一层赋值覆盖。
// ":=" / "=" 的赋值只写入覆盖层，不影响底层命名空间。
type templateData struct {
	lookup   LookupFunc
	assigned map[string]string
}

func newTemplateData(lookup LookupFunc) *templateData {
	return &templateData{lookup: lookup, assigned: make(map[string]string)}
}

func (d *templateData) get(name string) (string, bool) {
	if value, ok := d.assigned[name]; ok {
		return value, true
	}

	return d.lookup(name)
}

func (d *templateData) set(name, value string) {
	d.assigned[name] = value
}

// ═══════════════════════════════════════════════════════════════════════════
// Shell Parameter Expansion
// ═══════════════════════════════════════════════════════════════════════════

func isVarNameStart(ch byte) bool {
	return (ch >= 'A' && ch <= 'Z') || (ch >= 'a' && ch <= 'z') || ch == '_'
}

func isVarNameChar(ch byte) bool {
	return isVarNameStart(ch) || (ch >= '0' && ch <= '9')
}

func parseShellParameter(expr string) (string, string, string, bool) {
	if expr == "" {
		return "", "", "", false
	}
	if !isVarNameStart(expr[0]) {
		return "", "", "", false
	}

	i := 1
	for i < len(expr) && isVarNameChar(expr[i]) {
		i++
	}

	name := expr[:i]
	rest := expr[i:]
	if rest == "" {
		return name, "", "", true
	}

	if len(rest) >= 2 && rest[0] == ':' {
		switch rest[1] {
		case '-', '+', '?', '=':
			return name, rest[:2], rest[2:], true
		}
	}

	switch rest[0] {
	case '-', '+', '?', '=':
		return name, rest[:1], rest[1:], true
	}

	return "", "", "", false
}

func errorMessage(name, word string) error {
	if word == "" {
		return fmt.Errorf("templexp: %s: parameter null or not set", name)
	}

	return fmt.Errorf("templexp: %s: %s", name, word)
}

func expandShellWord(word string, data *templateData) (string, error) {
	if !strings.Contains(word, "${") {
		return word, nil
	}

	return expandShellParameters(word, data)
}

func expandShellExpression(expr string, data *templateData) (string, bool, error) {
	name, op, word, ok := parseShellParameter(expr)
	if !ok {
		return "", false, nil
	}

	val, isSet := data.get(name)
	switch op {
	case "":
		if isSet {
			return val, true, nil
		}
		return "", true, nil
	case ":-":
		if !isSet || val == "" {
			expanded, err := expandShellWord(word, data)
			if err != nil {
				return "", false, err
			}
			return expanded, true, nil
		}
		return val, true, nil
	case "-":
		if !isSet {
			expanded, err := expandShellWord(word, data)
			if err != nil {
				return "", false, err
			}
			return expanded, true, nil
		}
		return val, true, nil
	case ":+": // set and not empty
		if isSet && val != "" {
			expanded, err := expandShellWord(word, data)
			if err != nil {
				return "", false, err
			}
			return expanded, true, nil
		}
		return "", true, nil
	case "+":
		if isSet {
			expanded, err := expandShellWord(word, data)
			if err != nil {
				return "", false, err
			}
			return expanded, true, nil
		}
		return "", true, nil
	case ":?":
		if !isSet || val == "" {
			return "", false, errorMessage(name, word)
		}
		return val, true, nil
	case "?":
		if !isSet {
			return "", false, errorMessage(name, word)
		}
		return val, true, nil
	case ":=":
		if !isSet || val == "" {
			expanded, err := expandShellWord(word, data)
			if err != nil {
				return "", false, err
			}
			data.set(name, expanded)
			return expanded, true, nil
		}
		return val, true, nil
	case "=":
		if !isSet {
			expanded, err := expandShellWord(word, data)
			if err != nil {
				return "", false, err
			}
			data.set(name, expanded)
			return expanded, true, nil
		}
		return val, true, nil
	}

	return "", false, nil
}

func expandShellParameters(text string, data *templateData) (string, error) {
	var buf strings.Builder
	buf.Grow(len(text))

	for i := 0; i < len(text); {
		ch := text[i]
		if ch != '$' {
			buf.WriteByte(ch)
			i++
			continue
		}
		if i+1 >= len(text) {
			buf.WriteByte(ch)
			i++
			continue
		}

		next := text[i+1]
		if next == '$' {
			buf.WriteByte('$')
			i += 2
			continue
		}
		if next != '{' {
			buf.WriteByte(ch)
			i++
			continue
		}

		end := findMatchingBrace(text, i+2)
		if end == -1 {
			buf.WriteByte(ch)
			i++
			continue
		}

		expr := text[i+2 : end]
		expanded, ok, err := expandShellExpression(expr, data)
		if err != nil {
			return "", err
		}
		if ok {
			buf.WriteString(expanded)
		} else {
			buf.WriteString(text[i : end+1])
		}

		i = end + 1
	}

	return buf.String(), nil
}

func findMatchingBrace(text string, start int) int {
	depth := 0
	for i := start; i < len(text); i++ {
		if text[i] == '$' && i+1 < len(text) && text[i+1] == '{' {
			depth++
			i++
			continue
		}
		if text[i] == '}' {
			if depth == 0 {
				return i
			}
			depth--
		}
	}

	return -1
}

// ═══════════════════════════════════════════════════════════════════════════
// 模板渲染
// ═══════════════════════════════════════════════════════════════════════════

// Expand 对输入字符串执行 Shell 参数展开，变量通过 lookup 查找。
//
// 支持语法：
//   - ${VAR} - 变量替换
//   - ${VAR:-default} / ${VAR-default} - fallback
//   - ${VAR:+alt} / ${VAR+alt} - 替代值
//   - ${VAR:?msg} / ${VAR?msg} - 必填校验
//   - ${VAR:=default} / ${VAR=default} - 赋值（仅作用于当前展开）
//
// 返回展开后的字符串；仅在必填校验失败时返回 error。
func Expand(text string, lookup LookupFunc) (string, error) {
	return expandShellParameters(text, newTemplateData(lookup))
}

// ExpandEnv 以进程环境变量为查找来源执行 [Expand]。
func ExpandEnv(text string) (string, error) {
	return Expand(text, os.LookupEnv)
}
