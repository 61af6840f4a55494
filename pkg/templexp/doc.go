// Package templexp 提供配置字符串的 Shell 参数展开。
//
// 该包仅处理 ${...} 语法，适合在 YAML/JSON 等配置文件中做轻量替换。
// 不执行命令、不引入模板引擎，强调可读性与可预测性。
// 变量来源通过 [LookupFunc] 注入，可以是进程环境，也可以是任意键值命名空间。
//
// # 设计参考
//
//   - Bash 参数展开: https://www.gnu.org/software/bash/manual/bash.html#Shell-Parameter-Expansion
//
// # 语义说明
//
//  1. 仅做字符串层面的替换（不解析 $VAR）
//  2. 支持嵌套展开与 "$$" 字面量
//  3. ":=" 赋值仅作用于当前展开过程，不写回底层命名空间
//  4. 无法识别的表达式保持原样
//
// # 快速开始
//
// 展开配置文件中的环境变量引用：
//
//	content := `api_key: "${OPENAI_API_KEY}"`
//	expanded, err := templexp.ExpandEnv(content)
//
// 针对自定义命名空间展开：
//
//	expanded, err := templexp.Expand(content, func(name string) (string, bool) {
//	    v, ok := values[name]
//	    return v, ok
//	})
//
// 详见 [Expand] 与 [ExpandEnv] 文档。
package templexp
