// Package envload 从键值命名空间（通常是进程环境变量）构造强类型配置对象。
//
// 核心是递归构造协议：组合类型逐字段从命名空间装配，字段的 key 由字段名
// 与嵌套路径派生，字段既可以直接取值，也可以通过 *_FILE 间接指向文件内容；
// 解析与缺失失败携带精确的 key 向上传播。
//
// # 加载能力
//
// 任何类型通过实现 [Unmarshaler]（从单个字符串解析自身）接入协议；
// string、bool、各宽度整数、浮点、time.Duration 与 encoding.TextUnmarshaler
// 开箱即用。[Load] 与 [LoadOrFile] 是仅有的两个加载入口：
//
//	var port uint16
//	err := envload.Load(envload.System, "PORT", &port)
//
//	var token string
//	err = envload.LoadOrFile(envload.System, "API_TOKEN", &token) // 或 API_TOKEN_FILE
//
// # Key 派生
//
// 嵌套字段的 key 由外层 key 与字段片段用下划线拼接、统一大写：
//   - 根字段 ID → ID
//   - Nested 内的 Host → NESTED_HOST
//
// tag 中的显式 key 逐字使用，忽略嵌套：
//
//	Name string `env:"TEST_NAME,file"`
//
// file 选项启用"值或文件"策略，次级 key 固定为 <KEY>_FILE。
// 属性面只有这两项，其余内容在构建期报错。
//
// # 组合类型的三种装配方式
//
//  1. envgen 生成（推荐）：构建期为结构体生成 LoadEnv 实现，
//     无反射、派发关系可读可审：
//
//     //go:generate go run github.com/lwmacct/251207-go-pkg-envload/cmd/envgen -type Config config.go
//     err := envload.Load(envload.System, "", &cfg)
//
//  2. [LoadStruct]：反射遍历字段，语义与生成代码一致（含错误归因），
//     适合不想引入生成步骤的场景。
//
//  3. [Bind]：粗粒度变体，缺失 key 保留默认值，mapstructure 弱类型解码，
//     适合"默认值 + 环境覆盖"的工具配置。
//
// # 包装类型
//
// [Optional] 让字段可缺省：key 缺失是成功的空结果，存在则委托内部类型。
// [Masked] 让字段脱敏：加载行为不变，任何文本渲染恒为 "***"。
// 两者都是对任意内部可加载类型的多态装饰，可以组合（如 Optional[Masked[string]]）。
//
// # 错误分类
//
// 失败以 *[Error] 返回，携带失败发生点正在解析的 key，原因用 errors.Is
// 对哨兵判断：[ErrNotPresent]、[ErrNotText]、[ErrInvalidFormat]，
// 文件读取等 I/O 失败是普通的包装错误。除 [Optional] 把缺失转为空结果外，
// 任何失败都立即中止整个加载，没有部分结果。
//
// # 命名空间
//
// 取值入口是注入的 [Source]，而非隐式全局状态：[System]（进程环境）、
// [MapSource]（测试）、[YAMLSource]（YAML 文件展平为扁平命名空间）、
// [ChainSource]（多级兜底）。加载本身同步、无状态、不缓存。
package envload
