// Package envgen 为结构体生成 pkg/envload 加载协议的实现。
//
// 给定组合（结构体）类型的字段描述，为每个字段派生环境变量 key 并生成
// 对该字段自身加载能力的调用，递归展开嵌套。叶子类型（整数、浮点、布尔、
// 文本）直接实现加载协议；组合类型由本包生成；包装类型（[envload.Optional]、
// [envload.Masked]）委托内部类型，无需生成。
//
// # 属性面
//
// 字段通过 env tag 声明属性，仅接受两项，其余内容在构建期报错：
//
//	type Config struct {
//	    ID   int32  `desc:"实例 ID"`
//	    Name string `env:"TEST_NAME,file" desc:"显式 key + 文件回退"`
//	}
//
//   - 显式 key：逐字使用，不拼接、不转大小写、忽略嵌套
//   - file：改用"值或文件"加载策略（<KEY>_FILE 间接）
//
// # 使用
//
// 通常通过 go:generate 驱动：
//
//	//go:generate go run github.com/lwmacct/251207-go-pkg-envload/cmd/envgen -type Config config.go
//
// 生成结果是纯静态代码：无反射、每个字段一次显式调用，首个失败即中止。
// 生成的 UnmarshalEnv 无条件返回 [envload.ErrNoTextForm]，
// 组合类型只能经由按 key 的递归路径构造。
//
// 库形式入口见 [ParseFile]、[Generate] 与 [File.Keys]。
package envgen
