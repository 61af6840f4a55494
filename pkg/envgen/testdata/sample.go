package sample

import "github.com/lwmacct/251207-go-pkg-envload/pkg/envload"

type NestedConfig struct {
	Host    string
	Address envload.Optional[envload.Masked[string]] `desc:"监听地址，日志中掩码"`
}

type TestConfig struct {
	ID      int32
	Name    string `env:"TEST_NAME,file" desc:"展示名称"`
	GuestID envload.Optional[uint64]
	Nested  NestedConfig

	internal string
}
