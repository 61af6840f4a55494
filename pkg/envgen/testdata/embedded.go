package sample

type Base struct {
	Host string
}

type WithEmbedded struct {
	Base
}
