package sample

type BadTag struct {
	Name string `env:"NAME,secret"`
}
