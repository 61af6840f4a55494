package envgen

import (
	"bytes"
	"fmt"
	"go/format"
	"strconv"
	"text/template"
)

// loaderImport 生成代码引用的运行时包。
const loaderImport = "github.com/lwmacct/251207-go-pkg-envload/pkg/envload"

// fileTemplate 生成文件模板。每个结构体：
//   - UnmarshalEnv 无条件失败（组合类型没有扁平文本形式，只能走按 key 路径）
//   - LoadEnv 按声明顺序逐字段加载，首个失败立即返回，无部分结果
const fileTemplate = `// Code generated by envgen. DO NOT EDIT.

package {{.Package}}

import (
	"{{.Import}}"
)
{{range .Structs}}
var _ envload.KeyLoader = (*{{.Name}})(nil)

// UnmarshalEnv 组合类型没有扁平文本形式，仅能通过 LoadEnv 按 key 构造。
func (c *{{.Name}}) UnmarshalEnv(string) error {
	return envload.ErrNoTextForm
}

// LoadEnv 从命名空间按 key 逐字段加载 {{.Name}}。
func (c *{{.Name}}) LoadEnv(src envload.Source, key string) error {
{{- range .Fields}}
	if err := {{loadCall .}}(src, {{keyExpr .}}, &c.{{.Name}}); err != nil {
		return err
	}
{{- end}}
	return nil
}
{{end}}`

var output = template.Must(template.New("envgen").Funcs(template.FuncMap{
	"loadCall": func(f Field) string {
		if f.OrFile {
			return "envload.LoadOrFile"
		}

		return "envload.Load"
	},
	"keyExpr": func(f Field) string {
		if f.Key != "" {
			return strconv.Quote(f.Key)
		}

		return fmt.Sprintf("envload.JoinKey(key, %q)", f.Segment)
	},
}).Parse(fileTemplate))

// Generate 渲染并 gofmt 格式化生成文件。pkg 为空时沿用源文件的包名。
func Generate(file *File, pkg string) ([]byte, error) {
	if pkg == "" {
		pkg = file.Package
	}

	data := struct {
		Package string
		Import  string
		Structs []Struct
	}{Package: pkg, Import: loaderImport, Structs: file.Structs}

	var buf bytes.Buffer
	if err := output.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("envgen: execute template: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("envgen: format generated code: %w", err)
	}

	return formatted, nil
}
