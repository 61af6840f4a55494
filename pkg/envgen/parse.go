package envgen

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"reflect"
	"strconv"
	"strings"

	"github.com/lwmacct/251207-go-pkg-envload/pkg/envload"
)

// Field 组合类型的一个字段描述，仅构建期存在。
type Field struct {
	Name    string // Go 字段名
	Segment string // 派生 key 片段（大写蛇形）
	Key     string // 显式 key，非空时逐字使用、忽略嵌套
	OrFile  bool   // 值或文件策略
	Type    string // 字段类型表达式
	Desc    string // desc tag，供 key 清单输出
}

// Struct 待生成加载实现的组合类型。字段按声明顺序排列。
type Struct struct {
	Name   string
	Fields []Field
}

// File 单个源文件的解析结果。
type File struct {
	Package string
	Structs []Struct
}

// ParseFile 解析 Go 源文件，提取 types 中列出的结构体的字段描述。
// types 为空时提取文件内全部结构体。
//
// 以下情况视为构建期配置错误并返回 error：
//   - 请求的类型不存在或不是结构体
//   - env tag 含未知选项
//   - 匿名（嵌入）字段
//
// 未导出字段会被跳过。
func ParseFile(path string, typeNames []string) (*File, error) {
	fset := token.NewFileSet()
	astFile, err := parser.ParseFile(fset, path, nil, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("envgen: parse %s: %w", path, err)
	}

	wanted := make(map[string]bool, len(typeNames))
	for _, name := range typeNames {
		wanted[name] = false
	}

	file := &File{Package: astFile.Name.Name}
	for _, decl := range astFile.Decls {
		genDecl, ok := decl.(*ast.GenDecl)
		if !ok || genDecl.Tok != token.TYPE {
			continue
		}
		for _, spec := range genDecl.Specs {
			typeSpec, ok := spec.(*ast.TypeSpec)
			if !ok {
				continue
			}
			name := typeSpec.Name.Name
			if len(typeNames) > 0 {
				if _, requested := wanted[name]; !requested {
					continue
				}
			}

			structType, ok := typeSpec.Type.(*ast.StructType)
			if !ok {
				if len(typeNames) > 0 {
					return nil, fmt.Errorf("envgen: type %s is not a struct", name)
				}

				continue
			}

			parsed, err := handleStruct(name, structType)
			if err != nil {
				return nil, err
			}
			wanted[name] = true
			file.Structs = append(file.Structs, parsed)
		}
	}

	for _, name := range typeNames {
		if !wanted[name] {
			return nil, fmt.Errorf("envgen: type %s not found in %s", name, path)
		}
	}
	if len(file.Structs) == 0 {
		return nil, fmt.Errorf("envgen: no structs found in %s", path)
	}

	return file, nil
}

// handleStruct 读取结构体的字段描述与属性。
func handleStruct(name string, structType *ast.StructType) (Struct, error) {
	parsed := Struct{Name: name}
	for _, field := range structType.Fields.List {
		if len(field.Names) == 0 {
			return parsed, fmt.Errorf("envgen: %s: embedded fields are not supported", name)
		}

		var envTag, descTag string
		if field.Tag != nil {
			unquoted, err := strconv.Unquote(field.Tag.Value)
			if err != nil {
				return parsed, fmt.Errorf("envgen: %s: invalid struct tag: %w", name, err)
			}
			envTag = reflect.StructTag(unquoted).Get("env")
			descTag = reflect.StructTag(unquoted).Get("desc")
		}

		key, orFile, err := parseTag(envTag)
		if err != nil {
			return parsed, fmt.Errorf("envgen: %s: %w", name, err)
		}

		for _, ident := range field.Names {
			if !ident.IsExported() {
				continue
			}
			parsed.Fields = append(parsed.Fields, Field{
				Name:    ident.Name,
				Segment: envload.FieldKey(ident.Name),
				Key:     key,
				OrFile:  orFile,
				Type:    types.ExprString(field.Type),
				Desc:    descTag,
			})
		}
	}

	return parsed, nil
}

// parseTag 解析 `env:"NAME,file"` 形式的属性。未知选项报错。
func parseTag(tag string) (key string, orFile bool, err error) {
	if tag == "" {
		return "", false, nil
	}

	parts := strings.Split(tag, ",")
	key = parts[0]
	for _, opt := range parts[1:] {
		switch opt {
		case "file":
			orFile = true
		default:
			return "", false, fmt.Errorf("unknown option %q in env tag", opt)
		}
	}

	return key, orFile, nil
}
