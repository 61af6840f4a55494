package envload

import (
	"encoding"
	"fmt"
	"reflect"
	"strings"
)

// tagName 字段属性使用的结构体 tag 名。
const tagName = "env"

var (
	unmarshalerType     = reflect.TypeFor[Unmarshaler]()
	keyLoaderType       = reflect.TypeFor[KeyLoader]()
	textUnmarshalerType = reflect.TypeFor[encoding.TextUnmarshaler]()
)

// fieldSpec 字段属性：显式 key（逐字使用，不做拼接与大小写转换）与 file 标记。
type fieldSpec struct {
	key    string
	orFile bool
}

// parseFieldTag 解析 `env:"NAME,file"` 形式的 tag。
// 属性面只接受显式 key 和 file 选项，其他内容一律报错。
func parseFieldTag(tag string) (fieldSpec, error) {
	var spec fieldSpec
	if tag == "" {
		return spec, nil
	}

	parts := strings.Split(tag, ",")
	spec.key = parts[0]
	for _, opt := range parts[1:] {
		switch opt {
		case "file":
			spec.orFile = true
		default:
			return spec, fmt.Errorf("unknown option %q in env tag", opt)
		}
	}

	return spec, nil
}

// LoadStruct 反射遍历 cfg 的字段并逐个加载，是 envgen 生成实现的运行期等价物。
//
// cfg 必须是指向结构体的指针。对每个导出字段：
//  1. 计算有效 key：tag 中的显式名逐字使用（不拼接、不转大小写）；
//     否则 JoinKey(key, FieldKey(字段名))
//  2. 选择策略：带 file 选项 → [LoadOrFile]，否则 → [Load]
//  3. 按声明顺序加载，首个失败立即中止，无部分结果、不聚合多个错误
//
// 普通嵌套结构体以拼接后的 key 作为外层 key 递归加载，路径逐层传递；
// 实现了加载协议接口的结构体（[Optional]、[Masked]、生成的组合类型）
// 按叶子处理，由 [Load] 分发。
func LoadStruct(src Source, key string, cfg any) error {
	val := reflect.ValueOf(cfg)
	if val.Kind() != reflect.Pointer || val.IsNil() || val.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("envload: LoadStruct requires a non-nil struct pointer, got %T", cfg)
	}
	val = val.Elem()
	typ := val.Type()

	for i := range typ.NumField() {
		field := typ.Field(i)
		if field.PkgPath != "" {
			continue
		}
		if field.Anonymous {
			return fmt.Errorf("envload: embedded field %s.%s is not supported", typ.Name(), field.Name)
		}

		spec, err := parseFieldTag(field.Tag.Get(tagName))
		if err != nil {
			return fmt.Errorf("envload: field %s.%s: %w", typ.Name(), field.Name, err)
		}

		fieldKey := spec.key
		if fieldKey == "" {
			fieldKey = JoinKey(key, FieldKey(field.Name))
		}

		dst := val.Field(i).Addr().Interface()
		switch {
		case spec.orFile:
			err = LoadOrFile(src, fieldKey, dst)
		case isPlainStructType(field.Type):
			err = LoadStruct(src, fieldKey, dst)
		default:
			err = Load(src, fieldKey, dst)
		}
		if err != nil {
			return err
		}
	}

	return nil
}

// isPlainStructType 报告 typ 是否为需要递归展开的普通结构体。
// 实现了加载协议任一接口的结构体按叶子处理。
func isPlainStructType(typ reflect.Type) bool {
	if typ.Kind() != reflect.Struct {
		return false
	}
	ptr := reflect.PointerTo(typ)

	return !ptr.Implements(unmarshalerType) &&
		!ptr.Implements(keyLoaderType) &&
		!ptr.Implements(textUnmarshalerType)
}
