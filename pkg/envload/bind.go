package envload

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/go-viper/mapstructure/v2"
)

// Bind 粗粒度的加载变体：一次性收集 cfg 的叶子字段，从命名空间读出
// 存在的值写入嵌套 map，再用 mapstructure 弱类型解码进 cfg。
//
// 与 [Load]/[LoadStruct] 的区别：
//   - 缺失的 key 直接跳过，保留 cfg 中已有的默认值，不产生缺失错误
//   - 普通标量的类型转换交给 mapstructure，解码错误不携带单 key 的错误分类
//
// key 派生规则与 [LoadStruct] 一致：prefix 逐段 [JoinKey] 拼接，
// 显式 tag key 逐字使用并忽略嵌套，file 选项启用文件回退。
// 实现 [Unmarshaler] 的字段（[Optional]、[Masked]）在读取阶段就地解析，
// 其解析失败仍携带精确的 key。
//
// 适合"默认值 + 环境覆盖"的工具配置场景；需要完整错误归因时
// 使用 [LoadStruct] 或 envgen 生成的实现。
func Bind(src Source, prefix string, cfg any) error {
	typ := reflect.TypeOf(cfg)
	if typ == nil || typ.Kind() != reflect.Pointer || typ.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("envload: Bind requires a non-nil struct pointer, got %T", cfg)
	}

	var fields []bindField
	if err := collectBindFields(typ.Elem(), nil, nil, &fields); err != nil {
		return err
	}

	values := make(map[string]any)
	for _, field := range fields {
		key := field.envKey(prefix)

		var raw string
		var err error
		if field.orFile {
			raw, err = lookupOrFile(src, key)
		} else {
			raw, err = src.Lookup(key)
		}
		if err != nil {
			if errors.Is(err, ErrNotPresent) {
				continue
			}

			return keyError(key, err)
		}

		value, err := field.parse(key, raw)
		if err != nil {
			return err
		}
		setByPath(values, field.names, value)
	}

	return decodeBindMap(values, cfg)
}

// bindField Bind 收集到的一个叶子字段。
type bindField struct {
	names    []string     // 字段名路径，供解码匹配
	segments []string     // key 片段路径（大写蛇形）
	key      string       // 显式 key，非空时逐字使用
	orFile   bool         // 值或文件策略
	typ      reflect.Type // 字段类型
}

// envKey 计算字段的有效环境变量 key。
func (f bindField) envKey(prefix string) string {
	if f.key != "" {
		return f.key
	}

	key := prefix
	for _, segment := range f.segments {
		key = JoinKey(key, segment)
	}

	return key
}

// parse 把原始文本转为写入配置 map 的值。
// 实现 [Unmarshaler] 的类型就地解析成目标类型，保留精确的错误归因；
// 其余类型保留字符串，由 mapstructure 弱类型解码转换。
func (f bindField) parse(key, raw string) (any, error) {
	if !reflect.PointerTo(f.typ).Implements(unmarshalerType) {
		return raw, nil
	}

	ptr := reflect.New(f.typ)
	if err := ptr.Interface().(Unmarshaler).UnmarshalEnv(raw); err != nil {
		return nil, keyError(key, err)
	}

	return ptr.Elem().Interface(), nil
}

// collectBindFields 递归收集叶子字段的名称路径与 key 片段路径。
func collectBindFields(typ reflect.Type, names, segments []string, fields *[]bindField) error {
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

		fieldNames := append(append([]string{}, names...), field.Name)
		fieldSegments := append(append([]string{}, segments...), FieldKey(field.Name))

		if spec.key == "" && !spec.orFile && isPlainStructType(field.Type) {
			if err := collectBindFields(field.Type, fieldNames, fieldSegments, fields); err != nil {
				return err
			}

			continue
		}

		*fields = append(*fields, bindField{
			names:    fieldNames,
			segments: fieldSegments,
			key:      spec.key,
			orFile:   spec.orFile,
			typ:      field.Type,
		})
	}

	return nil
}

// setByPath 沿字段名路径写入嵌套 map，中间层按需创建。
func setByPath(dst map[string]any, path []string, value any) {
	current := dst
	for i, part := range path {
		if i == len(path)-1 {
			current[part] = value

			return
		}

		next, ok := current[part].(map[string]any)
		if !ok {
			next = make(map[string]any)
			current[part] = next
		}
		current = next
	}
}

// decodeBindMap 把配置 map 弱类型解码进目标结构体。
func decodeBindMap(values map[string]any, cfg any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.TextUnmarshallerHookFunc(),
		),
		Result:           cfg,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return err
	}

	return decoder.Decode(values)
}
