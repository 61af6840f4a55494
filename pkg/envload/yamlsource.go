package envload

import (
	"fmt"
	"os"
	"strings"

	yamlv3 "go.yaml.in/yaml/v3"

	"github.com/lwmacct/251207-go-pkg-envload/pkg/templexp"
)

// yamlKeyReplacer 映射 key 中的 "." 和 "-" 统一转为 "_"。
var yamlKeyReplacer = strings.NewReplacer(".", "_", "-", "_")

// YAMLSource 把一个 YAML 文件当作扁平命名空间：嵌套映射的 key 逐层用
// 下划线拼接并转为大写，标量值转为文本。
//
// 例如：
//
//	nested:
//	  host: yoyo
//
// 产生 NESTED_HOST=yoyo。序列没有扁平文本形式，会被忽略。
//
// 适合容器场景下用单个文件喂给加载协议，或在测试中替代进程环境；
// 也可以与 [ChainSource] 组合实现"环境优先、文件兜底"。
type YAMLSource struct {
	values map[string]string
}

// YAMLOption YAMLSource 的构造选项。
type YAMLOption func(*yamlOptions)

type yamlOptions struct {
	expandWith Source
}

// WithExpansion 在解析 YAML 前用 src 对文件内容做 Shell 参数展开
// （${VAR:-default} 语法，见 [templexp.Expand]）。
func WithExpansion(src Source) YAMLOption {
	return func(o *yamlOptions) { o.expandWith = src }
}

// NewYAMLSource 读取并解析 path 指向的 YAML 文件。
func NewYAMLSource(path string, opts ...YAMLOption) (*YAMLSource, error) {
	var options yamlOptions
	for _, opt := range opts {
		opt(&options)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("envload: read yaml source: %w", err)
	}

	if options.expandWith != nil {
		expanded, expandErr := templexp.Expand(string(content), sourceLookup(options.expandWith))
		if expandErr != nil {
			return nil, fmt.Errorf("envload: expand yaml source %s: %w", path, expandErr)
		}
		content = []byte(expanded)
	}

	var raw any
	if err := yamlv3.Unmarshal(content, &raw); err != nil {
		return nil, fmt.Errorf("envload: parse yaml source %s: %w", path, err)
	}

	values := make(map[string]string)
	flattenYAML(raw, "", values)

	return &YAMLSource{values: values}, nil
}

func (s *YAMLSource) Lookup(key string) (string, error) {
	value, ok := s.values[key]
	if !ok {
		return "", ErrNotPresent
	}

	return value, nil
}

// sourceLookup 把 [Source] 适配成 templexp 的查找函数。
func sourceLookup(src Source) templexp.LookupFunc {
	return func(name string) (string, bool) {
		value, err := src.Lookup(name)

		return value, err == nil
	}
}

// flattenYAML 递归展平映射节点，key 片段做 "."/"-" → "_" 归一化后拼接。
func flattenYAML(node any, prefix string, out map[string]string) {
	switch typed := node.(type) {
	case map[string]any:
		for key, value := range typed {
			flattenYAML(value, JoinKey(prefix, yamlKeyReplacer.Replace(key)), out)
		}
	case map[any]any:
		for key, value := range typed {
			segment := yamlKeyReplacer.Replace(fmt.Sprintf("%v", key))
			flattenYAML(value, JoinKey(prefix, segment), out)
		}
	case []any:
		// 序列没有扁平文本形式
	case nil:
		// 空节点不产生 key
	default:
		if prefix != "" {
			out[prefix] = fmt.Sprint(typed)
		}
	}
}
