package envgen

import (
	"fmt"

	"github.com/lwmacct/251207-go-pkg-envload/pkg/envload"
)

// KeyRow key 清单的一行：某个字段的有效环境变量 key 及其加载策略。
type KeyRow struct {
	Field    string // 字段路径，如 Nested.Host
	Key      string // 有效环境变量 key
	Strategy string // "env" 或 "env|file"
	Desc     string // desc tag，可为空
}

// Keys 计算以 root 为根、prefix 为根 key 时各叶子字段的有效 key。
//
// 字段类型与文件内其他结构体同名时按嵌套组合展开，拼接后的 key 逐层传递，
// 与生成代码的运行期行为一致。root 为空时使用文件内第一个结构体。
func (f *File) Keys(root, prefix string) ([]KeyRow, error) {
	if len(f.Structs) == 0 {
		return nil, fmt.Errorf("envgen: no structs parsed")
	}
	if root == "" {
		root = f.Structs[0].Name
	}

	index := make(map[string]*Struct, len(f.Structs))
	for i := range f.Structs {
		index[f.Structs[i].Name] = &f.Structs[i]
	}
	if _, ok := index[root]; !ok {
		return nil, fmt.Errorf("envgen: root type %s not parsed", root)
	}

	var rows []KeyRow
	f.appendKeys(index[root], "", prefix, index, &rows)

	return rows, nil
}

func (f *File) appendKeys(s *Struct, fieldPath, key string, index map[string]*Struct, rows *[]KeyRow) {
	for _, field := range s.Fields {
		path := field.Name
		if fieldPath != "" {
			path = fieldPath + "." + field.Name
		}

		effective := field.Key
		if effective == "" {
			effective = envload.JoinKey(key, field.Segment)
		}

		if nested, ok := index[field.Type]; ok && !field.OrFile {
			f.appendKeys(nested, path, effective, index, rows)

			continue
		}

		strategy := "env"
		if field.OrFile {
			strategy = "env|file"
		}
		*rows = append(*rows, KeyRow{Field: path, Key: effective, Strategy: strategy, Desc: field.Desc})
	}
}
