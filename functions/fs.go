package functions

import (
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/riverside/logicengine/registry"
	"github.com/riverside/logicengine/value"
)

// RegisterFilesystemBridge adds file_exists and read_yaml_file — an
// illustrative domain-function bridge proving the registry can host real
// filesystem/YAML functions (grounded on conformance/loader.go's
// os.Stat/yaml.Unmarshal usage) without the engine package importing
// either package itself. spec.md keeps concrete domain functions —
// filesystem scanning, YAML loading from disk — explicitly out of the
// core (§1); this bridge is registered only by cmd/logicdemo, never by
// RegisterCore.
func RegisterFilesystemBridge(r *registry.Registry) {
	r.Register("file_exists", registry.Signature{ParamTags: []value.Tag{value.TagString}, ReturnTag: value.TagBool, HasReturn: true},
		func(args []value.Value) (value.Value, error) {
			path := args[0].(value.Str).V
			_, err := os.Stat(filepath.Clean(path))
			return value.Bool{V: err == nil}, nil
		})

	r.Register("read_yaml_file", registry.Signature{ParamTags: []value.Tag{value.TagString}, ReturnTag: value.TagMap, HasReturn: true},
		func(args []value.Value) (value.Value, error) {
			path := args[0].(value.Str).V
			data, err := os.ReadFile(filepath.Clean(path))
			if err != nil {
				return nil, err
			}
			var raw map[string]interface{}
			if err := yaml.Unmarshal(data, &raw); err != nil {
				return nil, err
			}
			return yamlToValue(raw), nil
		})
}

// yamlToValue converts a generic YAML-decoded structure into a logic
// Value, mapping whole numbers to Int and everything else to the closest
// of the six tags (§3: "a decimal literal that is whole is stored as int,
// otherwise stored as string").
func yamlToValue(raw interface{}) value.Value {
	switch v := raw.(type) {
	case nil:
		return value.Null{}
	case bool:
		return value.Bool{V: v}
	case int:
		return value.Int{V: int64(v)}
	case int64:
		return value.Int{V: v}
	case float64:
		if v == float64(int64(v)) {
			return value.Int{V: int64(v)}
		}
		return value.Str{V: ftoa(v)}
	case string:
		return value.Str{V: v}
	case []interface{}:
		elems := make([]value.Value, len(v))
		for i, e := range v {
			elems[i] = yamlToValue(e)
		}
		return value.List{Elems: elems}
	case map[string]interface{}:
		keys := make([]string, 0, len(v))
		values := make(map[string]value.Value, len(v))
		for k, e := range v {
			keys = append(keys, k)
			values[k] = yamlToValue(e)
		}
		return value.NewMap(keys, values)
	default:
		return value.Null{}
	}
}

func ftoa(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
