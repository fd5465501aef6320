package schema

import (
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/effective-security/wayfarer/pkg/llmutils"
	"github.com/invopop/jsonschema"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

var (
	cache   = make(map[reflect.Type]*Schema)
	cacheMu sync.RWMutex
)

// Schema describes a tool input type.
// Parameters holds the flattened parameters definition,
// suitable for embedding in the system prompt.
type Schema struct {
	*jsonschema.Schema
	Parameters *jsonschema.Schema
}

// New creates a schema for the given type.
// Schemas are cached per type, tool Parameters() is called every run.
func New(t reflect.Type) (*Schema, error) {
	cacheMu.RLock()
	if s, ok := cache[t]; ok {
		cacheMu.RUnlock()
		return s, nil
	}
	cacheMu.RUnlock()

	root := reflectType(t)
	s := &Schema{
		Schema:     root,
		Parameters: flatten(root),
	}

	cacheMu.Lock()
	cache[t] = s
	cacheMu.Unlock()

	return s, nil
}

func (s *Schema) String() string {
	return llmutils.ToJSONIndent(s.Parameters)
}

// flatten resolves the top-level $ref and inlines nested definitions,
// producing a self-contained parameters object.
func flatten(root *jsonschema.Schema) *jsonschema.Schema {
	refID := strings.TrimPrefix(root.Ref, "#/$defs/")

	defs := make(map[string]*jsonschema.Schema)
	var top *jsonschema.Schema

	for name, def := range root.Definitions {
		if name == refID {
			top = def
		} else {
			defs[name] = def
		}
	}
	if top == nil {
		return root
	}

	res := &jsonschema.Schema{
		Type:       top.Type,
		Properties: top.Properties,
		Required:   top.Required,
	}
	resolveRefs(res.Properties, defs)
	return res
}

func resolveRefs(props *orderedmap.OrderedMap[string, *jsonschema.Schema], defs map[string]*jsonschema.Schema) {
	if props == nil {
		return
	}
	for pair := props.Oldest(); pair != nil; pair = pair.Next() {
		child := pair.Value
		if child.Ref != "" {
			if def, ok := defs[strings.TrimPrefix(child.Ref, "#/$defs/")]; ok {
				pair.Value = def
				child = def
			}
		}
		if child.Items != nil && child.Items.Ref != "" {
			if def, ok := defs[strings.TrimPrefix(child.Items.Ref, "#/$defs/")]; ok {
				child.Items = def
			}
		}
		if child.Properties != nil {
			resolveRefs(child.Properties, defs)
		}
	}
}

func reflectType(t reflect.Type) *jsonschema.Schema {
	r := new(jsonschema.Reflector)

	// Struct names can collide across packages, which breaks $ref resolution.
	// Disambiguate by hashing the full package path into the definition name.
	r.Namer = func(t reflect.Type) string {
		name := t.Name()
		if t.Kind() == reflect.Struct {
			fullname := t.PkgPath() + "/" + t.Name()
			name = t.Name() + "@" + strconv.FormatUint(xxhash.Sum64String(fullname), 10)
		}
		return name
	}

	return r.ReflectFromType(t)
}
