// Package parse decodes scene documents (YAML or JSON) into the scene
// graph model.  Object field order in the input is preserved: it
// defines the field traversal order the merge engine diffs in.
package parse

import (
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/scenekit/scenemerge/scene"
)

type ParseConfig struct {
	// Lax accepts unknown node and component fields instead of
	// erroring, for documents carrying tool-specific extras.
	Lax bool
}

type ParseOption func(*ParseConfig)

func ParseLax() ParseOption {
	return func(c *ParseConfig) { c.Lax = true }
}

// Parse decodes a scene node document.  JSON input works as well,
// being a YAML subset.
func Parse(d []byte, opts ...ParseOption) (*scene.Node, error) {
	cfg := &ParseConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	var v any
	if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return nodeFromAny(cfg, v)
}

// ParseValue decodes a bare property document.
func ParseValue(d []byte) (*scene.Value, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return valueFromAny(v)
}

func nodeFromAny(cfg *ParseConfig, v any) (*scene.Node, error) {
	ms, ok := v.(yaml.MapSlice)
	if !ok {
		return nil, fmt.Errorf("%w: node must be a mapping, got %T", ErrParse, v)
	}
	n := &scene.Node{}
	for _, item := range ms {
		key, ok := item.Key.(string)
		if !ok {
			return nil, fmt.Errorf("%w: node key must be a string, got %T", ErrParse, item.Key)
		}
		switch key {
		case "name":
			s, err := stringFromAny(item.Value)
			if err != nil {
				return nil, fmt.Errorf("%w: node name: %v", ErrParse, err)
			}
			n.Name = s
		case "id":
			s, err := stringFromAny(item.Value)
			if err != nil {
				return nil, fmt.Errorf("%w: node id: %v", ErrParse, err)
			}
			n.ID = s
		case "components":
			if item.Value == nil {
				continue
			}
			arr, ok := item.Value.([]any)
			if !ok {
				return nil, fmt.Errorf("%w: components must be a sequence, got %T", ErrParse, item.Value)
			}
			for _, cv := range arr {
				c, err := compFromAny(cfg, cv)
				if err != nil {
					return nil, err
				}
				n.AddComponent(c)
			}
		case "children":
			if item.Value == nil {
				continue
			}
			arr, ok := item.Value.([]any)
			if !ok {
				return nil, fmt.Errorf("%w: children must be a sequence, got %T", ErrParse, item.Value)
			}
			for _, cv := range arr {
				child, err := nodeFromAny(cfg, cv)
				if err != nil {
					return nil, err
				}
				n.AddChild(child)
			}
		default:
			if cfg.Lax {
				continue
			}
			return nil, fmt.Errorf("%w: unknown node field %q", ErrParse, key)
		}
	}
	return n, nil
}

func compFromAny(cfg *ParseConfig, v any) (*scene.Component, error) {
	ms, ok := v.(yaml.MapSlice)
	if !ok {
		return nil, fmt.Errorf("%w: component must be a mapping, got %T", ErrParse, v)
	}
	c := &scene.Component{}
	for _, item := range ms {
		key, ok := item.Key.(string)
		if !ok {
			return nil, fmt.Errorf("%w: component key must be a string, got %T", ErrParse, item.Key)
		}
		switch key {
		case "type":
			s, err := stringFromAny(item.Value)
			if err != nil {
				return nil, fmt.Errorf("%w: component type: %v", ErrParse, err)
			}
			c.Type = s
		case "id":
			s, err := stringFromAny(item.Value)
			if err != nil {
				return nil, fmt.Errorf("%w: component id: %v", ErrParse, err)
			}
			c.ID = s
		case "props":
			props, err := valueFromAny(item.Value)
			if err != nil {
				return nil, err
			}
			c.Props = props
		default:
			if cfg.Lax {
				continue
			}
			return nil, fmt.Errorf("%w: unknown component field %q", ErrParse, key)
		}
	}
	if c.Type == "" {
		return nil, fmt.Errorf("%w: component without a type", ErrParse)
	}
	return c, nil
}

func valueFromAny(v any) (*scene.Value, error) {
	switch x := v.(type) {
	case nil:
		return scene.Null(), nil
	case bool:
		return scene.FromBool(x), nil
	case int:
		return scene.FromInt(int64(x)), nil
	case int64:
		return scene.FromInt(x), nil
	case uint64:
		if x > 1<<63-1 {
			return &scene.Value{Type: scene.NumberType, Number: fmt.Sprintf("%d", x)}, nil
		}
		return scene.FromInt(int64(x)), nil
	case float32:
		return scene.FromFloat(float64(x)), nil
	case float64:
		return scene.FromFloat(x), nil
	case string:
		return scene.FromString(x), nil
	case []any:
		vals := make([]*scene.Value, len(x))
		for i, e := range x {
			ev, err := valueFromAny(e)
			if err != nil {
				return nil, err
			}
			vals[i] = ev
		}
		return scene.FromSlice(vals), nil
	case yaml.MapSlice:
		kvs := make([]scene.KeyVal, len(x))
		for i, item := range x {
			key, ok := item.Key.(string)
			if !ok {
				return nil, fmt.Errorf("%w: field name must be a string, got %T", ErrParse, item.Key)
			}
			ev, err := valueFromAny(item.Value)
			if err != nil {
				return nil, err
			}
			kvs[i] = scene.KeyVal{Key: key, Val: ev}
		}
		return scene.FromKeyVals(kvs), nil
	default:
		return nil, fmt.Errorf("%w: unsupported value type %T", ErrParse, v)
	}
}

func stringFromAny(v any) (string, error) {
	switch x := v.(type) {
	case string:
		return x, nil
	case int:
		return fmt.Sprintf("%d", x), nil
	case int64:
		return fmt.Sprintf("%d", x), nil
	case uint64:
		return fmt.Sprintf("%d", x), nil
	case nil:
		return "", nil
	default:
		return "", fmt.Errorf("got %T", v)
	}
}
