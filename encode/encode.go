// Package encode writes scene documents and merge action lists.
package encode

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/scenekit/scenemerge/scene"
)

// Encode writes a scene node document in the configured format,
// preserving field order.
func Encode(n *scene.Node, w io.Writer, opts ...EncodeOption) error {
	st := newEncState(opts)
	if st.Format.IsJSON() {
		d, err := json.MarshalIndent(n, "", strings.Repeat(" ", st.Indent))
		if err != nil {
			return err
		}
		if _, err := w.Write(d); err != nil {
			return err
		}
		_, err = io.WriteString(w, "\n")
		return err
	}
	d, err := yaml.MarshalWithOptions(nodeToAny(n), yaml.Indent(st.Indent))
	if err != nil {
		return err
	}
	_, err = w.Write(d)
	return err
}

// EncodeValue writes a bare property document.
func EncodeValue(v *scene.Value, w io.Writer, opts ...EncodeOption) error {
	st := newEncState(opts)
	if st.Format.IsJSON() {
		d, err := json.MarshalIndent(v, "", strings.Repeat(" ", st.Indent))
		if err != nil {
			return err
		}
		if _, err := w.Write(d); err != nil {
			return err
		}
		_, err = io.WriteString(w, "\n")
		return err
	}
	d, err := yaml.MarshalWithOptions(valueToAny(v), yaml.Indent(st.Indent))
	if err != nil {
		return err
	}
	_, err = w.Write(d)
	return err
}

func nodeToAny(n *scene.Node) yaml.MapSlice {
	var ms yaml.MapSlice
	if n.Name != "" {
		ms = append(ms, yaml.MapItem{Key: "name", Value: n.Name})
	}
	if n.ID != "" {
		ms = append(ms, yaml.MapItem{Key: "id", Value: n.ID})
	}
	if len(n.Components) != 0 {
		comps := make([]any, len(n.Components))
		for i, c := range n.Components {
			comps[i] = compToAny(c)
		}
		ms = append(ms, yaml.MapItem{Key: "components", Value: comps})
	}
	if len(n.Children) != 0 {
		children := make([]any, len(n.Children))
		for i, c := range n.Children {
			children[i] = nodeToAny(c)
		}
		ms = append(ms, yaml.MapItem{Key: "children", Value: children})
	}
	return ms
}

func compToAny(c *scene.Component) yaml.MapSlice {
	ms := yaml.MapSlice{{Key: "type", Value: c.Type}}
	if c.ID != "" {
		ms = append(ms, yaml.MapItem{Key: "id", Value: c.ID})
	}
	if c.Props != nil {
		ms = append(ms, yaml.MapItem{Key: "props", Value: valueToAny(c.Props)})
	}
	return ms
}

func valueToAny(v *scene.Value) any {
	switch v.Type {
	case scene.NullType:
		return nil
	case scene.BoolType:
		return v.Bool
	case scene.NumberType:
		switch {
		case v.Int64 != nil:
			return *v.Int64
		case v.Float64 != nil:
			return *v.Float64
		default:
			return v.Number
		}
	case scene.StringType:
		return v.String
	case scene.ArrayType:
		arr := make([]any, len(v.Values))
		for i, vv := range v.Values {
			arr[i] = valueToAny(vv)
		}
		return arr
	case scene.ObjectType:
		ms := make(yaml.MapSlice, len(v.Fields))
		for i, f := range v.Fields {
			ms[i] = yaml.MapItem{Key: f.String, Value: valueToAny(v.Values[i])}
		}
		return ms
	}
	return nil
}

// scalar renders a leaf value for display lines.
func scalar(v *scene.Value) string {
	if v == nil {
		return "<nil>"
	}
	switch v.Type {
	case scene.NullType:
		return "null"
	case scene.BoolType:
		return fmt.Sprintf("%t", v.Bool)
	case scene.NumberType:
		switch {
		case v.Int64 != nil:
			return fmt.Sprintf("%d", *v.Int64)
		case v.Float64 != nil:
			return fmt.Sprintf("%g", *v.Float64)
		default:
			return v.Number
		}
	case scene.StringType:
		return v.String
	default:
		d, err := v.MarshalJSON()
		if err != nil {
			return fmt.Sprintf("<%s>", v.Type)
		}
		return string(d)
	}
}
