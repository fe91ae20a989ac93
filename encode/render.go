package encode

import (
	"fmt"
	"io"
	"strings"

	"github.com/scenekit/scenemerge/scene"
)

// Render writes a colored YAML-style view of a scene document.
func Render(n *scene.Node, w io.Writer, opts ...EncodeOption) error {
	st := newEncState(opts)
	return renderNode(w, n, 0, st)
}

func renderNode(w io.Writer, n *scene.Node, depth int, st *EncState) error {
	pad := strings.Repeat(" ", depth*st.Indent)
	field := st.Colors.color(Colorable{Type: scene.StringType, Attr: FieldColor})
	if n.Name != "" {
		fmt.Fprintf(w, "%s%s %s\n", pad, field("name:"), n.Name)
	}
	if n.ID != "" {
		fmt.Fprintf(w, "%s%s %s\n", pad, field("id:"), n.ID)
	}
	if len(n.Components) != 0 {
		fmt.Fprintf(w, "%s%s\n", pad, field("components:"))
		for _, c := range n.Components {
			fmt.Fprintf(w, "%s- %s %s\n", pad, field("type:"), c.Type)
			itemPad := pad + "  "
			if c.ID != "" {
				fmt.Fprintf(w, "%s%s %s\n", itemPad, field("id:"), c.ID)
			}
			if c.Props != nil {
				fmt.Fprintf(w, "%s%s\n", itemPad, field("props:"))
				if err := renderValue(w, c.Props, depth+2, st); err != nil {
					return err
				}
			}
		}
	}
	if len(n.Children) != 0 {
		fmt.Fprintf(w, "%s%s\n", pad, field("children:"))
		for _, c := range n.Children {
			fmt.Fprintf(w, "%s-\n", pad)
			if err := renderNode(w, c, depth+1, st); err != nil {
				return err
			}
		}
	}
	return nil
}

func renderValue(w io.Writer, v *scene.Value, depth int, st *EncState) error {
	pad := strings.Repeat(" ", depth*st.Indent)
	switch v.Type {
	case scene.ObjectType:
		field := st.Colors.color(Colorable{Type: scene.ObjectType, Attr: FieldColor})
		for i, f := range v.Fields {
			vv := v.Values[i]
			if vv.Type.IsLeaf() {
				fmt.Fprintf(w, "%s%s %s\n", pad, field(f.String+":"), renderScalar(vv, st))
				continue
			}
			fmt.Fprintf(w, "%s%s\n", pad, field(f.String+":"))
			if err := renderValue(w, vv, depth+1, st); err != nil {
				return err
			}
		}
	case scene.ArrayType:
		for _, vv := range v.Values {
			if vv.Type.IsLeaf() {
				fmt.Fprintf(w, "%s- %s\n", pad, renderScalar(vv, st))
				continue
			}
			fmt.Fprintf(w, "%s-\n", pad)
			if err := renderValue(w, vv, depth+1, st); err != nil {
				return err
			}
		}
	default:
		fmt.Fprintf(w, "%s%s\n", pad, renderScalar(v, st))
	}
	return nil
}

func renderScalar(v *scene.Value, st *EncState) string {
	c := st.Colors.color(Colorable{Type: v.Type, Attr: ValueColor})
	return c("%s", scalar(v))
}
