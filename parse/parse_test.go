package parse

import (
	"errors"
	"testing"

	"github.com/scenekit/scenemerge/scene"
)

func TestParseNode(t *testing.T) {
	n, err := Parse([]byte(`
name: Player
id: "100"
components:
  - type: Transform
    props:
      position: {x: 1.5, y: -2.0}
      rotation: 0
  - type: Collider
    id: box
children:
  - name: Weapon
    components:
      - type: Sprite
        props: {src: "sword.png"}
`))
	if err != nil {
		t.Fatal(err)
	}
	if n.Name != "Player" || n.ID != "100" {
		t.Errorf("node header = %q/%q", n.Name, n.ID)
	}
	if len(n.Components) != 2 {
		t.Fatalf("components = %d, want 2", len(n.Components))
	}
	tr := n.Components[0]
	if tr.Type != "Transform" || tr.ID != "" {
		t.Errorf("component[0] = %q#%q", tr.Type, tr.ID)
	}
	if n.Components[1].ID != "box" {
		t.Errorf("component[1].ID = %q", n.Components[1].ID)
	}
	pos := scene.Get(tr.Props, "position")
	if pos == nil || pos.Type != scene.ObjectType {
		t.Fatalf("position = %v", pos)
	}
	x := scene.Get(pos, "x")
	if x.Float64 == nil || *x.Float64 != 1.5 {
		t.Errorf("position.x = %v", x)
	}
	if len(n.Children) != 1 || n.Children[0].Name != "Weapon" {
		t.Fatalf("children = %v", n.Children)
	}
	if n.Children[0].Parent != n {
		t.Error("child not linked to parent")
	}
}

func TestParseJSONInput(t *testing.T) {
	n, err := Parse([]byte(`{"name": "N", "components": [{"type": "T", "props": {"a": 1}}]}`))
	if err != nil {
		t.Fatal(err)
	}
	if n.Name != "N" || len(n.Components) != 1 {
		t.Fatalf("node = %+v", n)
	}
}

func TestParsePreservesFieldOrder(t *testing.T) {
	v, err := ParseValue([]byte(`{z: 1, a: 2, m: 3}`))
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"z", "a", "m"}
	if len(v.Fields) != len(want) {
		t.Fatalf("fields = %v", v.Fields)
	}
	for i, f := range want {
		if v.Fields[i].String != f {
			t.Fatalf("fields = %v, want %v", v.Fields, want)
		}
	}
}

func TestParseValueKinds(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		typ  scene.Type
	}{
		{"null", "null", scene.NullType},
		{"bool", "true", scene.BoolType},
		{"int", "42", scene.NumberType},
		{"float", "4.5", scene.NumberType},
		{"string", `"hi"`, scene.StringType},
		{"array", "[1, 2]", scene.ArrayType},
		{"object", "{a: 1}", scene.ObjectType},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := ParseValue([]byte(tt.doc))
			if err != nil {
				t.Fatal(err)
			}
			if v.Type != tt.typ {
				t.Errorf("type = %s, want %s", v.Type, tt.typ)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"not a mapping", "- 1\n- 2\n"},
		{"unknown node field", "name: N\ncolor: red\n"},
		{"component without type", "name: N\ncomponents:\n  - id: x\n"},
		{"unknown component field", "name: N\ncomponents:\n  - type: T\n    extra: 1\n"},
		{"components not a sequence", "name: N\ncomponents: 5\n"},
		{"children not a sequence", "name: N\nchildren: yes\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			if err == nil {
				t.Fatal("Parse accepted a bad document")
			}
			if !errors.Is(err, ErrParse) {
				t.Errorf("err = %v, want ErrParse", err)
			}
		})
	}
}

func TestParseLax(t *testing.T) {
	doc := "name: N\ncolor: red\ncomponents:\n  - type: T\n    extra: 1\n"
	if _, err := Parse([]byte(doc)); err == nil {
		t.Fatal("strict parse accepted unknown fields")
	}
	n, err := Parse([]byte(doc), ParseLax())
	if err != nil {
		t.Fatalf("lax parse: %v", err)
	}
	if n.Name != "N" || len(n.Components) != 1 {
		t.Fatalf("lax parse dropped known fields: %+v", n)
	}
}

func TestParseNumericID(t *testing.T) {
	// unquoted numeric ids coerce to their decimal string
	n, err := Parse([]byte("name: N\nid: 17\n"))
	if err != nil {
		t.Fatal(err)
	}
	if n.ID != "17" {
		t.Errorf("ID = %q, want 17", n.ID)
	}
}
