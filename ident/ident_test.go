package ident

import (
	"testing"

	"github.com/scenekit/scenemerge/scene"
)

func TestIdentify(t *testing.T) {
	tests := []struct {
		name string
		comp *scene.Component
		want string
	}{
		{"type only", &scene.Component{Type: "Transform"}, "Transform"},
		{"type and id", &scene.Component{Type: "Collider", ID: "c1"}, "Collider#c1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Identify(tt.comp); got != tt.want {
				t.Errorf("Identify() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIdentifyStable(t *testing.T) {
	// two independent traversals of semantically equivalent components
	// must agree
	a := &scene.Component{Type: "Collider", ID: "c1", Props: scene.FromKeyVals(nil)}
	b := &scene.Component{Type: "Collider", ID: "c1"}
	if Identify(a) != Identify(b) {
		t.Errorf("identifier not stable across equivalent components")
	}
}

func TestIndexTakeRemaining(t *testing.T) {
	t1 := &scene.Component{Type: "Transform"}
	c1 := &scene.Component{Type: "Collider", ID: "a"}
	c2 := &scene.Component{Type: "Collider", ID: "b"}
	tab := Index([]*scene.Component{t1, c1, c2})
	if tab.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", tab.Len())
	}
	got, ok := tab.Take("Collider#a")
	if !ok || got != c1 {
		t.Fatalf("Take(Collider#a) = %v, %v", got, ok)
	}
	if _, ok := tab.Take("Collider#a"); ok {
		t.Fatal("taken entry re-offered")
	}
	rem := tab.Remaining()
	if len(rem) != 2 || rem[0] != t1 || rem[1] != c2 {
		t.Fatalf("Remaining() = %v, want [t1, c2]", rem)
	}
}

func TestIndexCollisionLastWriteWins(t *testing.T) {
	first := &scene.Component{Type: "Collider"}
	second := &scene.Component{Type: "Collider"}
	tab := Index([]*scene.Component{first, second})
	if tab.Len() != 1 {
		t.Fatalf("Len() = %d, want 1 after collision", tab.Len())
	}
	got, ok := tab.Take("Collider")
	if !ok || got != second {
		t.Fatal("collision should keep the last writer")
	}
}
