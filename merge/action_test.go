package merge

import (
	"testing"

	"github.com/scenekit/scenemerge/scene"
)

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{NewNode, "NewNode"},
		{DeleteNode, "DeleteNode"},
		{NewComponent, "NewComponent"},
		{DeleteComponent, "DeleteComponent"},
		{ChangeField, "ChangeField"},
		{Kind(99), "<unknown kind>"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestParseSide(t *testing.T) {
	for _, v := range []string{"o", "ours"} {
		if s, err := ParseSide(v); err != nil || s != OursSide {
			t.Errorf("ParseSide(%q) = %v, %v", v, s, err)
		}
	}
	for _, v := range []string{"t", "theirs"} {
		if s, err := ParseSide(v); err != nil || s != TheirsSide {
			t.Errorf("ParseSide(%q) = %v, %v", v, s, err)
		}
	}
	if _, err := ParseSide("mine"); err == nil {
		t.Error("ParseSide accepted a bad side")
	}
}

func TestResolveTerminal(t *testing.T) {
	theirs := &scene.Node{Name: "N"}
	a := newNodeAction(theirs)
	if a.Merged() {
		t.Fatal("fresh action already merged")
	}
	if _, ok := a.ChosenSide(); ok {
		t.Fatal("unresolved action reports a side")
	}
	if !a.UseTheirs() {
		t.Fatal("first resolution reported no change")
	}
	if a.Created() == nil {
		t.Fatal("NewNode theirs resolution did not materialize a node")
	}
	// terminal: the opposite side is a no-op, state stays
	if a.UseOurs() {
		t.Fatal("second resolution reported a change")
	}
	side, ok := a.ChosenSide()
	if !ok || side != TheirsSide {
		t.Fatalf("side = %v, %t after re-resolution attempt", side, ok)
	}
	if a.Created() == nil {
		t.Fatal("re-resolution attempt dropped the created node")
	}
}

func TestNewNodeReset(t *testing.T) {
	a := newNodeAction(&scene.Node{Name: "N"})
	a.UseTheirs()
	a.Reset()
	if a.Merged() || a.Created() != nil {
		t.Fatal("Reset left NewNode state behind")
	}
	if !a.UseTheirs() {
		t.Fatal("reset action not resolvable again")
	}
}

func TestDeleteNodeApplyAndReset(t *testing.T) {
	parent := &scene.Node{Name: "root"}
	before := &scene.Node{Name: "a"}
	victim := &scene.Node{Name: "b"}
	after := &scene.Node{Name: "c"}
	parent.AddChild(before)
	parent.AddChild(victim)
	parent.AddChild(after)

	a := deleteNodeAction(victim)
	a.UseTheirs()
	if len(parent.Children) != 2 || victim.Parent != nil {
		t.Fatal("theirs resolution did not detach the node")
	}
	a.Reset()
	if len(parent.Children) != 3 || parent.Children[1] != victim {
		t.Fatalf("Reset did not restore the child at its index: %v", parent.Children)
	}
	if victim.Parent != parent {
		t.Fatal("Reset did not restore the parent link")
	}
}

func TestDeleteRootNodeMarks(t *testing.T) {
	root := &scene.Node{Name: "root"}
	a := deleteNodeAction(root)
	a.UseTheirs()
	if !root.Deleted {
		t.Fatal("parentless node not marked deleted")
	}
	a.Reset()
	if root.Deleted {
		t.Fatal("Reset left the deletion mark")
	}
}

func TestNewComponentApplyAndReset(t *testing.T) {
	node := &scene.Node{Name: "N"}
	tc := &scene.Component{Type: "T", Props: scene.FromKeyVals([]scene.KeyVal{
		{Key: "x", Val: scene.FromInt(1)},
	})}
	a := newComponentAction(node, tc, "T")
	a.UseTheirs()
	if len(node.Components) != 1 {
		t.Fatal("theirs resolution did not add the component")
	}
	if node.Components[0] == tc {
		t.Fatal("added component aliases theirs")
	}
	a.Reset()
	if len(node.Components) != 0 {
		t.Fatal("Reset did not remove the added component")
	}
}

func TestDeleteComponentApplyAndReset(t *testing.T) {
	node := &scene.Node{Name: "N"}
	c1 := &scene.Component{Type: "A"}
	c2 := &scene.Component{Type: "B"}
	c3 := &scene.Component{Type: "C"}
	node.AddComponent(c1)
	node.AddComponent(c2)
	node.AddComponent(c3)

	a := deleteComponentAction(node, c2, "B")
	a.UseTheirs()
	if len(node.Components) != 2 {
		t.Fatal("theirs resolution did not remove the component")
	}
	a.Reset()
	if len(node.Components) != 3 || node.Components[1] != c2 {
		t.Fatalf("Reset did not restore the component at its index: %v", node.Components)
	}
}

func TestChangeFieldApplyAndReset(t *testing.T) {
	node := &scene.Node{Name: "N"}
	props := scene.FromKeyVals([]scene.KeyVal{
		{Key: "val", Val: scene.FromInt(5)},
	})
	oc := &scene.Component{Type: "A", Props: props}

	cur := scene.NewCursor(props)
	if !cur.First() {
		t.Fatal("no field to change")
	}
	a := changeFieldAction(node, oc, "A", cur.Fork(),
		cur.Value().Clone(), scene.FromInt(7))

	a.UseTheirs()
	if got := scene.Get(props, "val"); *got.Int64 != 7 {
		t.Fatalf("val = %d after theirs, want 7", *got.Int64)
	}
	// snapshots are immune to the write
	if *a.OurValue().Int64 != 5 || *a.TheirValue().Int64 != 7 {
		t.Fatal("resolution mutated the snapshots")
	}
	a.Reset()
	if got := scene.Get(props, "val"); *got.Int64 != 5 {
		t.Fatalf("val = %d after reset, want 5", *got.Int64)
	}
}

func TestUseOursWritesNothing(t *testing.T) {
	node := &scene.Node{Name: "N"}
	props := scene.FromKeyVals([]scene.KeyVal{
		{Key: "val", Val: scene.FromInt(5)},
	})
	oc := &scene.Component{Type: "A", Props: props}
	cur := scene.NewCursor(props)
	cur.First()
	a := changeFieldAction(node, oc, "A", cur.Fork(),
		cur.Value().Clone(), scene.FromInt(7))

	a.UseOurs()
	if got := scene.Get(props, "val"); *got.Int64 != 5 {
		t.Fatalf("val = %d after ours, want 5", *got.Int64)
	}
	side, ok := a.ChosenSide()
	if !ok || side != OursSide {
		t.Fatalf("side = %v, %t", side, ok)
	}
}

func TestDescribe(t *testing.T) {
	node := &scene.Node{Name: "N"}
	tests := []struct {
		a    *Action
		want string
	}{
		{newNodeAction(&scene.Node{Name: "P"}), "new node P"},
		{deleteNodeAction(&scene.Node{ID: "7"}), "delete node #7"},
		{newComponentAction(node, &scene.Component{Type: "T"}, "T"), "new component T"},
		{deleteComponentAction(node, &scene.Component{Type: "T"}, "T#1"), "delete component T#1"},
	}
	for _, tt := range tests {
		if got := tt.a.Describe(); got != tt.want {
			t.Errorf("Describe() = %q, want %q", got, tt.want)
		}
	}
}
