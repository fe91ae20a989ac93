package scene

import (
	"testing"
)

func props(kvs ...KeyVal) *Value {
	return FromKeyVals(kvs)
}

func TestCursorWalk(t *testing.T) {
	tests := []struct {
		name  string
		props *Value
		want  []string
	}{
		{
			name:  "nil props",
			props: nil,
			want:  nil,
		},
		{
			name:  "non object props",
			props: FromString("scalar"),
			want:  nil,
		},
		{
			name:  "empty object",
			props: props(),
			want:  nil,
		},
		{
			name: "plain fields in order",
			props: props(
				KeyVal{Key: "b", Val: FromInt(1)},
				KeyVal{Key: "a", Val: FromInt(2)},
				KeyVal{Key: "c", Val: FromInt(3)},
			),
			want: []string{"b", "a", "c"},
		},
		{
			name: "internal entries skipped",
			props: props(
				KeyVal{Key: "_meta", Val: FromInt(0)},
				KeyVal{Key: "x", Val: FromInt(1)},
				KeyVal{Key: "_gen", Val: FromInt(2)},
				KeyVal{Key: "y", Val: FromInt(3)},
			),
			want: []string{"x", "y"},
		},
		{
			name: "only internal entries",
			props: props(
				KeyVal{Key: "_a", Val: FromInt(0)},
				KeyVal{Key: "_b", Val: FromInt(1)},
			),
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCursor(tt.props)
			var got []string
			for ok := c.First(); ok; ok = c.Next() {
				got = append(got, c.Name())
			}
			if len(got) != len(tt.want) {
				t.Fatalf("visited %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("visited %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestCursorFork(t *testing.T) {
	p := props(
		KeyVal{Key: "a", Val: FromInt(1)},
		KeyVal{Key: "b", Val: FromInt(2)},
	)
	c := NewCursor(p)
	if !c.First() {
		t.Fatal("expected a first field")
	}
	fork := c.Fork()
	if !c.Next() {
		t.Fatal("expected a second field")
	}
	if fork.Name() != "a" {
		t.Errorf("fork moved: at %q, want %q", fork.Name(), "a")
	}
	if c.Name() != "b" {
		t.Errorf("cursor at %q, want %q", c.Name(), "b")
	}
	// the fork sees live values, not a copy
	fork.Value().Set(FromInt(42))
	if got := Get(p, "a"); got.Int64 == nil || *got.Int64 != 42 {
		t.Errorf("write through fork not visible in props")
	}
}

func TestCursorReset(t *testing.T) {
	p := props(KeyVal{Key: "a", Val: FromInt(1)})
	c := NewCursor(p)
	if !c.First() {
		t.Fatal("expected a field")
	}
	if c.Next() {
		t.Fatal("expected exhaustion")
	}
	c.Reset()
	if !c.Next() {
		t.Fatal("reset cursor should walk again")
	}
	if c.Name() != "a" {
		t.Errorf("after reset at %q, want %q", c.Name(), "a")
	}
}

func TestCursorPath(t *testing.T) {
	p := props(KeyVal{Key: "position", Val: FromKeyVals([]KeyVal{{Key: "x", Val: FromFloat(1)}})})
	c := NewCursor(p)
	if !c.First() {
		t.Fatal("expected a field")
	}
	if got := c.Path(); got != "$.position" {
		t.Errorf("Path() = %q, want %q", got, "$.position")
	}
}
