package scene

import "strings"

// internalField reports whether a field name denotes engine-internal
// bookkeeping that is not user-visible.
func internalField(name string) bool {
	return strings.HasPrefix(name, "_")
}

// Cursor walks the fields of a component's properties in the fixed
// traversal order: the first entry is expanded, then siblings are
// visited through a next-visible walk that skips internal entries.
// For two components of the same declared type the visited positions
// correspond 1:1, which is what lockstep field differencing relies on.
type Cursor struct {
	root *Value
	idx  int
}

// NewCursor returns a cursor over props.  A nil or non-object props
// yields a cursor with no visible fields.
func NewCursor(props *Value) *Cursor {
	return &Cursor{root: props, idx: -1}
}

func (c *Cursor) Reset() {
	c.idx = -1
}

// First expands into the first visible field.  It reports whether a
// visible field exists.
func (c *Cursor) First() bool {
	c.idx = -1
	return c.Next()
}

// Next advances to the next visible sibling.
func (c *Cursor) Next() bool {
	if c.root == nil || c.root.Type != ObjectType {
		return false
	}
	for i := c.idx + 1; i < len(c.root.Fields); i++ {
		if internalField(c.root.Fields[i].String) {
			continue
		}
		c.idx = i
		return true
	}
	c.idx = len(c.root.Fields)
	return false
}

func (c *Cursor) valid() bool {
	return c.root != nil && c.root.Type == ObjectType &&
		c.idx >= 0 && c.idx < len(c.root.Fields)
}

// Name returns the current field name, or "" when the cursor is not
// positioned on a field.
func (c *Cursor) Name() string {
	if !c.valid() {
		return ""
	}
	return c.root.Fields[c.idx].String
}

// Value returns the current field value, or nil when the cursor is not
// positioned on a field.  The value is live, not a snapshot.
func (c *Cursor) Value() *Value {
	if !c.valid() {
		return nil
	}
	return c.root.Values[c.idx]
}

// Path returns the '$'-rooted path of the current field.
func (c *Cursor) Path() string {
	v := c.Value()
	if v == nil {
		return ""
	}
	return v.Path()
}

// Fork duplicates the cursor state.  The fork keeps its position when
// the original moves on, so it can snapshot a field reference for
// later display or apply.
func (c *Cursor) Fork() *Cursor {
	return &Cursor{root: c.root, idx: c.idx}
}
