// Package ident assigns stable identifiers to components so that a
// component in one version of a node can be paired with its
// counterpart in another version, independent of ordering and object
// identity.
package ident

import (
	"github.com/scenekit/scenemerge/debug"
	"github.com/scenekit/scenemerge/scene"
)

// Identify returns the stable identifier of a component: its declared
// type name, qualified by the component's explicit id when one is
// present.  Two independent traversals of semantically equivalent
// components yield the same identifier.
func Identify(c *scene.Component) string {
	if c.ID != "" {
		return c.Type + "#" + c.ID
	}
	return c.Type
}

type entry struct {
	id   string
	comp *scene.Component
}

// Table is an identifier-keyed index over a node's components that
// also remembers insertion order.  Same-type components without ids
// collide; the last writer wins, silently.  That masking is the
// documented matching contract, not an error.
type Table struct {
	byID  map[string]*scene.Component
	order []entry
}

// Index builds a table over comps in their attachment order.
func Index(comps []*scene.Component) *Table {
	t := &Table{byID: make(map[string]*scene.Component, len(comps))}
	for _, c := range comps {
		id := Identify(c)
		if _, dup := t.byID[id]; !dup {
			t.order = append(t.order, entry{id: id, comp: c})
		} else {
			if debug.Match() {
				debug.Logf("match: identifier %s collides, masking earlier component\n", id)
			}
			// last write wins: re-point the ordered entry too
			for i := range t.order {
				if t.order[i].id == id {
					t.order[i].comp = c
					break
				}
			}
		}
		t.byID[id] = c
	}
	return t
}

// Take looks up the component with the given identifier and removes it
// from the table, so a matched entry is not re-offered.
func (t *Table) Take(id string) (*scene.Component, bool) {
	c, ok := t.byID[id]
	if !ok {
		return nil, false
	}
	delete(t.byID, id)
	return c, true
}

// Remaining returns the untaken components in their original order.
func (t *Table) Remaining() []*scene.Component {
	var res []*scene.Component
	for _, e := range t.order {
		if _, ok := t.byID[e.id]; ok {
			res = append(res, e.comp)
		}
	}
	return res
}

func (t *Table) Len() int {
	return len(t.byID)
}
