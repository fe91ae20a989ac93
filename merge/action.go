// Package merge implements the node-level diff-and-resolution engine:
// presence classification of a node pair, identity-based component
// matching, lockstep field differencing, and the per-difference
// resolution state machine.
package merge

import (
	"fmt"

	"github.com/scenekit/scenemerge/debug"
	"github.com/scenekit/scenemerge/scene"
)

// Kind is the closed set of action variants.
type Kind int

const (
	NewNode Kind = iota
	DeleteNode
	NewComponent
	DeleteComponent
	ChangeField
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		NewNode:         "NewNode",
		DeleteNode:      "DeleteNode",
		NewComponent:    "NewComponent",
		DeleteComponent: "DeleteComponent",
		ChangeField:     "ChangeField",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Side identifies which version of the scene a resolution keeps.
type Side int

const (
	OursSide Side = iota
	TheirsSide
)

func (s Side) String() string {
	if s == TheirsSide {
		return "theirs"
	}
	return "ours"
}

func ParseSide(v string) (Side, error) {
	s, ok := map[string]Side{
		"o":      OursSide,
		"ours":   OursSide,
		"t":      TheirsSide,
		"theirs": TheirsSide,
	}[v]
	if ok {
		return s, nil
	}
	return 0, fmt.Errorf("bad side %q", v)
}

// Action is one undecided difference between "ours" and "theirs".  It
// owns the references needed to apply itself to "ours".  An action is
// created during unit construction, resolved at most once (UseOurs or
// UseTheirs, both idempotent and terminal), and discarded with its
// unit.  Reset is the explicit escape hatch back to unresolved.
type Action struct {
	kind   Kind
	merged bool
	side   Side

	// NewNode / DeleteNode
	ours, theirs *scene.Node
	created      *scene.Node
	parent       *scene.Node
	parentIdx    int
	detached     bool

	// NewComponent / DeleteComponent / ChangeField
	node      *scene.Node
	ourComp   *scene.Component
	theirComp *scene.Component
	added     *scene.Component
	removedAt int

	// ChangeField
	field    *scene.Cursor
	ourVal   *scene.Value
	theirVal *scene.Value
	path     string

	compID string
}

func newNodeAction(theirs *scene.Node) *Action {
	return &Action{kind: NewNode, theirs: theirs}
}

func deleteNodeAction(ours *scene.Node) *Action {
	return &Action{kind: DeleteNode, ours: ours}
}

func newComponentAction(node *scene.Node, theirComp *scene.Component, id string) *Action {
	return &Action{kind: NewComponent, node: node, theirComp: theirComp, compID: id}
}

func deleteComponentAction(node *scene.Node, ourComp *scene.Component, id string) *Action {
	return &Action{kind: DeleteComponent, node: node, ourComp: ourComp, compID: id}
}

func changeFieldAction(node *scene.Node, ourComp *scene.Component, id string,
	field *scene.Cursor, ourVal, theirVal *scene.Value) *Action {
	return &Action{
		kind:     ChangeField,
		node:     node,
		ourComp:  ourComp,
		compID:   id,
		field:    field,
		ourVal:   ourVal,
		theirVal: theirVal,
		path:     field.Path(),
	}
}

// changePropsAction is a ChangeField on the props root, used when the
// props of a matched pair are not mappings on both sides.  field stays
// nil; apply and reset write the component's props directly.  Either
// snapshot may be nil for an absent side.
func changePropsAction(node *scene.Node, ourComp *scene.Component, id string,
	ourVal, theirVal *scene.Value) *Action {
	return &Action{
		kind:     ChangeField,
		node:     node,
		ourComp:  ourComp,
		compID:   id,
		ourVal:   ourVal,
		theirVal: theirVal,
		path:     "$",
	}
}

func (a *Action) Kind() Kind { return a.kind }

// Merged reports whether the action has been resolved, to either side.
func (a *Action) Merged() bool { return a.merged }

// ChosenSide returns the side a resolution kept.  The second result is
// false while the action is unresolved.
func (a *Action) ChosenSide() (Side, bool) {
	return a.side, a.merged
}

// Component returns the component the action concerns, or nil for
// node-level kinds.
func (a *Action) Component() *scene.Component {
	if a.ourComp != nil {
		return a.ourComp
	}
	return a.theirComp
}

// ComponentID returns the stable identifier of the concerned
// component, or "" for node-level kinds.
func (a *Action) ComponentID() string { return a.compID }

// Path returns the field path for ChangeField actions, "" otherwise.
func (a *Action) Path() string { return a.path }

// OurValue and TheirValue return the immutable field snapshots of a
// ChangeField action.
func (a *Action) OurValue() *scene.Value   { return a.ourVal }
func (a *Action) TheirValue() *scene.Value { return a.theirVal }

// Created returns the node materialized by a resolved NewNode action,
// nil otherwise.  Units poll it for deferred ours binding.
func (a *Action) Created() *scene.Node { return a.created }

// NodeLabel names the node the action concerns.
func (a *Action) NodeLabel() string {
	switch {
	case a.node != nil:
		return a.node.Label()
	case a.ours != nil:
		return a.ours.Label()
	case a.theirs != nil:
		return a.theirs.Label()
	}
	return "<node>"
}

func (a *Action) Describe() string {
	switch a.kind {
	case NewNode:
		return fmt.Sprintf("new node %s", a.theirs.Label())
	case DeleteNode:
		return fmt.Sprintf("delete node %s", a.ours.Label())
	case NewComponent:
		return fmt.Sprintf("new component %s", a.compID)
	case DeleteComponent:
		return fmt.Sprintf("delete component %s", a.compID)
	case ChangeField:
		return fmt.Sprintf("change %s %s", a.compID, a.path)
	}
	return "<unknown action>"
}

// Resolve applies the resolution for the given side.  It reports
// whether the action's state changed; callers use that signal to
// trigger an aggregate recompute on the owning unit.
func (a *Action) Resolve(side Side) bool {
	if side == TheirsSide {
		return a.UseTheirs()
	}
	return a.UseOurs()
}

// UseOurs keeps the current "ours" state.  A no-op write for every
// kind: the scene already is what ours wants.
func (a *Action) UseOurs() bool {
	if a.merged {
		return false
	}
	if debug.Resolve() {
		debug.Logf("resolve ours: %s\n", a.Describe())
	}
	a.merged = true
	a.side = OursSide
	return true
}

// UseTheirs applies the "theirs" side onto ours.
func (a *Action) UseTheirs() bool {
	if a.merged {
		return false
	}
	if debug.Resolve() {
		debug.Logf("resolve theirs: %s\n", a.Describe())
	}
	switch a.kind {
	case NewNode:
		a.created = a.theirs.Clone()
	case DeleteNode:
		a.parent = a.ours.Parent
		a.parentIdx = childIndex(a.parent, a.ours)
		a.detached = a.ours.Detach()
		if !a.detached {
			a.ours.Deleted = true
		}
	case NewComponent:
		a.added = a.theirComp.Clone()
		a.node.AddComponent(a.added)
	case DeleteComponent:
		a.removedAt = componentIndex(a.node, a.ourComp)
		a.node.RemoveComponent(a.ourComp)
	case ChangeField:
		a.writeField(a.theirVal)
	}
	a.merged = true
	a.side = TheirsSide
	return true
}

// writeField applies a value snapshot to the action's target: through
// the cursor for a field change, onto the component's props for a
// props-root change.
func (a *Action) writeField(v *scene.Value) {
	if a.field != nil {
		a.field.Value().Set(v)
		return
	}
	switch {
	case v == nil:
		a.ourComp.Props = nil
	case a.ourComp.Props == nil:
		a.ourComp.Props = v.Clone()
	default:
		a.ourComp.Props.Set(v)
	}
}

// Reset undoes an applied resolution and returns the action to the
// unresolved state.  Not part of normal flow, which treats resolutions
// as terminal.
func (a *Action) Reset() {
	if !a.merged {
		return
	}
	if a.side == TheirsSide {
		switch a.kind {
		case NewNode:
			a.created = nil
		case DeleteNode:
			if a.detached {
				reattachChild(a.parent, a.ours, a.parentIdx)
				a.detached = false
			} else {
				a.ours.Deleted = false
			}
			a.parent = nil
		case NewComponent:
			a.node.RemoveComponent(a.added)
			a.added = nil
		case DeleteComponent:
			reinsertComponent(a.node, a.ourComp, a.removedAt)
		case ChangeField:
			a.writeField(a.ourVal)
		}
	}
	a.merged = false
	a.side = OursSide
}

func childIndex(parent, child *scene.Node) int {
	if parent == nil {
		return -1
	}
	for i, c := range parent.Children {
		if c == child {
			return i
		}
	}
	return -1
}

func reattachChild(parent, child *scene.Node, at int) {
	if parent == nil {
		return
	}
	child.Parent = parent
	if at < 0 || at >= len(parent.Children) {
		parent.Children = append(parent.Children, child)
		return
	}
	parent.Children = append(parent.Children[:at],
		append([]*scene.Node{child}, parent.Children[at:]...)...)
}

func componentIndex(node *scene.Node, c *scene.Component) int {
	for i, nc := range node.Components {
		if nc == c {
			return i
		}
	}
	return -1
}

func reinsertComponent(node *scene.Node, c *scene.Component, at int) {
	if at < 0 || at >= len(node.Components) {
		node.AddComponent(c)
		return
	}
	node.Components = append(node.Components[:at],
		append([]*scene.Component{c}, node.Components[at:]...)...)
}
