package merge

import (
	"errors"

	"github.com/scenekit/scenemerge/debug"
	"github.com/scenekit/scenemerge/ident"
	"github.com/scenekit/scenemerge/scene"
)

// ErrNoNodes is returned when a unit is constructed with neither side
// present.  That is a programmer error in the caller, never a
// degenerate unit.
var ErrNoNodes = errors.New("merge: neither ours nor theirs present")

type Config struct {
	Label string
	// AutoResolve is consulted once per detected difference at
	// construction time.  When it returns ok, the action is
	// constructed already resolved to the returned side; a unit whose
	// every action auto-resolves is merged with zero interaction.
	AutoResolve func(*Action) (Side, bool)
}

type Option func(*Config)

func WithLabel(l string) Option {
	return func(c *Config) { c.Label = l }
}

func WithAutoResolve(f func(*Action) (Side, bool)) Option {
	return func(c *Config) { c.AutoResolve = f }
}

// Unit owns one node pair and the full set of merge actions detected
// between the two versions.  It holds non-owning references to the
// externally owned nodes and exclusively owns its action list.
type Unit struct {
	ours, theirs *scene.Node
	actions      []*Action
	label        string
	merged       bool
	created      *scene.Node
}

// New constructs a unit over a node pair and populates its action set.
// At least one side must be present.
//
// Only-theirs yields a single NewNode action; only-ours a single
// DeleteNode action.  With both sides present the node itself
// generates no action: their components are matched by identifier and
// matched pairs are field-differenced.
func New(ours, theirs *scene.Node, opts ...Option) (*Unit, error) {
	if ours == nil && theirs == nil {
		return nil, ErrNoNodes
	}
	cfg := &Config{}
	for _, opt := range opts {
		opt(cfg)
	}
	u := &Unit{ours: ours, theirs: theirs, label: cfg.Label}
	if u.label == "" {
		if ours != nil {
			u.label = ours.Label()
		} else {
			u.label = theirs.Label()
		}
	}
	switch {
	case ours == nil:
		u.add(cfg, newNodeAction(theirs))
	case theirs == nil:
		u.add(cfg, deleteNodeAction(ours))
	default:
		u.diffComponents(cfg)
	}
	u.merged = u.IsMerged()
	return u, nil
}

func (u *Unit) add(cfg *Config, a *Action) {
	if cfg.AutoResolve != nil {
		if side, ok := cfg.AutoResolve(a); ok {
			a.Resolve(side)
		}
	}
	u.actions = append(u.actions, a)
}

// diffComponents matches components across the two versions by their
// stable identifier.  Emission order: deletions and field changes in
// ours enumeration order, then additions in theirs remaining order.
func (u *Unit) diffComponents(cfg *Config) {
	theirTab := ident.Index(u.theirs.Components)
	for _, oc := range u.ours.Components {
		id := ident.Identify(oc)
		tc, ok := theirTab.Take(id)
		if !ok {
			if debug.Diff() {
				debug.Logf("diff %s: component %s only in ours\n", u.label, id)
			}
			u.add(cfg, deleteComponentAction(u.ours, oc, id))
			continue
		}
		u.diffFields(cfg, oc, tc, id)
	}
	for _, tc := range theirTab.Remaining() {
		id := ident.Identify(tc)
		if debug.Diff() {
			debug.Logf("diff %s: component %s only in theirs\n", u.label, id)
		}
		u.add(cfg, newComponentAction(u.ours, tc, id))
	}
}

// diffFields walks the matched pair's field traversals in lockstep.
// Position i of the ours walk corresponds to position i of the theirs
// walk; this is the matched-type invariant, not re-verified by name.
//
// Props that are not mappings on both sides (scalar, array, or absent)
// have no fields to walk; they are compared as a whole and any
// difference becomes one change action on the props root.
func (u *Unit) diffFields(cfg *Config, oc, tc *scene.Component, id string) {
	if !objectProps(oc) || !objectProps(tc) {
		if propsEqual(oc.Props, tc.Props) {
			return
		}
		if debug.Diff() {
			debug.Logf("diff %s: %s props differ as a whole\n", u.label, id)
		}
		u.add(cfg, changePropsAction(u.ours, oc, id,
			cloneOrNil(oc.Props), cloneOrNil(tc.Props)))
		return
	}
	ourCur := scene.NewCursor(oc.Props)
	theirCur := scene.NewCursor(tc.Props)
	ourOK := ourCur.First()
	theirOK := theirCur.First()
	for ourOK && theirOK {
		ov := ourCur.Value()
		tv := theirCur.Value()
		if ov.Hash() != tv.Hash() || !scene.Equal(ov, tv) {
			if debug.Diff() {
				debug.Logf("diff %s: %s differs at %s\n", u.label, id, ourCur.Path())
			}
			u.add(cfg, changeFieldAction(u.ours, oc, id,
				ourCur.Fork(), ov.Clone(), tv.Clone()))
		}
		ourOK = ourCur.Next()
		theirOK = theirCur.Next()
	}
}

func objectProps(c *scene.Component) bool {
	return c.Props != nil && c.Props.Type == scene.ObjectType
}

func propsEqual(a, b *scene.Value) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Hash() == b.Hash() && scene.Equal(a, b)
}

func cloneOrNil(v *scene.Value) *scene.Value {
	if v == nil {
		return nil
	}
	return v.Clone()
}

func (u *Unit) Label() string { return u.label }

// Actions returns the unit's action list in detection order.  The
// slice is owned by the unit; callers resolve through the actions but
// do not reorder or replace them.
func (u *Unit) Actions() []*Action { return u.actions }

// IsMerged reports whether every action is resolved.  Vacuously true
// for an empty action list.  O(number of actions).
func (u *Unit) IsMerged() bool {
	for _, a := range u.actions {
		if !a.Merged() {
			return false
		}
	}
	return true
}

// UseOurs forces every action to the keep-ours resolution.  Used when
// a merge session aborts: afterwards IsMerged is true and no partial
// state is left behind.  Idempotent.
func (u *Unit) UseOurs() {
	for _, a := range u.actions {
		a.UseOurs()
	}
	u.Recompute()
}

// Recompute refreshes the cached aggregate state and the deferred ours
// binding.  Callers invoke it after resolving an action externally;
// the action's did-state-change result tells them whether they need
// to.
func (u *Unit) Recompute() bool {
	u.merged = u.IsMerged()
	u.repair()
	return u.merged
}

// Resolve resolves one action and recomputes aggregate state only when
// the action actually changed.  It reports whether it changed.
func (u *Unit) Resolve(a *Action, side Side) bool {
	if !a.Resolve(side) {
		return false
	}
	u.Recompute()
	return true
}

// OursNode returns the "ours" node the unit refers to.  When the node
// was absent in ours at construction, the unit polls its actions for a
// node materialized by a resolved creation action; until one exists
// the result is nil, which callers must tolerate.  The binding is
// re-derived on every call, so a reset creation action stops being
// visible immediately.
func (u *Unit) OursNode() *scene.Node {
	if u.ours != nil {
		return u.ours
	}
	u.repair()
	return u.created
}

// repair re-derives the deferred ours binding from resolved-action
// state.
func (u *Unit) repair() {
	if u.ours != nil {
		return
	}
	u.created = nil
	for _, a := range u.actions {
		if n := a.Created(); n != nil {
			u.created = n
			return
		}
	}
}
