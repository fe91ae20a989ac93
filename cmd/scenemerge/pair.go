package main

import (
	"github.com/scenekit/scenemerge/merge"
	"github.com/scenekit/scenemerge/scene"
)

// pairing is one node pair's unit together with the ours-side parent,
// which is where a node materialized by an accepted NewNode action
// gets attached.
type pairing struct {
	unit       *merge.Unit
	parentOurs *scene.Node
}

// pairUnits drives the merge engine over every corresponding node pair
// of the two documents.  Children pair by node id when present, else
// by name; the engine itself only ever sees one pair at a time.
func pairUnits(ours, theirs *scene.Node, opts []merge.Option) ([]*pairing, error) {
	var res []*pairing
	if err := pairInto(&res, ours, theirs, nil, opts); err != nil {
		return nil, err
	}
	return res, nil
}

func pairInto(res *[]*pairing, ours, theirs, parentOurs *scene.Node, opts []merge.Option) error {
	u, err := merge.New(ours, theirs, opts...)
	if err != nil {
		return err
	}
	*res = append(*res, &pairing{unit: u, parentOurs: parentOurs})
	if ours == nil || theirs == nil {
		return nil
	}
	// duplicate keys among theirs children collapse here (last write
	// wins) for matching purposes only; shadowed duplicates are still
	// emitted as unmatched below
	theirKids := make(map[string]*scene.Node, len(theirs.Children))
	for _, c := range theirs.Children {
		theirKids[nodeKey(c)] = c
	}
	matched := make(map[*scene.Node]bool)
	for _, oc := range ours.Children {
		key := nodeKey(oc)
		tc, ok := theirKids[key]
		if !ok {
			if err := pairInto(res, oc, nil, ours, opts); err != nil {
				return err
			}
			continue
		}
		delete(theirKids, key)
		matched[tc] = true
		if err := pairInto(res, oc, tc, ours, opts); err != nil {
			return err
		}
	}
	// unmatched theirs children, in document order
	for _, tc := range theirs.Children {
		if matched[tc] {
			continue
		}
		if err := pairInto(res, nil, tc, ours, opts); err != nil {
			return err
		}
	}
	return nil
}

func nodeKey(n *scene.Node) string {
	if n.ID != "" {
		return "#" + n.ID
	}
	return n.Name
}
