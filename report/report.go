// Package report summarizes what a resolution session changed.
package report

import (
	"encoding/json"

	jsonpatch "github.com/evanphx/json-patch"

	"github.com/scenekit/scenemerge/scene"
)

// MergePatch returns a JSON merge patch (RFC 7386) taking the
// pre-merge ours document to the resolved result.  An empty patch
// ({}) means resolution changed nothing.
func MergePatch(before, after *scene.Node) ([]byte, error) {
	od, err := json.Marshal(before)
	if err != nil {
		return nil, err
	}
	md, err := json.Marshal(after)
	if err != nil {
		return nil, err
	}
	return jsonpatch.CreateMergePatch(od, md)
}
