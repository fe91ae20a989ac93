package encode

import (
	"fmt"
	"io"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/scenekit/scenemerge/merge"
	"github.com/scenekit/scenemerge/scene"
)

// RenderActions writes one line per merge action of the unit, with a
// kind marker and the resolution state.  ChangeField actions on string
// values show an inline character diff of ours vs theirs.
func RenderActions(w io.Writer, u *merge.Unit, opts ...EncodeOption) error {
	st := newEncState(opts)
	for _, a := range u.Actions() {
		if err := renderAction(w, a, st); err != nil {
			return err
		}
	}
	return nil
}

func renderAction(w io.Writer, a *merge.Action, st *EncState) error {
	cs := st.Colors
	status := "[ ]"
	if side, ok := a.ChosenSide(); ok {
		status = fmt.Sprintf("[%s]", side)
	}
	switch a.Kind() {
	case merge.NewNode, merge.NewComponent:
		_, err := fmt.Fprintf(w, "%s %s %s\n", status, cs.insert()("+"), a.Describe())
		return err
	case merge.DeleteNode, merge.DeleteComponent:
		_, err := fmt.Fprintf(w, "%s %s %s\n", status, cs.delete()("-"), a.Describe())
		return err
	case merge.ChangeField:
		_, err := fmt.Fprintf(w, "%s %s %s: %s\n", status, cs.change()("~"),
			a.Describe(), changePreview(a, cs))
		return err
	}
	return nil
}

// changePreview renders ours -> theirs; string values get a character
// level inline diff instead of two full copies.
func changePreview(a *merge.Action, cs *Colors) string {
	ov, tv := a.OurValue(), a.TheirValue()
	if ov != nil && tv != nil &&
		ov.Type == scene.StringType && tv.Type == scene.StringType {
		return inlineDiff(ov.String, tv.String, cs)
	}
	return fmt.Sprintf("%s %s %s",
		cs.delete()("%s", scalar(ov)), "->", cs.insert()("%s", scalar(tv)))
}

func inlineDiff(from, to string, cs *Colors) string {
	dmp := diffpatch.New()
	diffs := dmp.DiffMain(from, to, false)
	diffs = dmp.DiffCleanupSemantic(diffs)
	res := ""
	for _, d := range diffs {
		switch d.Type {
		case diffpatch.DiffDelete:
			res += cs.delete()("%s", d.Text)
		case diffpatch.DiffInsert:
			res += cs.insert()("%s", d.Text)
		case diffpatch.DiffEqual:
			res += d.Text
		}
	}
	return res
}
