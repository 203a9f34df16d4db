// Package treediff compares two trees for diagnostics: as a text diff of
// their renderings and as a JSON merge patch between their structural
// forms.
package treediff

import (
	jsonpatch "github.com/evanphx/json-patch"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/Digivate-Labs-Pvt-Ltd/remorph/ir"
	"github.com/Digivate-Labs-Pvt-Ltd/remorph/render"
)

// Diffs returns the edit script between the renderings of from and to.
func Diffs(from, to ir.Node) []diffpatch.Diff {
	diffCfg := diffpatch.New()
	a := render.TreeString(from)
	b := render.TreeString(to)
	return diffCfg.DiffMain(a, b, true)
}

// Text returns a terminal-friendly colored diff of the two renderings.
func Text(from, to ir.Node) string {
	diffCfg := diffpatch.New()
	return diffCfg.DiffPrettyText(Diffs(from, to))
}

// MergePatch returns the RFC 7386 merge patch turning the structural JSON
// form of from into that of to. Identical trees yield the empty patch
// "{}".
func MergePatch(from, to ir.Node) ([]byte, error) {
	a, err := ir.MarshalJSON(from)
	if err != nil {
		return nil, err
	}
	b, err := ir.MarshalJSON(to)
	if err != nil {
		return nil, err
	}
	return jsonpatch.CreateMergePatch(a, b)
}
