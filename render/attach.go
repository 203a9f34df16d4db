package render

import (
	"github.com/Digivate-Labs-Pvt-Ltd/remorph/ir"
)

// AttachTree runs f and wraps any failure into an ir.TreeError carrying
// msg and the full rendering of n. Use it around rule bodies or other
// operations whose failures should surface with tree context.
func AttachTree(n ir.Node, msg string, f func() error) error {
	if err := f(); err != nil {
		return &ir.TreeError{Tree: TreeString(n), Msg: msg, Err: err}
	}
	return nil
}
