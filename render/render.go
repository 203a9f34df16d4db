// Package render produces the human-readable tree forms: branch-guided
// multi-line renderings, depth-first line numbering with node lookup, and
// a YAML structural dump.
//
// The layout is one line per node. Each ancestor depth level contributes
// exactly three characters ("   " once that ancestor's branch is finished,
// ":  " while it is open), followed by "+- " for a last child or ":- "
// otherwise. Inner children render two levels deeper than ordinary
// children and before them.
package render

import (
	"fmt"
	"os"
	"regexp"
	"slices"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/Digivate-Labs-Pvt-Ltd/remorph/debug"
	"github.com/Digivate-Labs-Pvt-Ltd/remorph/ir"
)

// Options configures rendering. The zero value renders plain text with
// default field truncation.
type Options struct {
	// MaxFields caps rendered sequence elements per argument;
	// ir.DefaultMaxFields when 0.
	MaxFields int
	// Redact matches map keys whose values are replaced by ir.Redacted.
	Redact *regexp.Regexp
	// Color enables ANSI-colored guides and variant names.
	Color bool
}

// AutoOptions enables color when f is a terminal.
func AutoOptions(f *os.File) Options {
	return Options{Color: f != nil && isatty.IsTerminal(f.Fd())}
}

func (o Options) describe() ir.Describe {
	return ir.Describe{MaxFields: o.MaxFields, Redact: o.Redact}
}

// TreeString renders n with default options.
func TreeString(n ir.Node) string {
	return Options{}.TreeString(n)
}

// TreeString renders the whole tree rooted at n, one line per node.
func (o Options) TreeString(n ir.Node) string {
	w := o.walkTree(n)
	return strings.Join(w.lines, "\n") + "\n"
}

// NumberedTreeString renders n with default options, each line prefixed
// by its zero-padded line index.
func NumberedTreeString(n ir.Node) string {
	return Options{}.NumberedTreeString(n)
}

// NumberedTreeString prefixes every rendered line with the sequential
// number assigned to its node, in exactly the traversal order used for
// rendering.
func (o Options) NumberedTreeString(n ir.Node) string {
	w := o.walkTree(n)
	var sb strings.Builder
	for i, line := range w.lines {
		fmt.Fprintf(&sb, "%02d %s\n", i, line)
	}
	return sb.String()
}

// NodeAt returns the node numbered i by NumberedTreeString, or nil when i
// is out of range.
func NodeAt(n ir.Node, i int) ir.Node {
	w := Options{}.walkTree(n)
	if i < 0 || i >= len(w.nodes) {
		return nil
	}
	return w.nodes[i]
}

type walker struct {
	opts  Options
	d     ir.Describe
	lines []string
	nodes []ir.Node
}

func (o Options) walkTree(n ir.Node) *walker {
	w := &walker{opts: o, d: o.describe()}
	w.walk(n, nil)
	if debug.Render() {
		debug.Logf("render: %s, %d lines\n", n.Name(), len(w.lines))
	}
	return w
}

// walk renders n and its subtree. lastBranch holds, per ancestor depth
// level, whether that ancestor was the last child of its own parent
// (closing its branch guide); the final element refers to n itself.
func (w *walker) walk(n ir.Node, lastBranch []bool) {
	var sb strings.Builder
	if len(lastBranch) > 0 {
		var guides strings.Builder
		for _, done := range lastBranch[:len(lastBranch)-1] {
			if done {
				guides.WriteString("   ")
			} else {
				guides.WriteString(":  ")
			}
		}
		if lastBranch[len(lastBranch)-1] {
			guides.WriteString("+- ")
		} else {
			guides.WriteString(":- ")
		}
		sb.WriteString(w.guide(guides.String()))
	}
	sb.WriteString(w.name(n.Name()))
	if as := w.d.ArgString(n); as != "" {
		sb.WriteByte(' ')
		sb.WriteString(as)
	}
	w.lines = append(w.lines, sb.String())
	w.nodes = append(w.nodes, n)

	kids := ir.Children(n)
	inner := ir.InnerChildrenOf(n)
	for i, ic := range inner {
		w.walk(ic, append(slices.Clone(lastBranch), len(kids) == 0, i == len(inner)-1))
	}
	for i, c := range kids {
		w.walk(c, append(slices.Clone(lastBranch), i == len(kids)-1))
	}
}
