package render

import (
	"github.com/fatih/color"
)

var (
	guideColor = color.RGB(74, 92, 138).SprintfFunc()
	nameColor  = color.New(color.FgCyan).SprintfFunc()
)

func (w *walker) guide(s string) string {
	if !w.opts.Color {
		return s
	}
	return guideColor("%s", s)
}

func (w *walker) name(s string) string {
	if !w.opts.Color {
		return s
	}
	return nameColor("%s", s)
}
