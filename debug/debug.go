// Package debug gates trace output for tree operations behind environment
// switches, so transformation passes can be observed without any logging
// dependency in the core.
package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Transform bool
	Rule      bool
	Render    bool
}

var d *debug

func init() {
	d = &debug{}
	d.Transform = boolEnv("REMORPH_DEBUG_TRANSFORM")
	d.Rule = boolEnv("REMORPH_DEBUG_RULE")
	d.Render = boolEnv("REMORPH_DEBUG_RENDER")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Transform() bool {
	return d.Transform
}

func Rule() bool {
	return d.Rule
}

func Render() bool {
	return d.Render
}
