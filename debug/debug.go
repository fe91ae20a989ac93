// Package debug provides environment variable driven debug switches.
package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Match   bool
	Diff    bool
	Resolve bool
	Rules   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Match = boolEnv("SCENEMERGE_DEBUG_MATCH")
	d.Diff = boolEnv("SCENEMERGE_DEBUG_DIFF")
	d.Resolve = boolEnv("SCENEMERGE_DEBUG_RESOLVE")
	d.Rules = boolEnv("SCENEMERGE_DEBUG_RULES")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Match() bool {
	return d.Match
}
func Diff() bool {
	return d.Diff
}
func Resolve() bool {
	return d.Resolve
}
func Rules() bool {
	return d.Rules
}

func Logf(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, msg, args...)
}
