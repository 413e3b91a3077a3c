// Package debug holds env-gated debug switches for the knot libraries.
package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Parse   bool
	Resolve bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("KNOT_DEBUG_PARSE")
	d.Resolve = boolEnv("KNOT_DEBUG_RESOLVE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Resolve() bool {
	return d.Resolve
}

func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}
