// Package debug holds process-wide debug switches, read once from
// JOT_DEBUG_* environment variables at startup.
package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Lex     bool
	Parse   bool
	Encode  bool
	Resolve bool
	LSP     bool
}

var d *debug

func init() {
	d = &debug{}
	d.Lex = boolEnv("JOT_DEBUG_LEX")
	d.Parse = boolEnv("JOT_DEBUG_PARSE")
	d.Encode = boolEnv("JOT_DEBUG_ENCODE")
	d.Resolve = boolEnv("JOT_DEBUG_RESOLVE")
	d.LSP = boolEnv("JOT_DEBUG_LSP")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Lex() bool {
	return d.Lex
}
func Parse() bool {
	return d.Parse
}
func Encode() bool {
	return d.Encode
}
func Resolve() bool {
	return d.Resolve
}
func LSP() bool {
	return d.LSP
}
