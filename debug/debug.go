package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Parse   bool
	Encode  bool
	Convert bool
	Patch   bool
	Eval    bool
	Diff    bool
	LoadEnv bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("VALU_DEBUG_PARSE")
	d.Encode = boolEnv("VALU_DEBUG_ENCODE")
	d.Convert = boolEnv("VALU_DEBUG_CONVERT")
	d.Patch = boolEnv("VALU_DEBUG_PATCH")
	d.Eval = boolEnv("VALU_DEBUG_EVAL")
	d.Diff = boolEnv("VALU_DEBUG_DIFF")
	d.LoadEnv = boolEnv("VALU_DEBUG_LOAD_ENV")
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
func Encode() bool {
	return d.Encode
}
func Convert() bool {
	return d.Convert
}
func Patch() bool {
	return d.Patch
}
func Eval() bool {
	return d.Eval
}
func Diff() bool {
	return d.Diff
}
func LoadEnv() bool {
	return d.LoadEnv
}

func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
		return
	}
	os.Stderr.Write(d)
}
