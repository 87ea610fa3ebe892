package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Decode bool
	Encode bool
	Patch  bool
	Match  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Decode = boolEnv("LSKIT_DEBUG_DECODE")
	d.Encode = boolEnv("LSKIT_DEBUG_ENCODE")
	d.Patch = boolEnv("LSKIT_DEBUG_PATCH")
	d.Match = boolEnv("LSKIT_DEBUG_MATCH")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Decode() bool {
	return d.Decode
}
func Encode() bool {
	return d.Encode
}
func Patch() bool {
	return d.Patch
}
func Match() bool {
	return d.Match
}
