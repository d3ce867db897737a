package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Write   bool
	Read    bool
	Catalog bool
}

var d *debug

func init() {
	d = &debug{}
	d.Write = boolEnv("TROUPE_DEBUG_WRITE")
	d.Read = boolEnv("TROUPE_DEBUG_READ")
	d.Catalog = boolEnv("TROUPE_DEBUG_CATALOG")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Write() bool {
	return d.Write
}
func Read() bool {
	return d.Read
}
func Catalog() bool {
	return d.Catalog
}
