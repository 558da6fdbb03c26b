//go:build !progmem

package stockbook

import "unsafe"

// CurrentDomain is the memory domain of every Data in this build.
const CurrentDomain = RAM

func readByte(p unsafe.Pointer) byte {
	return *(*byte)(p)
}
