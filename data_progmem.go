//go:build progmem && !avr

package stockbook

import "unsafe"

// CurrentDomain is the memory domain of every Data in this build.
const CurrentDomain = ProgramMemory

// Outside of AVR, program memory shares the address space of RAM and the
// ordinary load is the program memory read.
func readByte(p unsafe.Pointer) byte {
	return *(*byte)(p)
}
