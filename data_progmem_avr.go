//go:build progmem && avr

package stockbook

/*
#include <stdint.h>
#include <avr/pgmspace.h>

static inline uint8_t stockbook_read_byte(const uint8_t *p) {
	return pgm_read_byte(p);
}
*/
import "C"

import "unsafe"

// CurrentDomain is the memory domain of every Data in this build.
const CurrentDomain = ProgramMemory

// readByte issues an LPM load. Normal loads address SRAM on AVR and would read
// unrelated bytes.
func readByte(p unsafe.Pointer) byte {
	return byte(C.stockbook_read_byte((*C.uint8_t)(p)))
}
