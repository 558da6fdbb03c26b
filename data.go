package stockbook

import (
	"strconv"
	"unsafe"
)

// Domain is the kind of memory the bytes of a Data live in.
type Domain uint8

const (
	// RAM is ordinary addressable memory, read with normal loads.
	RAM Domain = iota
	// ProgramMemory is the flash of Harvard architectures such as AVR, which
	// can only be read with dedicated instructions.
	ProgramMemory
)

func (d Domain) String() string {
	switch d {
	case RAM:
		return "ram"
	case ProgramMemory:
		return "progmem"
	default:
		return "Domain(" + strconv.Itoa(int(d)) + ")"
	}
}

// Data points at the packed pixels of a Stamp.
//
// Data never owns the bytes. They must outlive every Stamp referencing them and
// never change, which in practice means a package level array. Data is read-only,
// so copies may be used from any number of goroutines.
//
// The memory domain is chosen at build time by the progmem build tag, see
// CurrentDomain.
type Data struct {
	p unsafe.Pointer
}

// FromRawAddress wraps p.
//
// The caller guarantees that p points to a byte array long enough for the stamp
// it is used with, that the array is never modified, and, in progmem builds, that
// it is initialized and stored in program memory.
func FromRawAddress(p *byte) Data {
	return Data{p: unsafe.Pointer(p)}
}

// DataOf wraps the backing array of b. The same guarantees as FromRawAddress
// apply to it.
func DataOf(b []byte) Data {
	return FromRawAddress(unsafe.SliceData(b))
}

// ByteAt returns the byte at offset i.
//
// No bounds checking is done: i must be within the wrapped array.
func (d Data) ByteAt(i int) byte {
	return readByte(unsafe.Add(d.p, i))
}

// RawAddress returns the wrapped address, for diagnostics. In progmem builds it
// must not be dereferenced with ordinary loads.
func (d Data) RawAddress() uintptr {
	return uintptr(d.p)
}

// Domain returns the memory domain d addresses.
func (d Data) Domain() Domain {
	return CurrentDomain
}

// String returns the address and its domain.
func (d Data) String() string {
	return "0x" + strconv.FormatUint(uint64(d.RawAddress()), 16) + "(" + CurrentDomain.String() + ")"
}
