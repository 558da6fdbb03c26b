package stockbook

import "unsafe"

// Size is the capability every Stamp is generic over: it reports the width and
// height of the stamp, in that order.
type Size interface {
	Size() [2]int
}

// StaticSize is a Size known at compile time. It holds no data: the dimensions are
// the byte sizes of W and H, so StaticSize[[11]byte, [8]byte] is 11x8 pixels.
//
// W and H are meant to be byte arrays. Any other type works, but its size in memory
// is then what gets reported.
type StaticSize[W, H any] struct{}

// Size implements Size.
func (StaticSize[W, H]) Size() [2]int {
	var w W
	var h H
	return [2]int{int(unsafe.Sizeof(w)), int(unsafe.Sizeof(h))}
}

// Downgrade copies the dimensions into a DynamicSize. Use it when stamps of
// different sizes need to share one type.
func (s StaticSize[W, H]) Downgrade() DynamicSize {
	wh := s.Size()
	return DynamicSize{width: wh[0], height: wh[1]}
}

// String implements fmt.Stringer.
func (s StaticSize[W, H]) String() string {
	wh := s.Size()
	return sizeString(wh[0], wh[1])
}

// DynamicSize is a Size carried at runtime.
//
// There is no way back from a DynamicSize to a StaticSize.
type DynamicSize struct {
	width  int
	height int
}

// Dynamic returns the DynamicSize of a width x height stamp.
//
// It panics if either dimension is negative.
func Dynamic(width, height int) DynamicSize {
	if width < 0 || height < 0 {
		panic("stockbook: invalid size " + sizeString(width, height))
	}
	return DynamicSize{width: width, height: height}
}

// Size implements Size.
func (s DynamicSize) Size() [2]int {
	return [2]int{s.width, s.height}
}

// String implements fmt.Stringer.
func (s DynamicSize) String() string {
	return sizeString(s.width, s.height)
}
