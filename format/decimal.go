// Package format renders small unsigned integers as ASCII decimal digits
// directly into caller-supplied buffers. It exists so the sequence emitter
// can format arguments on a per-cell hot path without strconv or fmt.
package format

// Width classifies a sequence argument by the value range its catalog
// entry permits, which bounds the digit count reserved at compile time.
type Width uint8

const (
	// WidthNarrow covers values 0..255, at most 3 digits.
	WidthNarrow Width = iota
	// WidthWide covers values 0..9999, at most 4 digits.
	WidthWide
)

// MaxDigits returns the digit count reserved per argument of this width.
func (w Width) MaxDigits() int {
	if w == WidthNarrow {
		return 3
	}
	return 4
}

// AppendDec appends the decimal rendering of v according to the width
// class. Values above the class bound are masked or truncated; the result
// is then meaningless but never longer than MaxDigits.
func (w Width) AppendDec(dst []byte, v uint16) []byte {
	if w == WidthNarrow {
		return AppendDecU8(dst, uint8(v))
	}
	return AppendDec0To9999(dst, v)
}

// dec3 holds the pre-rendered digits of every uint8 value.
type dec3 struct {
	digits [3]byte
	n      uint8
}

var decU8 = func() (table [256]dec3) {
	for i := range table {
		e := &table[i]
		if i >= 100 {
			e.digits[e.n] = byte('0' + i/100)
			e.n++
		}
		if i >= 10 {
			e.digits[e.n] = byte('0' + (i/10)%10)
			e.n++
		}
		e.digits[e.n] = byte('0' + i%10)
		e.n++
	}
	return table
}()

// decPairs holds "00".."99" back to back.
var decPairs = func() (table [200]byte) {
	for i := 0; i < 100; i++ {
		table[i*2] = byte('0' + i/10)
		table[i*2+1] = byte('0' + i%10)
	}
	return table
}()

// AppendDecU8 appends the decimal rendering of v (1-3 digits, no leading
// zeros) and returns the extended slice.
func AppendDecU8(dst []byte, v uint8) []byte {
	e := &decU8[v]
	return append(dst, e.digits[:e.n]...)
}

// AppendDec0To9999 appends the decimal rendering of v (1-4 digits, no
// leading zeros) and returns the extended slice. v must be at most 9999;
// larger values render with the same digit bound but wrong digits.
func AppendDec0To9999(dst []byte, v uint16) []byte {
	if v < 100 {
		return AppendDecU8(dst, uint8(v))
	}
	hi := v / 100
	lo := v % 100
	if hi >= 100 {
		hi = 99 // keeps the table index in range for out-of-contract values
	}
	if hi >= 10 {
		dst = append(dst, decPairs[hi*2], decPairs[hi*2+1])
	} else {
		dst = append(dst, decPairs[hi*2+1])
	}
	return append(dst, decPairs[lo*2], decPairs[lo*2+1])
}
