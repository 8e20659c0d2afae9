// Package template compiles control-sequence template strings into a
// fixed-layout form that can be re-expanded with live argument values
// without allocating.
//
// Template syntax:
//
//	%%        literal '%'
//	%1 .. %8  substitution of argument 0..7
//
// A '%' followed by any other byte (including '0', '9', or end of input)
// is a malformed escape. Every other byte is copied verbatim.
package template

import (
	"fmt"

	"github.com/hnimtadd/termseq/format"
)

const (
	// LengthMax bounds the byte length of a fully expanded sequence.
	// Compilation reserves worst-case digit space per slot against this
	// bound, so expansion never has to check it.
	LengthMax = 96

	// ArgsMax is the most substitutions one template may contain.
	ArgsMax = 8

	// argIndexSentinel terminates the slot list; its PreLen is the
	// trailing literal run.
	argIndexSentinel = 0xff
)

var (
	ErrMalformedEscape  = fmt.Errorf("template: malformed %% escape")
	ErrBadArgumentIndex = fmt.Errorf("template: argument index out of range")
	ErrTooManyArguments = fmt.Errorf("template: too many arguments")
	ErrSequenceTooLong  = fmt.Errorf("template: expanded sequence too long")
)

// slot records one substitution: the literal bytes preceding it and the
// index into the caller's argument array it expands.
type slot struct {
	preLen   uint8
	argIndex uint8
}

// Compiled is an immutable compiled template. The zero value expands to
// nothing. Compiled is a value type: assignment is a deep copy.
type Compiled struct {
	lit    [LengthMax]byte
	slots  [ArgsMax + 1]slot
	nSlots uint8
}

// Compile parses raw against the declared argument count and per-argument
// digit bound, returning the compiled template or a classified error.
// nArgs must be at most ArgsMax; maxDigits is 3 for narrow arguments and
// 4 for wide ones. Compile has no side effects on failure.
func Compile(raw string, nArgs int, maxDigits int) (Compiled, error) {
	var c Compiled
	c.slots[0].argIndex = argIndexSentinel

	preLen := 0
	lit := 0
	k := 0

	for i := 0; i < len(raw); i++ {
		b := raw[i]
		if b != '%' {
			if lit == LengthMax {
				return Compiled{}, ErrSequenceTooLong
			}
			c.lit[lit] = b
			lit++
			preLen++
			continue
		}

		i++
		if i == len(raw) {
			return Compiled{}, ErrMalformedEscape
		}
		b = raw[i]
		switch {
		case b == '%':
			if lit == LengthMax {
				return Compiled{}, ErrSequenceTooLong
			}
			c.lit[lit] = '%'
			lit++
			preLen++
		case b >= '1' && b <= '8':
			if k == ArgsMax {
				return Compiled{}, ErrTooManyArguments
			}
			idx := int(b - '1')
			if idx >= nArgs {
				return Compiled{}, ErrBadArgumentIndex
			}
			c.slots[k] = slot{preLen: uint8(preLen), argIndex: uint8(idx)}
			preLen = 0
			k++
		default:
			return Compiled{}, ErrMalformedEscape
		}
	}

	// One spare byte on top of the per-slot digit reservation keeps the
	// expansion bound strict even for the empty template.
	if lit+k*maxDigits+1 > LengthMax {
		return Compiled{}, ErrSequenceTooLong
	}

	c.slots[k] = slot{preLen: uint8(preLen), argIndex: argIndexSentinel}
	c.nSlots = uint8(k)
	return c, nil
}

// NumSlots reports how many substitutions the template performs.
func (c *Compiled) NumSlots() int { return int(c.nSlots) }

// Expand appends the expansion of the template to dst and returns the
// extended slice: each slot's preceding literal run, then args[slot] in
// decimal per the width class, then the trailing literal run.
//
// Argument values are not range-checked; the compile-time reservation
// bounds the output length regardless, but out-of-range values produce
// wrong digits. Missing arguments (args shorter than the largest index
// the template references) render as 0.
func (c *Compiled) Expand(dst []byte, args []uint16, width format.Width) []byte {
	ofs := 0
	for i := 0; i < int(c.nSlots); i++ {
		s := c.slots[i]
		dst = append(dst, c.lit[ofs:ofs+int(s.preLen)]...)
		ofs += int(s.preLen)
		var v uint16
		if int(s.argIndex) < len(args) {
			v = args[s.argIndex]
		}
		dst = width.AppendDec(dst, v)
	}
	tail := c.slots[c.nSlots].preLen
	return append(dst, c.lit[ofs:ofs+int(tail)]...)
}
