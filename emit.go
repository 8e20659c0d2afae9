package termseq

import (
	"github.com/hnimtadd/termseq/seq"
)

// Emit appends the expansion of the stored template for s, with args
// substituted in decimal, and returns the extended slice. If no template
// is stored for s, Emit appends nothing; callers may probe optional
// capabilities unconditionally.
//
// Emit performs no synchronization and allocates nothing when dst has
// capacity for the expansion (at most template.LengthMax bytes). Argument
// values are not range-checked: the compile-time reservation bounds the
// output length, but values above the kind's width class produce wrong
// digits. Emit never applies catalog transforms; kinds that need one
// (the 16-color setters) have typed wrappers below.
func (t *TermInfo) Emit(dst []byte, s seq.Kind, args ...uint16) []byte {
	return t.emitSeq(dst, s, args)
}

func (t *TermInfo) emitSeq(dst []byte, s seq.Kind, args []uint16) []byte {
	if !t.HaveSeq(s) {
		return dst
	}
	return t.compiled[s].Expand(dst, args, s.Meta().Width)
}

func (t *TermInfo) emit0(dst []byte, s seq.Kind) []byte {
	return t.emitSeq(dst, s, nil)
}

func (t *TermInfo) emit1(dst []byte, s seq.Kind, a0 uint16) []byte {
	args := [1]uint16{a0}
	return t.emitSeq(dst, s, args[:])
}

func (t *TermInfo) emit2(dst []byte, s seq.Kind, a0, a1 uint16) []byte {
	args := [2]uint16{a0, a1}
	return t.emitSeq(dst, s, args[:])
}

func (t *TermInfo) emit3(dst []byte, s seq.Kind, a0, a1, a2 uint16) []byte {
	args := [3]uint16{a0, a1, a2}
	return t.emitSeq(dst, s, args[:])
}

// Typed wrappers, one per catalog kind a renderer drives on its hot path.
// The 16-color wrappers apply the catalog's argument transform; everything
// else forwards values unchanged.

func (t *TermInfo) EmitResetTerminalSoft(dst []byte) []byte { return t.emit0(dst, seq.ResetTerminalSoft) }
func (t *TermInfo) EmitResetTerminalHard(dst []byte) []byte { return t.emit0(dst, seq.ResetTerminalHard) }
func (t *TermInfo) EmitResetAttributes(dst []byte) []byte   { return t.emit0(dst, seq.ResetAttributes) }
func (t *TermInfo) EmitClear(dst []byte) []byte             { return t.emit0(dst, seq.Clear) }
func (t *TermInfo) EmitInvertColors(dst []byte) []byte      { return t.emit0(dst, seq.InvertColors) }
func (t *TermInfo) EmitShowCursor(dst []byte) []byte        { return t.emit0(dst, seq.ShowCursor) }
func (t *TermInfo) EmitHideCursor(dst []byte) []byte        { return t.emit0(dst, seq.HideCursor) }

func (t *TermInfo) EmitCursorToTopLeft(dst []byte) []byte    { return t.emit0(dst, seq.CursorToTopLeft) }
func (t *TermInfo) EmitCursorToBottomLeft(dst []byte) []byte { return t.emit0(dst, seq.CursorToBottomLeft) }

// EmitCursorToPos moves the cursor to the 1-based row and column.
func (t *TermInfo) EmitCursorToPos(dst []byte, row, col uint16) []byte {
	return t.emit2(dst, seq.CursorToPos, row, col)
}

func (t *TermInfo) EmitCursorUp1(dst []byte) []byte    { return t.emit0(dst, seq.CursorUp1) }
func (t *TermInfo) EmitCursorDown1(dst []byte) []byte  { return t.emit0(dst, seq.CursorDown1) }
func (t *TermInfo) EmitCursorLeft1(dst []byte) []byte  { return t.emit0(dst, seq.CursorLeft1) }
func (t *TermInfo) EmitCursorRight1(dst []byte) []byte { return t.emit0(dst, seq.CursorRight1) }

func (t *TermInfo) EmitCursorUp(dst []byte, n uint16) []byte    { return t.emit1(dst, seq.CursorUp, n) }
func (t *TermInfo) EmitCursorDown(dst []byte, n uint16) []byte  { return t.emit1(dst, seq.CursorDown, n) }
func (t *TermInfo) EmitCursorLeft(dst []byte, n uint16) []byte  { return t.emit1(dst, seq.CursorLeft, n) }
func (t *TermInfo) EmitCursorRight(dst []byte, n uint16) []byte { return t.emit1(dst, seq.CursorRight, n) }

func (t *TermInfo) EmitCursorUpScroll(dst []byte) []byte   { return t.emit0(dst, seq.CursorUpScroll) }
func (t *TermInfo) EmitCursorDownScroll(dst []byte) []byte { return t.emit0(dst, seq.CursorDownScroll) }

func (t *TermInfo) EmitInsertCells(dst []byte, n uint16) []byte { return t.emit1(dst, seq.InsertCells, n) }
func (t *TermInfo) EmitDeleteCells(dst []byte, n uint16) []byte { return t.emit1(dst, seq.DeleteCells, n) }
func (t *TermInfo) EmitInsertRows(dst []byte, n uint16) []byte  { return t.emit1(dst, seq.InsertRows, n) }
func (t *TermInfo) EmitDeleteRows(dst []byte, n uint16) []byte  { return t.emit1(dst, seq.DeleteRows, n) }

func (t *TermInfo) EmitEnableInsert(dst []byte) []byte  { return t.emit0(dst, seq.EnableInsert) }
func (t *TermInfo) EmitDisableInsert(dst []byte) []byte { return t.emit0(dst, seq.DisableInsert) }
func (t *TermInfo) EmitEnableWrap(dst []byte) []byte    { return t.emit0(dst, seq.EnableWrap) }
func (t *TermInfo) EmitDisableWrap(dst []byte) []byte   { return t.emit0(dst, seq.DisableWrap) }
func (t *TermInfo) EmitEnableBold(dst []byte) []byte    { return t.emit0(dst, seq.EnableBold) }

// EmitSetColorFg16 selects one of the 16 base foreground colors. The pen
// index 0-15 is remapped to its SGR code before formatting.
func (t *TermInfo) EmitSetColorFg16(dst []byte, pen uint8) []byte {
	return t.emit1(dst, seq.SetColorFg16, uint16(seq.Fg16(pen)))
}

// EmitSetColorBg16 selects one of the 16 base background colors.
func (t *TermInfo) EmitSetColorBg16(dst []byte, pen uint8) []byte {
	return t.emit1(dst, seq.SetColorBg16, uint16(seq.Bg16(pen)))
}

// EmitSetColorFgBg16 selects base foreground and background colors in one
// sequence.
func (t *TermInfo) EmitSetColorFgBg16(dst []byte, fg, bg uint8) []byte {
	return t.emit2(dst, seq.SetColorFgBg16, uint16(seq.Fg16(fg)), uint16(seq.Bg16(bg)))
}

func (t *TermInfo) EmitSetColorFg256(dst []byte, pen uint8) []byte {
	return t.emit1(dst, seq.SetColorFg256, uint16(pen))
}

func (t *TermInfo) EmitSetColorBg256(dst []byte, pen uint8) []byte {
	return t.emit1(dst, seq.SetColorBg256, uint16(pen))
}

func (t *TermInfo) EmitSetColorFgBg256(dst []byte, fg, bg uint8) []byte {
	return t.emit2(dst, seq.SetColorFgBg256, uint16(fg), uint16(bg))
}

func (t *TermInfo) EmitSetColorFgDirect(dst []byte, r, g, b uint8) []byte {
	return t.emit3(dst, seq.SetColorFgDirect, uint16(r), uint16(g), uint16(b))
}

func (t *TermInfo) EmitSetColorBgDirect(dst []byte, r, g, b uint8) []byte {
	return t.emit3(dst, seq.SetColorBgDirect, uint16(r), uint16(g), uint16(b))
}

func (t *TermInfo) EmitSetColorFgBgDirect(dst []byte, fr, fg, fb, br, bg, bb uint8) []byte {
	args := [6]uint16{uint16(fr), uint16(fg), uint16(fb), uint16(br), uint16(bg), uint16(bb)}
	return t.emitSeq(dst, seq.SetColorFgBgDirect, args[:])
}

func (t *TermInfo) EmitResetColorFg(dst []byte) []byte   { return t.emit0(dst, seq.ResetColorFg) }
func (t *TermInfo) EmitResetColorBg(dst []byte) []byte   { return t.emit0(dst, seq.ResetColorBg) }
func (t *TermInfo) EmitResetColorFgBg(dst []byte) []byte { return t.emit0(dst, seq.ResetColorFgBg) }

// EmitRepeatChar repeats the preceding character n times.
func (t *TermInfo) EmitRepeatChar(dst []byte, n uint16) []byte {
	return t.emit1(dst, seq.RepeatChar, n)
}

// EmitBeginSixels starts a sixel image with the given raster attributes.
func (t *TermInfo) EmitBeginSixels(dst []byte, p1, p2, p3 uint16) []byte {
	return t.emit3(dst, seq.BeginSixels, p1, p2, p3)
}

func (t *TermInfo) EmitEndSixels(dst []byte) []byte { return t.emit0(dst, seq.EndSixels) }

func (t *TermInfo) EmitEnableSixelScrolling(dst []byte) []byte {
	return t.emit0(dst, seq.EnableSixelScrolling)
}

func (t *TermInfo) EmitDisableSixelScrolling(dst []byte) []byte {
	return t.emit0(dst, seq.DisableSixelScrolling)
}
