// Package seq is the static catalog of control-sequence kinds: the closed
// set of sequences a terminal profile may define, with per-kind argument
// metadata consumed by the template compiler and the emitter.
package seq

import "github.com/hnimtadd/termseq/format"

// Kind identifies one catalog-defined control sequence.
type Kind uint8

const (
	ResetTerminalSoft Kind = iota
	ResetTerminalHard
	ResetAttributes
	Clear
	InvertColors
	CursorToTopLeft
	CursorToBottomLeft
	CursorToPos
	CursorUp1
	CursorDown1
	CursorLeft1
	CursorRight1
	CursorUp
	CursorDown
	CursorLeft
	CursorRight
	CursorUpScroll
	CursorDownScroll
	ShowCursor
	HideCursor
	InsertCells
	DeleteCells
	InsertRows
	DeleteRows
	EnableInsert
	DisableInsert
	EnableWrap
	DisableWrap
	EnableBold
	ResetColorFg
	ResetColorBg
	ResetColorFgBg
	SetColorFg16
	SetColorBg16
	SetColorFgBg16
	SetColorFg256
	SetColorBg256
	SetColorFgBg256
	SetColorFgDirect
	SetColorBgDirect
	SetColorFgBgDirect
	RepeatChar
	BeginSixels
	EndSixels
	EnableSixelScrolling
	DisableSixelScrolling

	// KindMax bounds the catalog; it is not a valid Kind.
	KindMax
)

// Transform names the fixed argument remap a kind requires before
// formatting. Transforms are applied by the typed emit wrappers, never by
// the generic emitter.
type Transform uint8

const (
	TransformNone Transform = iota
	// TransformFg16 remaps a 16-color pen to its SGR foreground code.
	TransformFg16
	// TransformBg16 remaps a 16-color pen to its SGR background code.
	TransformBg16
	// TransformFgBg16 remaps argument 0 as foreground, argument 1 as
	// background.
	TransformFgBg16
)

// Meta is the immutable per-kind catalog entry.
type Meta struct {
	NArgs     int
	Width     format.Width
	Transform Transform
}

func entry(name string, nArgs int, width format.Width, tr Transform) meta {
	return meta{name: name, m: Meta{NArgs: nArgs, Width: width, Transform: tr}}
}

type meta struct {
	name string
	m    Meta
}

var catalog = [KindMax]meta{
	ResetTerminalSoft:     entry("reset-terminal-soft", 0, format.WidthNarrow, TransformNone),
	ResetTerminalHard:     entry("reset-terminal-hard", 0, format.WidthNarrow, TransformNone),
	ResetAttributes:       entry("reset-attributes", 0, format.WidthNarrow, TransformNone),
	Clear:                 entry("clear", 0, format.WidthNarrow, TransformNone),
	InvertColors:          entry("invert-colors", 0, format.WidthNarrow, TransformNone),
	CursorToTopLeft:       entry("cursor-to-top-left", 0, format.WidthNarrow, TransformNone),
	CursorToBottomLeft:    entry("cursor-to-bottom-left", 0, format.WidthNarrow, TransformNone),
	CursorToPos:           entry("cursor-to-pos", 2, format.WidthWide, TransformNone),
	CursorUp1:             entry("cursor-up-1", 0, format.WidthNarrow, TransformNone),
	CursorDown1:           entry("cursor-down-1", 0, format.WidthNarrow, TransformNone),
	CursorLeft1:           entry("cursor-left-1", 0, format.WidthNarrow, TransformNone),
	CursorRight1:          entry("cursor-right-1", 0, format.WidthNarrow, TransformNone),
	CursorUp:              entry("cursor-up", 1, format.WidthWide, TransformNone),
	CursorDown:            entry("cursor-down", 1, format.WidthWide, TransformNone),
	CursorLeft:            entry("cursor-left", 1, format.WidthWide, TransformNone),
	CursorRight:           entry("cursor-right", 1, format.WidthWide, TransformNone),
	CursorUpScroll:        entry("cursor-up-scroll", 0, format.WidthNarrow, TransformNone),
	CursorDownScroll:      entry("cursor-down-scroll", 0, format.WidthNarrow, TransformNone),
	ShowCursor:            entry("show-cursor", 0, format.WidthNarrow, TransformNone),
	HideCursor:            entry("hide-cursor", 0, format.WidthNarrow, TransformNone),
	InsertCells:           entry("insert-cells", 1, format.WidthWide, TransformNone),
	DeleteCells:           entry("delete-cells", 1, format.WidthWide, TransformNone),
	InsertRows:            entry("insert-rows", 1, format.WidthWide, TransformNone),
	DeleteRows:            entry("delete-rows", 1, format.WidthWide, TransformNone),
	EnableInsert:          entry("enable-insert", 0, format.WidthNarrow, TransformNone),
	DisableInsert:         entry("disable-insert", 0, format.WidthNarrow, TransformNone),
	EnableWrap:            entry("enable-wrap", 0, format.WidthNarrow, TransformNone),
	DisableWrap:           entry("disable-wrap", 0, format.WidthNarrow, TransformNone),
	EnableBold:            entry("enable-bold", 0, format.WidthNarrow, TransformNone),
	ResetColorFg:          entry("reset-color-fg", 0, format.WidthNarrow, TransformNone),
	ResetColorBg:          entry("reset-color-bg", 0, format.WidthNarrow, TransformNone),
	ResetColorFgBg:        entry("reset-color-fgbg", 0, format.WidthNarrow, TransformNone),
	SetColorFg16:          entry("set-color-fg-16", 1, format.WidthNarrow, TransformFg16),
	SetColorBg16:          entry("set-color-bg-16", 1, format.WidthNarrow, TransformBg16),
	SetColorFgBg16:        entry("set-color-fgbg-16", 2, format.WidthNarrow, TransformFgBg16),
	SetColorFg256:         entry("set-color-fg-256", 1, format.WidthNarrow, TransformNone),
	SetColorBg256:         entry("set-color-bg-256", 1, format.WidthNarrow, TransformNone),
	SetColorFgBg256:       entry("set-color-fgbg-256", 2, format.WidthNarrow, TransformNone),
	SetColorFgDirect:      entry("set-color-fg-direct", 3, format.WidthNarrow, TransformNone),
	SetColorBgDirect:      entry("set-color-bg-direct", 3, format.WidthNarrow, TransformNone),
	SetColorFgBgDirect:    entry("set-color-fgbg-direct", 6, format.WidthNarrow, TransformNone),
	RepeatChar:            entry("repeat-char", 1, format.WidthWide, TransformNone),
	BeginSixels:           entry("begin-sixels", 3, format.WidthWide, TransformNone),
	EndSixels:             entry("end-sixels", 0, format.WidthNarrow, TransformNone),
	EnableSixelScrolling:  entry("enable-sixel-scrolling", 0, format.WidthNarrow, TransformNone),
	DisableSixelScrolling: entry("disable-sixel-scrolling", 0, format.WidthNarrow, TransformNone),
}

var kindByName = func() map[string]Kind {
	m := make(map[string]Kind, KindMax)
	for k := Kind(0); k < KindMax; k++ {
		m[catalog[k].name] = k
	}
	return m
}()

// Valid reports whether k names a catalog entry.
func (k Kind) Valid() bool { return k < KindMax }

// Meta returns the catalog entry for k.
func (k Kind) Meta() Meta { return catalog[k].m }

func (k Kind) String() string {
	if !k.Valid() {
		return "invalid"
	}
	return catalog[k].name
}

// KindFromString resolves the kebab-case catalog name used in profile
// documents.
func KindFromString(name string) (Kind, bool) {
	k, ok := kindByName[name]
	return k, ok
}

// Fg16 remaps a 16-color pen index to its SGR foreground code: pens 0-7
// map to 30-37, pens 8-15 to the bright range 90-97.
func Fg16(pen uint8) uint8 {
	if pen < 8 {
		return pen + 30
	}
	return pen + (90 - 8)
}

// Bg16 remaps a 16-color pen index to its SGR background code: pens 0-7
// map to 40-47, pens 8-15 to the bright range 100-107.
func Bg16(pen uint8) uint8 {
	if pen < 8 {
		return pen + 40
	}
	return pen + (100 - 8)
}
