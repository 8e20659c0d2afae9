package termseq

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hnimtadd/termseq/seq"
	"github.com/hnimtadd/termseq/template"
)

func TestNewIsBlank(t *testing.T) {
	ti := New(Options{})
	defer ti.Unref()

	for k := seq.Kind(0); k < seq.KindMax; k++ {
		assert.False(t, ti.HaveSeq(k), "kind %s", k)
		_, ok := ti.GetSeq(k)
		assert.False(t, ok, "kind %s", k)
	}
}

func TestSetSeqStoresRawString(t *testing.T) {
	ti := New(Options{})
	defer ti.Unref()

	require.NoError(t, ti.SetSeq(seq.CursorToPos, "\x1b[%1;%2H"))

	assert.True(t, ti.HaveSeq(seq.CursorToPos))
	raw, ok := ti.GetSeq(seq.CursorToPos)
	assert.True(t, ok)
	assert.Equal(t, "\x1b[%1;%2H", raw)
}

func TestSetSeqFailureLeavesStoreUntouched(t *testing.T) {
	tests := []struct {
		name     string
		kind     seq.Kind
		bad      string
		expected error
	}{
		{name: "malformed escape", kind: seq.CursorUp, bad: "\x1b[%9A", expected: template.ErrMalformedEscape},
		{name: "bad argument index", kind: seq.CursorUp, bad: "\x1b[%2A", expected: template.ErrBadArgumentIndex},
		{name: "too many arguments", kind: seq.SetColorFgBgDirect, bad: "%1%2%3%4%5%6%1%2%3", expected: template.ErrTooManyArguments},
		{name: "sequence too long", kind: seq.CursorUp, bad: strings.Repeat("y", template.LengthMax) + "%1", expected: template.ErrSequenceTooLong},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ti := New(Options{})
			defer ti.Unref()

			good := "\x1b[%1A"
			if tt.kind == seq.SetColorFgBgDirect {
				good = "\x1b[38;2;%1;%2;%3;48;2;%4;%5;%6m"
			}
			require.NoError(t, ti.SetSeq(tt.kind, good))

			err := ti.SetSeq(tt.kind, tt.bad)
			assert.ErrorIs(t, err, tt.expected)
			assert.ErrorContains(t, err, tt.kind.String())

			// Prior state must be intact, raw string and expansion alike.
			raw, ok := ti.GetSeq(tt.kind)
			assert.True(t, ok)
			assert.Equal(t, good, raw)
		})
	}
}

func TestClearSeq(t *testing.T) {
	ti := New(Options{})
	defer ti.Unref()

	require.NoError(t, ti.SetSeq(seq.CursorUp, "A%1B"))
	require.True(t, ti.HaveSeq(seq.CursorUp))

	ti.ClearSeq(seq.CursorUp)

	assert.False(t, ti.HaveSeq(seq.CursorUp))
	_, ok := ti.GetSeq(seq.CursorUp)
	assert.False(t, ok)
	assert.Empty(t, ti.Emit(nil, seq.CursorUp, 5))
}

func TestCopyIsIndependent(t *testing.T) {
	orig := New(Options{})
	defer orig.Unref()

	require.NoError(t, orig.SetSeq(seq.Clear, "\x1b[2J"))
	require.NoError(t, orig.SetSeq(seq.CursorToPos, "\x1b[%1;%2H"))

	dup := orig.Copy()
	defer dup.Unref()

	for k := seq.Kind(0); k < seq.KindMax; k++ {
		assert.Equal(t, orig.HaveSeq(k), dup.HaveSeq(k), "kind %s", k)
		origRaw, _ := orig.GetSeq(k)
		dupRaw, _ := dup.GetSeq(k)
		assert.Equal(t, origRaw, dupRaw, "kind %s", k)
	}
	assert.True(t, orig.Equal(dup))

	// Mutating the copy must not touch the original, and vice versa.
	require.NoError(t, dup.SetSeq(seq.Clear, "\x1b[3J"))
	origRaw, _ := orig.GetSeq(seq.Clear)
	assert.Equal(t, "\x1b[2J", origRaw)

	orig.ClearSeq(seq.CursorToPos)
	assert.True(t, dup.HaveSeq(seq.CursorToPos))
	assert.False(t, orig.Equal(dup))
}

func TestRefUnref(t *testing.T) {
	ti := New(Options{})
	ti.Ref()
	ti.Unref()

	// Still alive after releasing the added reference.
	require.NoError(t, ti.SetSeq(seq.Clear, "\x1b[2J"))
	ti.Unref()
}

func TestUnrefPastZeroPanics(t *testing.T) {
	ti := New(Options{})
	ti.Unref()
	assert.Panics(t, func() { ti.Unref() })
}

func TestRefAfterReleasePanics(t *testing.T) {
	ti := New(Options{})
	ti.Unref()
	assert.Panics(t, func() { ti.Ref() })
}

func TestSetSeqAfterReleasePanics(t *testing.T) {
	ti := New(Options{})
	ti.Unref()
	assert.Panics(t, func() { ti.SetSeq(seq.Clear, "\x1b[2J") })
}

func TestFingerprint(t *testing.T) {
	a := New(Options{})
	defer a.Unref()
	b := New(Options{})
	defer b.Unref()

	assert.Equal(t, a.Fingerprint(), b.Fingerprint())

	require.NoError(t, a.SetSeq(seq.Clear, "\x1b[2J"))
	assert.NotEqual(t, a.Fingerprint(), b.Fingerprint())

	require.NoError(t, b.SetSeq(seq.Clear, "\x1b[2J"))
	assert.Equal(t, a.Fingerprint(), b.Fingerprint())

	// Same template under a different kind is a different store.
	c := New(Options{})
	defer c.Unref()
	require.NoError(t, c.SetSeq(seq.ResetAttributes, "\x1b[2J"))
	assert.NotEqual(t, a.Fingerprint(), c.Fingerprint())
}

func TestWriteSeqs(t *testing.T) {
	ti := New(Options{})
	defer ti.Unref()

	require.NoError(t, ti.SetSeq(seq.Clear, "\x1b[2J"))
	require.NoError(t, ti.SetSeq(seq.CursorToPos, "\x1b[%1;%2H"))

	var sb strings.Builder
	require.NoError(t, ti.WriteSeqs(&sb))

	lines := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
	assert.Len(t, lines, 2)
	assert.Contains(t, sb.String(), "clear")
	assert.Contains(t, sb.String(), "cursor-to-pos")
	assert.Contains(t, sb.String(), `"\x1b[%1;%2H"`)
}
