package profile

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hnimtadd/termseq"
	"github.com/hnimtadd/termseq/seq"
	"github.com/hnimtadd/termseq/template"
)

const sampleDoc = `
name: test-term
seqs:
  clear: "\e[2J"
  cursor-to-pos: "\e[%1;%2H"
  set-color-fg-256: "\e[38;5;%1m"
`

func TestLoad(t *testing.T) {
	p, err := Load(strings.NewReader(sampleDoc))
	require.NoError(t, err)

	expected := &Profile{
		Name: "test-term",
		Seqs: map[string]string{
			"clear":            "\x1b[2J",
			"cursor-to-pos":    "\x1b[%1;%2H",
			"set-color-fg-256": "\x1b[38;5;%1m",
		},
	}
	if diff := cmp.Diff(expected, p); diff != "" {
		t.Errorf("profile mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadRejectsMissingName(t *testing.T) {
	_, err := Load(strings.NewReader(`seqs: {clear: "\e[2J"}`))
	assert.ErrorContains(t, err, "missing name")
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	_, err := Load(strings.NewReader("name: x\ncolors: 256\n"))
	assert.Error(t, err)
}

func TestApply(t *testing.T) {
	p, err := Load(strings.NewReader(sampleDoc))
	require.NoError(t, err)

	ti, err := p.NewTermInfo(termseq.Options{})
	require.NoError(t, err)
	defer ti.Unref()

	assert.True(t, ti.HaveSeq(seq.Clear))
	assert.True(t, ti.HaveSeq(seq.CursorToPos))
	assert.False(t, ti.HaveSeq(seq.HideCursor))

	assert.Equal(t, "\x1b[24;80H", string(ti.EmitCursorToPos(nil, 24, 80)))
}

func TestApplyUnknownKind(t *testing.T) {
	p := &Profile{Name: "bad", Seqs: map[string]string{"warp-drive": "\x1b[w"}}

	ti := termseq.New(termseq.Options{})
	defer ti.Unref()

	err := p.Apply(ti)
	assert.ErrorContains(t, err, `unknown sequence kind "warp-drive"`)
	assert.ErrorContains(t, err, `"bad"`)
}

func TestApplyCompileFailure(t *testing.T) {
	p := &Profile{Name: "bad", Seqs: map[string]string{"cursor-up": "\x1b[%9A"}}

	ti := termseq.New(termseq.Options{})
	defer ti.Unref()

	err := p.Apply(ti)
	assert.ErrorIs(t, err, template.ErrMalformedEscape)
	assert.ErrorContains(t, err, "cursor-up")
}

func TestBuiltinProfilesApply(t *testing.T) {
	for _, p := range []*Profile{XTerm256(), Fallback()} {
		t.Run(p.Name, func(t *testing.T) {
			ti, err := p.NewTermInfo(termseq.Options{})
			require.NoError(t, err)
			defer ti.Unref()

			for name := range p.Seqs {
				k, ok := seq.KindFromString(name)
				require.True(t, ok, "kind %s", name)
				assert.True(t, ti.HaveSeq(k), "kind %s", name)
			}
		})
	}
}

func TestXTerm256Emits(t *testing.T) {
	ti, err := XTerm256().NewTermInfo(termseq.Options{})
	require.NoError(t, err)
	defer ti.Unref()

	assert.Equal(t, "\x1b[2J", string(ti.EmitClear(nil)))
	assert.Equal(t, "\x1b[12;34H", string(ti.EmitCursorToPos(nil, 12, 34)))
	assert.Equal(t, "\x1b[97m", string(ti.EmitSetColorFg16(nil, 15)))
	assert.Equal(t, "\x1b[38;2;10;20;30m", string(ti.EmitSetColorFgDirect(nil, 10, 20, 30)))
}
