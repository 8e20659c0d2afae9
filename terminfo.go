// Package termseq stores compiled control-sequence templates for one
// terminal type and re-expands them with live argument values.
//
// A TermInfo holds at most one compiled template per catalog sequence
// kind. It is built and mutated during a single-threaded setup phase,
// then shared read-only by reference across emitters: only the reference
// count supports concurrent use. Emit must not race with SetSeq or
// ClearSeq on the same store.
package termseq

import (
	"fmt"
	"io"
	"sync/atomic"

	"github.com/mattn/go-runewidth"
	"github.com/mitchellh/hashstructure/v2"

	"github.com/hnimtadd/termseq/logger"
	"github.com/hnimtadd/termseq/seq"
	"github.com/hnimtadd/termseq/template"
	"github.com/hnimtadd/termseq/utils"
)

// TermInfo describes one terminal type as the set of control sequences it
// understands. The zero value is not usable; construct with New.
type TermInfo struct {
	refs atomic.Int32

	compiled [seq.KindMax]template.Compiled
	raw      [seq.KindMax]string
	have     [seq.KindMax]bool

	logger logger.Logger
}

type Options struct {
	Logger logger.Logger
}

// New returns a blank TermInfo with every kind unset and a reference
// count of one.
func New(opts Options) *TermInfo {
	t := &TermInfo{logger: opts.Logger}
	if t.logger == nil {
		t.logger = logger.Discard
	}
	t.refs.Store(1)
	return t
}

// Copy returns a deep copy of t: independent compiled entries, a fresh
// reference count of one, the same logger.
func (t *TermInfo) Copy() *TermInfo {
	t.assertLive("Copy")
	n := &TermInfo{
		compiled: t.compiled,
		raw:      t.raw,
		have:     t.have,
		logger:   t.logger,
	}
	n.refs.Store(1)
	return n
}

// Ref adds a reference to t.
func (t *TermInfo) Ref() *TermInfo {
	refs := t.refs.Add(1)
	utils.Assert(refs > 1, "termseq: Ref on a released TermInfo (refs=%d)", refs)
	return t
}

// Unref removes a reference from t, clearing the stored sequences when
// the last reference is released. Unref of a store whose count is already
// zero is a contract violation and panics.
func (t *TermInfo) Unref() {
	refs := t.refs.Add(-1)
	utils.Assert(refs >= 0, "termseq: Unref on a released TermInfo (refs=%d)", refs)
	if refs == 0 {
		for k := range t.raw {
			t.raw[k] = ""
			t.have[k] = false
			t.compiled[k] = template.Compiled{}
		}
	}
}

func (t *TermInfo) assertLive(op string) {
	utils.Assert(t.refs.Load() > 0, "termseq: %s on a released TermInfo", op)
}

// HaveSeq reports whether a compiled template is stored for s.
func (t *TermInfo) HaveSeq(s seq.Kind) bool {
	return s.Valid() && t.have[s]
}

// GetSeq returns the exact template string last accepted by SetSeq for s,
// or ok=false if the kind was cleared or never set.
func (t *TermInfo) GetSeq(s seq.Kind) (raw string, ok bool) {
	if !t.HaveSeq(s) {
		return "", false
	}
	return t.raw[s], true
}

// SetSeq compiles str against the catalog metadata for s and stores the
// result. On any compile failure the store is left exactly as it was and
// the classified error is returned.
func (t *TermInfo) SetSeq(s seq.Kind, str string) error {
	t.assertLive("SetSeq")
	utils.Assert(s.Valid(), "termseq: SetSeq with invalid kind %d", s)

	m := s.Meta()
	c, err := template.Compile(str, m.NArgs, m.Width.MaxDigits())
	if err != nil {
		t.logger.Warn("rejected sequence template",
			"kind", s.String(), "template", str, "err", err)
		return fmt.Errorf("termseq: %s: %w", s, err)
	}

	t.compiled[s] = c
	t.raw[s] = str
	t.have[s] = true
	t.logger.Debug("set sequence template", "kind", s.String(), "template", str)
	return nil
}

// ClearSeq removes the template for s; HaveSeq becomes false and Emit for
// that kind becomes a no-op.
func (t *TermInfo) ClearSeq(s seq.Kind) {
	t.assertLive("ClearSeq")
	utils.Assert(s.Valid(), "termseq: ClearSeq with invalid kind %d", s)

	t.compiled[s] = template.Compiled{}
	t.raw[s] = ""
	t.have[s] = false
	t.logger.Debug("cleared sequence template", "kind", s.String())
}

// Fingerprint hashes the set of stored raw templates. Two stores with the
// same fingerprint accept and emit the same sequences, which lets callers
// deduplicate equivalent terminal profiles.
func (t *TermInfo) Fingerprint() uint64 {
	snapshot := make(map[string]string, seq.KindMax)
	for k := seq.Kind(0); k < seq.KindMax; k++ {
		if t.have[k] {
			snapshot[k.String()] = t.raw[k]
		}
	}
	h, err := hashstructure.Hash(snapshot, hashstructure.FormatV2, nil)
	utils.Assert(err == nil, "termseq: failed to hash store: %v", err)
	return h
}

// Equal reports whether t and other store the same raw template for every
// kind.
func (t *TermInfo) Equal(other *TermInfo) bool {
	return t.Fingerprint() == other.Fingerprint()
}

// WriteSeqs writes a human-readable table of the stored sequences to w,
// one "name template" line per set kind, with the name column padded to
// the widest name's display width.
func (t *TermInfo) WriteSeqs(w io.Writer) error {
	nameWidth := 0
	for k := seq.Kind(0); k < seq.KindMax; k++ {
		if t.have[k] {
			nameWidth = max(nameWidth, runewidth.StringWidth(k.String()))
		}
	}
	for k := seq.Kind(0); k < seq.KindMax; k++ {
		if !t.have[k] {
			continue
		}
		name := runewidth.FillRight(k.String(), nameWidth)
		if _, err := fmt.Fprintf(w, "%s %q\n", name, t.raw[k]); err != nil {
			return err
		}
	}
	return nil
}
