// Package profile loads terminal profiles: named sets of control-sequence
// templates keyed by catalog kind name, either from YAML documents or from
// the built-in defaults.
package profile

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/hnimtadd/termseq"
	"github.com/hnimtadd/termseq/seq"
)

// Profile is one terminal profile document:
//
//	name: xterm-256color
//	seqs:
//	  cursor-to-pos: "\e[%1;%2H"
//	  set-color-fg-256: "\e[38;5;%1m"
type Profile struct {
	Name string            `yaml:"name"`
	Seqs map[string]string `yaml:"seqs"`
}

// Load decodes a single profile document from r.
func Load(r io.Reader) (*Profile, error) {
	var p Profile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("profile: decode: %w", err)
	}
	if p.Name == "" {
		return nil, fmt.Errorf("profile: missing name")
	}
	return &p, nil
}

// Apply compiles every template in the profile into t. The first unknown
// kind name or compile failure aborts with an error naming the offending
// entry; kinds applied before the failure remain set.
func (p *Profile) Apply(t *termseq.TermInfo) error {
	for name, tmpl := range p.Seqs {
		k, ok := seq.KindFromString(name)
		if !ok {
			return fmt.Errorf("profile %q: unknown sequence kind %q", p.Name, name)
		}
		if err := t.SetSeq(k, tmpl); err != nil {
			return fmt.Errorf("profile %q: %w", p.Name, err)
		}
	}
	return nil
}

// NewTermInfo builds a fresh store holding the profile's sequences.
func (p *Profile) NewTermInfo(opts termseq.Options) (*termseq.TermInfo, error) {
	t := termseq.New(opts)
	if err := p.Apply(t); err != nil {
		return nil, err
	}
	return t, nil
}

// XTerm256 is the built-in profile for xterm-compatible terminals with
// 256-color and direct-color support.
func XTerm256() *Profile {
	return &Profile{
		Name: "xterm-256color",
		Seqs: map[string]string{
			"reset-terminal-soft":     "\x1b!p",
			"reset-terminal-hard":     "\x1bc",
			"reset-attributes":        "\x1b[0m",
			"clear":                   "\x1b[2J",
			"invert-colors":           "\x1b[7m",
			"cursor-to-top-left":      "\x1b[H",
			"cursor-to-bottom-left":   "\x1b[9999;1H",
			"cursor-to-pos":           "\x1b[%1;%2H",
			"cursor-up-1":             "\x1b[A",
			"cursor-down-1":           "\x1b[B",
			"cursor-left-1":           "\x1b[D",
			"cursor-right-1":          "\x1b[C",
			"cursor-up":               "\x1b[%1A",
			"cursor-down":             "\x1b[%1B",
			"cursor-left":             "\x1b[%1D",
			"cursor-right":            "\x1b[%1C",
			"cursor-up-scroll":        "\x1bM",
			"cursor-down-scroll":      "\x1bD",
			"show-cursor":             "\x1b[?25h",
			"hide-cursor":             "\x1b[?25l",
			"insert-cells":            "\x1b[%1@",
			"delete-cells":            "\x1b[%1P",
			"insert-rows":             "\x1b[%1L",
			"delete-rows":             "\x1b[%1M",
			"enable-insert":           "\x1b[4h",
			"disable-insert":          "\x1b[4l",
			"enable-wrap":             "\x1b[?7h",
			"disable-wrap":            "\x1b[?7l",
			"enable-bold":             "\x1b[1m",
			"reset-color-fg":          "\x1b[39m",
			"reset-color-bg":          "\x1b[49m",
			"reset-color-fgbg":        "\x1b[39;49m",
			"set-color-fg-16":         "\x1b[%1m",
			"set-color-bg-16":         "\x1b[%1m",
			"set-color-fgbg-16":       "\x1b[%1;%2m",
			"set-color-fg-256":        "\x1b[38;5;%1m",
			"set-color-bg-256":        "\x1b[48;5;%1m",
			"set-color-fgbg-256":      "\x1b[38;5;%1;48;5;%2m",
			"set-color-fg-direct":     "\x1b[38;2;%1;%2;%3m",
			"set-color-bg-direct":     "\x1b[48;2;%1;%2;%3m",
			"set-color-fgbg-direct":   "\x1b[38;2;%1;%2;%3;48;2;%4;%5;%6m",
			"repeat-char":             "\x1b[%1b",
			"begin-sixels":            "\x1bP%1;%2;%3q",
			"end-sixels":              "\x1b\\",
			"enable-sixel-scrolling":  "\x1b[?80l",
			"disable-sixel-scrolling": "\x1b[?80h",
		},
	}
}

// Fallback is the built-in minimal profile: motion and attribute resets
// every ECMA-48 terminal understands, no color or graphics.
func Fallback() *Profile {
	return &Profile{
		Name: "fallback",
		Seqs: map[string]string{
			"reset-attributes":      "\x1b[0m",
			"clear":                 "\x1b[2J",
			"invert-colors":         "\x1b[7m",
			"cursor-to-top-left":    "\x1b[H",
			"cursor-to-bottom-left": "\x1b[9999;1H",
			"cursor-to-pos":         "\x1b[%1;%2H",
			"cursor-up-1":           "\x1b[A",
			"cursor-down-1":         "\x1b[B",
			"cursor-left-1":         "\x1b[D",
			"cursor-right-1":        "\x1b[C",
			"cursor-up":             "\x1b[%1A",
			"cursor-down":           "\x1b[%1B",
			"cursor-left":           "\x1b[%1D",
			"cursor-right":          "\x1b[%1C",
			"enable-bold":           "\x1b[1m",
		},
	}
}
