package endpoint

import (
	"fmt"
	"strings"
)

// MaxDepth is the maximum number of path segments a single sequence may
// have. Real hierarchies are shallow; the cap keeps tree traversal bounded
// on pathological configurations.
const MaxDepth = 32

// Sequence is an ordered, non-empty list of path segments derived from one
// declaration, with the declaration's options carried side-band.
type Sequence struct {
	Segments []string
	Options  *Options
}

// Path returns the canonical slash-joined form of the sequence.
func (s Sequence) Path() string { return strings.Join(s.Segments, "/") }

// Normalized is the output of Normalize: the ordered sequences to merge and
// the resolved version alias set.
type Normalized struct {
	Sequences []Sequence
	Versions  []string
}

// Normalize resolves raw declarations into canonical segment sequences.
//
// Version aliases are collected first (the global prefixes followed by each
// configured declaration's Versions, in declaration order, deduplicated)
// so that every alias applies to every simple declaration regardless of
// where it was discovered. Each simple declaration then yields its
// un-prefixed sequence plus one alias-prefixed replica per alias.
// Declarations that resolve to no segments are dropped.
func Normalize(decls []Declaration, versions []string) (*Normalized, error) {
	aliases := dedup(versions, nil)
	for _, d := range decls {
		if d.kind == KindConfigured && d.opts != nil {
			aliases = dedup(d.opts.Versions, aliases)
		}
	}

	n := &Normalized{Versions: aliases}
	for _, d := range decls {
		segs := Split(d.path)
		if len(segs) == 0 {
			continue
		}
		if len(segs) > MaxDepth {
			return nil, fmt.Errorf("endpoint: %q exceeds maximum depth of %d segments", d.path, MaxDepth)
		}

		switch d.kind {
		case KindSimple:
			if len(aliases) > 0 && len(segs)+1 > MaxDepth {
				return nil, fmt.Errorf("endpoint: versioned replica of %q exceeds maximum depth of %d segments", d.path, MaxDepth)
			}
			n.Sequences = append(n.Sequences, Sequence{Segments: segs})
			for _, alias := range aliases {
				prefixed := make([]string, 0, len(segs)+1)
				prefixed = append(prefixed, alias)
				prefixed = append(prefixed, segs...)
				n.Sequences = append(n.Sequences, Sequence{Segments: prefixed})
			}
		case KindConfigured:
			n.Sequences = append(n.Sequences, Sequence{Segments: segs, Options: d.opts})
		}
	}
	return n, nil
}

// Split breaks a declared path into segments. Slash is the sole delimiter
// and empty segments are discarded, so "/users/" and "users" are equivalent.
func Split(path string) []string {
	parts := strings.Split(path, "/")
	segs := parts[:0]
	for _, p := range parts {
		if p != "" {
			segs = append(segs, p)
		}
	}
	if len(segs) == 0 {
		return nil
	}
	return segs
}

// dedup appends the members of in that are not already present in out.
func dedup(in, out []string) []string {
	for _, v := range in {
		if v == "" {
			continue
		}
		seen := false
		for _, existing := range out {
			if existing == v {
				seen = true
				break
			}
		}
		if !seen {
			out = append(out, v)
		}
	}
	return out
}
