// Package tagextract implements a streaming byte-level state machine that
// peels delimited inline regions (reasoning blocks, diff blocks) out of
// assistant text, correctly handling delimiters split across arbitrary
// chunk boundaries.
//
// There is a single concrete State type parameterized by Config — no class
// hierarchy, no virtual dispatch. A Thinking extractor and a Diff extractor
// are simply two States built with different Config.Field values.
package tagextract

import (
	"bytes"
	"errors"

	"github.com/lucidgate/streamcore/internal/delta"
)

// Field names which StreamDelta slot a State writes its extracted block
// content into.
type Field string

const (
	FieldThought Field = "thought"
	FieldDiff    Field = "diff"
)

// DefaultMaxBufferBytes is the buffer bound applied when Config.MaxBufferBytes
// is left at its zero value.
const DefaultMaxBufferBytes = 1 << 20 // 1 MiB

// Config configures one TagExtractor instance. OpenTag and CloseTag must be
// non-empty; Field selects which StreamDelta slot extracted block content
// is written to.
type Config struct {
	OpenTag        string
	CloseTag       string
	Field          Field
	IncludeMarkers bool
	MaxBufferBytes int
}

// ErrBufferOverflow is returned by Process when appending the next chunk
// would grow the internal buffer past MaxBufferBytes. It is fatal for the
// stream: the caller must not reuse the State afterward (§7 — "fatal for
// that stream; the extractor must not be reused").
var ErrBufferOverflow = errors.New("tagextract: buffer overflow")

// State is a single TagExtractor instance. It owns its buffer exclusively
// and is not safe for concurrent use — each logical stream owns one.
type State struct {
	cfg Config

	buf   []byte
	inBlk bool

	// openEmitted tracks, for the block currently open (if any), whether
	// the open marker has already been prepended to an emitted field
	// fragment. This lets IncludeMarkers wrap the open tag around the
	// first fragment of a block even when that block's content spans
	// several Process calls, instead of re-prepending it on every call.
	openEmitted bool

	openB, closeB []byte
	maxBuf        int
}

// New constructs a State from cfg. Both OpenTag and CloseTag must be
// non-empty. MaxBufferBytes defaults to DefaultMaxBufferBytes when zero.
func New(cfg Config) *State {
	max := cfg.MaxBufferBytes
	if max <= 0 {
		max = DefaultMaxBufferBytes
	}
	return &State{
		cfg:    cfg,
		openB:  []byte(cfg.OpenTag),
		closeB: []byte(cfg.CloseTag),
		maxBuf: max,
	}
}

// Process appends chunk to the internal buffer and extracts every complete
// content/field fragment that chunk resolves. Returns ErrBufferOverflow,
// fatal for the stream, if chunk would push the buffer past the configured
// bound; all other errors are impossible by construction.
func (s *State) Process(chunk []byte) (*delta.StreamDelta, error) {
	if len(s.buf)+len(chunk) > s.maxBuf {
		return nil, ErrBufferOverflow
	}
	s.buf = append(s.buf, chunk...)

	var content, field bytes.Buffer
	s.drain(&content, &field)

	return s.toDelta(content.Bytes(), field.Bytes()), nil
}

// Flush drains whatever remains in the buffer: into the configured field if
// a block is currently open, otherwise into content. The state is reset to
// initial (empty buffer, Outside) afterward.
func (s *State) Flush() *delta.StreamDelta {
	var content, field bytes.Buffer

	if len(s.buf) > 0 {
		if s.inBlk {
			s.writeField(&field, s.buf)
		} else {
			content.Write(s.buf)
		}
	}

	s.Reset()
	return s.toDelta(content.Bytes(), field.Bytes())
}

// Reset discards the buffer and returns the state machine to Outside.
func (s *State) Reset() {
	s.buf = nil
	s.inBlk = false
	s.openEmitted = false
}

// drain repeatedly scans the buffer, writing resolved bytes into content or
// field, until the buffer is empty or holds only an unresolved partial
// marker match.
func (s *State) drain(content, field *bytes.Buffer) {
	for len(s.buf) > 0 {
		if !s.inBlk {
			if idx := bytes.Index(s.buf, s.openB); idx >= 0 {
				content.Write(s.buf[:idx])
				s.buf = s.buf[idx+len(s.openB):]
				s.inBlk = true
				s.openEmitted = false
				continue
			}
			suffix := longestSuffixPrefix(s.buf, s.openB)
			content.Write(s.buf[:len(s.buf)-len(suffix)])
			s.buf = suffix
			return
		}

		if idx := bytes.Index(s.buf, s.closeB); idx >= 0 {
			frag := s.buf[:idx]
			s.buf = s.buf[idx+len(s.closeB):]
			s.writeFieldClosing(field, frag)
			s.inBlk = false
			continue
		}
		suffix := longestSuffixPrefix(s.buf, s.closeB)
		frag := s.buf[:len(s.buf)-len(suffix)]
		if len(frag) > 0 {
			s.writeField(field, frag)
		}
		s.buf = suffix
		return
	}
}

// writeField appends frag to field, prepending the open marker first if
// IncludeMarkers is set and this is the first fragment emitted for the
// currently open block.
func (s *State) writeField(field *bytes.Buffer, frag []byte) {
	if s.cfg.IncludeMarkers && !s.openEmitted {
		field.Write(s.openB)
	}
	s.openEmitted = true
	field.Write(frag)
}

// writeFieldClosing is writeField for the fragment that resolves a block's
// close marker: the close marker is appended after frag when
// IncludeMarkers is set. Emits nothing when frag is empty and no markers
// are requested (empty content between markers yields no field output).
func (s *State) writeFieldClosing(field *bytes.Buffer, frag []byte) {
	if !s.cfg.IncludeMarkers && len(frag) == 0 {
		return
	}
	if s.cfg.IncludeMarkers && !s.openEmitted {
		field.Write(s.openB)
	}
	field.Write(frag)
	if s.cfg.IncludeMarkers {
		field.Write(s.closeB)
	}
	s.openEmitted = true
}

// longestSuffixPrefix returns the longest suffix of buf that equals a
// proper (length < len(marker)) prefix of marker, searching from longest
// to shortest. Returns nil if no such suffix exists. This is the "partial
// match" retained across Process calls so the next chunk can complete a
// marker split across the boundary.
func longestSuffixPrefix(buf, marker []byte) []byte {
	max := len(marker) - 1
	if max > len(buf) {
		max = len(buf)
	}
	for l := max; l > 0; l-- {
		if bytes.Equal(buf[len(buf)-l:], marker[:l]) {
			return buf[len(buf)-l:]
		}
	}
	return nil
}

// toDelta builds the StreamDelta for one Process/Flush call, omitting
// content/field when empty, and collapses an entirely-empty result to nil.
func (s *State) toDelta(content, field []byte) *delta.StreamDelta {
	d := &delta.StreamDelta{}
	if len(content) > 0 {
		d.Content = string(content)
	}
	if len(field) > 0 {
		switch s.cfg.Field {
		case FieldDiff:
			d.Diff = string(field)
		default:
			d.Thought = string(field)
		}
	}
	return delta.OrNil(d)
}
