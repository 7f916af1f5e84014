package datauri

import (
	"io"
	"strings"
)

// Discoverer scans text for embedded data: URIs. It is a pull-style,
// restartable scanner: Next returns parsed URIs in left-to-right order of
// their position in the input and io.EOF once the input is exhausted.
type Discoverer struct {
	input string
	pos   int
}

// NewDiscoverer returns a scanner over s positioned at the start.
func NewDiscoverer(s string) *Discoverer {
	return &Discoverer{input: s}
}

// Next returns the next data: URI in the input, or io.EOF when no more
// remain. Candidate spans that match the URI grammar but fail to parse are
// skipped silently; the scanner advances past the full span either way, so
// matches never overlap.
func (d *Discoverer) Next() (DataURI, error) {
	for {
		candidate, ok := d.scan()
		if !ok {
			return DataURI{}, io.EOF
		}
		parsed, err := Parse(candidate)
		if err != nil {
			continue
		}
		return parsed, nil
	}
}

// Reset rewinds the scanner to the start of its input.
func (d *Discoverer) Reset() { d.pos = 0 }

// scan advances to the next candidate span: the literal prefix followed by
// the longest run of one or more URI characters.
func (d *Discoverer) scan() (string, bool) {
	for d.pos < len(d.input) {
		i := strings.Index(d.input[d.pos:], prefix)
		if i < 0 {
			d.pos = len(d.input)
			return "", false
		}
		start := d.pos + i
		end := start + len(prefix)
		for end < len(d.input) && isURIChar(d.input[end]) {
			end++
		}
		if end == start+len(prefix) {
			// bare prefix with nothing eligible after it
			d.pos = end
			continue
		}
		d.pos = end
		return d.input[start:end], true
	}
	return "", false
}

// Handler processes discovered URIs in push mode.
type Handler func(DataURI) error

// Discover scans s and streams every data: URI found to the handler, in
// left-to-right order. Spans that fail to parse are skipped. A handler
// error aborts the scan and is returned.
func Discover(s string, h Handler) error {
	d := NewDiscoverer(s)
	for {
		parsed, err := d.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if err := h(parsed); err != nil {
			return err
		}
	}
}

// DiscoverAll scans s and returns every data: URI found, in left-to-right
// order. It is the eager counterpart of NewDiscoverer.
func DiscoverAll(s string) []DataURI {
	var found []DataURI
	d := NewDiscoverer(s)
	for {
		parsed, err := d.Next()
		if err != nil {
			return found
		}
		found = append(found, parsed)
	}
}
