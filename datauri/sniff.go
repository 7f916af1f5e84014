package datauri

import (
	"mime"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// MIMESniffer resolves a media type from content. Implementations report
// ok == false when no type can be determined; whether a sniffer is available
// at all is a Builder concern, not part of this contract.
type MIMESniffer interface {
	Sniff(data []byte) (mime string, ok bool)
}

// SnifferFunc adapts a function to a MIMESniffer.
type SnifferFunc func(data []byte) (string, bool)

// Sniff calls the underlying function.
func (f SnifferFunc) Sniff(data []byte) (string, bool) { return f(data) }

// DefaultSniffer detects media types from magic bytes.
var DefaultSniffer MIMESniffer = SnifferFunc(sniffContent)

func sniffContent(data []byte) (string, bool) {
	t := stripParams(mimetype.Detect(data).String())
	if t == "" {
		return "", false
	}
	return t, true
}

// guessByName maps a file name to a media type through its extension.
func guessByName(name string) (string, bool) {
	t := mime.TypeByExtension(filepath.Ext(name))
	if t == "" {
		return "", false
	}
	return stripParams(t), true
}

// stripParams drops media type parameters such as "; charset=utf-8".
func stripParams(t string) string {
	t, _, _ = strings.Cut(t, ";")
	return strings.TrimSpace(t)
}
