package datauri

import (
	"encoding/base64"
	"io/fs"
	"os"
)

// Builder constructs base64 data: URIs from raw bytes or files. Media type
// resolution is delegated: content sniffing goes through a MIMESniffer, with
// an extension-based guess as a second tier for file-backed sources.
type Builder struct {
	sniffer MIMESniffer                      // content tier; nil means unavailable
	guess   func(name string) (string, bool) // extension tier, files only
	fsys    fs.FS                            // nil means the OS filesystem
}

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// WithSniffer sets the content sniffer. Passing nil marks the sniffing
// collaborator unavailable: file-backed builds fall back to the extension
// guess and raw-byte builds fail with ErrSnifferUnavailable.
func WithSniffer(s MIMESniffer) BuilderOption {
	return func(b *Builder) { b.sniffer = s }
}

// WithNameGuesser sets the extension-based fallback used for file-backed
// sources. Passing nil disables the fallback tier.
func WithNameGuesser(guess func(name string) (string, bool)) BuilderOption {
	return func(b *Builder) { b.guess = guess }
}

// WithFS sets the filesystem used to read file-backed sources.
func WithFS(fsys fs.FS) BuilderOption {
	return func(b *Builder) { b.fsys = fsys }
}

// NewBuilder returns a Builder that sniffs content by magic bytes, guesses
// by extension from the stdlib mime table, and reads from the OS filesystem.
func NewBuilder(opts ...BuilderOption) *Builder {
	b := &Builder{sniffer: DefaultSniffer, guess: guessByName}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// FromFile reads path in full and builds a data: URI from its contents. The
// media type comes from the content sniffer when one is configured and it
// answers, otherwise from the extension guess; when neither determines a
// type, FromFile fails with an *Error. Read failures propagate as-is.
func (b *Builder) FromFile(path string) (string, error) {
	data, err := b.readFile(path)
	if err != nil {
		return "", err
	}
	mediaType, ok := "", false
	if b.sniffer != nil {
		mediaType, ok = b.sniffer.Sniff(data)
	}
	if !ok && b.guess != nil {
		mediaType, ok = b.guess(path)
	}
	if !ok {
		return "", newError(ErrCodeUnknownMediaType, "cannot determine media type for "+path)
	}
	return Encode(mediaType, data), nil
}

// FromBytes builds a data: URI from raw bytes. The media type comes from the
// content sniffer alone; this path has no extension fallback, so a Builder
// without a sniffer fails with ErrSnifferUnavailable rather than an *Error.
func (b *Builder) FromBytes(data []byte) (string, error) {
	if b.sniffer == nil {
		return "", ErrSnifferUnavailable
	}
	mediaType, ok := b.sniffer.Sniff(data)
	if !ok {
		return "", newError(ErrCodeUnknownMediaType, "cannot determine media type")
	}
	return Encode(mediaType, data), nil
}

func (b *Builder) readFile(path string) ([]byte, error) {
	if b.fsys != nil {
		return fs.ReadFile(b.fsys, path)
	}
	return os.ReadFile(path)
}

// Encode builds a data: URI from an explicit media type and payload. The
// payload is base64 encoded with standard padding.
func Encode(mediaType string, data []byte) string {
	return prefix + mediaType + base64Flag + "," + base64.StdEncoding.EncodeToString(data)
}

// BuildFile builds a data: URI from the contents of path with a default
// Builder.
func BuildFile(path string) (string, error) {
	return NewBuilder().FromFile(path)
}

// BuildBytes builds a data: URI from raw bytes with a default Builder.
func BuildBytes(data []byte) (string, error) {
	return NewBuilder().FromBytes(data)
}
