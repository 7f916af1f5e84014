package datauri

import (
	"bytes"
	"fmt"
	"hash/fnv"
)

// DataURI is a parsed data: URI.
//
// Values are immutable once constructed; Parse and the Discoverer are the
// usual construction paths.
type DataURI struct {
	// MediaType is the media type declared before the first comma, with any
	// ";base64" flag stripped. Empty when the URI declared no media type.
	MediaType string
	// Data is the decoded payload. It may be empty, never absent.
	Data []byte
	// URI is the original, unmodified input text.
	URI string
}

// Equal reports whether two values carry the same media type and payload.
// The original URI text is not compared: two URIs that decode to the same
// content are equal.
func (d DataURI) Equal(o DataURI) bool {
	return d.MediaType == o.MediaType && bytes.Equal(d.Data, o.Data)
}

// Hash returns an FNV-1a hash over (MediaType, Data). Values that compare
// Equal hash identically.
func (d DataURI) Hash() uint64 {
	h := fnv.New64a()
	h.Write([]byte(d.MediaType))
	h.Write([]byte{0})
	h.Write(d.Data)
	return h.Sum64()
}

// String renders the media type and payload. Payloads longer than 20 bytes
// are truncated to their first 17 bytes so large binary data stays out of
// logs.
func (d DataURI) String() string {
	data := string(d.Data)
	if len(data) > 20 {
		data = data[:17] + "..."
	}
	return fmt.Sprintf("DataURI{MediaType:%q, Data:%q}", d.MediaType, data)
}
