// Package datauri parses, discovers, and builds RFC 2397 data: URIs.
//
// It converts between the textual URI form and a structured (media type,
// payload) pair in both directions, and can scan free text for embedded
// data URIs:
//   - Parse: decode a single data: URI into a DataURI value.
//   - Discover: NewDiscoverer returns a pull-style scanner; Discover streams
//     results to a handler; DiscoverAll collects them eagerly.
//   - Build: NewBuilder constructs base64 data: URIs from raw bytes or files,
//     resolving the media type through a pluggable MIMESniffer; Encode builds
//     one from an explicit media type.
//
// Percent-encoded payloads are decoded leniently: malformed or truncated
// escapes pass through as literal bytes instead of failing. Base64 payloads
// have missing "=" padding corrected before decoding. Only the first comma
// after the scheme separates metadata from payload; later commas are payload.
//
// Example (parsing):
//
//	d, err := datauri.Parse("data:text/plain;base64,aGVsbG8=")
//	if err != nil {
//	    // handle error
//	}
//	// d.MediaType == "text/plain", d.Data == []byte("hello")
//
// Example (discovery):
//
//	dec := datauri.NewDiscoverer(page)
//	for {
//	    d, err := dec.Next()
//	    if err == io.EOF {
//	        break
//	    }
//	    // process d
//	}
//
// Failures carry a single structured *Error with a programmatic ErrorCode;
// Code classifies any error returned by this package. The Discoverer is the
// one place such errors are swallowed: candidate spans that fail to parse
// are skipped silently.
package datauri
