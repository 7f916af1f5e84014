package datauri

import (
	"encoding/base64"
	"strings"
)

const (
	prefix     = "data:"
	base64Flag = ";base64"
)

// Parse parses a data: URI of the form
//
//	data:[<media-type>][;base64],<payload>
//
// The media type is everything before the first comma with any ";base64"
// flag stripped; later commas belong to the payload. Flagged payloads are
// base64-decoded after missing padding is corrected; unflagged payloads are
// percent-decoded leniently and cannot fail.
//
// Parse fails with an *Error when the prefix is missing, when nothing or no
// comma follows it, or when a base64 payload does not decode.
func Parse(uri string) (DataURI, error) {
	if !strings.HasPrefix(uri, prefix) {
		return DataURI{}, newError(ErrCodeInvalidURI, "missing data: prefix")
	}
	rest := uri[len(prefix):]
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return DataURI{}, newError(ErrCodeInvalidURI, "missing comma separator")
	}

	var data []byte
	if strings.HasSuffix(meta, base64Flag) {
		meta = strings.TrimSuffix(meta, base64Flag)
		padded := payload + strings.Repeat("=", (4-len(payload)%4)%4)
		decoded, err := base64.StdEncoding.DecodeString(padded)
		if err != nil {
			return DataURI{}, wrapError(ErrCodeInvalidBase64, "invalid base64 payload", err)
		}
		data = decoded
	} else {
		data = unescape(payload)
	}

	return DataURI{MediaType: meta, Data: data, URI: uri}, nil
}

// unescape percent-decodes s leniently: a %XY escape with two hex digits
// decodes to the byte it names, anything else is copied through untouched.
// Malformed and truncated escapes are literal data, not errors.
func unescape(s string) []byte {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '%' && i+2 < len(s) {
			hi, ok1 := hexDigitValue(s[i+1])
			lo, ok2 := hexDigitValue(s[i+2])
			if ok1 && ok2 {
				out = append(out, byte(hi<<4|lo))
				i += 2
				continue
			}
		}
		out = append(out, c)
	}
	return out
}
