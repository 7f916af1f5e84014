package datauri

// Character classes from RFC 3986 section 2. A candidate data: URI span is
// the literal scheme prefix followed by the longest run of unreserved
// characters, reserved characters, and percent.

// isURIChar reports whether c may appear in a data: URI after the scheme
// prefix.
func isURIChar(c byte) bool {
	if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') {
		return true
	}
	switch c {
	case '-', '_', '.', '~', // unreserved
		':', '/', '?', '#', '[', ']', '@', // gen-delims
		'!', '$', '&', '\'', '(', ')', '*', '+', ',', ';', '=', // sub-delims
		'%':
		return true
	}
	return false
}

// hexDigitValue converts a single hex digit byte to its integer value.
// Returns the digit value and true if valid, or 0 and false if invalid.
func hexDigitValue(c byte) (int, bool) {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0'), true
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10, true
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10, true
	default:
		return 0, false
	}
}
