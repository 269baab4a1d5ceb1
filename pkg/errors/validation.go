package errors

import (
	"net"
	"strconv"
	"unicode"
)

// maxPathLength bounds user-supplied paths; anything longer is almost
// certainly garbage input rather than a real filesystem path.
const maxPathLength = 500

// ValidatePath validates a user-supplied filesystem path before it is used
// to read a corpus or write artifacts.
//
// The rules are conservative:
//   - No empty paths
//   - No null bytes or other control characters
//   - Maximum length of 500 characters
//
// Existence and permissions are not checked here; those surface naturally
// when the path is opened.
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid control characters")
		}
	}

	return nil
}

// ValidateAddr validates a TCP listen address of the form host:port.
// The host may be empty (listen on all interfaces); the port must be a
// number in the valid range.
func ValidateAddr(addr string) error {
	if addr == "" {
		return New(ErrCodeInvalidInput, "listen address cannot be empty")
	}

	_, port, err := net.SplitHostPort(addr)
	if err != nil {
		return Wrap(ErrCodeInvalidInput, err, "listen address %q", addr)
	}

	n, err := strconv.Atoi(port)
	if err != nil {
		return New(ErrCodeInvalidInput, "listen port %q is not a number", port)
	}
	if n < 1 || n > 65535 {
		return New(ErrCodeInvalidInput, "listen port %d out of range", n)
	}

	return nil
}
