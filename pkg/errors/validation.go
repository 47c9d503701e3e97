package errors

import (
	"strings"
	"unicode"
)

// maxIdentifierLength bounds Graphviz node identifiers of clustered diagrams.
const maxIdentifierLength = 128

// ValidateIdentifier checks a node identifier of a clustered diagram, which
// becomes a DOT node ID. Figure catalog IDs are opaque and not checked.
//
// Validation rules:
//   - Identifier cannot be empty
//   - Maximum length of 128 characters
//   - No whitespace or control characters
//   - No quotes or backslashes (they would need escaping in DOT output)
func ValidateIdentifier(id string) error {
	if id == "" {
		return New(ErrCodeInvalidInput, "node identifier cannot be empty")
	}

	if len(id) > maxIdentifierLength {
		return New(ErrCodeInvalidInput, "node identifier too long (max %d characters)", maxIdentifierLength)
	}

	for _, r := range id {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return New(ErrCodeInvalidInput, "node identifier %q contains whitespace or control characters", id)
		}
	}

	if strings.ContainsAny(id, "\"'\\") {
		return New(ErrCodeInvalidInput, "node identifier %q contains quotes or backslashes", id)
	}

	return nil
}

// ValidateOutputPath validates a file path an artifact will be written to.
//
// Validation rules:
//   - Path cannot be empty
//   - No null bytes or control characters
//   - Must not name a directory (trailing separator)
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "output path cannot be empty")
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "output path contains invalid characters")
		}
	}

	if strings.HasSuffix(path, "/") || strings.HasSuffix(path, "\\") {
		return New(ErrCodeInvalidPath, "output path %q names a directory", path)
	}

	return nil
}
