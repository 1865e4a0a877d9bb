package errors

import (
	"strings"
	"unicode"
)

// ValidateOutputFormat validates a visualization output format name.
// Supported formats are "dot" and "svg".
func ValidateOutputFormat(format string) error {
	switch format {
	case "dot", "svg":
		return nil
	case "":
		return New(ErrCodeInvalidFormat, "output format cannot be empty")
	default:
		return New(ErrCodeInvalidFormat, "unknown output format: %q (supported: dot, svg)", format)
	}
}

// ValidatePath validates a user-supplied file path for safety.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No backslashes (Windows-style paths)
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	// Check for null bytes and control characters
	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	// No backslashes (potential Windows path injection)
	if strings.Contains(path, "\\") {
		return New(ErrCodeInvalidPath, "path cannot contain backslashes")
	}

	return nil
}
