package errors

import (
	"strings"
	"unicode"
)

// ValidateCanvasSize validates canvas dimensions for a chart spec.
// Dimensions must be positive and within a sane upper bound to prevent
// absurd allocations downstream.
func ValidateCanvasSize(width, height int) error {
	const maxDim = 1 << 20
	if width <= 0 || height <= 0 {
		return New(ErrCodeInvalidSpec, "canvas size must be positive, got %dx%d", width, height)
	}
	if width > maxDim || height > maxDim {
		return New(ErrCodeInvalidSpec, "canvas size too large (max %d per side)", maxDim)
	}
	return nil
}

// ValidateMargin validates a single margin value.
// Margins are pixel insets and cannot be negative.
func ValidateMargin(side string, size int) error {
	if size < 0 {
		return New(ErrCodeInvalidSpec, "margin %s cannot be negative, got %d", side, size)
	}
	return nil
}

// ValidateAxisType validates an axis type name from a chart spec.
func ValidateAxisType(typ string) error {
	switch typ {
	case "linear", "log", "time", "category":
		return nil
	}
	return New(ErrCodeInvalidAxis, "invalid axis type: %q (must be one of: linear, log, time, category)", typ)
}

// ValidateCaption validates caption text.
// Captions are rendered by the backend, so control characters are rejected.
func ValidateCaption(text string) error {
	const maxLen = 512
	if len(text) > maxLen {
		return New(ErrCodeInvalidSpec, "caption too long (max %d characters)", maxLen)
	}
	for _, r := range text {
		if unicode.IsControl(r) && r != '\n' {
			return New(ErrCodeInvalidSpec, "caption contains invalid control characters")
		}
	}
	return nil
}

// ValidateOutputPath validates a file path supplied for layout output.
// It prevents path traversal and ensures reasonable path length.
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	if strings.Contains(path, "..") {
		return New(ErrCodeInvalidPath, "path cannot contain path traversal sequences (..)")
	}

	return nil
}
