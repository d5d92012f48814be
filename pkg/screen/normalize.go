// Package screen derives a normalized, code-safe identifier for the
// current screen from the element catalog or the foreground activity.
package screen

import (
	"regexp"
	"strings"
)

// FallbackName is returned when no usable candidate survives
// normalization.
const FallbackName = "unnamed_screen"

var (
	whitespaceRe  = regexp.MustCompile(`\s+`)
	invalidRuneRe = regexp.MustCompile(`[^a-z0-9_]`)
	underscoreRe  = regexp.MustCompile(`_+`)
)

// Normalize converts an arbitrary candidate into a snake_case source
// identifier. Pure and deterministic; the emitted recognition helper
// reimplements exactly this behavior (with a stricter fallback).
func Normalize(text string) string {
	if text == "" {
		return FallbackName
	}

	// Fully qualified names (e.g. activity class paths) keep only the
	// final component.
	if strings.Count(text, ".") > 1 {
		parts := strings.Split(text, ".")
		text = parts[len(parts)-1]
	}

	text = strings.ToLower(text)
	text = whitespaceRe.ReplaceAllString(text, "_")
	text = invalidRuneRe.ReplaceAllString(text, "")
	text = underscoreRe.ReplaceAllString(text, "_")
	text = strings.Trim(text, "_")

	if text == "" {
		return FallbackName
	}
	if text[0] >= '0' && text[0] <= '9' {
		return "screen_" + text
	}
	return text
}
