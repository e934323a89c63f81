// Package redact removes secrets and infrastructure details from strings
// before they are logged or returned in error responses. Errors from the
// Gemini client can carry the request URL (with its API key), file paths of
// the schema, and upstream host names.
package redact

import "regexp"

// Constants for redaction placeholders
const (
	RedactionPlaceholder    = "[REDACTED]"
	RedactedPathPlaceholder = "[REDACTED_PATH]"
	RedactedKeyPlaceholder  = "[REDACTED_KEY]"
	RedactedHostPlaceholder = "[REDACTED_HOST]"
)

type rule struct {
	pattern     *regexp.Regexp
	placeholder string
}

// rules are applied in order; the key rules run before the URL and host
// rules so a key embedded in a URL is never left behind.
var rules = []rule{
	// Google API keys.
	{regexp.MustCompile(`AIza[0-9A-Za-z_\-]{20,}`), RedactedKeyPlaceholder},
	// key=..., api_key: ..., token "..." and similar.
	{
		regexp.MustCompile(`(?i)\b(api[_-]?key|key|token|secret|password|authorization)(['"\s:=]+)(bearer\s+)?[A-Za-z0-9_\-.~+/]{8,}`),
		"$1$2" + RedactedKeyPlaceholder,
	},
	{regexp.MustCompile(`(?i)bearer\s+[A-Za-z0-9_\-.~+/]{8,}=*`), "Bearer " + RedactedKeyPlaceholder},
	// Stack trace fragments.
	{regexp.MustCompile(`(?:goroutine \d+|panic:)[\s\S]*?(\n\t.*)+`), "[STACK_TRACE_REDACTED]"},
	// URLs, then bare host names with an optional port.
	{regexp.MustCompile(`https?://[^\s"']+`), RedactedHostPlaceholder},
	{
		regexp.MustCompile(`\b(?:[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?\.)+(?:com|net|org|io|dev|app|internal|local)(?::\d{1,5})?\b`),
		RedactedHostPlaceholder,
	},
	// File paths.
	{regexp.MustCompile(`(/[\w.-]+){2,}`), RedactedPathPlaceholder},
	{regexp.MustCompile(`[A-Za-z]:\\[^\\\s]+(\\[^\\\s]+)+`), RedactedPathPlaceholder},
}

// String redacts sensitive information from the input string
func String(input string) string {
	if input == "" {
		return input
	}

	result := input
	for _, r := range rules {
		result = r.pattern.ReplaceAllString(result, r.placeholder)
	}
	return result
}

// Error redacts sensitive information from an error's Error() output
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}
