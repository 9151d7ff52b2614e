// Package payload wraps typed input records into GraphQL mutation
// envelopes and derives safe filenames for persisting them.
package payload

import (
	"strings"
)

// Envelope is the operation-plus-variables wrapper submitted to, or
// persisted in lieu of submitting to, the model service.
type Envelope struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

// New builds an envelope binding one record to the named operation
// argument.
func New(query, argName string, record any) Envelope {
	return Envelope{
		Query:     query,
		Variables: map[string]any{argName: record},
	}
}

// fallbackName substitutes for names that sanitize to nothing.
const fallbackName = "item"

// Sanitize strips every character that is not alphanumeric, space,
// underscore or hyphen, trims surrounding whitespace, and substitutes
// fallback when nothing remains.
func Sanitize(name, fallback string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ', r == '_', r == '-':
			b.WriteRune(r)
		}
	}
	s := strings.TrimSpace(b.String())
	if s == "" {
		return fallback
	}
	return s
}

// FileStem derives the persisted-file stem for an entity name: sanitized,
// with spaces replaced by underscores.
func FileStem(name string) string {
	return strings.ReplaceAll(Sanitize(name, fallbackName), " ", "_")
}
