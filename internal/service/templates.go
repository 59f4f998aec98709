package service

import (
	"strings"

	"github.com/hugo-lorenzo-mato/scout-ai/internal/core"
)

// Fallback report templates for whole-batch failures. Only pool
// preparation failures reach these; a single worker's failure stays inside
// its own report section.
const (
	standardErrorTemplate = `# Parallel Research - Error

## Research Query
{query}

## Error
An error occurred during parallel research worker execution: {error}`

	variationErrorTemplate = `# Intensity Variation Research - Error

## Research Query
{query}

## Error
An error occurred during intensity variation research execution: {error}`
)

// ErrorTemplates renders whole-batch failure reports, with optional
// per-mode overrides from configuration.
type ErrorTemplates struct {
	overrides map[string]string
}

// NewErrorTemplates creates the template set. overrides may be nil; keys
// are "standard" and "variation".
func NewErrorTemplates(overrides map[string]string) *ErrorTemplates {
	return &ErrorTemplates{overrides: overrides}
}

// Render produces the fallback report for a failed batch. The original
// query text and error message are embedded verbatim.
func (t *ErrorTemplates) Render(mode core.RunMode, query string, err error) string {
	tmpl := t.template(mode)
	out := strings.ReplaceAll(tmpl, "{query}", query)
	out = strings.ReplaceAll(out, "{error}", err.Error())
	return out
}

func (t *ErrorTemplates) template(mode core.RunMode) string {
	if tmpl, ok := t.overrides[string(mode)]; ok && strings.TrimSpace(tmpl) != "" {
		return tmpl
	}
	if mode == core.ModeVariation {
		return variationErrorTemplate
	}
	return standardErrorTemplate
}
