package spellcheck

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer returns the package's trace sink, selected by key 'spellcheck'.
func tracer() tracing.Trace {
	return tracing.Select("spellcheck")
}
