// Package diag records non-fatal problems found while generating types.
//
// Structural problems abort a run through ordinary error returns. Everything
// the pipeline can work around (unsupported schema shapes, duplicate names,
// skipped reference entries) is reported here instead and generation
// continues with a fallback. Callers that want strict behavior promote the
// collected diagnostics to an error with Collector.Err.
package diag

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

var ErrStrict = errors.New("diagnostics reported in strict mode")

type Kind string

const (
	UnsupportedShape      Kind = "unsupported-shape"
	ReferenceEntrySkipped Kind = "reference-entry-skipped"
	DuplicateSchema       Kind = "duplicate-schema"
	DuplicateTypeName     Kind = "duplicate-type-name"
)

type Diagnostic struct {
	Kind    Kind
	Subject string
	Message string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s: %s", d.Kind, d.Subject, d.Message)
}

// Collector accumulates diagnostics for one generation run.
// A nil Collector only logs.
type Collector struct {
	logger *slog.Logger
	items  []Diagnostic
}

func NewCollector(logger *slog.Logger) *Collector {
	if logger == nil {
		logger = slog.Default()
	}
	return &Collector{logger: logger}
}

// Report records a diagnostic and logs it as a warning.
func (c *Collector) Report(kind Kind, subject, format string, args ...any) {
	d := Diagnostic{Kind: kind, Subject: subject, Message: fmt.Sprintf(format, args...)}
	if c == nil {
		slog.Warn(d.Message, "kind", string(d.Kind), "subject", d.Subject)
		return
	}
	c.logger.Warn(d.Message, "kind", string(d.Kind), "subject", d.Subject)
	c.items = append(c.items, d)
}

func (c *Collector) Diagnostics() []Diagnostic {
	if c == nil {
		return nil
	}
	return c.items
}

func (c *Collector) Len() int {
	if c == nil {
		return 0
	}
	return len(c.items)
}

// Err returns ErrStrict describing every recorded diagnostic, or nil when
// none were recorded.
func (c *Collector) Err() error {
	if c.Len() == 0 {
		return nil
	}
	lines := make([]string, len(c.items))
	for i, d := range c.items {
		lines[i] = d.String()
	}
	return fmt.Errorf("%w:\n  %s", ErrStrict, strings.Join(lines, "\n  "))
}
