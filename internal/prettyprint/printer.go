// Package prettyprint turns arbitrary in-memory Go values, cyclic ones
// included, into styled text. A Printer carries an immutable policy (depth
// and property limits, filters, sort order, formatting strategies, style and
// mark lookups); each stringify call is an independent, synchronous
// transformation, so one Printer can be used from several goroutines as long
// as the printed values themselves are not mutated concurrently.
package prettyprint

import (
	"unicode/utf8"

	"github.com/tidwall/tinylru"

	"github.com/prettyfmt/prettyfmt/internal/utils"
)

const markCacheSize = 128

type Printer struct {
	policy Policy

	// memoized styled marks; purely additive, never observable in output
	markCache tinylru.LRU
}

// NewPrinter validates the policy eagerly and returns a ConfigurationError
// on invalid options. Stringify calls never fail on configuration.
func NewPrinter(opts ...Option) (*Printer, error) {
	policy := defaultPolicy()
	for _, opt := range opts {
		opt(&policy)
	}
	if err := policy.validate(); err != nil {
		return nil, err
	}

	pr := &Printer{policy: policy}
	pr.markCache.Resize(markCacheSize)
	return pr, nil
}

// StringifyToLines never fails on cyclic input; it only fails when the value
// itself misbehaves during property access (PropertyAccessError).
func (pr *Printer) StringifyToLines(v any) ([]Line, error) {
	s, err := newEngine(pr).stringify(v)
	if err != nil {
		return nil, err
	}
	return s.Lines(), nil
}

func (pr *Printer) StringifyToString(v any) (string, error) {
	return pr.StringifyToStringSep(v, "\n")
}

func (pr *Printer) StringifyToStringSep(v any, lineSeparator string) (string, error) {
	s, err := newEngine(pr).stringify(v)
	if err != nil {
		return "", err
	}
	return s.Join(lineSeparator), nil
}

type styledMark struct {
	display string
	width   int
}

func (pr *Printer) styledMark(part Part) (string, int) {
	if v, ok := pr.markCache.Get(part); ok {
		m := v.(styledMark)
		return m.display, m.width
	}

	text := pr.policy.marks.mark(part)
	display := pr.policy.styles.styler(part).apply(text)
	width := utf8.RuneCountInString(text)

	pr.markCache.Set(part, styledMark{display: display, width: width})
	return display, width
}

var defaultPrinter = utils.Must(NewPrinter())

// Stringify prints v with the default policy and no styling; it panics if v
// misbehaves during property access.
func Stringify(v any) string {
	return utils.Must(defaultPrinter.StringifyToString(v))
}
