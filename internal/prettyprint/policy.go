package prettyprint

import (
	"strings"

	"github.com/maruel/natural"
)

const (
	DefaultMaxDepth          = 7
	DefaultMaxPropertyNumber = 100
	DefaultMaxSourceDepth    = 1
	DefaultLineWidth         = 72
)

// PropertyFilter decides whether a property node is kept. Filters compose:
// a node survives only if every filter in the chain keeps it. Nodes without a
// key (array elements) are never filtered out by the built-in filters.
type PropertyFilter func(n *Node) bool

func RemoveNonEnumerables(n *Node) bool {
	return !n.key.present || n.hasEnumerableKey
}

func RemoveSymbolicKeys(n *Node) bool {
	return !n.hasSymbolicKey
}

func RemoveFunctionValues(n *Node) bool {
	return !n.hasFunctionValue
}

// SortOrder compares two sibling property nodes; it follows the cmp
// convention (negative: a first). A nil SortOrder keeps the source order.
type SortOrder func(a, b *Node) int

func SortKeysLexicographic(a, b *Node) int {
	return strings.Compare(a.key.text, b.key.text)
}

// SortKeysNatural orders keys so that "a2" comes before "a10".
func SortKeysNatural(a, b *Node) int {
	if a.key.text == b.key.text {
		return 0
	}
	if natural.Less(a.key.text, b.key.text) {
		return -1
	}
	return 1
}

// ByPasser short-circuits default formatting: when it reports ok, the node
// becomes a leaf whose result is the returned text, unstyled.
type ByPasser func(value any) (text string, ok bool)

// Policy bundles the pluggable formatting, filtering and styling rules of a
// printer. It is immutable once the printer is constructed.
type Policy struct {
	maxDepth          int
	maxPropertyNumber int
	maxSourceDepth    int

	filters   []PropertyFilter
	sortOrder SortOrder
	dedupe    bool
	byPasser  ByPasser

	recordFormatter   RecordFormatter
	arrayFormatter    RecordFormatter
	propertyFormatter PropertyFormatter

	styles StyleMap
	marks  MarkMap
}

type Option func(*Policy)

func WithMaxDepth(n int) Option {
	return func(p *Policy) { p.maxDepth = n }
}

func WithMaxPropertyNumber(n int) Option {
	return func(p *Policy) { p.maxPropertyNumber = n }
}

// WithMaxSourceDepth bounds how many embedding levels promoted struct fields
// are collected from. 0 keeps only non-promoted fields.
func WithMaxSourceDepth(n int) Option {
	return func(p *Policy) { p.maxSourceDepth = n }
}

func WithPropertyFilters(filters ...PropertyFilter) Option {
	return func(p *Policy) { p.filters = filters }
}

func WithSortOrder(order SortOrder) Option {
	return func(p *Policy) { p.sortOrder = order }
}

// WithDedupeRecordProperties drops keyed properties whose key was already
// seen. Deduplication runs after sorting: the first occurrence post-sort
// wins.
func WithDedupeRecordProperties(dedupe bool) Option {
	return func(p *Policy) { p.dedupe = dedupe }
}

func WithByPasser(b ByPasser) Option {
	return func(p *Policy) { p.byPasser = b }
}

func WithRecordFormatter(f RecordFormatter) Option {
	return func(p *Policy) { p.recordFormatter = f }
}

// WithArrayFormatter selects the formatter for array-valued nodes,
// independently of record-valued ones.
func WithArrayFormatter(f RecordFormatter) Option {
	return func(p *Policy) { p.arrayFormatter = f }
}

func WithPropertyFormatter(f PropertyFormatter) Option {
	return func(p *Policy) { p.propertyFormatter = f }
}

func WithStyleMap(styles StyleMap) Option {
	return func(p *Policy) { p.styles = styles }
}

func WithMarks(marks MarkMap) Option {
	return func(p *Policy) { p.marks = marks }
}

func defaultPolicy() Policy {
	return Policy{
		maxDepth:          DefaultMaxDepth,
		maxPropertyNumber: DefaultMaxPropertyNumber,
		maxSourceDepth:    DefaultMaxSourceDepth,
		recordFormatter:   ThresholdRecordFormatter(ThresholdLimits{MaxTotalWidth: DefaultLineWidth}),
		arrayFormatter:    ThresholdRecordFormatter(ThresholdLimits{MaxTotalWidth: DefaultLineWidth}),
	}
}

type validatable interface {
	validate() error
}

func (p *Policy) validate() error {
	if p.maxDepth < 0 {
		return configErrorf("max depth must not be negative (got %d)", p.maxDepth)
	}
	if p.maxPropertyNumber < 1 {
		return configErrorf("max property number must be at least 1 (got %d)", p.maxPropertyNumber)
	}
	if p.maxSourceDepth < 0 {
		return configErrorf("max source depth must not be negative (got %d)", p.maxSourceDepth)
	}
	for i, f := range p.filters {
		if f == nil {
			return configErrorf("property filter at position %d is nil", i)
		}
	}
	if p.recordFormatter == nil {
		return configErrorf("record formatter is nil")
	}
	if p.arrayFormatter == nil {
		return configErrorf("array formatter is nil")
	}
	for _, f := range []any{p.recordFormatter, p.arrayFormatter, p.propertyFormatter} {
		if v, ok := f.(validatable); ok {
			if err := v.validate(); err != nil {
				return err
			}
		}
	}
	return nil
}
