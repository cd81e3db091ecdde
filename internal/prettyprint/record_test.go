package prettyprint

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMultiLineRecord(t *testing.T) {
	pr := mustPrinter(t, WithRecordFormatter(MultiLineRecordFormatter()))

	s := mustString(t, pr, map[string]any{"a": 1, "b": "x"})
	assert.Equal(t, strings.Join([]string{
		"{",
		"  a: 1,",
		"  b: 'x'",
		"}",
	}, "\n"), s)
}

func TestNestedMultiLineIndentation(t *testing.T) {
	pr := mustPrinter(t,
		WithRecordFormatter(MultiLineRecordFormatter()),
		WithArrayFormatter(MultiLineRecordFormatter()),
	)

	s := mustString(t, pr, map[string]any{"a": map[string]int{"b": 1}, "c": []int{2}})
	assert.Equal(t, strings.Join([]string{
		"{",
		"  a: {",
		"    b: 1",
		"  },",
		"  c: [",
		"    2",
		"  ]",
		"}",
	}, "\n"), s)
}

func TestSingleLineFlattensMultiLineBlocks(t *testing.T) {
	pr := mustPrinter(t,
		WithRecordFormatter(SingleLineRecordFormatter()),
		WithArrayFormatter(MultiLineRecordFormatter()),
	)

	s := mustString(t, pr, map[string]any{"a": []int{1, 2}})
	assert.Equal(t, "{ a: [ 1, 2 ] }", s)
}

func TestTreeify(t *testing.T) {
	pr := mustPrinter(t, WithRecordFormatter(TreeifyRecordFormatter()))

	s := mustString(t, pr, map[string]any{"a": 1, "n": map[string]int{"b": 2, "c": 3}})
	assert.Equal(t, strings.Join([]string{
		"├─ a: 1",
		"└─ n: ├─ b: 2",
		"   └─ c: 3",
	}, "\n"), s)
}

func TestTreeifyLastVsNonLastContinuation(t *testing.T) {
	pr := mustPrinter(t, WithRecordFormatter(TreeifyRecordFormatter()))

	s := mustString(t, pr, map[string]any{
		"m": map[string]int{"x": 1, "y": 2},
		"z": 3,
	})
	assert.Equal(t, strings.Join([]string{
		"├─ m: ├─ x: 1",
		"│  └─ y: 2",
		"└─ z: 3",
	}, "\n"), s)
}

func TestThresholdBoundary(t *testing.T) {
	value := map[string]any{"a": 1, "b": "x"}

	// measure the single-line rendering width, styling excluded
	wide := mustPrinter(t, WithRecordFormatter(SingleLineRecordFormatter()))
	lines, err := wide.StringifyToLines(value)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	width := lines[0].Width()

	atLimit := mustPrinter(t, WithRecordFormatter(
		ThresholdRecordFormatter(ThresholdLimits{MaxTotalWidth: width})))
	s := mustString(t, atLimit, value)
	assert.NotContains(t, s, "\n", "width == limit must stay single-line")

	belowLimit := mustPrinter(t, WithRecordFormatter(
		ThresholdRecordFormatter(ThresholdLimits{MaxTotalWidth: width - 1})))
	s = mustString(t, belowLimit, value)
	assert.Contains(t, s, "\n", "width == limit+1 must go multi-line")
}

func TestThresholdMaxProperties(t *testing.T) {
	pr := mustPrinter(t, WithRecordFormatter(
		ThresholdRecordFormatter(ThresholdLimits{MaxProperties: 2})))

	s := mustString(t, pr, map[string]int{"a": 1, "b": 2})
	assert.NotContains(t, s, "\n")

	s = mustString(t, pr, map[string]int{"a": 1, "b": 2, "c": 3})
	assert.Contains(t, s, "\n")
}

func TestThresholdMaxPropertyWidth(t *testing.T) {
	pr := mustPrinter(t, WithRecordFormatter(
		ThresholdRecordFormatter(ThresholdLimits{MaxPropertyWidth: 10})))

	s := mustString(t, pr, map[string]string{"a": "short"})
	assert.NotContains(t, s, "\n")

	s = mustString(t, pr, map[string]string{"a": "a much longer value"})
	assert.Contains(t, s, "\n")
}

func TestArrayFormatterIndependentFromRecordFormatter(t *testing.T) {
	pr := mustPrinter(t,
		WithRecordFormatter(MultiLineRecordFormatter()),
		WithArrayFormatter(SingleLineRecordFormatter()),
	)

	s := mustString(t, pr, map[string]any{"a": []int{1, 2, 3}})
	assert.Equal(t, strings.Join([]string{
		"{",
		"  a: [ 1, 2, 3 ]",
		"}",
	}, "\n"), s)
}

func TestCustomMarks(t *testing.T) {
	pr := mustPrinter(t, WithMarks(MarkMap{
		PartSingleLineRecordStartDelimiter:       "( ",
		PartSingleLineRecordEndDelimiter:         " )",
		PartPropertyKeySeparator:                 " = ",
		PartSingleLineInBetweenPropertySeparator: "; ",
	}))

	s := mustString(t, pr, map[string]int{"a": 1, "b": 2})
	assert.Equal(t, "( a = 1; b = 2 )", s)
}
