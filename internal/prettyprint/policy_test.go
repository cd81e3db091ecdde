package prettyprint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigurationValidation(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
	}{
		{"negative max depth", []Option{WithMaxDepth(-1)}},
		{"zero max property number", []Option{WithMaxPropertyNumber(0)}},
		{"negative max source depth", []Option{WithMaxSourceDepth(-1)}},
		{"nil filter", []Option{WithPropertyFilters(RemoveSymbolicKeys, nil)}},
		{"nil record formatter", []Option{WithRecordFormatter(nil)}},
		{"nil array formatter", []Option{WithArrayFormatter(nil)}},
		{"threshold without limits", []Option{WithRecordFormatter(ThresholdRecordFormatter(ThresholdLimits{}))}},
		{"negative threshold limit", []Option{WithRecordFormatter(ThresholdRecordFormatter(ThresholdLimits{MaxTotalWidth: -1}))}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPrinter(tt.opts...)
			require.Error(t, err)

			var configErr *ConfigurationError
			assert.ErrorAs(t, err, &configErr)
		})
	}
}

func TestValidConfiguration(t *testing.T) {
	_, err := NewPrinter(
		WithMaxDepth(0),
		WithMaxSourceDepth(0),
		WithMaxPropertyNumber(1),
		WithSortOrder(SortKeysNatural),
		WithDedupeRecordProperties(true),
		WithStyleMap(DefaultLightStyles()),
	)
	require.NoError(t, err)
}

func TestMaxDepthZeroPrintsPlaceholderAtRoot(t *testing.T) {
	pr := mustPrinter(t, WithMaxDepth(0))

	assert.Equal(t, "[Object]", mustString(t, pr, map[string]int{"a": 1}))
	assert.Equal(t, "[Array]", mustString(t, pr, []int{1}))
	assert.Equal(t, "1", mustString(t, pr, 1))
}
