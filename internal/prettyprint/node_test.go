package prettyprint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNodeClassification(t *testing.T) {
	tests := []struct {
		name         string
		value        any
		primitive    bool
		array        bool
		function     bool
		record       bool
	}{
		{"int", 1, true, false, false, false},
		{"string", "x", true, false, false, false},
		{"nil", nil, true, false, false, false},
		{"slice", []int{1}, false, true, false, false},
		{"array", [2]int{1, 2}, false, true, false, false},
		{"map", map[string]int{}, false, false, false, true},
		{"struct", struct{ A int }{}, false, false, false, true},
		{"func", func() {}, false, false, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := makeTopNode(tt.value)
			assert.Equal(t, tt.primitive, n.IsPrimitive())
			assert.Equal(t, tt.array, n.IsArray())
			assert.Equal(t, tt.function, n.IsFunction())
			assert.Equal(t, tt.record, n.IsRecord())
			assert.Equal(t, tt.array || tt.function || tt.record, n.IsNonPrimitive())
		})
	}
}

func TestExpandStructProperties(t *testing.T) {
	type inner struct {
		C int
	}
	type outer struct {
		A int
		b string
		inner
	}

	n := makeTopNode(outer{A: 1, b: "x", inner: inner{C: 2}})
	children := expandProperties(n, 1)
	require.Len(t, children, 3)

	assert.Equal(t, "A", children[0].Key().Text())
	assert.True(t, children[0].HasEnumerableKey())
	assert.Equal(t, 0, children[0].SourceLevel())
	assert.Equal(t, 1, children[0].Depth())

	assert.Equal(t, "b", children[1].Key().Text())
	assert.False(t, children[1].HasEnumerableKey())

	assert.Equal(t, "C", children[2].Key().Text())
	assert.Equal(t, 1, children[2].SourceLevel())
}

func TestMaxSourceDepthZeroKeepsEmbeddedFieldWhole(t *testing.T) {
	type inner struct {
		C int
	}
	type outer struct {
		A int
		inner
	}

	n := makeTopNode(outer{A: 1, inner: inner{C: 2}})
	children := expandProperties(n, 0)
	require.Len(t, children, 2)

	assert.Equal(t, "A", children[0].Key().Text())
	assert.Equal(t, "inner", children[1].Key().Text())
	assert.True(t, children[1].IsRecord())
}

func TestUnexportedFieldValuesAreReadable(t *testing.T) {
	type secretive struct {
		Visible int
		hidden  string
	}

	pr := mustPrinter(t)
	s := mustString(t, pr, secretive{Visible: 1, hidden: "shh"})
	assert.Equal(t, "{ Visible: 1, hidden: 'shh' }", s)
}

func TestSymbolicMapKeys(t *testing.T) {
	n := makeTopNode(map[any]int{"a": 1, 7: 2})
	children := expandProperties(n, 1)
	require.Len(t, children, 2)

	// deterministic pre-sort by key text: "7" < "a"
	assert.Equal(t, "7", children[0].Key().Text())
	assert.True(t, children[0].HasSymbolicKey())
	assert.Equal(t, "a", children[1].Key().Text())
	assert.False(t, children[1].HasSymbolicKey())
}

func TestFunctionValueFlag(t *testing.T) {
	n := makeTopNode(map[string]any{"f": func() {}})
	children := expandProperties(n, 1)
	require.Len(t, children, 1)
	assert.True(t, children[0].HasFunctionValue())
}

func TestParentsCollectAncestorIdentities(t *testing.T) {
	inner := map[string]int{"x": 1}
	outer := map[string]any{"inner": inner}

	n := makeTopNode(outer)
	children := expandProperties(n, 1)
	require.Len(t, children, 1)

	child := children[0]
	require.Len(t, child.parents, 1)
	assert.Equal(t, n.refs[0], child.parents[0])

	grandChildren := expandProperties(child, 1)
	require.Len(t, grandChildren, 1)
	require.Len(t, grandChildren[0].parents, 2)
}
