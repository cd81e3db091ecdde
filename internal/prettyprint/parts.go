package prettyprint

// Part identifies one semantic piece of the printed output. Both the style
// lookup and the mark lookup are keyed by this vocabulary: the style of a part
// decorates its text, the mark of a part is the text itself (for parts that
// are fixed marks rather than value-derived text).
//
// An unknown part resolves to the identity styler and to an empty mark.
type Part string

const (
	// value-derived text
	PartStringContent Part = "stringContent"
	PartNumberValue   Part = "numberValue"
	PartBooleanValue  Part = "booleanValue"
	PartPropertyKey   Part = "propertyKey"
	PartSymbolicKey   Part = "symbolicKey"
	PartFunctionName  Part = "functionName"

	// string delimiters, independently styled
	PartStringStartDelimiter Part = "stringStartDelimiter"
	PartStringEndDelimiter   Part = "stringEndDelimiter"

	// constants
	PartNullValue      Part = "nullValue"
	PartUndefinedValue Part = "undefinedValue"
	PartBigIntSuffix   Part = "bigintSuffix"

	// functions
	PartFunctionStartDelimiter Part = "functionStartDelimiter"
	PartFunctionEndDelimiter   Part = "functionEndDelimiter"
	PartAnonymousFunctionName  Part = "anonymousFunctionName"

	// property assembly
	PartPropertyKeySeparator                 Part = "propertyKeySeparator"
	PartSingleLineInBetweenPropertySeparator Part = "singleLineInBetweenPropertySeparator"
	PartMultiLineInBetweenPropertySeparator  Part = "multiLineInBetweenPropertySeparator"

	// record & array delimiters
	PartSingleLineRecordStartDelimiter Part = "singleLineRecordStartDelimiter"
	PartSingleLineRecordEndDelimiter   Part = "singleLineRecordEndDelimiter"
	PartMultiLineRecordStartDelimiter  Part = "multiLineRecordStartDelimiter"
	PartMultiLineRecordEndDelimiter    Part = "multiLineRecordEndDelimiter"
	PartSingleLineArrayStartDelimiter  Part = "singleLineArrayStartDelimiter"
	PartSingleLineArrayEndDelimiter    Part = "singleLineArrayEndDelimiter"
	PartMultiLineArrayStartDelimiter   Part = "multiLineArrayStartDelimiter"
	PartMultiLineArrayEndDelimiter     Part = "multiLineArrayEndDelimiter"
	PartEmptyRecord                    Part = "emptyRecord"
	PartEmptyArray                     Part = "emptyArray"

	// multi-line layout
	PartIndent Part = "indent"

	// treeify branches
	PartTreeNonLastBranch       Part = "treeNonLastBranch"
	PartTreeNonLastContinuation Part = "treeNonLastContinuation"
	PartTreeLastBranch          Part = "treeLastBranch"
	PartTreeLastContinuation    Part = "treeLastContinuation"

	// cycles
	PartCircularObject         Part = "circularObject"
	PartCircularReferenceStart Part = "circularReferenceStart"
	PartCircularReferenceEnd   Part = "circularReferenceEnd"
	PartReferenceMarkStart     Part = "referenceMarkStart"
	PartReferenceMarkEnd       Part = "referenceMarkEnd"

	// depth-exceeded placeholders
	PartArrayBeyondMaxDepth    Part = "arrayBeyondMaxDepth"
	PartObjectBeyondMaxDepth   Part = "objectBeyondMaxDepth"
	PartFunctionBeyondMaxDepth Part = "functionBeyondMaxDepth"

	// property-count cutoff
	PartTruncationStart Part = "truncationStart"
	PartTruncationEnd   Part = "truncationEnd"
)

var defaultMarks = map[Part]string{
	PartStringStartDelimiter: "'",
	PartStringEndDelimiter:   "'",

	PartNullValue:      "null",
	PartUndefinedValue: "undefined",
	PartBigIntSuffix:   "n",

	PartFunctionStartDelimiter: "[Function: ",
	PartFunctionEndDelimiter:   "]",
	PartAnonymousFunctionName:  "(anonymous)",

	PartPropertyKeySeparator:                 ": ",
	PartSingleLineInBetweenPropertySeparator: ", ",
	PartMultiLineInBetweenPropertySeparator:  ",",

	PartSingleLineRecordStartDelimiter: "{ ",
	PartSingleLineRecordEndDelimiter:   " }",
	PartMultiLineRecordStartDelimiter:  "{",
	PartMultiLineRecordEndDelimiter:    "}",
	PartSingleLineArrayStartDelimiter:  "[ ",
	PartSingleLineArrayEndDelimiter:    " ]",
	PartMultiLineArrayStartDelimiter:   "[",
	PartMultiLineArrayEndDelimiter:     "]",
	PartEmptyRecord:                    "{}",
	PartEmptyArray:                     "[]",

	PartIndent: "  ",

	PartTreeNonLastBranch:       "├─ ",
	PartTreeNonLastContinuation: "│  ",
	PartTreeLastBranch:          "└─ ",
	PartTreeLastContinuation:    "   ",

	PartCircularReferenceStart: "[Circular *",
	PartCircularReferenceEnd:   "]",
	PartReferenceMarkStart:     "<ref *",
	PartReferenceMarkEnd:       "> ",

	PartArrayBeyondMaxDepth:    "[Array]",
	PartObjectBeyondMaxDepth:   "[Object]",
	PartFunctionBeyondMaxDepth: "[Function]",

	PartTruncationStart: "… +",
	PartTruncationEnd:   " more",
}

// MarkMap overrides the default marks for some parts.
type MarkMap map[Part]string

func (m MarkMap) mark(p Part) string {
	if m != nil {
		if v, ok := m[p]; ok {
			return v
		}
	}
	return defaultMarks[p]
}
