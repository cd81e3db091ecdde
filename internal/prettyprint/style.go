package prettyprint

import "github.com/muesli/termenv"

var ANSI_RESET_SEQUENCE = []byte(termenv.CSI + termenv.ResetSeq + "m")

// Styler decorates a piece of unstyled text, typically with ANSI sequences.
// A nil Styler is the identity.
type Styler func(text string) string

func (s Styler) apply(text string) string {
	if s == nil || text == "" {
		return text
	}
	return s(text)
}

func IdentityStyler(text string) string { return text }

// SequenceStyler wraps text between a raw ANSI sequence and a reset.
func SequenceStyler(sequence []byte) Styler {
	prefix := string(sequence)
	reset := string(ANSI_RESET_SEQUENCE)
	return func(text string) string {
		return prefix + text + reset
	}
}

func ColorStyler(color termenv.Color) Styler {
	return SequenceStyler(GetFullColorSequence(color, false))
}

func GetFullColorSequence(color termenv.Color, bg bool) []byte {
	var b = []byte(termenv.CSI)
	b = append(b, []byte(color.Sequence(bg))...)
	b = append(b, 'm')
	return b
}

// StyleMap associates parts with stylers. Parts absent from the map resolve
// to the identity styler.
type StyleMap map[Part]Styler

func (m StyleMap) styler(p Part) Styler {
	if m == nil {
		return nil
	}
	return m[p]
}

func DefaultDarkStyles() StyleMap {
	return StyleMap{
		PartStringContent:        ColorStyler(termenv.ANSI256Color(209)),
		PartStringStartDelimiter: ColorStyler(termenv.ANSI256Color(209)),
		PartStringEndDelimiter:   ColorStyler(termenv.ANSI256Color(209)),
		PartNumberValue:          ColorStyler(termenv.ANSIBrightGreen),
		PartBigIntSuffix:         ColorStyler(termenv.ANSIBrightGreen),
		PartBooleanValue:         ColorStyler(termenv.ANSIBlue),
		PartNullValue:            ColorStyler(termenv.ANSIBlue),
		PartUndefinedValue:       ColorStyler(termenv.ANSIBlue),
		PartPropertyKey:          ColorStyler(termenv.ANSIBrightCyan),
		PartSymbolicKey:          ColorStyler(termenv.ANSIBrightMagenta),
		PartFunctionName:         ColorStyler(termenv.ANSIBrightCyan),

		PartCircularObject: ColorStyler(termenv.ANSIBrightRed),

		PartArrayBeyondMaxDepth:    ColorStyler(termenv.ANSIBrightBlack),
		PartObjectBeyondMaxDepth:   ColorStyler(termenv.ANSIBrightBlack),
		PartFunctionBeyondMaxDepth: ColorStyler(termenv.ANSIBrightBlack),

		PartTreeNonLastBranch:       ColorStyler(termenv.ANSIBrightBlack),
		PartTreeNonLastContinuation: ColorStyler(termenv.ANSIBrightBlack),
		PartTreeLastBranch:          ColorStyler(termenv.ANSIBrightBlack),
		PartTreeLastContinuation:    ColorStyler(termenv.ANSIBrightBlack),

		PartTruncationStart: ColorStyler(termenv.ANSIBrightBlack),
		PartTruncationEnd:   ColorStyler(termenv.ANSIBrightBlack),
	}
}

func DefaultLightStyles() StyleMap {
	return StyleMap{
		PartStringContent:        ColorStyler(termenv.ANSI256Color(88)),
		PartStringStartDelimiter: ColorStyler(termenv.ANSI256Color(88)),
		PartStringEndDelimiter:   ColorStyler(termenv.ANSI256Color(88)),
		PartNumberValue:          ColorStyler(termenv.ANSI256Color(28)),
		PartBigIntSuffix:         ColorStyler(termenv.ANSI256Color(28)),
		PartBooleanValue:         ColorStyler(termenv.ANSI256Color(26)),
		PartNullValue:            ColorStyler(termenv.ANSI256Color(26)),
		PartUndefinedValue:       ColorStyler(termenv.ANSI256Color(26)),
		PartPropertyKey:          ColorStyler(termenv.ANSI256Color(27)),
		PartSymbolicKey:          ColorStyler(termenv.ANSI256Color(90)),
		PartFunctionName:         ColorStyler(termenv.ANSI256Color(27)),

		PartCircularObject: ColorStyler(termenv.ANSI256Color(160)),

		PartArrayBeyondMaxDepth:    ColorStyler(termenv.ANSIBrightBlack),
		PartObjectBeyondMaxDepth:   ColorStyler(termenv.ANSIBrightBlack),
		PartFunctionBeyondMaxDepth: ColorStyler(termenv.ANSIBrightBlack),

		PartTreeNonLastBranch:       ColorStyler(termenv.ANSIBrightBlack),
		PartTreeNonLastContinuation: ColorStyler(termenv.ANSIBrightBlack),
		PartTreeLastBranch:          ColorStyler(termenv.ANSIBrightBlack),
		PartTreeLastContinuation:    ColorStyler(termenv.ANSIBrightBlack),

		PartTruncationStart: ColorStyler(termenv.ANSIBrightBlack),
		PartTruncationEnd:   ColorStyler(termenv.ANSIBrightBlack),
	}
}
