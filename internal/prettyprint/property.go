package prettyprint

import "slices"

// PropertyFormatter combines a child's key (if any) with its already
// stringified value into one property block.
type PropertyFormatter interface {
	format(child *Node, value Stringified, pr *Printer) Stringified
}

// ValueOnlyPropertyFormatter shows the value alone; it is the default for
// array elements.
func ValueOnlyPropertyFormatter() PropertyFormatter { return valueOnlyProperty{} }

type valueOnlyProperty struct{}

func (valueOnlyProperty) format(_ *Node, value Stringified, _ *Printer) Stringified {
	return value
}

// KeyAndValuePropertyFormatter renders the key, the key separator mark, then
// the value. Only the first line of a multi-line value gets the key prefix;
// continuation lines are left as-is.
func KeyAndValuePropertyFormatter() PropertyFormatter { return keyAndValueProperty{} }

type keyAndValueProperty struct{}

func (keyAndValueProperty) format(child *Node, value Stringified, pr *Printer) Stringified {
	if !child.key.present {
		return value
	}

	keyPart := PartPropertyKey
	if child.hasSymbolicKey {
		keyPart = PartSymbolicKey
	}

	var key Line
	if child.key.symbolic || isBareKey(child.key.text) {
		key = key.appendStyled(pr, keyPart, child.key.text)
	} else {
		key = key.appendMark(pr, PartStringStartDelimiter)
		key = key.appendStyled(pr, keyPart, child.key.text)
		key = key.appendMark(pr, PartStringEndDelimiter)
	}
	key = key.appendMark(pr, PartPropertyKeySeparator)

	lines := slices.Clone(value.lines)
	lines[0] = key.appendLine(lines[0])
	return Stringified{lines: lines}
}

// isBareKey reports whether a key can be shown without string delimiters.
func isBareKey(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '_', r == '$':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
