package prettyprint

// RecordFormatter assembles the already formatted property blocks of a
// non-primitive node into the node's own Stringified value.
type RecordFormatter interface {
	format(n *Node, blocks []Stringified, pr *Printer) Stringified
}

func startPart(n *Node, singleLine bool) Part {
	if n.IsArray() {
		if singleLine {
			return PartSingleLineArrayStartDelimiter
		}
		return PartMultiLineArrayStartDelimiter
	}
	if singleLine {
		return PartSingleLineRecordStartDelimiter
	}
	return PartMultiLineRecordStartDelimiter
}

func endPart(n *Node, singleLine bool) Part {
	if n.IsArray() {
		if singleLine {
			return PartSingleLineArrayEndDelimiter
		}
		return PartMultiLineArrayEndDelimiter
	}
	if singleLine {
		return PartSingleLineRecordEndDelimiter
	}
	return PartMultiLineRecordEndDelimiter
}

func emptyContainer(n *Node, pr *Printer) Stringified {
	part := PartEmptyRecord
	if n.IsArray() {
		part = PartEmptyArray
	}
	var line Line
	return stringifiedFromLine(line.appendMark(pr, part))
}

// SingleLineRecordFormatter joins all property blocks onto one line,
// separated by the single-line separator mark and wrapped in the single-line
// delimiters. Multi-line blocks are flattened.
func SingleLineRecordFormatter() RecordFormatter { return singleLineRecord{} }

type singleLineRecord struct{}

func (singleLineRecord) format(n *Node, blocks []Stringified, pr *Printer) Stringified {
	if len(blocks) == 0 {
		return emptyContainer(n, pr)
	}

	var line Line
	line = line.appendMark(pr, startPart(n, true))
	for i, b := range blocks {
		if i > 0 {
			line = line.appendMark(pr, PartSingleLineInBetweenPropertySeparator)
		}
		line = line.appendLine(b.flatten())
	}
	line = line.appendMark(pr, endPart(n, true))
	return stringifiedFromLine(line)
}

// MultiLineRecordFormatter places every property block on its own line(s),
// indented one level, with the multi-line separator mark appended to each
// non-last block and delimiters on their own lines.
func MultiLineRecordFormatter() RecordFormatter { return multiLineRecord{} }

type multiLineRecord struct{}

func (multiLineRecord) format(n *Node, blocks []Stringified, pr *Printer) Stringified {
	if len(blocks) == 0 {
		return emptyContainer(n, pr)
	}

	var start Line
	lines := []Line{start.appendMark(pr, startPart(n, false))}

	for i, b := range blocks {
		lastBlock := i == len(blocks)-1
		for j, bl := range b.lines {
			var l Line
			l = l.appendMark(pr, PartIndent)
			l = l.appendLine(bl)
			if !lastBlock && j == len(b.lines)-1 {
				l = l.appendMark(pr, PartMultiLineInBetweenPropertySeparator)
			}
			lines = append(lines, l)
		}
	}

	var end Line
	lines = append(lines, end.appendMark(pr, endPart(n, false)))
	return Stringified{lines: lines}
}

// TreeifyRecordFormatter prefixes every property block with tree-drawing
// marks: one branch mark on the block's first line and one continuation mark
// on each following line, both depending on whether the block is the last
// sibling.
func TreeifyRecordFormatter() RecordFormatter { return treeifyRecord{} }

type treeifyRecord struct{}

func (treeifyRecord) format(n *Node, blocks []Stringified, pr *Printer) Stringified {
	if len(blocks) == 0 {
		return emptyContainer(n, pr)
	}

	var lines []Line
	for i, b := range blocks {
		last := i == len(blocks)-1
		for j, bl := range b.lines {
			var part Part
			switch {
			case j == 0 && last:
				part = PartTreeLastBranch
			case j == 0:
				part = PartTreeNonLastBranch
			case last:
				part = PartTreeLastContinuation
			default:
				part = PartTreeNonLastContinuation
			}
			var l Line
			l = l.appendMark(pr, part)
			lines = append(lines, l.appendLine(bl))
		}
	}
	return Stringified{lines: lines}
}

// ThresholdLimits configures when ThresholdRecordFormatter switches from the
// single-line to the multi-line layout. A zero limit is unset; at least one
// limit must be set. Values at a limit stay single-line, values beyond it go
// multi-line.
type ThresholdLimits struct {
	// MaxProperties bounds the number of property blocks.
	MaxProperties int
	// MaxTotalWidth bounds the width of the whole single-line rendering,
	// styling sequences excluded.
	MaxTotalWidth int
	// MaxPropertyWidth bounds the width of the widest single block.
	MaxPropertyWidth int
}

func ThresholdRecordFormatter(limits ThresholdLimits) RecordFormatter {
	return thresholdRecord{limits: limits}
}

type thresholdRecord struct {
	limits ThresholdLimits
}

func (f thresholdRecord) validate() error {
	l := f.limits
	if l.MaxProperties < 0 || l.MaxTotalWidth < 0 || l.MaxPropertyWidth < 0 {
		return configErrorf("threshold limits must not be negative")
	}
	if l.MaxProperties == 0 && l.MaxTotalWidth == 0 && l.MaxPropertyWidth == 0 {
		return configErrorf("threshold formatter needs at least one limit")
	}
	return nil
}

func (f thresholdRecord) format(n *Node, blocks []Stringified, pr *Printer) Stringified {
	if len(blocks) == 0 {
		return emptyContainer(n, pr)
	}

	exceeded := false
	if f.limits.MaxProperties > 0 && len(blocks) > f.limits.MaxProperties {
		exceeded = true
	}
	if f.limits.MaxPropertyWidth > 0 {
		for _, b := range blocks {
			if b.maxLineWidth() > f.limits.MaxPropertyWidth {
				exceeded = true
				break
			}
		}
	}
	for _, b := range blocks {
		if !b.isSingleLine() {
			exceeded = true
			break
		}
	}

	if exceeded {
		return multiLineRecord{}.format(n, blocks, pr)
	}

	single := singleLineRecord{}.format(n, blocks, pr)
	if f.limits.MaxTotalWidth > 0 && single.lines[0].width > f.limits.MaxTotalWidth {
		return multiLineRecord{}.format(n, blocks, pr)
	}
	return single
}
