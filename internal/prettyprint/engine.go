package prettyprint

import (
	"slices"
	"strconv"
	"unicode/utf8"

	"github.com/prettyfmt/prettyfmt/internal/utils"
)

// engine runs one stringification: an explicit-stack unfold of the value
// graph into nodes, then a fold of the nodes back into text, bottom-up. It
// never uses call-stack recursion, so arbitrarily deep values cannot
// overflow the stack. All engine state is local to one call.
type engine struct {
	printer *Printer
	policy  *Policy

	order          []*Node // discovery order; folding walks it backwards
	refOwners      map[refIdentity]*Node
	cycleIndexes   map[refIdentity]int
	nextCycleIndex int
}

func newEngine(pr *Printer) *engine {
	return &engine{
		printer:      pr,
		policy:       &pr.policy,
		refOwners:    map[refIdentity]*Node{},
		cycleIndexes: map[refIdentity]int{},
	}
}

func (e *engine) stringify(v any) (result Stringified, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = &PropertyAccessError{cause: utils.ConvertPanicValueToError(rec)}
		}
	}()

	root := makeTopNode(v)
	e.unfold(root)
	e.fold()
	return root.result, nil
}

func (e *engine) unfold(root *Node) {
	stack := []*Node{root}

	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		e.order = append(e.order, n)

		if ref, ok := e.findCycle(n); ok {
			idx := e.cycleIndexes[ref]
			if idx == 0 {
				e.nextCycleIndex++
				idx = e.nextCycleIndex
				e.cycleIndexes[ref] = idx
				e.refOwners[ref].refMark = idx
			}
			n.leaf = true
			n.cycleIndex = idx
			n.result = e.circularLeaf(idx)
			continue
		}

		if e.policy.byPasser != nil {
			if text, ok := e.policy.byPasser(n.interfaceValue()); ok {
				n.leaf = true
				n.result = bypassLeaf(text)
				continue
			}
		}

		if n.IsNonPrimitive() && n.depth >= e.policy.maxDepth {
			n.leaf = true
			n.result = e.beyondMaxDepthLeaf(n)
			continue
		}

		if n.IsFunction() {
			n.leaf = true
			n.result = e.functionLeaf(n)
			continue
		}

		if n.IsPrimitive() {
			n.leaf = true
			n.result = e.primitiveLeaf(n)
			continue
		}

		for _, r := range n.refs {
			e.refOwners[r] = n
		}

		children := expandProperties(n, e.policy.maxSourceDepth)
		children = e.applyFilters(children)
		if e.policy.sortOrder != nil {
			slices.SortStableFunc(children, e.policy.sortOrder)
		}
		if e.policy.dedupe {
			children = dedupeByKey(children)
		}
		if len(children) > e.policy.maxPropertyNumber {
			n.truncated = len(children) - e.policy.maxPropertyNumber
			children = children[:e.policy.maxPropertyNumber]
		}
		n.children = children

		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, children[i])
		}
	}
}

func (e *engine) fold() {
	for i := len(e.order) - 1; i >= 0; i-- {
		n := e.order[i]

		if !n.leaf {
			pf := e.propertyFormatterFor(n)
			blocks := utils.MapSlice(n.children, func(c *Node) Stringified {
				return pf.format(c, c.result, e.printer)
			})
			if n.truncated > 0 {
				blocks = append(blocks, e.truncationBlock(n.truncated))
			}
			n.result = e.recordFormatterFor(n).format(n, blocks, e.printer)
		}

		if n.refMark > 0 {
			n.result = e.annotateRef(n.result, n.refMark)
		}
	}
}

// findCycle reports whether one of the node's own reference identities equals
// one of its ancestors'.
func (e *engine) findCycle(n *Node) (refIdentity, bool) {
	for _, r := range n.refs {
		if utils.SliceContains(n.parents, r) {
			return r, true
		}
	}
	return refIdentity{}, false
}

func (e *engine) applyFilters(children []*Node) []*Node {
	for _, filter := range e.policy.filters {
		children = utils.FilterSlice(children, filter)
	}
	return children
}

// dedupeByKey keeps the first occurrence of every key in the given (already
// sorted) order. Unkeyed children are always kept.
func dedupeByKey(children []*Node) []*Node {
	seen := make(map[string]struct{}, len(children))
	result := make([]*Node, 0, len(children))

	for _, c := range children {
		if !c.key.present {
			result = append(result, c)
			continue
		}
		if _, ok := seen[c.key.text]; ok {
			continue
		}
		seen[c.key.text] = struct{}{}
		result = append(result, c)
	}
	return result
}

func (e *engine) propertyFormatterFor(n *Node) PropertyFormatter {
	if e.policy.propertyFormatter != nil {
		return e.policy.propertyFormatter
	}
	if n.IsArray() {
		return valueOnlyProperty{}
	}
	return keyAndValueProperty{}
}

func (e *engine) recordFormatterFor(n *Node) RecordFormatter {
	if n.IsArray() {
		return e.policy.arrayFormatter
	}
	return e.policy.recordFormatter
}

func (e *engine) circularLeaf(index int) Stringified {
	marks := e.policy.marks
	text := marks.mark(PartCircularReferenceStart) + strconv.Itoa(index) + marks.mark(PartCircularReferenceEnd)
	var line Line
	return stringifiedFromLine(line.appendStyled(e.printer, PartCircularObject, text))
}

// annotateRef prepends the reference mark to the first line of the result of
// a node some descendant cycles back to, so back-reference and target are
// visually correlated.
func (e *engine) annotateRef(s Stringified, index int) Stringified {
	marks := e.policy.marks
	text := marks.mark(PartReferenceMarkStart) + strconv.Itoa(index) + marks.mark(PartReferenceMarkEnd)

	var mark Line
	mark = mark.appendStyled(e.printer, PartCircularObject, text)

	lines := slices.Clone(s.lines)
	lines[0] = lines[0].prepend(mark.display, mark.width)
	return Stringified{lines: lines}
}

func (e *engine) beyondMaxDepthLeaf(n *Node) Stringified {
	part := PartObjectBeyondMaxDepth
	switch {
	case n.IsArray():
		part = PartArrayBeyondMaxDepth
	case n.IsFunction():
		part = PartFunctionBeyondMaxDepth
	}
	var line Line
	return stringifiedFromLine(line.appendMark(e.printer, part))
}

func (e *engine) truncationBlock(count int) Stringified {
	var line Line
	line = line.appendMark(e.printer, PartTruncationStart)
	line = line.appendStyled(e.printer, PartNumberValue, strconv.Itoa(count))
	line = line.appendMark(e.printer, PartTruncationEnd)
	return stringifiedFromLine(line)
}

func bypassLeaf(text string) Stringified {
	var line Line
	return stringifiedFromLine(line.append(text, utf8.RuneCountInString(text)))
}
