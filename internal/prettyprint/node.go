package prettyprint

import (
	"fmt"
	"math/big"
	"reflect"
	"slices"
	"strings"
	"unsafe"
)

// PropertyKey is the key under which a node's value was reached. Array and
// slice elements have no key. Map keys that are not strings are symbolic.
type PropertyKey struct {
	text     string
	symbolic bool
	present  bool
}

func (k PropertyKey) Text() string { return k.text }

// refIdentity is the reference identity of a pointer-like value, used for
// cycle detection.
type refIdentity struct {
	ptr  uintptr
	kind reflect.Kind
}

// Node wraps a raw value together with its traversal metadata. Nodes are
// immutable after creation except for the output fields the fold phase fills
// in exactly once (children, truncated, result, leaf, cycleIndex, refMark).
type Node struct {
	value reflect.Value // with pointers and interfaces unwrapped
	isNil bool

	depth       int
	sourceLevel int // embedding depth of the field this node was promoted from
	key         PropertyKey

	hasFunctionValue bool
	hasSymbolicKey   bool
	hasEnumerableKey bool

	refs    []refIdentity // identities occupied by this node's own value
	parents []refIdentity // identities of all reference-typed ancestors

	children   []*Node
	truncated  int
	leaf       bool
	result     Stringified
	cycleIndex int // > 0: this node is a back-reference to an ancestor
	refMark    int // > 0: some descendant cycles back to this node
}

func makeTopNode(v any) *Node {
	n := &Node{hasEnumerableKey: true}
	if v == nil {
		n.isNil = true
		return n
	}
	n.setValue(reflect.ValueOf(v))
	return n
}

func (n *Node) setValue(rv reflect.Value) {
	for {
		switch rv.Kind() {
		case reflect.Invalid:
			// happens for map entries whose key cannot be matched back,
			// e.g. NaN keys: MapKeys lists them but MapIndex misses
			n.value = rv
			return
		case reflect.Interface:
			if rv.IsNil() {
				n.isNil = true
				n.value = reflect.Value{}
				return
			}
			rv = rv.Elem()
		case reflect.Pointer:
			if rv.IsNil() {
				n.isNil = true
				n.value = reflect.Value{}
				return
			}
			n.refs = append(n.refs, refIdentity{ptr: rv.Pointer(), kind: reflect.Pointer})
			rv = rv.Elem()
		default:
			switch rv.Kind() {
			case reflect.Map, reflect.Slice:
				if !rv.IsNil() {
					n.refs = append(n.refs, refIdentity{ptr: rv.Pointer(), kind: rv.Kind()})
				}
			case reflect.Func:
				if rv.IsNil() {
					n.isNil = true
					n.value = reflect.Value{}
					return
				}
				n.hasFunctionValue = true
			}
			n.value = rv
			return
		}
	}
}

// interfaceValue exposes the node's raw value to caller hooks. Values that
// cannot be interfaced are reported as nil.
func (n *Node) interfaceValue() any {
	if n.isNil || !n.value.IsValid() || !n.value.CanInterface() {
		return nil
	}
	return n.value.Interface()
}

func (n *Node) Depth() int       { return n.depth }
func (n *Node) SourceLevel() int { return n.sourceLevel }
func (n *Node) Key() PropertyKey { return n.key }

func (n *Node) HasFunctionValue() bool { return n.hasFunctionValue }
func (n *Node) HasSymbolicKey() bool   { return n.hasSymbolicKey }
func (n *Node) HasEnumerableKey() bool { return n.hasEnumerableKey }

func (n *Node) IsPrimitive() bool {
	if n.isNil || !n.value.IsValid() {
		return true
	}
	if isBigInt(n.value) {
		return true
	}
	switch n.value.Kind() {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128,
		reflect.Chan, reflect.UnsafePointer:
		return true
	}
	return false
}

func (n *Node) IsArray() bool {
	if n.isNil {
		return false
	}
	k := n.value.Kind()
	return k == reflect.Slice || k == reflect.Array
}

func (n *Node) IsFunction() bool {
	return !n.isNil && n.value.Kind() == reflect.Func
}

func (n *Node) IsRecord() bool {
	if n.isNil || isBigInt(n.value) {
		return false
	}
	k := n.value.Kind()
	return k == reflect.Map || k == reflect.Struct
}

func (n *Node) IsNonPrimitive() bool {
	return n.IsArray() || n.IsFunction() || n.IsRecord()
}

var bigIntType = reflect.TypeOf(big.Int{})

func isBigInt(rv reflect.Value) bool {
	return rv.IsValid() && rv.Type() == bigIntType
}

func (n *Node) newChild(rv reflect.Value, key PropertyKey, enumerable bool, level int, parents []refIdentity) *Node {
	child := &Node{
		depth:            n.depth + 1,
		sourceLevel:      level,
		key:              key,
		hasSymbolicKey:   key.symbolic,
		hasEnumerableKey: enumerable,
		parents:          parents,
	}
	child.setValue(rv)
	return child
}

// expandProperties enumerates the constituent properties of a non-primitive
// node, in a deterministic order. Children share a single parents slice: the
// parent's parents plus the parent's own reference identities.
func expandProperties(n *Node, maxSourceDepth int) []*Node {
	parents := make([]refIdentity, 0, len(n.parents)+len(n.refs))
	parents = append(parents, n.parents...)
	parents = append(parents, n.refs...)

	var children []*Node

	switch n.value.Kind() {
	case reflect.Slice, reflect.Array:
		for i := 0; i < n.value.Len(); i++ {
			children = append(children, n.newChild(n.value.Index(i), PropertyKey{}, true, 0, parents))
		}
	case reflect.Map:
		keys := n.value.MapKeys()
		propKeys := make([]PropertyKey, len(keys))
		for i, k := range keys {
			propKeys[i] = mapPropertyKey(k)
		}
		order := make([]int, len(keys))
		for i := range order {
			order[i] = i
		}
		// map iteration order is random; fix it so output is stable even
		// with no sort order configured
		slices.SortStableFunc(order, func(a, b int) int {
			return strings.Compare(propKeys[a].text, propKeys[b].text)
		})
		for _, i := range order {
			children = append(children, n.newChild(n.value.MapIndex(keys[i]), propKeys[i], true, 0, parents))
		}
	case reflect.Struct:
		children = appendStructProperties(children, n, addressableStruct(n.value), 0, maxSourceDepth, parents)
	}

	return children
}

// appendStructProperties collects the fields of a struct. Fields promoted
// from embedded structs are collected up to maxLevel embedding hops, with
// their source level recorded; deeper embedded structs are rendered as
// regular properties. Unexported fields are enumerated as non-enumerable.
func appendStructProperties(dst []*Node, n *Node, st reflect.Value, level, maxLevel int, parents []refIdentity) []*Node {
	t := st.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		fv := readField(st, i)

		if field.Anonymous && level < maxLevel {
			ev := fv
			for ev.Kind() == reflect.Pointer && !ev.IsNil() {
				ev = ev.Elem()
			}
			if ev.Kind() == reflect.Struct {
				dst = appendStructProperties(dst, n, addressableStruct(ev), level+1, maxLevel, parents)
				continue
			}
		}

		key := PropertyKey{text: field.Name, present: true}
		dst = append(dst, n.newChild(fv, key, field.IsExported(), level, parents))
	}

	return dst
}

func mapPropertyKey(k reflect.Value) PropertyKey {
	for k.Kind() == reflect.Interface && !k.IsNil() {
		k = k.Elem()
	}
	if k.Kind() == reflect.String {
		return PropertyKey{text: k.String(), present: true}
	}
	return PropertyKey{text: fmt.Sprintf("%v", k), symbolic: true, present: true}
}

// addressableStruct returns v itself if addressable, or an addressable copy.
// Fields of an addressable struct can be read even when unexported.
func addressableStruct(v reflect.Value) reflect.Value {
	if v.CanAddr() {
		return v
	}
	cp := reflect.New(v.Type()).Elem()
	cp.Set(v)
	return cp
}

func readField(st reflect.Value, i int) reflect.Value {
	f := st.Field(i)
	if f.CanInterface() {
		return f
	}
	return reflect.NewAt(f.Type(), unsafe.Pointer(f.UnsafeAddr())).Elem()
}
