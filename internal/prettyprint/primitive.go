package prettyprint

import (
	"fmt"
	"math/big"
	"reflect"
	"runtime"
	"strconv"
	"strings"
)

// primitiveLeaf formats a primitive node as a single styled line. The switch
// is exhaustive over the primitive kinds; reaching the default case is a
// programming error, not bad input.
func (e *engine) primitiveLeaf(n *Node) Stringified {
	pr := e.printer
	var line Line

	switch {
	case n.isNil:
		line = line.appendMark(pr, PartNullValue)
	case !n.value.IsValid():
		line = line.appendMark(pr, PartUndefinedValue)
	case isBigInt(n.value):
		bi := n.value.Interface().(big.Int)
		line = line.appendStyled(pr, PartNumberValue, (&bi).Text(10))
		line = line.appendMark(pr, PartBigIntSuffix)
	default:
		switch n.value.Kind() {
		case reflect.String:
			line = line.appendMark(pr, PartStringStartDelimiter)
			line = line.appendStyled(pr, PartStringContent, n.value.String())
			line = line.appendMark(pr, PartStringEndDelimiter)
		case reflect.Bool:
			line = line.appendStyled(pr, PartBooleanValue, strconv.FormatBool(n.value.Bool()))
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			line = line.appendStyled(pr, PartNumberValue, strconv.FormatInt(n.value.Int(), 10))
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			line = line.appendStyled(pr, PartNumberValue, strconv.FormatUint(n.value.Uint(), 10))
		case reflect.Float32:
			line = line.appendStyled(pr, PartNumberValue, strconv.FormatFloat(n.value.Float(), 'g', -1, 32))
		case reflect.Float64:
			line = line.appendStyled(pr, PartNumberValue, strconv.FormatFloat(n.value.Float(), 'g', -1, 64))
		case reflect.Complex64:
			line = line.appendStyled(pr, PartNumberValue, strconv.FormatComplex(n.value.Complex(), 'g', -1, 64))
		case reflect.Complex128:
			line = line.appendStyled(pr, PartNumberValue, strconv.FormatComplex(n.value.Complex(), 'g', -1, 128))
		case reflect.Uintptr:
			line = line.appendStyled(pr, PartNumberValue, "0x"+strconv.FormatUint(n.value.Uint(), 16))
		case reflect.Chan, reflect.UnsafePointer:
			line = line.appendStyled(pr, PartNumberValue, "0x"+strconv.FormatUint(uint64(n.value.Pointer()), 16))
		default:
			panic(fmt.Errorf("unexpected primitive kind %s", n.value.Kind()))
		}
	}

	return stringifiedFromLine(line)
}

func (e *engine) functionLeaf(n *Node) Stringified {
	pr := e.printer
	var line Line
	line = line.appendMark(pr, PartFunctionStartDelimiter)

	name := functionName(n.value)
	if name == "" {
		line = line.appendMark(pr, PartAnonymousFunctionName)
	} else {
		line = line.appendStyled(pr, PartFunctionName, name)
	}

	line = line.appendMark(pr, PartFunctionEndDelimiter)
	return stringifiedFromLine(line)
}

func functionName(rv reflect.Value) string {
	fn := runtime.FuncForPC(rv.Pointer())
	if fn == nil {
		return ""
	}
	name := fn.Name()
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.IndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	name = strings.TrimSuffix(name, "-fm")
	if isSynthesizedFuncName(name[strings.LastIndexByte(name, '.')+1:]) {
		return ""
	}
	return name
}

// isSynthesizedFuncName reports whether the last name segment is one of the
// funcN names the runtime gives to anonymous functions.
func isSynthesizedFuncName(segment string) bool {
	if !strings.HasPrefix(segment, "func") || len(segment) == len("func") {
		return false
	}
	for _, r := range segment[len("func"):] {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
