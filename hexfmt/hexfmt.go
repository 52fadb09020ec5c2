// Package hexfmt renders arbitrary Go values with their integers in base 16.
//
// Two layouts are supported. Compact puts a single "0x" in front of the whole
// rendering and keeps containers on one line:
//
//	hexfmt.Format(0x50, hexfmt.Compact)              // 0x50
//	hexfmt.Format([]byte{0, 1, 2}, hexfmt.Compact)   // 0x[00, 01, 02]
//
// Pretty prefixes every integer and puts each container element on its own line:
//
//	hexfmt.Format([]byte{0, 1}, hexfmt.Pretty)
//	// [
//	//     0x00,
//	//     0x01,
//	// ]
//
// Integers are written as two's complement at the width of their type, with at
// least two digits, so int8(-1) renders as ff and int32(-1) as ffffffff.
package hexfmt

import (
	"reflect"
	"strconv"
	"strings"

	"facette.io/natsort"
)

// Mode selects the layout used by Format.
type Mode int

const (
	// Compact renders on a single line with one leading "0x".
	Compact Mode = iota

	// Pretty renders one container element per line with "0x" on every integer.
	Pretty
)

const indent = "    "

// String returns the name of the mode.
func (m Mode) String() string {
	switch m {
	case Compact:
		return "compact"
	case Pretty:
		return "pretty"
	default:
		return "mode(" + strconv.Itoa(int(m)) + ")"
	}
}

// Formatter is implemented by types that render themselves in hex.
// The returned text is used verbatim wherever the value appears,
// including as an element of a slice, map or struct.
type Formatter interface {
	FormatHex(mode Mode) string
}

// Format returns the hex rendering of value in the given mode.
func Format(value any, mode Mode) string {
	p := &printer{
		mode:    mode,
		visited: make(map[visit]struct{}),
	}

	out := p.render(reflect.ValueOf(value), 0)

	if mode == Compact {
		return "0x" + out
	}

	return out
}

type printer struct {
	mode    Mode
	visited map[visit]struct{}
}

// visit identifies a pointer, map or slice on the current rendering path. The
// type is part of the key because a struct and its first field share an address,
// and the length because subslices share their backing array.
type visit struct {
	addr uintptr
	typ  reflect.Type
	len  int
}

func (p *printer) render(val reflect.Value, depth int) string { //nolint:cyclop
	if !val.IsValid() {
		return "nil"
	}

	if out, ok := p.formatter(val); ok {
		return out
	}

	switch val.Kind() { //nolint:exhaustive
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return p.integer(uint64(val.Int()) & mask(val.Type().Bits())) //nolint:gosec
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return p.integer(val.Uint())
	case reflect.Bool:
		return strconv.FormatBool(val.Bool())
	case reflect.String:
		return strconv.Quote(val.String())
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(val.Float(), 'g', -1, val.Type().Bits())
	case reflect.Complex64, reflect.Complex128:
		return strconv.FormatComplex(val.Complex(), 'g', -1, val.Type().Bits())
	case reflect.Slice, reflect.Array:
		return p.sequence(val, depth)
	case reflect.Map:
		return p.mapping(val, depth)
	case reflect.Struct:
		return p.structure(val, depth)
	case reflect.Pointer:
		return p.pointer(val, depth)
	case reflect.Interface:
		if val.IsNil() {
			return "nil"
		}

		return p.render(val.Elem(), depth)
	default:
		// Funcs, channels and unsafe pointers have no meaningful hex form.
		if val.IsNil() {
			return "nil"
		}

		return val.Type().String()
	}
}

func (p *printer) formatter(val reflect.Value) (string, bool) {
	if !val.CanInterface() {
		return "", false
	}

	if val.Kind() == reflect.Pointer && val.IsNil() {
		return "", false
	}

	f, ok := val.Interface().(Formatter)
	if !ok {
		return "", false
	}

	return f.FormatHex(p.mode), true
}

func (p *printer) integer(bits uint64) string {
	digits := strconv.FormatUint(bits, 16)
	if len(digits) < 2 {
		digits = "0" + digits
	}

	if p.mode == Pretty {
		return "0x" + digits
	}

	return digits
}

func (p *printer) sequence(val reflect.Value, depth int) string {
	if val.Kind() == reflect.Slice && val.Len() > 0 {
		if p.enter(val) {
			return "<cycle>"
		}
		defer p.leave(val)
	}

	items := make([]string, val.Len())

	for i := range items {
		items[i] = p.render(val.Index(i), depth+1)
	}

	return p.join("[", items, "]", depth)
}

func (p *printer) mapping(val reflect.Value, depth int) string {
	if val.IsNil() || val.Len() == 0 {
		return "{}"
	}

	if p.enter(val) {
		return "<cycle>"
	}
	defer p.leave(val)

	// Rendered keys may collide (e.g. int8(1) and int16(1) under an any key),
	// so values are grouped per rendered key.
	entries := make(map[string][]string, val.Len())
	keys := make([]string, 0, val.Len())

	iter := val.MapRange()
	for iter.Next() {
		key := p.render(iter.Key(), depth+1)
		if _, seen := entries[key]; !seen {
			keys = append(keys, key)
		}

		entries[key] = append(entries[key], p.render(iter.Value(), depth+1))
	}

	natsort.Sort(keys)

	items := make([]string, 0, val.Len())

	for _, key := range keys {
		values := entries[key]

		// Map iteration order is random; keep the output deterministic.
		natsort.Sort(values)

		for _, value := range values {
			items = append(items, key+": "+value)
		}
	}

	return p.join("{", items, "}", depth)
}

func (p *printer) structure(val reflect.Value, depth int) string {
	typ := val.Type()
	items := make([]string, typ.NumField())

	for i := range items {
		items[i] = typ.Field(i).Name + ": " + p.render(val.Field(i), depth+1)
	}

	return typ.Name() + p.join("{", items, "}", depth)
}

func (p *printer) pointer(val reflect.Value, depth int) string {
	if val.IsNil() {
		return "nil"
	}

	if p.enter(val) {
		return "<cycle>"
	}
	defer p.leave(val)

	return "&" + p.render(val.Elem(), depth)
}

// enter records val as being rendered and reports whether it already was.
func (p *printer) enter(val reflect.Value) bool {
	key := visitOf(val)
	if _, ok := p.visited[key]; ok {
		return true
	}

	p.visited[key] = struct{}{}

	return false
}

func (p *printer) leave(val reflect.Value) {
	delete(p.visited, visitOf(val))
}

func visitOf(val reflect.Value) visit {
	key := visit{addr: val.Pointer(), typ: val.Type()}
	if val.Kind() == reflect.Slice {
		key.len = val.Len()
	}

	return key
}

func (p *printer) join(open string, items []string, closing string, depth int) string {
	if len(items) == 0 {
		return open + closing
	}

	if p.mode != Pretty {
		return open + strings.Join(items, ", ") + closing
	}

	var sb strings.Builder

	sb.WriteString(open)
	sb.WriteString("\n")

	for _, item := range items {
		sb.WriteString(strings.Repeat(indent, depth+1))
		sb.WriteString(item)
		sb.WriteString(",\n")
	}

	sb.WriteString(strings.Repeat(indent, depth))
	sb.WriteString(closing)

	return sb.String()
}

func mask(bits int) uint64 {
	if bits >= 64 { //nolint:mnd
		return ^uint64(0)
	}

	return 1<<bits - 1
}
