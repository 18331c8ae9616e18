package estree

import (
	"errors"
	"fmt"

	jsoniter "github.com/json-iterator/go"

	"github.com/leapstack-labs/shapelint/pkg/token"
)

// Decoding errors.
var (
	// ErrMalformed is returned when the input is not a JSON syntax tree.
	ErrMalformed = errors.New("malformed syntax tree")
	// ErrNotProgram is returned by DecodeProgram when the root is not a Program.
	ErrNotProgram = errors.New("root node is not a Program")
)

// Keys consumed into Node.Span instead of being kept as fields.
var spanKeys = map[string]bool{"range": true, "start": true, "end": true, "loc": true}

// Decode parses ESTree JSON into a node tree. src is the source text the tree
// was produced from and may be empty. When it is given, span offsets are
// converted from UTF-16 units to byte offsets into src and line and column
// come from src. Otherwise offsets are kept as emitted and loc supplies line
// and column.
func Decode(data []byte, src string) (*Node, error) {
	d := &decoder{iter: jsoniter.ParseBytes(jsoniter.ConfigDefault, data)}
	if src != "" {
		d.lines = token.NewLineIndex(src)
	}

	v := d.value()
	if err := d.iter.Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	root, ok := v.(*Node)
	if !ok || root == nil {
		return nil, fmt.Errorf("%w: root value is not a node", ErrMalformed)
	}
	return root, nil
}

// DecodeProgram is Decode for a whole file; the root must be a Program.
func DecodeProgram(data []byte, src string) (*Node, error) {
	root, err := Decode(data, src)
	if err != nil {
		return nil, err
	}
	if root.Type != KindProgram {
		return nil, fmt.Errorf("%w: got %s", ErrNotProgram, root.Type)
	}
	return root, nil
}

type decoder struct {
	iter  *jsoniter.Iterator
	lines *token.LineIndex
}

func (d *decoder) value() any {
	switch d.iter.WhatIsNext() {
	case jsoniter.ObjectValue:
		return d.object()
	case jsoniter.ArrayValue:
		return d.array()
	case jsoniter.StringValue:
		return d.iter.ReadString()
	case jsoniter.NumberValue:
		return d.iter.ReadFloat64()
	case jsoniter.BoolValue:
		return d.iter.ReadBool()
	case jsoniter.NilValue:
		d.iter.ReadNil()
		return nil
	default:
		d.iter.ReportError("decode", "unexpected JSON value")
		return nil
	}
}

func (d *decoder) object() any {
	var fields []Field
	for key := d.iter.ReadObject(); key != ""; key = d.iter.ReadObject() {
		if key == "parent" {
			d.iter.Skip()
			continue
		}
		fields = append(fields, Field{Name: key, Value: d.value()})
	}

	typ, ok := typeOf(fields)
	if !ok {
		m := make(map[string]any, len(fields))
		for _, f := range fields {
			m[f.Name] = f.Value
		}
		return m
	}

	kept := make([]Field, 0, len(fields))
	var span spanInfo
	for _, f := range fields {
		switch {
		case f.Name == "type":
		case spanKeys[f.Name]:
			span.set(f.Name, f.Value)
		default:
			kept = append(kept, f)
		}
	}
	return New(typ, span.resolve(d.lines), kept...)
}

func (d *decoder) array() any {
	var items []any
	for d.iter.ReadArray() {
		items = append(items, d.value())
	}
	nodes := make([]*Node, 0, len(items))
	for _, item := range items {
		switch v := item.(type) {
		case *Node:
			nodes = append(nodes, v)
		case nil:
			nodes = append(nodes, nil)
		default:
			return items
		}
	}
	return nodes
}

func typeOf(fields []Field) (string, bool) {
	for _, f := range fields {
		if f.Name == "type" {
			s, ok := f.Value.(string)
			return s, ok && s != ""
		}
	}
	return "", false
}

// spanInfo gathers the location keys different frontends emit:
// acorn uses start/end, typescript-estree uses range, both may add loc.
type spanInfo struct {
	start, end int
	hasOffsets bool
	loc        map[string]any
}

func (s *spanInfo) set(key string, v any) {
	switch key {
	case "range":
		if r, ok := v.([]any); ok && len(r) == 2 {
			a, aok := r[0].(float64)
			b, bok := r[1].(float64)
			if aok && bok {
				s.start, s.end, s.hasOffsets = int(a), int(b), true
			}
		}
	case "start":
		if f, ok := v.(float64); ok && !s.hasOffsets {
			s.start = int(f)
		}
	case "end":
		if f, ok := v.(float64); ok && !s.hasOffsets {
			s.end = int(f)
		}
	case "loc":
		s.loc, _ = v.(map[string]any)
	}
}

func (s *spanInfo) resolve(lines *token.LineIndex) token.Span {
	if lines != nil {
		return lines.Span(s.start, s.end)
	}
	span := token.Span{
		Start: token.Position{Offset: s.start},
		End:   token.Position{Offset: s.end},
	}
	if start, end, ok := s.lineColumns(); ok {
		span.Start.Line, span.Start.Column = start[0], start[1]
		span.End.Line, span.End.Column = end[0], end[1]
	}
	return span
}

// lineColumns converts ESTree loc (1-based lines, 0-based columns) into
// 1-based line/column pairs.
func (s *spanInfo) lineColumns() (start, end [2]int, ok bool) {
	if s.loc == nil {
		return start, end, false
	}
	read := func(key string) ([2]int, bool) {
		p, ok := s.loc[key].(map[string]any)
		if !ok {
			return [2]int{}, false
		}
		line, lok := p["line"].(float64)
		col, cok := p["column"].(float64)
		return [2]int{int(line), int(col) + 1}, lok && cok
	}
	start, sok := read("start")
	end, eok := read("end")
	return start, end, sok && eok
}
