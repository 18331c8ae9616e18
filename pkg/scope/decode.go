package scope

import (
	"errors"
	"fmt"

	jsoniter "github.com/json-iterator/go"

	"github.com/leapstack-labs/shapelint/pkg/token"
)

// ErrMalformed is returned when binding table JSON cannot be decoded.
var ErrMalformed = errors.New("malformed binding table")

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type wireTable struct {
	Variables []wireVariable `json:"variables"`
}

type wireVariable struct {
	Name       string          `json:"name"`
	Kind       Kind            `json:"kind"`
	References []wireReference `json:"references"`
}

type wireReference struct {
	Range    []int `json:"range"`
	Start    *int  `json:"start"`
	End      *int  `json:"end"`
	Init     bool  `json:"init"`
	TypeOnly bool  `json:"typeOnly"`
}

func (r wireReference) offsets() (int, int, error) {
	switch {
	case len(r.Range) == 2:
		return r.Range[0], r.Range[1], nil
	case r.Start != nil && r.End != nil:
		return *r.Start, *r.End, nil
	default:
		return 0, 0, errors.New("reference has no range")
	}
}

// Decode parses a binding table of the form
//
//	{"variables":[{"name":"x","kind":"variable","references":[{"range":[0,1],"init":true}]}]}
//
// Reference positions are resolved against lines, which may be nil.
func Decode(data []byte, lines *token.LineIndex) (*Module, error) {
	var wt wireTable
	if err := json.Unmarshal(data, &wt); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	m := NewModule()
	for i, wv := range wt.Variables {
		if wv.Name == "" {
			return nil, fmt.Errorf("%w: variable %d has no name", ErrMalformed, i)
		}
		v := &Variable{Name: wv.Name, Kind: wv.Kind}
		if v.Kind == "" {
			v.Kind = KindVariable
		}
		for j, wr := range wv.References {
			start, end, err := wr.offsets()
			if err != nil {
				return nil, fmt.Errorf("%w: %s reference %d: %v", ErrMalformed, wv.Name, j, err)
			}
			v.References = append(v.References, Reference{
				Span:     spanOf(lines, start, end),
				Init:     wr.Init,
				TypeOnly: wr.TypeOnly,
			})
		}
		m.Add(v)
	}
	return m, nil
}

func spanOf(lines *token.LineIndex, start, end int) token.Span {
	if lines == nil {
		return token.Span{Start: token.Position{Offset: start}, End: token.Position{Offset: end}}
	}
	return lines.Span(start, end)
}
