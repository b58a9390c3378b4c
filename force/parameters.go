// File: parameters.go
// Role: indexed parameter table with bounds-checked access.

package force

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange is wrapped by every accessor given an index outside [0, Count()).
var ErrIndexOutOfRange = errors.New("force: parameter index out of range")

// Param declares one parameter.
type Param struct {
	Name  string
	Value float64
	Min   float64
	Max   float64
}

// Parameters is a fixed-size table of parameters.
type Parameters struct {
	params []Param
}

// NewParameters returns a table holding a copy of params, in order.
func NewParameters(params ...Param) *Parameters {
	return &Parameters{params: append([]Param(nil), params...)}
}

// Count returns the number of parameters; 0 for a nil table.
func (p *Parameters) Count() int {
	if p == nil {
		return 0
	}

	return len(p.params)
}

func (p *Parameters) slot(i int) (*Param, error) {
	if i < 0 || i >= p.Count() {
		return nil, fmt.Errorf("%w: index %d, count %d", ErrIndexOutOfRange, i, p.Count())
	}

	return &p.params[i], nil
}

// Name returns the name of parameter i.
func (p *Parameters) Name(i int) (string, error) {
	s, err := p.slot(i)
	if err != nil {
		return "", err
	}

	return s.Name, nil
}

// Value returns the current value of parameter i.
func (p *Parameters) Value(i int) (float64, error) {
	s, err := p.slot(i)
	if err != nil {
		return 0, err
	}

	return s.Value, nil
}

// Min returns the lower bound of parameter i.
func (p *Parameters) Min(i int) (float64, error) {
	s, err := p.slot(i)
	if err != nil {
		return 0, err
	}

	return s.Min, nil
}

// Max returns the upper bound of parameter i.
func (p *Parameters) Max(i int) (float64, error) {
	s, err := p.slot(i)
	if err != nil {
		return 0, err
	}

	return s.Max, nil
}

// SetValue sets the value of parameter i.
func (p *Parameters) SetValue(i int, v float64) error {
	s, err := p.slot(i)
	if err != nil {
		return err
	}
	s.Value = v

	return nil
}

// SetMin sets the lower bound of parameter i.
func (p *Parameters) SetMin(i int, v float64) error {
	s, err := p.slot(i)
	if err != nil {
		return err
	}
	s.Min = v

	return nil
}

// SetMax sets the upper bound of parameter i.
func (p *Parameters) SetMax(i int, v float64) error {
	s, err := p.slot(i)
	if err != nil {
		return err
	}
	s.Max = v

	return nil
}

// Index returns the index of the parameter called name.
func (p *Parameters) Index(name string) (int, bool) {
	for i := 0; i < p.Count(); i++ {
		if p.params[i].Name == name {
			return i, true
		}
	}

	return -1, false
}
