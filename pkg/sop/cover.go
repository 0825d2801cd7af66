package sop

import (
	"fmt"
	"strings"
)

// Lit represents the polarity of one variable inside a cube
type Lit int8

const (
	None Lit = iota // Variable does not appear in the cube
	Pos             // Variable appears positive
	Neg             // Variable appears negated
)

// String returns the cover-row character for the literal
func (l Lit) String() string {
	switch l {
	case None:
		return "-"
	case Pos:
		return "1"
	case Neg:
		return "0"
	default:
		return "?"
	}
}

// Cube is one product term: a polarity per cover variable
type Cube []Lit

// LitNum returns the number of literals actually present in the cube
func (c Cube) LitNum() int {
	n := 0
	for _, l := range c {
		if l != None {
			n++
		}
	}
	return n
}

// Cover represents a sum-of-products over a fixed number of variables.
// Variable positions correspond to the fanin order of the node that owns
// the cover.
type Cover struct {
	NVars int
	Cubes []Cube
}

// NewCover creates an empty cover over nVars variables
func NewCover(nVars int) *Cover {
	return &Cover{
		NVars: nVars,
		Cubes: make([]Cube, 0),
	}
}

// AddCube appends a product term to the cover
func (c *Cover) AddCube(cube Cube) error {
	if len(cube) != c.NVars {
		return fmt.Errorf("cube has %d columns, cover has %d variables", len(cube), c.NVars)
	}
	c.Cubes = append(c.Cubes, cube)
	return nil
}

// VarNum returns the number of variables (columns) of the cover
func (c *Cover) VarNum() int {
	return c.NVars
}

// CubeNum returns the number of product terms in the cover
func (c *Cover) CubeNum() int {
	return len(c.Cubes)
}

// SuppVarNum returns the number of variables that appear in at least one cube
func (c *Cover) SuppVarNum() int {
	n := 0
	for v := 0; v < c.NVars; v++ {
		for _, cube := range c.Cubes {
			if cube[v] != None {
				n++
				break
			}
		}
	}
	return n
}

// LitNum returns the total number of literals across all cubes
func (c *Cover) LitNum() int {
	n := 0
	for _, cube := range c.Cubes {
		n += cube.LitNum()
	}
	return n
}

// Dup returns a deep copy of the cover
func (c *Cover) Dup() *Cover {
	dup := NewCover(c.NVars)
	for _, cube := range c.Cubes {
		row := make(Cube, len(cube))
		copy(row, cube)
		dup.Cubes = append(dup.Cubes, row)
	}
	return dup
}

// String returns the cover as newline-separated rows of '0', '1' and '-'
func (c *Cover) String() string {
	var builder strings.Builder
	for i, cube := range c.Cubes {
		if i > 0 {
			builder.WriteString("\n")
		}
		for _, l := range cube {
			builder.WriteString(l.String())
		}
	}
	return builder.String()
}

// Parse reads a cover from newline-separated rows of '0', '1' and '-'.
// Every row must have exactly nVars characters.
func Parse(nVars int, text string) (*Cover, error) {
	cover := NewCover(nVars)
	for _, row := range strings.Split(text, "\n") {
		row = strings.TrimSpace(row)
		if row == "" {
			continue
		}
		cube, err := ParseCube(nVars, row)
		if err != nil {
			return nil, err
		}
		cover.Cubes = append(cover.Cubes, cube)
	}
	return cover, nil
}

// ParseCube reads a single product term from a row of '0', '1' and '-'
func ParseCube(nVars int, row string) (Cube, error) {
	if len(row) != nVars {
		return nil, fmt.Errorf("cube row %q has %d columns, expected %d", row, len(row), nVars)
	}
	cube := make(Cube, nVars)
	for i, ch := range row {
		switch ch {
		case '1':
			cube[i] = Pos
		case '0':
			cube[i] = Neg
		case '-':
			cube[i] = None
		default:
			return nil, fmt.Errorf("invalid character %q in cube row %q", ch, row)
		}
	}
	return cube, nil
}
