/*
Copyright © 2026 the exoclim authors.
This file is part of exoclim.

exoclim is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

exoclim is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with exoclim.  If not, see <http://www.gnu.org/licenses/>.
*/

package exoclim

import (
	"fmt"
	"strings"

	"github.com/ctessum/sparse"
)

// Coord is the point set of one named dimension.
type Coord struct {
	Points []float64
	Units  string
}

// Cube is a single named, unit-tagged data field with named dimensions.
type Cube struct {
	// Name identifies the field within a CubeList.
	Name string
	// Units is the CF-style unit expression of the data.
	Units string
	// Dims are the dimension names, outermost first, matching
	// Data.Shape.
	Dims []string
	// Coords holds the coordinate points for dimensions that have
	// them, keyed by dimension name.
	Coords map[string]*Coord
	// Attrs holds free-form string metadata.
	Attrs map[string]string
	// Data is the field payload.
	Data *sparse.DenseArray
}

// Coord returns the coordinate for the named dimension, or nil if the
// dimension has no coordinate points attached.
func (c *Cube) Coord(dim string) *Coord {
	return c.Coords[dim]
}

func (c *Cube) String() string {
	dims := make([]string, len(c.Dims))
	for i, d := range c.Dims {
		n := 0
		if c.Data != nil && i < len(c.Data.Shape) {
			n = c.Data.Shape[i]
		}
		dims[i] = fmt.Sprintf("%s: %d", d, n)
	}
	return fmt.Sprintf("%s / (%s) (%s)", c.Name, c.Units, strings.Join(dims, "; "))
}

// CubeList is an ordered collection of Cubes with lookup by exact name.
type CubeList struct {
	cubes []*Cube
}

// NewCubeList creates a CubeList holding the given cubes.
func NewCubeList(cubes ...*Cube) *CubeList {
	return &CubeList{cubes: append([]*Cube{}, cubes...)}
}

// Append adds a cube to the end of the list.
func (cl *CubeList) Append(c *Cube) {
	cl.cubes = append(cl.cubes, c)
}

// Len returns the number of cubes in the list.
func (cl *CubeList) Len() int { return len(cl.cubes) }

// Cubes returns the cubes in order.
func (cl *CubeList) Cubes() []*Cube {
	return append([]*Cube{}, cl.cubes...)
}

// Names returns the cube names in order.
func (cl *CubeList) Names() []string {
	out := make([]string, len(cl.cubes))
	for i, c := range cl.cubes {
		out[i] = c.Name
	}
	return out
}

// Extract returns the cube with exactly the given name, or a
// FieldNotFoundError.
func (cl *CubeList) Extract(name string) (*Cube, error) {
	for _, c := range cl.cubes {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, &FieldNotFoundError{Name: name}
}

func (cl *CubeList) String() string {
	var b strings.Builder
	for i, c := range cl.cubes {
		fmt.Fprintf(&b, "%d: %v\n", i, c)
	}
	return b.String()
}
