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
	"io"
	"os"

	"github.com/ctessum/cdf"
	"github.com/ctessum/sparse"
)

// LoadData reads NetCDF (classic format) files into a single CubeList.
// Variables whose only dimension is themselves are treated as
// coordinates and attached to the cubes that use them rather than
// becoming cubes of their own.
func LoadData(files ...string) (*CubeList, error) {
	cl := NewCubeList()
	for _, fname := range files {
		if err := loadFile(cl, fname); err != nil {
			return nil, fmt.Errorf("exoclim: reading %s: %v", fname, err)
		}
	}
	return cl, nil
}

func loadFile(cl *CubeList, fname string) error {
	ff, err := os.Open(fname)
	if err != nil {
		return err
	}
	defer ff.Close()
	cf, err := cdf.Open(ff)
	if err != nil {
		return err
	}
	h := cf.Header

	names := h.Variables()
	coords := make(map[string]*Coord)
	for _, v := range names {
		if !isCoordVar(h, v) {
			continue
		}
		pts, err := readVar64(cf, v)
		if err != nil {
			return fmt.Errorf("coordinate %s: %v", v, err)
		}
		coords[v] = &Coord{Points: pts, Units: stringAttr(h, v, "units")}
	}

	for _, v := range names {
		if isCoordVar(h, v) {
			continue
		}
		data, err := readVar64(cf, v)
		if err != nil {
			return fmt.Errorf("variable %s: %v", v, err)
		}
		dims := h.Dimensions(v)
		arr := sparse.ZerosDense(h.Lengths(v)...)
		if len(arr.Elements) != len(data) {
			return fmt.Errorf("variable %s: %d elements for shape %v", v, len(data), arr.Shape)
		}
		copy(arr.Elements, data)

		cc := make(map[string]*Coord)
		for _, d := range dims {
			if co, ok := coords[d]; ok {
				cc[d] = co
			}
		}
		attrs := make(map[string]string)
		for _, a := range h.Attributes(v) {
			if a == "units" {
				continue
			}
			if s, ok := h.GetAttribute(v, a).(string); ok {
				attrs[a] = s
			}
		}
		cl.Append(&Cube{
			Name:   v,
			Units:  stringAttr(h, v, "units"),
			Dims:   dims,
			Coords: cc,
			Attrs:  attrs,
			Data:   arr,
		})
	}
	return nil
}

// isCoordVar reports whether v is a coordinate variable: a 1-d variable
// dimensioned by itself.
func isCoordVar(h *cdf.Header, v string) bool {
	dims := h.Dimensions(v)
	return len(dims) == 1 && dims[0] == v
}

func stringAttr(h *cdf.Header, v, attr string) string {
	if s, ok := h.GetAttribute(v, attr).(string); ok {
		return s
	}
	return ""
}

// readVar64 reads the whole of a variable as float64, converting from
// narrower on-disk types where necessary.
func readVar64(f *cdf.File, v string) ([]float64, error) {
	r := f.Reader(v, nil, nil)
	buf := r.Zero(-1)
	if _, err := r.Read(buf); err != nil {
		return nil, err
	}
	switch b := buf.(type) {
	case []float64:
		return b, nil
	case []float32:
		out := make([]float64, len(b))
		for i, x := range b {
			out[i] = float64(x)
		}
		return out, nil
	case []int32:
		out := make([]float64, len(b))
		for i, x := range b {
			out[i] = float64(x)
		}
		return out, nil
	case []int16:
		out := make([]float64, len(b))
		for i, x := range b {
			out[i] = float64(x)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unsupported data type %T", buf)
	}
}

// SaveCubeList writes a cube list to a NetCDF (classic format) file.
// Coordinates become coordinate variables; string attributes and unit
// expressions are carried along.
func SaveCubeList(cl *CubeList, fname string) error {
	var dimNames []string
	var lengths []int
	dimLen := make(map[string]int)
	for _, c := range cl.Cubes() {
		if len(c.Dims) != len(c.Data.Shape) {
			return fmt.Errorf("exoclim: saving %s: cube %s has %d dims for shape %v",
				fname, c.Name, len(c.Dims), c.Data.Shape)
		}
		for i, d := range c.Dims {
			n := c.Data.Shape[i]
			if have, ok := dimLen[d]; ok {
				if have != n {
					return fmt.Errorf("exoclim: saving %s: dimension %s has conflicting lengths %d and %d",
						fname, d, have, n)
				}
				continue
			}
			dimLen[d] = n
			dimNames = append(dimNames, d)
			lengths = append(lengths, n)
		}
	}

	h := cdf.NewHeader(dimNames, lengths)
	coordWritten := make(map[string]*Coord)
	for _, c := range cl.Cubes() {
		for _, d := range c.Dims {
			co := c.Coord(d)
			if co == nil || coordWritten[d] != nil {
				continue
			}
			h.AddVariable(d, []string{d}, []float64{0.})
			if co.Units != "" {
				h.AddAttribute(d, "units", co.Units)
			}
			coordWritten[d] = co
		}
		h.AddVariable(c.Name, c.Dims, []float64{0.})
		if c.Units != "" {
			h.AddAttribute(c.Name, "units", c.Units)
		}
		for a, val := range c.Attrs {
			h.AddAttribute(c.Name, a, val)
		}
	}
	h.Define()
	for _, err := range h.Check() {
		return fmt.Errorf("exoclim: saving %s: %v", fname, err)
	}

	ff, err := os.Create(fname)
	if err != nil {
		return err
	}
	f, err := cdf.Create(ff, h)
	if err != nil {
		ff.Close()
		return fmt.Errorf("exoclim: saving %s: %v", fname, err)
	}
	// The writer reports io.EOF when it reaches the end of the
	// variable, which for a whole-variable write means success.
	for d, co := range coordWritten {
		w := f.Writer(d, nil, nil)
		if _, err := w.Write(co.Points); err != nil && err != io.EOF {
			ff.Close()
			return fmt.Errorf("exoclim: saving %s: coordinate %s: %v", fname, d, err)
		}
	}
	for _, c := range cl.Cubes() {
		w := f.Writer(c.Name, nil, nil)
		if _, err := w.Write(c.Data.Elements); err != nil && err != io.EOF {
			ff.Close()
			return fmt.Errorf("exoclim: saving %s: variable %s: %v", fname, c.Name, err)
		}
	}
	return ff.Close()
}
