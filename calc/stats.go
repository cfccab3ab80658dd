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

// Package calc provides statistical reductions over exoclim cubes,
// resolving coordinate names through a Model naming convention.
package calc

import (
	"fmt"
	"math"
	"strings"

	"github.com/ctessum/sparse"
	"github.com/gonum/floats"
	"github.com/spatialmodel/exoclim"
)

// An aggregator reduces a gathered slice of values with matching
// weights (weights are all 1 when no weighting applies).
type aggregator func(vals, weights []float64) float64

var aggregators = map[string]aggregator{
	"mean": func(vals, weights []float64) float64 {
		return floats.Dot(vals, weights) / floats.Sum(weights)
	},
	"sum": func(vals, weights []float64) float64 {
		return floats.Dot(vals, weights)
	},
	"min": func(vals, _ []float64) float64 { return floats.Min(vals) },
	"max": func(vals, _ []float64) float64 { return floats.Max(vals) },
}

// Spatial collapses the horizontal (y and x) dimensions of a cube with
// the named aggregator: mean, sum, min or max. The mean and sum are
// weighted by the cosine of latitude when the cube carries latitude
// coordinate points; min and max are never weighted.
func Spatial(c *exoclim.Cube, aggr string, m *exoclim.Model) (*exoclim.Cube, error) {
	f, ok := aggregators[strings.ToLower(aggr)]
	if !ok {
		return nil, fmt.Errorf("calc: unknown aggregator %q", aggr)
	}
	yName, err := m.Get("y")
	if err != nil {
		return nil, err
	}
	xName, err := m.Get("x")
	if err != nil {
		return nil, err
	}
	yAxis, err := axisOf(c, yName)
	if err != nil {
		return nil, err
	}
	xAxis, err := axisOf(c, xName)
	if err != nil {
		return nil, err
	}
	weights := map[int][]float64{}
	if aggr := strings.ToLower(aggr); aggr == "mean" || aggr == "sum" {
		if w := coslatWeights(c, yName); w != nil {
			weights[yAxis] = w
		}
	}
	return collapse(c, []int{yAxis, xAxis}, weights, f, c.Name), nil
}

// SpatialMean is the area-weighted horizontal mean of a cube.
func SpatialMean(c *exoclim.Cube, m *exoclim.Model) (*exoclim.Cube, error) {
	return Spatial(c, "mean", m)
}

// ZonalMean collapses the longitude dimension with an unweighted mean.
func ZonalMean(c *exoclim.Cube, m *exoclim.Model) (*exoclim.Cube, error) {
	xName, err := m.Get("x")
	if err != nil {
		return nil, err
	}
	axis, err := axisOf(c, xName)
	if err != nil {
		return nil, err
	}
	return collapse(c, []int{axis}, nil, aggregators["mean"], c.Name), nil
}

// MeridionalMean collapses the latitude dimension with a
// cosine-of-latitude weighted mean.
func MeridionalMean(c *exoclim.Cube, m *exoclim.Model) (*exoclim.Cube, error) {
	yName, err := m.Get("y")
	if err != nil {
		return nil, err
	}
	axis, err := axisOf(c, yName)
	if err != nil {
		return nil, err
	}
	weights := map[int][]float64{}
	if w := coslatWeights(c, yName); w != nil {
		weights[axis] = w
	}
	return collapse(c, []int{axis}, weights, aggregators["mean"], c.Name), nil
}

// VerticalMean collapses the height dimension with a mean, optionally
// weighted by the given per-level weights (nil for unweighted).
func VerticalMean(c *exoclim.Cube, m *exoclim.Model, weights []float64) (*exoclim.Cube, error) {
	zName, err := m.Get("z")
	if err != nil {
		return nil, err
	}
	axis, err := axisOf(c, zName)
	if err != nil {
		return nil, err
	}
	var w map[int][]float64
	if weights != nil {
		if len(weights) != c.Data.Shape[axis] {
			return nil, fmt.Errorf("calc: %d weights for %d levels", len(weights), c.Data.Shape[axis])
		}
		w = map[int][]float64{axis: weights}
	}
	out := collapse(c, []int{axis}, w, aggregators["mean"], "vertical_mean_of_"+c.Name)
	return out, nil
}

// MinMaxDiff returns the spatial maximum minus the spatial minimum of
// the named cube, with collapsed horizontal dimensions.
func MinMaxDiff(cl *exoclim.CubeList, name string, m *exoclim.Model) (*exoclim.Cube, error) {
	c, err := cl.Extract(name)
	if err != nil {
		return nil, err
	}
	cmax, err := Spatial(c, "max", m)
	if err != nil {
		return nil, err
	}
	cmin, err := Spatial(c, "min", m)
	if err != nil {
		return nil, err
	}
	for i := range cmax.Data.Elements {
		cmax.Data.Elements[i] -= cmin.Data.Elements[i]
	}
	cmax.Name = name + "_difference"
	return cmax, nil
}

// Integrate computes the definite trapezoidal integral of a cube along
// the coordinate points of the named dimension, collapsing it.
func Integrate(c *exoclim.Cube, dim string) (*exoclim.Cube, error) {
	axis, err := axisOf(c, dim)
	if err != nil {
		return nil, err
	}
	co := c.Coord(dim)
	if co == nil {
		return nil, fmt.Errorf("calc: cube %s has no coordinate points for %q", c.Name, dim)
	}
	pts := co.Points
	if len(pts) != c.Data.Shape[axis] {
		return nil, fmt.Errorf("calc: coordinate %q has %d points for length %d", dim, len(pts), c.Data.Shape[axis])
	}
	trapz := func(vals, _ []float64) float64 {
		var total float64
		for i := 0; i+1 < len(vals); i++ {
			total += 0.5 * (vals[i] + vals[i+1]) * (pts[i+1] - pts[i])
		}
		return total
	}
	out := collapse(c, []int{axis}, nil, trapz, fmt.Sprintf("integral_of_%s_wrt_%s", c.Name, dim))
	if u, err := exoclim.MulUnits(c.Units, co.Units); err == nil {
		out.Units = u
	} else {
		// Units outside the symbol table cannot be folded; keep the
		// raw product expression.
		out.Units = strings.TrimSpace(c.Units + " " + co.Units)
	}
	return out, nil
}

// axisOf finds the position of the named dimension in the cube.
func axisOf(c *exoclim.Cube, dim string) (int, error) {
	for i, d := range c.Dims {
		if d == dim {
			return i, nil
		}
	}
	return 0, fmt.Errorf("calc: cube %s has no dimension %q", c.Name, dim)
}

// coslatWeights returns cos(latitude) weights for the named dimension,
// or nil when the cube has no coordinate points for it.
func coslatWeights(c *exoclim.Cube, yName string) []float64 {
	co := c.Coord(yName)
	if co == nil {
		return nil
	}
	w := make([]float64, len(co.Points))
	for i, lat := range co.Points {
		w[i] = math.Cos(lat * math.Pi / 180)
	}
	return w
}

// collapse reduces the given axes of a cube with the aggregator f,
// producing a cube over the remaining dimensions. axisWeights supplies
// optional per-axis weight vectors; element weights are the product
// over collapsed axes.
func collapse(c *exoclim.Cube, axes []int, axisWeights map[int][]float64, f aggregator, name string) *exoclim.Cube {
	collapsed := make(map[int]bool, len(axes))
	for _, a := range axes {
		collapsed[a] = true
	}

	var keptDims []string
	var keptShape []int
	for i, d := range c.Dims {
		if !collapsed[i] {
			keptDims = append(keptDims, d)
			keptShape = append(keptShape, c.Data.Shape[i])
		}
	}

	// Gather buffer spanning the collapsed axes.
	n := 1
	for _, a := range axes {
		n *= c.Data.Shape[a]
	}
	vals := make([]float64, 0, n)
	weights := make([]float64, 0, n)

	out := zerosCube(c, name, keptDims, keptShape)
	idx := make([]int, len(c.Dims))
	keptIdx := make([]int, len(keptShape))
	for {
		// Gather every element under the current kept index.
		vals = vals[:0]
		weights = weights[:0]
		k := 0
		for i := range idx {
			if !collapsed[i] {
				idx[i] = keptIdx[k]
				k++
			} else {
				idx[i] = 0
			}
		}
		for {
			w := 1.0
			for _, a := range axes {
				if aw := axisWeights[a]; aw != nil {
					w *= aw[idx[a]]
				}
			}
			vals = append(vals, c.Data.Get(idx...))
			weights = append(weights, w)
			if !increment(idx, c.Data.Shape, axes) {
				break
			}
		}
		if len(keptShape) == 0 {
			out.Data.Set(f(vals, weights))
			break
		}
		out.Data.Set(f(vals, weights), keptIdx...)
		if !incrementAll(keptIdx, keptShape) {
			break
		}
	}
	return out
}

// zerosCube builds an empty result cube keeping the metadata and the
// surviving coordinates of the input.
func zerosCube(c *exoclim.Cube, name string, dims []string, shape []int) *exoclim.Cube {
	coords := make(map[string]*exoclim.Coord)
	for _, d := range dims {
		if co := c.Coord(d); co != nil {
			coords[d] = co
		}
	}
	attrs := make(map[string]string, len(c.Attrs))
	for k, v := range c.Attrs {
		attrs[k] = v
	}
	return &exoclim.Cube{
		Name:   name,
		Units:  c.Units,
		Dims:   dims,
		Coords: coords,
		Attrs:  attrs,
		Data:   sparse.ZerosDense(shape...),
	}
}

// increment advances idx by one step over only the listed axes,
// innermost last. It reports false when the odometer wraps.
func increment(idx, shape []int, axes []int) bool {
	for i := len(axes) - 1; i >= 0; i-- {
		a := axes[i]
		idx[a]++
		if idx[a] < shape[a] {
			return true
		}
		idx[a] = 0
	}
	return false
}

// incrementAll advances idx by one step over every axis.
func incrementAll(idx, shape []int) bool {
	for i := len(idx) - 1; i >= 0; i-- {
		idx[i]++
		if idx[i] < shape[i] {
			return true
		}
		idx[i] = 0
	}
	return false
}
