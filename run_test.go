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
	"errors"
	"testing"

	"github.com/ctessum/sparse"
)

func testCube(name, units string, dims []string, shape []int, vals []float64) *Cube {
	arr := sparse.ZerosDense(shape...)
	copy(arr.Elements, vals)
	return &Cube{
		Name:   name,
		Units:  units,
		Dims:   dims,
		Coords: make(map[string]*Coord),
		Attrs:  make(map[string]string),
		Data:   arr,
	}
}

func testCubeList() *CubeList {
	rain := testCube("convective_rainfall_flux", "kg m-2 s-1",
		[]string{"latitude", "longitude"}, []int{2, 3},
		[]float64{1, 2, 3, 4, 5, 6})
	temp := testCube("air_temperature", "K",
		[]string{"latitude", "longitude"}, []int{2, 3},
		[]float64{280, 281, 282, 283, 284, 285})
	return NewCubeList(rain, temp)
}

func TestNewRunEmpty(t *testing.T) {
	if _, err := NewRun(nil, nil); err == nil {
		t.Error("expected an error for a nil cube list")
	}
	if _, err := NewRun(NewCubeList(), nil); err == nil {
		t.Error("expected an error for an empty cube list")
	}
}

func TestRunLookup(t *testing.T) {
	cl := testCubeList()
	r, err := NewRun(cl, &RunOptions{
		Name:        "t1e_grcs",
		Description: "TRAPPIST-1e global run",
		Planet:      "trap1e",
	})
	if err != nil {
		t.Fatal(err)
	}

	// Short-name lookup resolves through the default UM convention.
	c, err := r.Lookup("cv_rain")
	if err != nil {
		t.Fatal(err)
	}
	want, _ := cl.Extract("convective_rainfall_flux")
	if c != want {
		t.Errorf("have %v, want %v", c, want)
	}

	// Key and attribute access are the same operation.
	c2, err := r.Field("convective_rainfall_flux")
	if err != nil {
		t.Fatal(err)
	}
	if c2 != want {
		t.Errorf("have %v, want %v", c2, want)
	}

	// A role the convention leaves unassigned.
	_, err = r.Lookup("caf_vl")
	var unassigned *RoleNotAssignedError
	if !errors.As(err, &unassigned) {
		t.Errorf("have %v (%T), want *RoleNotAssignedError", err, err)
	}

	// A role that resolves to a field the run does not carry.
	_, err = r.Lookup("sh")
	var noField *FieldNotFoundError
	if !errors.As(err, &noField) {
		t.Errorf("have %v (%T), want *FieldNotFoundError", err, err)
	}

	_, err = r.Field("specific_humidity")
	var missing *FieldNotFoundError
	if !errors.As(err, &missing) {
		t.Errorf("have %v (%T), want *FieldNotFoundError", err, err)
	}
}

func TestRunConstantsAndModel(t *testing.T) {
	r, err := NewRun(testCubeList(), &RunOptions{Planet: "trap1e"})
	if err != nil {
		t.Fatal(err)
	}
	if r.Model() != UM {
		t.Error("default model should be UM")
	}
	if r.Const().Name() != "Trap1eConstants" {
		t.Errorf("have %q, want %q", r.Const().Name(), "Trap1eConstants")
	}
	g, err := r.Const().Get("gravity")
	if err != nil {
		t.Fatal(err)
	}
	if g.Value() != 9.1454 {
		t.Errorf("have %g, want 9.1454", g.Value())
	}
}

func TestRunInjectedModel(t *testing.T) {
	m, err := NewModel(map[string]string{"temp": "air_temperature"})
	if err != nil {
		t.Fatal(err)
	}
	r, err := NewRun(testCubeList(), &RunOptions{Model: m})
	if err != nil {
		t.Fatal(err)
	}
	c, err := r.Lookup("temp")
	if err != nil {
		t.Fatal(err)
	}
	if c.Name != "air_temperature" {
		t.Errorf("have %q, want %q", c.Name, "air_temperature")
	}
	// Roles the injected model does not assign are unavailable even
	// though the default convention has them.
	if _, err := r.Lookup("cv_rain"); err == nil {
		t.Error("expected an error for an unassigned role")
	}
}

func TestCubeListExtract(t *testing.T) {
	cl := testCubeList()
	if cl.Len() != 2 {
		t.Fatalf("have %d cubes, want 2", cl.Len())
	}
	names := cl.Names()
	if names[0] != "convective_rainfall_flux" || names[1] != "air_temperature" {
		t.Errorf("unexpected names %v", names)
	}
	_, err := cl.Extract("x_wind")
	var missing *FieldNotFoundError
	if !errors.As(err, &missing) {
		t.Errorf("have %v (%T), want *FieldNotFoundError", err, err)
	}
	if missing.Name != "x_wind" {
		t.Errorf("have %q, want %q", missing.Name, "x_wind")
	}
}
