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
	"math"
	"testing"

	"github.com/ctessum/unit"
)

func TestParseUnits(t *testing.T) {
	tests := []struct {
		expr   string
		factor float64
		dims   unit.Dimensions
	}{
		{"", 1, unit.Dimless},
		{"1", 1, unit.Dimless},
		{"m", 1, unit.Meter},
		{"m s-1", 1, unit.MeterPerSecond},
		{"m s-2", 1, unit.MeterPerSecond2},
		{"W m-2", 1, unit.Dimensions{unit.MassDim: 1, unit.TimeDim: -3}},
		{"W m-2 K-4", 1, unit.Dimensions{unit.MassDim: 1, unit.TimeDim: -3, unit.TemperatureDim: -4}},
		{"J K-1 mol-1", 1, unit.Dimensions{
			unit.MassDim: 1, unit.LengthDim: 2, unit.TimeDim: -2,
			unit.TemperatureDim: -1, MoleDim: -1}},
		{"kg mol-1", 1, unit.Dimensions{unit.MassDim: 1, MoleDim: -1}},
		{"m/s", 1, unit.MeterPerSecond},
		{"km", 1000, unit.Meter},
		{"hPa", 100, unit.Pascal},
		{"g", 1e-3, unit.Kilogram},
		{"day", 86400, unit.Second},
		{"degree", math.Pi / 180, unit.Dimensions{unit.AngleDim: 1}},
		{"m2", 1, unit.Meter2},
		{"m3 kg-1 s-2", 1, unit.Dimensions{unit.LengthDim: 3, unit.MassDim: -1, unit.TimeDim: -2}},
		{"m m-1", 1, unit.Dimless},
	}
	for _, test := range tests {
		u, err := ParseUnits(test.expr)
		if err != nil {
			t.Errorf("%q: unexpected error %v", test.expr, err)
			continue
		}
		if math.Abs(u.Value()-test.factor) > 1e-12*test.factor {
			t.Errorf("%q: have factor %g, want %g", test.expr, u.Value(), test.factor)
		}
		if !u.Dimensions().Matches(test.dims) {
			t.Errorf("%q: have dimensions %v, want %v", test.expr, u.Dimensions(), test.dims)
		}
	}
}

func TestMulUnits(t *testing.T) {
	tests := []struct{ a, b, want string }{
		{"m s-1", "m", "m2 s-1"},
		{"m s-1", "s", "m"},
		{"m", "m-1", "1"},
		{"", "m", "m"},
		{"1", "Pa", "Pa"},
		{"kg mol-1", "mol", "kg"},
		{"m/s", "s", "m"},
		{"W m-2", "m2", "W"},
	}
	for _, test := range tests {
		have, err := MulUnits(test.a, test.b)
		if err != nil {
			t.Errorf("(%q, %q): unexpected error %v", test.a, test.b, err)
			continue
		}
		if have != test.want {
			t.Errorf("(%q, %q): have %q, want %q", test.a, test.b, have, test.want)
		}
	}
	if _, err := MulUnits("furlong", "m"); err == nil {
		t.Error("expected an error for an unknown symbol")
	}
}

func TestParseUnitsErrors(t *testing.T) {
	for _, expr := range []string{
		"furlong",
		"m s-1 / s / s",
		"10",
		"m s--1",
	} {
		if _, err := ParseUnits(expr); err == nil {
			t.Errorf("%q: expected an error", expr)
		}
	}
}
