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
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/ctessum/unit"
)

// MoleDim is the amount-of-substance dimension, which the unit package
// does not define among its SI base dimensions.
var MoleDim unit.Dimension

// unitDef is a named unit symbol: a conversion factor to SI base units
// plus its dimensions.
type unitDef struct {
	factor float64
	dims   unit.Dimensions
}

var unitSymbols map[string]unitDef

func init() {
	MoleDim = unit.NewDimension("mole")

	newton := unit.Dimensions{unit.MassDim: 1, unit.LengthDim: 1, unit.TimeDim: -2}
	unitSymbols = map[string]unitDef{
		"1": {1, unit.Dimless},

		// SI base units.
		"m":   {1, unit.Meter},
		"kg":  {1, unit.Kilogram},
		"s":   {1, unit.Second},
		"K":   {1, unit.Kelvin},
		"A":   {1, unit.Dimensions{unit.CurrentDim: 1}},
		"cd":  {1, unit.Dimensions{unit.LuminousIntensityDim: 1}},
		"rad": {1, unit.Dimensions{unit.AngleDim: 1}},
		"mol": {1, unit.Dimensions{MoleDim: 1}},

		// Derived units with special symbols.
		"J":  {1, unit.Joule},
		"W":  {1, unit.Watt},
		"N":  {1, newton},
		"Pa": {1, unit.Pascal},
		"Hz": {1, unit.Herz},

		// Scaled units common in climate-model metadata.
		"g":       {1e-3, unit.Kilogram},
		"km":      {1e3, unit.Meter},
		"cm":      {1e-2, unit.Meter},
		"mm":      {1e-3, unit.Meter},
		"hPa":     {100, unit.Pascal},
		"bar":     {1e5, unit.Pascal},
		"day":     {86400, unit.Second},
		"hour":    {3600, unit.Second},
		"degree":  {math.Pi / 180, unit.Dimensions{unit.AngleDim: 1}},
		"degrees": {math.Pi / 180, unit.Dimensions{unit.AngleDim: 1}},
	}
}

// ParseUnits converts a CF-style unit expression such as "m s-2",
// "J K-1 mol-1" or "W m-2" into a *unit.Unit whose value is the factor
// converting one of the given unit into SI base units. A single "/"
// divides the expression into numerator and denominator; exponents are
// written as trailing signed integers ("s-1", "m2"). The expressions
// "" and "1" are dimensionless.
func ParseUnits(expr string) (*unit.Unit, error) {
	factor := 1.0
	dims := make(unit.Dimensions)

	parts := strings.Split(expr, "/")
	if len(parts) > 2 {
		return nil, fmt.Errorf("more than one '/' in unit expression %q", expr)
	}
	for i, part := range parts {
		sign := 1
		if i == 1 {
			sign = -1
		}
		for _, tok := range strings.Fields(part) {
			sym, pow, err := splitExponent(tok)
			if err != nil {
				return nil, fmt.Errorf("unit expression %q: %v", expr, err)
			}
			def, ok := unitSymbols[sym]
			if !ok {
				return nil, fmt.Errorf("unit expression %q: unknown symbol %q", expr, sym)
			}
			pow *= sign
			factor *= math.Pow(def.factor, float64(pow))
			for d, p := range def.dims {
				dims[d] += p * pow
			}
		}
	}
	for d, p := range dims {
		if p == 0 {
			delete(dims, d)
		}
	}
	return unit.New(factor, dims), nil
}

// MulUnits multiplies two unit expressions symbolically, folding the
// exponents of repeated symbols: MulUnits("m s-1", "m") is "m2 s-1".
// Symbols keep their first-appearance order; a fully cancelled product
// is "1".
func MulUnits(a, b string) (string, error) {
	var order []string
	pows := make(map[string]int)
	for _, expr := range []string{a, b} {
		parts := strings.Split(expr, "/")
		if len(parts) > 2 {
			return "", fmt.Errorf("more than one '/' in unit expression %q", expr)
		}
		for i, part := range parts {
			sign := 1
			if i == 1 {
				sign = -1
			}
			for _, tok := range strings.Fields(part) {
				sym, pow, err := splitExponent(tok)
				if err != nil {
					return "", fmt.Errorf("unit expression %q: %v", expr, err)
				}
				if _, ok := unitSymbols[sym]; !ok {
					return "", fmt.Errorf("unit expression %q: unknown symbol %q", expr, sym)
				}
				if sym == "1" {
					continue
				}
				if _, ok := pows[sym]; !ok {
					order = append(order, sym)
				}
				pows[sym] += pow * sign
			}
		}
	}
	var out []string
	for _, sym := range order {
		switch p := pows[sym]; {
		case p == 0:
		case p == 1:
			out = append(out, sym)
		default:
			out = append(out, sym+strconv.Itoa(p))
		}
	}
	if len(out) == 0 {
		return "1", nil
	}
	return strings.Join(out, " "), nil
}

// splitExponent splits a token like "s-1" or "m2" into its symbol and
// integer exponent. A bare symbol has exponent 1.
func splitExponent(tok string) (string, int, error) {
	i := len(tok)
	for i > 0 {
		r := rune(tok[i-1])
		if unicode.IsDigit(r) || r == '-' || r == '+' {
			i--
			continue
		}
		break
	}
	sym, exp := tok[:i], tok[i:]
	if sym == "" {
		// Purely numeric token: only "1" is meaningful.
		if tok == "1" {
			return "1", 1, nil
		}
		return "", 0, fmt.Errorf("malformed unit token %q", tok)
	}
	if exp == "" {
		return sym, 1, nil
	}
	p, err := strconv.Atoi(exp)
	if err != nil {
		return "", 0, fmt.Errorf("malformed exponent in unit token %q", tok)
	}
	return sym, p, nil
}
