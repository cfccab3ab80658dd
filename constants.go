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
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/ctessum/unit"
)

//go:embed data
var constStore embed.FS

// genericSet is the constants set that is loaded regardless of which
// planet profile is requested.
const genericSet = "general"

// Constant is a single named physical quantity. Name, Units and Value
// reproduce the source JSON entry exactly; SI gives the value converted
// to SI base units for unit-aware arithmetic.
type Constant struct {
	name  string
	units string
	value float64
	si    *unit.Unit
}

// Name returns the constant name, normalized to identifier-safe form.
func (c *Constant) Name() string { return c.name }

// Units returns the unit expression as declared in the source file.
func (c *Constant) Units() string { return c.units }

// Value returns the numeric value as declared in the source file.
func (c *Constant) Value() float64 { return c.value }

// SI returns a copy of the value converted to SI base units.
func (c *Constant) SI() *unit.Unit { return c.si.Clone() }

func (c *Constant) String() string {
	return fmt.Sprintf("%s [%s]", c.name, c.units)
}

// CollisionPolicy decides what happens when a planet profile redefines
// a name that is already present in the generic set.
type CollisionPolicy int

const (
	// ProfileOverrides silently replaces the generic value with the
	// profile value.
	ProfileOverrides CollisionPolicy = iota
	// CollisionError rejects the load with a ConfigParseError.
	CollisionError
)

// ConstantsOptions holds optional arguments to LoadConstants.
type ConstantsOptions struct {
	// Dir is the directory to read the profile file from. If empty,
	// the packaged constants store is used. The generic set is always
	// read from the packaged store.
	Dir string

	// OnCollision selects the merge policy for names defined in both
	// the generic set and the profile. The default is ProfileOverrides.
	OnCollision CollisionPolicy
}

// Constants is an immutable container of named physical constants: the
// generic set, optionally overlaid with a planet profile.
type Constants struct {
	name   string
	order  []string
	byName map[string]*Constant
}

// LoadConstants builds a constants container for the given planet
// profile. The generic set is always loaded; if profile is non-empty, a
// JSON file named after it is merged on top. opts may be nil.
func LoadConstants(profile string, opts *ConstantsOptions) (*Constants, error) {
	var o ConstantsOptions
	if opts != nil {
		o = *opts
	}

	c := &Constants{
		name:   displayName(profile),
		byName: make(map[string]*Constant),
	}

	generic, err := readConstFile(genericSet, "")
	if err != nil {
		// The packaged generic set is part of the library contract:
		// any failure to read it reports as not-found.
		if pe, ok := err.(*ConfigParseError); ok {
			return nil, &ConfigNotFoundError{Name: genericSet, Err: pe.Err}
		}
		return nil, err
	}
	for _, e := range generic {
		c.add(e)
	}

	if profile != "" {
		overlay, err := readConstFile(profile, o.Dir)
		if err != nil {
			return nil, err
		}
		for _, e := range overlay {
			if _, ok := c.byName[e.name]; ok && o.OnCollision == CollisionError {
				return nil, &ConfigParseError{
					Name: profile,
					Err:  fmt.Errorf("constant %q is already defined in the generic set", e.name),
				}
			}
			c.add(e)
		}
	}

	c.deriveDryAirGasConstant()
	return c, nil
}

// add inserts or replaces a constant, keeping the original insertion
// position on replacement.
func (c *Constants) add(e *Constant) {
	if _, ok := c.byName[e.name]; !ok {
		c.order = append(c.order, e.name)
	}
	c.byName[e.name] = e
}

// deriveDryAirGasConstant divides the molar gas constant by the dry-air
// molecular weight, when both are present, to obtain the specific gas
// constant for dry air.
func (c *Constants) deriveDryAirGasConstant() {
	molar, okR := c.byName["molar_gas_constant"]
	mw, okM := c.byName["dry_air_molecular_weight"]
	if !okR || !okM {
		return
	}
	si := unit.Div(molar.si.Clone(), mw.si.Clone())
	c.add(&Constant{
		name:  "dry_air_gas_constant",
		units: "m2 s-2 K-1", // J kg-1 K-1 in SI base units
		value: si.Value(),
		si:    si,
	})
}

// Name returns the display name of the container, e.g. "EarthConstants".
func (c *Constants) Name() string { return c.name }

// Len returns the number of constants held.
func (c *Constants) Len() int { return len(c.order) }

// Names returns the constant names in load order.
func (c *Constants) Names() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Get returns the named constant, or a ConstantNotFoundError.
func (c *Constants) Get(name string) (*Constant, error) {
	k, ok := c.byName[normalizeName(name)]
	if !ok {
		return nil, &ConstantNotFoundError{Name: name}
	}
	return k, nil
}

// String enumerates every constant's name and units, in load order.
func (c *Constants) String() string {
	items := make([]string, len(c.order))
	for i, n := range c.order {
		items[i] = c.byName[n].String()
	}
	return fmt.Sprintf("%s(%s)", c.name, strings.Join(items, ", "))
}

// displayName turns a profile name into the container display name:
// capitalized (first rune upper-cased, the rest lower-cased) and
// suffixed with "Constants".
func displayName(profile string) string {
	if profile == "" {
		return "GenericConstants"
	}
	r, n := utf8.DecodeRuneInString(profile)
	return string(unicode.ToUpper(r)) + strings.ToLower(profile[n:]) + "Constants"
}

// normalizeName replaces characters that are not identifier-safe with
// underscores, so that e.g. "semi-major axis" and "semi_major_axis"
// address the same constant.
func normalizeName(name string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			return r
		}
		return '_'
	}, name)
}

// constEntry is the JSON schema of one constants-file entry.
type constEntry struct {
	Name  *string      `json:"name"`
	Unit  *string      `json:"unit"`
	Value *json.Number `json:"value"`
}

// readConstFile reads and validates one constants file. An empty dir
// reads <name>.json from the packaged store.
func readConstFile(name, dir string) ([]*Constant, error) {
	var (
		raw []byte
		err error
	)
	if dir == "" {
		raw, err = constStore.ReadFile("data/" + name + ".json")
	} else {
		raw, err = os.ReadFile(filepath.Join(dir, name+".json"))
	}
	if err != nil {
		return nil, &ConfigNotFoundError{Name: name, Dir: dir, Err: err}
	}

	var entries []constEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, &ConfigParseError{Name: name, Err: err}
	}

	out := make([]*Constant, 0, len(entries))
	seen := make(map[string]struct{}, len(entries))
	for i, e := range entries {
		if e.Name == nil || *e.Name == "" {
			return nil, &ConfigParseError{Name: name, Err: fmt.Errorf("entry %d: missing name", i)}
		}
		if e.Unit == nil {
			return nil, &ConfigParseError{Name: name, Err: fmt.Errorf("entry %q: missing unit", *e.Name)}
		}
		if e.Value == nil {
			return nil, &ConfigParseError{Name: name, Err: fmt.Errorf("entry %q: missing value", *e.Name)}
		}
		v, err := e.Value.Float64()
		if err != nil {
			return nil, &ConfigParseError{Name: name, Err: fmt.Errorf("entry %q: non-numeric value: %v", *e.Name, err)}
		}
		key := normalizeName(*e.Name)
		if _, ok := seen[key]; ok {
			return nil, &ConfigParseError{Name: name, Err: fmt.Errorf("duplicate name %q", *e.Name)}
		}
		seen[key] = struct{}{}

		conv, err := ParseUnits(*e.Unit)
		if err != nil {
			return nil, &ConfigParseError{Name: name, Err: fmt.Errorf("entry %q: %v", *e.Name, err)}
		}
		out = append(out, &Constant{
			name:  key,
			units: *e.Unit,
			value: v,
			si:    unit.New(v*conv.Value(), conv.Dimensions()),
		})
	}
	return out, nil
}
