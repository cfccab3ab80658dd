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

import "fmt"

// RunOptions holds the optional arguments to NewRun.
type RunOptions struct {
	// Name is a short label for the simulation.
	Name string
	// Description is free-form text describing the simulation.
	Description string
	// Planet selects the constants profile merged over the generic
	// set. Empty loads only the generic set.
	Planet string
	// Constants is passed through to LoadConstants. May be nil.
	Constants *ConstantsOptions
	// Model is the naming convention used for short-name field
	// lookup. The default is UM.
	Model *Model
}

// Run bundles loaded simulation output with its metadata, a constants
// container resolved from the planet profile, and a Model naming
// convention. It is read-only after construction.
type Run struct {
	cubes  *CubeList
	name   string
	desc   string
	consts *Constants
	model  *Model
}

// NewRun builds a Run from an already-loaded, non-empty cube list.
// opts may be nil.
func NewRun(cl *CubeList, opts *RunOptions) (*Run, error) {
	var o RunOptions
	if opts != nil {
		o = *opts
	}
	if cl == nil || cl.Len() == 0 {
		return nil, fmt.Errorf("exoclim: new run %q: empty cube list", o.Name)
	}
	consts, err := LoadConstants(o.Planet, o.Constants)
	if err != nil {
		return nil, err
	}
	model := o.Model
	if model == nil {
		model = UM
	}
	return &Run{
		cubes:  cl,
		name:   o.Name,
		desc:   o.Description,
		consts: consts,
		model:  model,
	}, nil
}

// Name returns the short label of the simulation.
func (r *Run) Name() string { return r.name }

// Description returns the free-form description of the simulation.
func (r *Run) Description() string { return r.desc }

// Const returns the constants container resolved at construction.
func (r *Run) Const() *Constants { return r.consts }

// Model returns the naming convention used for short-name lookup.
func (r *Run) Model() *Model { return r.model }

// CubeList returns the loaded field collection.
func (r *Run) CubeList() *CubeList { return r.cubes }

// Field returns the field stored under exactly the given identifier.
func (r *Run) Field(id string) (*Cube, error) {
	return r.cubes.Extract(id)
}

// Lookup resolves a short logical name through the Model convention and
// returns the matching field.
func (r *Run) Lookup(short string) (*Cube, error) {
	id, err := r.model.Get(short)
	if err != nil {
		return nil, err
	}
	return r.Field(id)
}

func (r *Run) String() string {
	return fmt.Sprintf("Run(%q, %d fields, %s)", r.name, r.cubes.Len(), r.consts.Name())
}
