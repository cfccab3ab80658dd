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

// ConfigNotFoundError is returned when a constants file for a requested
// set cannot be read.
type ConfigNotFoundError struct {
	Name string // name of the constants set, e.g. "general" or "trap1e".
	Dir  string // directory that was searched; empty for the packaged store.
	Err  error
}

func (e *ConfigNotFoundError) Error() string {
	dir := e.Dir
	if dir == "" {
		dir = "packaged constants store"
	}
	if e.Err != nil {
		return fmt.Sprintf("exoclim: constants file for %q not found in %s: %v", e.Name, dir, e.Err)
	}
	return fmt.Sprintf("exoclim: constants file for %q not found in %s", e.Name, dir)
}

func (e *ConfigNotFoundError) Unwrap() error { return e.Err }

// ConfigParseError is returned when a constants file exists but its
// content does not match the expected schema: a JSON array of objects
// with a unique string "name", a string "unit" and a numeric "value".
type ConfigParseError struct {
	Name string // name of the constants set being parsed.
	Err  error
}

func (e *ConfigParseError) Error() string {
	return fmt.Sprintf("exoclim: parsing constants file for %q: %v", e.Name, e.Err)
}

func (e *ConfigParseError) Unwrap() error { return e.Err }

// UnknownRoleKeyError is returned when a Model is constructed with, or
// queried for, a role name outside the recognized set.
type UnknownRoleKeyError struct {
	Role string
}

func (e *UnknownRoleKeyError) Error() string {
	return fmt.Sprintf("exoclim: unknown model role %q", e.Role)
}

// RoleNotAssignedError is returned when a recognized role is looked up
// in a Model that did not assign it at construction.
type RoleNotAssignedError struct {
	Role string
}

func (e *RoleNotAssignedError) Error() string {
	return fmt.Sprintf("exoclim: model role %q is not assigned", e.Role)
}

// FieldNotFoundError is returned when an exact-identifier lookup in a
// cube list misses.
type FieldNotFoundError struct {
	Name string
}

func (e *FieldNotFoundError) Error() string {
	return fmt.Sprintf("exoclim: no field named %q", e.Name)
}

// ConstantNotFoundError is returned when a constants container does not
// hold the requested constant.
type ConstantNotFoundError struct {
	Name string
}

func (e *ConstantNotFoundError) Error() string {
	return fmt.Sprintf("exoclim: no constant named %q", e.Name)
}
