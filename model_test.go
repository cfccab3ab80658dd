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
	"reflect"
	"testing"
)

func TestNewModel(t *testing.T) {
	m, err := NewModel(map[string]string{
		"x": "longitude",
		"y": "latitude",
	})
	if err != nil {
		t.Fatal(err)
	}
	x, err := m.Get("x")
	if err != nil {
		t.Fatal(err)
	}
	if x != "longitude" {
		t.Errorf("have %q, want %q", x, "longitude")
	}
	if m.Len() != 2 {
		t.Errorf("have %d roles, want 2", m.Len())
	}
	if want := []string{"x", "y"}; !reflect.DeepEqual(m.Roles(), want) {
		t.Errorf("have %v, want %v", m.Roles(), want)
	}
}

func TestNewModelUnknownRole(t *testing.T) {
	_, err := NewModel(map[string]string{"vorticity": "v"})
	var unknown *UnknownRoleKeyError
	if !errors.As(err, &unknown) {
		t.Fatalf("have %v (%T), want *UnknownRoleKeyError", err, err)
	}
	if unknown.Role != "vorticity" {
		t.Errorf("have role %q, want %q", unknown.Role, "vorticity")
	}
}

func TestModelRoleNotAssigned(t *testing.T) {
	m, err := NewModel(map[string]string{"x": "longitude"})
	if err != nil {
		t.Fatal(err)
	}
	_, err = m.Get("u")
	var unassigned *RoleNotAssignedError
	if !errors.As(err, &unassigned) {
		t.Fatalf("have %v (%T), want *RoleNotAssignedError", err, err)
	}
	_, err = m.Get("vorticity")
	var unknown *UnknownRoleKeyError
	if !errors.As(err, &unknown) {
		t.Fatalf("have %v (%T), want *UnknownRoleKeyError", err, err)
	}
	if m.Has("u") {
		t.Error("u should not be assigned")
	}
	if !m.Has("x") {
		t.Error("x should be assigned")
	}
}

func TestUMConvention(t *testing.T) {
	tests := map[string]string{
		"u":       "x_wind",
		"x":       "longitude",
		"y":       "latitude",
		"pres":    "air_pressure",
		"cv_rain": "convective_rainfall_flux",
		"temp":    "air_temperature",
	}
	for role, want := range tests {
		id, err := UM.Get(role)
		if err != nil {
			t.Errorf("%s: %v", role, err)
			continue
		}
		if id != want {
			t.Errorf("%s: have %q, want %q", role, id, want)
		}
	}
}

func TestUMStashConvention(t *testing.T) {
	tests := map[string]string{
		"u":       "m01s00i002",
		"thta":    "m01s00i004",
		"cv_rain": "m01s05i205",
		// Coordinates keep their symbolic names.
		"x": "longitude",
	}
	for role, want := range tests {
		id, err := UMStash.Get(role)
		if err != nil {
			t.Errorf("%s: %v", role, err)
			continue
		}
		if id != want {
			t.Errorf("%s: have %q, want %q", role, id, want)
		}
	}
	// Roles the STASH table does not carry stay unassigned.
	_, err := UMStash.Get("dens")
	var unassigned *RoleNotAssignedError
	if !errors.As(err, &unassigned) {
		t.Errorf("have %v (%T), want *RoleNotAssignedError", err, err)
	}
}
