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
	"sort"
)

// modelRoles is the closed set of logical role names a Model can map to
// dataset-specific variable identifiers.
var modelRoles = map[string]struct{}{
	// Coordinates.
	"t":        {}, // time
	"fcst_ref": {}, // forecast reference time
	"fcst_prd": {}, // forecast period
	"z":        {}, // height
	"lev":      {}, // model level number
	"s":        {}, // sigma
	"y":        {}, // latitude
	"x":        {}, // longitude

	// Main prognostic variables.
	"u":     {},
	"v":     {},
	"w":     {},
	"pres":  {},
	"thta":  {},
	"exner": {},
	"sh":    {},
	"t_sfc": {},
	"p_sfc": {},

	// Radiation.
	"toa_isr":         {},
	"toa_olr":         {},
	"toa_olr_cs":      {},
	"toa_osr":         {},
	"toa_osr_cs":      {},
	"sfc_dn_lw":       {},
	"sfc_dn_lw_cs":    {},
	"sfc_dn_sw":       {},
	"sfc_dn_sw_cs":    {},
	"sfc_net_down_lw": {},
	"sfc_net_down_sw": {},
	"lw_up":           {},
	"sw_up":           {},

	// Boundary layer.
	"sfc_shf":  {},
	"sfc_lhf":  {},
	"sfc_evap": {},

	// Extra physics.
	"temp": {},
	"dens": {},
	"ghgt": {},
	"rh":   {},

	// Precipitation and cloud.
	"cld_ice_mf": {},
	"cld_liq_mf": {},
	"rain_mf":    {},
	"cld_ice_v":  {},
	"cld_liq_v":  {},
	"cld_v":      {},
	"caf":        {},
	"caf_h":      {},
	"caf_m":      {},
	"caf_l":      {},
	"caf_vl":     {},
	"ppn":        {},
	"ls_rain":    {},
	"ls_snow":    {},
	"cv_rain":    {},
	"cv_snow":    {},
}

// Model maps short logical role names to dataset-specific variable
// identifiers. Partial assignments are legal; only assigned roles are
// queryable. A Model is immutable and may be shared between many Runs.
type Model struct {
	names map[string]string
}

// NewModel builds a Model from explicit role assignments. Keys outside
// the recognized role set fail with an UnknownRoleKeyError.
func NewModel(assignments map[string]string) (*Model, error) {
	names := make(map[string]string, len(assignments))
	for role, id := range assignments {
		if _, ok := modelRoles[role]; !ok {
			return nil, &UnknownRoleKeyError{Role: role}
		}
		names[role] = id
	}
	return &Model{names: names}, nil
}

func mustModel(assignments map[string]string) *Model {
	m, err := NewModel(assignments)
	if err != nil {
		panic(err)
	}
	return m
}

// Get resolves a role to its assigned identifier. Unrecognized roles
// fail with an UnknownRoleKeyError; recognized but unassigned roles
// fail with a RoleNotAssignedError.
func (m *Model) Get(role string) (string, error) {
	if _, ok := modelRoles[role]; !ok {
		return "", &UnknownRoleKeyError{Role: role}
	}
	id, ok := m.names[role]
	if !ok {
		return "", &RoleNotAssignedError{Role: role}
	}
	return id, nil
}

// Has reports whether the role is assigned in this Model.
func (m *Model) Has(role string) bool {
	_, ok := m.names[role]
	return ok
}

// Len returns the number of assigned roles.
func (m *Model) Len() int { return len(m.names) }

// Roles returns the assigned role names in sorted order.
func (m *Model) Roles() []string {
	out := make([]string, 0, len(m.names))
	for role := range m.names {
		out = append(out, role)
	}
	sort.Strings(out)
	return out
}

func (m *Model) String() string {
	return fmt.Sprintf("Model(%d roles assigned)", len(m.names))
}

// UM is the naming convention of Unified Model output loaded with CF
// standard names.
var UM = mustModel(map[string]string{
	"t":        "time",
	"fcst_ref": "forecast_reference_time",
	"fcst_prd": "forecast_period",
	"z":        "level_height",
	"lev":      "model_level_number",
	"s":        "sigma",
	"y":        "latitude",
	"x":        "longitude",

	"u":     "x_wind",
	"v":     "y_wind",
	"w":     "upward_air_velocity",
	"pres":  "air_pressure",
	"thta":  "air_potential_temperature",
	"exner": "dimensionless_exner_function",
	"sh":    "specific_humidity",
	"t_sfc": "surface_temperature",
	"p_sfc": "surface_air_pressure",

	"toa_isr":         "toa_incoming_shortwave_flux",
	"toa_olr":         "toa_outgoing_longwave_flux",
	"toa_olr_cs":      "toa_outgoing_longwave_flux_assuming_clear_sky",
	"toa_osr":         "toa_outgoing_shortwave_flux",
	"toa_osr_cs":      "toa_outgoing_shortwave_flux_assuming_clear_sky",
	"sfc_dn_lw":       "surface_downwelling_longwave_flux_in_air",
	"sfc_dn_lw_cs":    "surface_downwelling_longwave_flux_in_air_assuming_clear_sky",
	"sfc_dn_sw":       "surface_downwelling_shortwave_flux_in_air",
	"sfc_dn_sw_cs":    "surface_downwelling_shortwave_flux_in_air_assuming_clear_sky",
	"sfc_net_down_lw": "surface_net_downward_longwave_flux",
	"sfc_net_down_sw": "surface_net_downward_shortwave_flux",
	"lw_up":           "upwelling_longwave_flux_in_air",
	"sw_up":           "upwelling_shortwave_flux_in_air",

	"sfc_shf":  "surface_upward_sensible_heat_flux",
	"sfc_lhf":  "surface_upward_latent_heat_flux",
	"sfc_evap": "surface_upward_water_flux",

	"temp": "air_temperature",
	"dens": "air_density",
	"ghgt": "geopotential_height",
	"rh":   "relative_humidity",

	"cld_ice_mf": "mass_fraction_of_cloud_ice_in_air",
	"cld_liq_mf": "mass_fraction_of_cloud_liquid_water_in_air",
	"rain_mf":    "mass_fraction_of_rain_in_air",
	"cld_ice_v":  "ice_cloud_volume_fraction_in_atmosphere_layer",
	"cld_liq_v":  "liquid_cloud_volume_fraction_in_atmosphere_layer",
	"cld_v":      "cloud_volume_fraction_in_atmosphere_layer",
	"caf":        "cloud_area_fraction",
	"caf_h":      "high_type_cloud_area_fraction",
	"caf_m":      "medium_type_cloud_area_fraction",
	"caf_l":      "low_type_cloud_area_fraction",
	"ppn":        "precipitation_flux",
	"ls_rain":    "stratiform_rainfall_flux",
	"ls_snow":    "stratiform_snowfall_flux",
	"cv_rain":    "convective_rainfall_flux",
	"cv_snow":    "convective_snowfall_flux",
})

// UMStash is the same convention keyed by raw STASH codes, for output
// loaded without a STASH-to-standard-name translation table.
var UMStash = mustModel(map[string]string{
	"t":        "time",
	"fcst_ref": "forecast_reference_time",
	"fcst_prd": "forecast_period",
	"z":        "level_height",
	"lev":      "model_level_number",
	"s":        "sigma",
	"y":        "latitude",
	"x":        "longitude",

	"u":     "m01s00i002",
	"v":     "m01s00i003",
	"w":     "m01s00i150",
	"pres":  "m01s00i408",
	"thta":  "m01s00i004",
	"exner": "m01s00i255",
	"sh":    "m01s00i010",
	"t_sfc": "m01s00i024",
	"p_sfc": "m01s00i409",

	"toa_isr":    "m01s01i207",
	"toa_osr":    "m01s01i208",
	"toa_osr_cs": "m01s01i209",
	"toa_olr":    "m01s02i205",
	"toa_olr_cs": "m01s02i206",
	"sfc_dn_lw":  "m01s02i207",
	"sfc_dn_sw":  "m01s01i235",

	"sfc_shf": "m01s03i217",
	"sfc_lhf": "m01s03i234",

	"temp": "m01s16i004",
	"ghgt": "m01s16i202",
	"rh":   "m01s16i256",

	"caf":     "m01s09i217",
	"ls_rain": "m01s04i203",
	"ls_snow": "m01s04i204",
	"cv_rain": "m01s05i205",
	"cv_snow": "m01s05i206",
	"ppn":     "m01s05i216",
})
