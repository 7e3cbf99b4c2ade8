// Package rules defines the data-driven tables that parameterise world
// generation: landforms, rock strata, geologic provinces, surface block
// layers and ore deposits. Tables arrive either from JSON assets (Load) or
// from the built-in set (Defaults). The generation core never parses files
// itself; it consumes a validated Tables value.
package rules

import (
	"errors"
	"fmt"
	"sort"

	"github.com/marc-cr1810/deepbound/internal/noise"
)

// Direction orders a rock stratum relative to the column it fills.
type Direction string

const (
	// TopDown strata stack downward from the surface.
	TopDown Direction = "TopDown"
	// BottomUp strata stack upward from the world floor.
	BottomUp Direction = "BottomUp"
)

// Climate bounds a rule to a band of temperature (degrees, -50..50) and
// rainfall (0..256).
type Climate struct {
	MinTemp float64 `json:"minTemp"`
	MaxTemp float64 `json:"maxTemp"`
	MinRain float64 `json:"minRain"`
	MaxRain float64 `json:"maxRain"`
}

// Contains reports whether the sample falls inside the band.
func (c Climate) Contains(temp, rain float64) bool {
	return temp >= c.MinTemp && temp <= c.MaxTemp && rain >= c.MinRain && rain <= c.MaxRain
}

// Landform shapes terrain over a stretch of world: the height curve sets
// the base fill level and the octave vectors drive surface detail noise.
type Landform struct {
	Code             string    `json:"code"`
	MapColor         string    `json:"mapColor"`
	Weight           float64   `json:"weight"`
	UseClimate       bool      `json:"useClimate"`
	Climate          Climate   `json:"climate"`
	OctaveAmplitudes []float64 `json:"octaveAmplitudes"`
	OctaveThresholds []float64 `json:"octaveThresholds"`
	HeightCurve      Spline    `json:"heightCurve"`
}

// RockStratum places one rock kind into columns. Rules apply in table
// order; earlier rules claim their thickness first.
type RockStratum struct {
	BlockCode   string    `json:"blockcode"`
	Group       string    `json:"rockGroup"`
	Direction   Direction `json:"genDir"`
	Amplitudes  []float64 `json:"amplitudes"`
	Thresholds  []float64 `json:"thresholds"`
	Frequencies []float64 `json:"frequencies"`
}

// Province caps how much thickness each rock group may accumulate in the
// region it covers. A non-empty Budgets map is an allow list: groups it
// does not name may not appear at all. An empty map constrains nothing.
type Province struct {
	Code    string             `json:"code"`
	Weight  float64            `json:"weight"`
	Budgets map[string]float64 `json:"budgets"`
}

// BlockLayer replaces the top of solid columns with surface material.
type BlockLayer struct {
	BlockCode    string  `json:"blockcode"`
	UseClimate   bool    `json:"useClimate"`
	Climate      Climate `json:"climate"`
	MinThickness int     `json:"minThickness"`
	MaxThickness int     `json:"maxThickness"`
}

// OreDeposit seeds an ore tile into cells of its host rock group wherever
// the cell noise exceeds the threshold.
type OreDeposit struct {
	BlockCode string  `json:"blockcode"`
	HostGroup string  `json:"hostGroup"`
	Frequency float64 `json:"frequency"`
	Threshold float64 `json:"threshold"`
}

// Tables bundles every rule set generation consumes.
type Tables struct {
	Landforms   []Landform
	Strata      []RockStratum
	Provinces   []Province
	BlockLayers []BlockLayer
	Ores        []OreDeposit
}

// Validate checks the structural invariants Load and Defaults both
// promise. Empty tables are valid; generation degrades gracefully without
// them.
func (t *Tables) Validate() error {
	for i, lf := range t.Landforms {
		if lf.Code == "" {
			return fmt.Errorf("landforms[%d].code must be set", i)
		}
		if lf.Weight <= 0 {
			return fmt.Errorf("landforms[%d].weight must be positive", i)
		}
		if len(lf.OctaveAmplitudes) > noise.MaxOctaves {
			return fmt.Errorf("landforms[%d]: at most %d octaves are supported", i, noise.MaxOctaves)
		}
		if err := lf.HeightCurve.validate(); err != nil {
			return fmt.Errorf("landforms[%d].heightCurve: %w", i, err)
		}
		if err := climateValid(lf.UseClimate, lf.Climate); err != nil {
			return fmt.Errorf("landforms[%d].climate: %w", i, err)
		}
	}
	for i, st := range t.Strata {
		if st.BlockCode == "" {
			return fmt.Errorf("strata[%d].blockcode must be set", i)
		}
		if st.Group == "" {
			return fmt.Errorf("strata[%d].rockGroup must be set", i)
		}
		if st.Direction != TopDown && st.Direction != BottomUp {
			return fmt.Errorf("strata[%d].genDir must be %q or %q", i, TopDown, BottomUp)
		}
		if len(st.Amplitudes) == 0 {
			return fmt.Errorf("strata[%d].amplitudes must not be empty", i)
		}
		if len(st.Amplitudes) > noise.MaxOctaves {
			return fmt.Errorf("strata[%d]: at most %d octaves are supported", i, noise.MaxOctaves)
		}
	}
	for i, pr := range t.Provinces {
		if pr.Code == "" {
			return fmt.Errorf("provinces[%d].code must be set", i)
		}
		if pr.Weight <= 0 {
			return fmt.Errorf("provinces[%d].weight must be positive", i)
		}
		groups := make([]string, 0, len(pr.Budgets))
		for group := range pr.Budgets {
			groups = append(groups, group)
		}
		sort.Strings(groups)
		for _, group := range groups {
			if pr.Budgets[group] < 0 {
				return fmt.Errorf("provinces[%d].budgets[%q] cannot be negative", i, group)
			}
		}
	}
	for i, layer := range t.BlockLayers {
		if layer.BlockCode == "" {
			return fmt.Errorf("blocklayers[%d].blockcode must be set", i)
		}
		if layer.MinThickness < 1 {
			return fmt.Errorf("blocklayers[%d].minThickness must be at least 1", i)
		}
		if layer.MaxThickness < layer.MinThickness {
			return fmt.Errorf("blocklayers[%d].maxThickness must be >= minThickness", i)
		}
		if err := climateValid(layer.UseClimate, layer.Climate); err != nil {
			return fmt.Errorf("blocklayers[%d].climate: %w", i, err)
		}
	}
	for i, ore := range t.Ores {
		if ore.BlockCode == "" {
			return fmt.Errorf("ores[%d].blockcode must be set", i)
		}
		if ore.HostGroup == "" {
			return fmt.Errorf("ores[%d].hostGroup must be set", i)
		}
		if ore.Frequency <= 0 {
			return fmt.Errorf("ores[%d].frequency must be positive", i)
		}
		if ore.Threshold < -1 || ore.Threshold > 1 {
			return fmt.Errorf("ores[%d].threshold must lie within [-1, 1]", i)
		}
	}
	return nil
}

func climateValid(used bool, c Climate) error {
	if !used {
		return nil
	}
	if c.MaxTemp < c.MinTemp {
		return errors.New("maxTemp must be >= minTemp")
	}
	if c.MaxRain < c.MinRain {
		return errors.New("maxRain must be >= minRain")
	}
	return nil
}
