package config

import "sort"

var Presets = map[string]map[string]*Config{
	ModelGrid: {
		"ordered": {
			Model: ModelGrid, Size: 64, Dim: 2, Temperature: 1.0, Coupling: 1.0,
			Steps: 200, CaptureRate: 2, BurnIn: 50, Snapshots: true,
		},
		"critical": {
			Model: ModelGrid, Size: 64, Dim: 2, Temperature: 2.269, Coupling: 1.0,
			Steps: 500, CaptureRate: 5, BurnIn: 100, Snapshots: true,
		},
		"disordered": {
			Model: ModelGrid, Size: 64, Dim: 2, Temperature: 5.0, Coupling: 1.0,
			Steps: 200, CaptureRate: 2, BurnIn: 50, Snapshots: true,
		},
		"field": {
			Model: ModelGrid, Size: 100, Dim: 2, Temperature: 2.5, Coupling: 1.0, Field: 0.5,
			Steps: 100, CaptureRate: 2, Snapshots: true,
		},
		"cubic": {
			Model: ModelGrid, Size: 24, Dim: 3, Temperature: 4.5, Coupling: 1.0,
			Steps: 200, CaptureRate: 5, BurnIn: 50, Snapshots: false,
		},
	},
	ModelShell: {
		"sphere": {
			Model: ModelShell, Size: 200, Dim: 3, Radius: 20, Temperature: 0.2, Coupling: 1.0,
			Steps: 300, CaptureRate: 10, Snapshots: false,
		},
		"small": {
			Model: ModelShell, Size: 40, Dim: 3, Radius: 10, Temperature: 0.2, Coupling: 1.0,
			Steps: 100, CaptureRate: 5, Snapshots: true,
		},
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(model, preset string) *Config {
	modelPresets, ok := Presets[model]
	if !ok {
		return nil
	}
	cfg, ok := modelPresets[preset]
	if !ok {
		return nil
	}
	c := *cfg
	return &c
}

func ListPresets(model string) []string {
	modelPresets, ok := Presets[model]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(modelPresets))
	for name := range modelPresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
