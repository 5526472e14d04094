package seed

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// HabitPreset is one entry in the demo habit catalog.
type HabitPreset struct {
	Name  string `yaml:"name"`
	Color string `yaml:"color"`
	// Consistency in [0,1]: how likely the habit is done on a given day.
	Consistency float64 `yaml:"consistency"`
}

// builtInPresets is the default demo catalog. A YAML file with the same
// shape can be supplied to replace it.
const builtInPresets = `
- name: Morning run
  color: "#ef4444"
  consistency: 0.6
- name: Read 20 pages
  color: "#3b82f6"
  consistency: 0.8
- name: Meditate
  color: "#8b5cf6"
  consistency: 0.7
- name: Drink 2L water
  color: "#06b6d4"
  consistency: 0.9
- name: Journal
  color: "#f59e0b"
  consistency: 0.5
- name: Stretch
  color: "#22c55e"
  consistency: 0.65
- name: No sugar
  color: "#ec4899"
  consistency: 0.4
- name: Practice guitar
  color: "#a16207"
  consistency: 0.55
`

// DefaultPresets returns the built-in demo habit catalog.
func DefaultPresets() ([]HabitPreset, error) {
	return parsePresets([]byte(builtInPresets))
}

// LoadPresets reads a habit catalog from a YAML file.
func LoadPresets(path string) ([]HabitPreset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading presets file: %w", err)
	}
	return parsePresets(data)
}

func parsePresets(data []byte) ([]HabitPreset, error) {
	var presets []HabitPreset
	if err := yaml.Unmarshal(data, &presets); err != nil {
		return nil, fmt.Errorf("parsing presets: %w", err)
	}
	for i := range presets {
		if presets[i].Color == "" {
			presets[i].Color = "#3b82f6"
		}
		if presets[i].Consistency <= 0 || presets[i].Consistency > 1 {
			presets[i].Consistency = 0.6
		}
	}
	return presets, nil
}
