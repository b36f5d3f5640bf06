package model

// Scenario names one of the two tracks in a run.
// Keep these values stable; they are intended for CSV and JSON output.
type Scenario string

const (
	ScenarioOriginal  Scenario = "ORIGINAL"
	ScenarioOptimized Scenario = "OPTIMIZED"
)

// Label is the human-friendly legend text for charts and tables.
func (s Scenario) Label() string {
	switch s {
	case ScenarioOriginal:
		return "Original"
	case ScenarioOptimized:
		return "Optimized"
	default:
		return string(s)
	}
}
