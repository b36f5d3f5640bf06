package models

import (
	"energy-sim/internal/analysis"
	"energy-sim/internal/model"
)

// RunResponse represents the response from a simulation run
type RunResponse struct {
	ID      string           `json:"id,omitempty"`
	Status  string           `json:"status"`
	Params  model.Params     `json:"params"`
	Summary analysis.Summary `json:"summary"`
	Result  *model.RunResult `json:"result,omitempty"`
	Links   RunLinks         `json:"links,omitempty"`
}

// RunLinks points at the derived resources of a stored run
type RunLinks struct {
	Self     string `json:"self,omitempty"`
	Ledger   string `json:"ledger,omitempty"`
	ChartSVG string `json:"chart_svg,omitempty"`
	ChartPNG string `json:"chart_png,omitempty"`
}

// LedgerResponse is the per-day breakdown of a run
type LedgerResponse struct {
	ID     string         `json:"id"`
	Days   int            `json:"days"`
	Ledger []model.DayRow `json:"ledger"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}
