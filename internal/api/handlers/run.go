package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"

	"energy-sim/internal/analysis"
	"energy-sim/internal/api/models"
	"energy-sim/internal/calc"
	"energy-sim/internal/model"
	"energy-sim/internal/pipeline"
	"energy-sim/internal/report"
	"energy-sim/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RunHandler handles simulation run requests
type RunHandler struct {
	engine   *pipeline.Engine
	runs     *store.RunStore
	defaults model.Params
	logger   zerolog.Logger
}

// NewRunHandler creates a new run handler
func NewRunHandler(runs *store.RunStore, defaults model.Params, logger zerolog.Logger) *RunHandler {
	return &RunHandler{
		engine:   pipeline.New(logger),
		runs:     runs,
		defaults: defaults,
		logger:   logger.With().Str("component", "api").Logger(),
	}
}

// Defaults handles GET /api/v1/defaults
func (h *RunHandler) Defaults(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"params": h.defaults})
}

// CreateRun handles POST /api/v1/runs
func (h *RunHandler) CreateRun(c *gin.Context) {
	var req models.RunRequest
	// An empty body runs the defaults.
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			writeError(c, http.StatusBadRequest, "INVALID_REQUEST", err)
			return
		}
	}

	params := req.Apply(h.defaults)
	res, err := h.engine.Run(params)
	if err != nil {
		h.logger.Warn().Err(err).Msg("run failed")
		code := "INVALID_PARAMS"
		if errors.Is(err, calc.ErrNotNumeric) {
			code = "NOT_NUMERIC"
		}
		writeError(c, http.StatusUnprocessableEntity, code, err)
		return
	}

	id := h.runs.Put(res)
	h.logger.Info().Str("run_id", id).Int("days", res.Days()).Msg("run stored")

	resp := buildResponse(id, res)
	if !req.IncludeSeries {
		resp.Result = nil
	}
	c.JSON(http.StatusCreated, resp)
}

// GetRun handles GET /api/v1/runs/:id
func (h *RunHandler) GetRun(c *gin.Context) {
	id, res, ok := h.lookup(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, buildResponse(id, res))
}

// GetLedger handles GET /api/v1/runs/:id/ledger
func (h *RunHandler) GetLedger(c *gin.Context) {
	id, res, ok := h.lookup(c)
	if !ok {
		return
	}
	ledger, err := res.Ledger()
	if err != nil {
		writeError(c, http.StatusInternalServerError, "LEDGER_ERROR", err)
		return
	}
	c.JSON(http.StatusOK, models.LedgerResponse{ID: id, Days: res.Days(), Ledger: ledger})
}

// GetChart handles GET /api/v1/runs/:id/chart.svg and chart.png
func (h *RunHandler) GetChart(format report.Format) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, res, ok := h.lookup(c)
		if !ok {
			return
		}
		var buf bytes.Buffer
		if err := report.RenderCharts(&buf, res, format); err != nil {
			h.logger.Error().Err(err).Str("run_id", id).Msg("chart render failed")
			writeError(c, http.StatusInternalServerError, "RENDER_ERROR", err)
			return
		}
		c.Data(http.StatusOK, format.ContentType(), buf.Bytes())
	}
}

func (h *RunHandler) lookup(c *gin.Context) (string, *model.RunResult, bool) {
	id := c.Param("id")
	res, ok := h.runs.Get(id)
	if !ok {
		writeError(c, http.StatusNotFound, "NOT_FOUND", fmt.Errorf("run %q not found or expired", id))
		return id, nil, false
	}
	return id, res, true
}

func buildResponse(id string, res *model.RunResult) models.RunResponse {
	base := "/api/v1/runs/" + id
	return models.RunResponse{
		ID:      id,
		Status:  "completed",
		Params:  res.Params,
		Summary: analysis.Summarize(res),
		Result:  res,
		Links: models.RunLinks{
			Self:     base,
			Ledger:   base + "/ledger",
			ChartSVG: base + "/chart.svg",
			ChartPNG: base + "/chart.png",
		},
	}
}

func writeError(c *gin.Context, status int, code string, err error) {
	c.JSON(status, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    code,
			Message: err.Error(),
		},
	})
}
