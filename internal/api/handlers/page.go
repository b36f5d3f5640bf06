package handlers

import (
	"html/template"
	"net/http"

	"energy-sim/internal/analysis"

	"github.com/gin-gonic/gin"
)

// PageTemplate is the display page for a single run.
var PageTemplate = template.Must(template.New("run.html").Parse(`<!doctype html>
<html>
<head>
<meta charset="utf-8">
<title>Energy simulation {{.ID}}</title>
<style>
body { font-family: sans-serif; margin: 2em; color: #222; }
table { border-collapse: collapse; margin-bottom: 1.5em; }
td, th { padding: 0.3em 1em; text-align: right; border-bottom: 1px solid #ddd; }
th:first-child, td:first-child { text-align: left; }
</style>
</head>
<body>
<h1>Energy simulation ({{.Summary.Days}} days)</h1>
<table>
<tr><th>Metric</th><th>Original</th><th>Optimized</th><th>Savings</th></tr>
<tr><td>Usage (kWh)</td><td>{{printf "%.2f" .Summary.Usage.Original.Total}}</td><td>{{printf "%.2f" .Summary.Usage.Optimized.Total}}</td><td>{{printf "%.2f" .Summary.Usage.Savings}}</td></tr>
<tr><td>Cost</td><td>{{printf "%.2f" .Summary.Cost.Original.Total}}</td><td>{{printf "%.2f" .Summary.Cost.Optimized.Total}}</td><td>{{printf "%.2f" .Summary.Cost.Savings}}</td></tr>
<tr><td>Footprint (kg CO2e)</td><td>{{printf "%.2f" .Summary.Footprint.Original.Total}}</td><td>{{printf "%.2f" .Summary.Footprint.Optimized.Total}}</td><td>{{printf "%.2f" .Summary.Footprint.Savings}}</td></tr>
</table>
{{if not .Summary.Avoided.IsEmpty}}<p><em>{{.Summary.Avoided.Text}}</em></p>{{end}}
<img src="/api/v1/runs/{{.ID}}/chart.svg" alt="usage, cost and footprint charts">
</body>
</html>
`))

type pageData struct {
	ID      string
	Summary analysis.Summary
}

// ShowRun handles GET /runs/:id, the browser view of a stored run
func (h *RunHandler) ShowRun(c *gin.Context) {
	id, res, ok := h.lookup(c)
	if !ok {
		return
	}
	c.HTML(http.StatusOK, "run.html", pageData{ID: id, Summary: analysis.Summarize(res)})
}
