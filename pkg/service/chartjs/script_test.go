package chartjs_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/pubchart/pkg/domain/model"
	"github.com/secmon-lab/pubchart/pkg/domain/types"
	"github.com/secmon-lab/pubchart/pkg/service/chartjs"
)

func newCharts(t *testing.T) (*model.Chart, *model.Chart) {
	t.Helper()
	series, err := model.NewYearlySeries([]string{"2001", "2002"}, []int{14, 20})
	gt.NoError(t, err).Required()
	breakdown, err := model.NewCategoryBreakdown([]string{"A", "B"}, []float64{70, 30})
	gt.NoError(t, err).Required()

	bar := model.NewChart(types.SurfaceBarChart, *chartjs.BuildBarConfig(series, model.BarStyle{}))
	pie := model.NewChart(types.SurfacePieChart, *chartjs.BuildPieConfig(breakdown, model.PieStyle{}))
	return bar, pie
}

func TestWriteScript(t *testing.T) {
	bar, pie := newCharts(t)

	var buf bytes.Buffer
	gt.NoError(t, chartjs.WriteScript(&buf, "2024-11", bar, nil, pie)).Required()

	script := buf.String()
	gt.S(t, script).Contains(`// dataset version: "2024-11"`)
	gt.S(t, script).Contains(`new Chart(document.getElementById("barChart").getContext("2d"), {`)
	gt.S(t, script).Contains(`new Chart(document.getElementById("pieChart").getContext("2d"), {`)
	gt.S(t, script).Contains(`"beginAtZero": true`)
	gt.S(t, script).Contains(`"position": "bottom"`)
	gt.Equal(t, strings.Count(script, "new Chart("), 2)
	gt.True(t, strings.Index(script, "barChart") < strings.Index(script, "pieChart"))
}

func TestWriteScriptWithoutVersion(t *testing.T) {
	bar, _ := newCharts(t)

	var buf bytes.Buffer
	gt.NoError(t, chartjs.WriteScript(&buf, "", bar)).Required()
	gt.False(t, strings.Contains(buf.String(), "dataset version"))
	gt.Equal(t, strings.Count(buf.String(), "new Chart("), 1)
}

func TestWriteScriptIsIdempotent(t *testing.T) {
	bar, pie := newCharts(t)

	var a, b bytes.Buffer
	gt.NoError(t, chartjs.WriteScript(&a, "v1", bar, pie)).Required()
	gt.NoError(t, chartjs.WriteScript(&b, "v1", bar, pie)).Required()
	gt.Equal(t, a.String(), b.String())
}

func TestWriteScriptQuotesVersion(t *testing.T) {
	bar, _ := newCharts(t)

	var buf bytes.Buffer
	gt.NoError(t, chartjs.WriteScript(&buf, "v1\nalert(document.cookie)\u2028x", bar)).Required()

	for _, line := range strings.Split(buf.String(), "\n") {
		gt.False(t, strings.HasPrefix(line, "alert("))
	}
	gt.S(t, buf.String()).Contains(`// dataset version: "v1\nalert(document.cookie)\u2028x"`)
}

func TestWriteScriptRegistersLabelsPlugin(t *testing.T) {
	_, pie := newCharts(t)

	var buf bytes.Buffer
	gt.NoError(t, chartjs.WriteScript(&buf, "", pie)).Required()

	script := buf.String()
	gt.S(t, script).Contains("Chart.register(ChartDataLabels);")
	gt.S(t, script).Contains("ctx.chart.config.options.plugins.datalabels")
	gt.S(t, script).Contains(`"datalabels": {`)
	gt.S(t, script).Contains(`"render": "percentage"`)
	gt.True(t, strings.Index(script, "Chart.register") < strings.Index(script, "new Chart("))
	gt.S(t, chartjs.LabelsPluginURL).Contains("chartjs-plugin-datalabels@2")
	gt.S(t, chartjs.LibraryURL).Contains("chart.js@3")
}
