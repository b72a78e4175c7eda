package chartjs

import (
	"encoding/json"
	"io"
	"text/template"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/pubchart/pkg/domain/model"
)

// Browser libraries the generated script runs against. The labels plugin
// reads options.plugins.datalabels and must be registered with Chart.js 3.
const (
	LibraryURL      = "https://cdn.jsdelivr.net/npm/chart.js@3.9.1/dist/chart.min.js"
	LabelsPluginURL = "https://cdn.jsdelivr.net/npm/chartjs-plugin-datalabels@2.2.0/dist/chartjs-plugin-datalabels.min.js"
)

var scriptTemplate = template.Must(template.New("index-chart.js").Parse(
	`// Code generated by pubchart. DO NOT EDIT.
{{- if .Version }}
// dataset version: {{ .Version }}
{{- end }}

if (typeof ChartDataLabels !== "undefined") {
  Chart.register(ChartDataLabels);
  Chart.defaults.plugins.datalabels.display = false;
  Chart.defaults.plugins.datalabels.formatter = function (value, ctx) {
    const opts = ctx.chart.config.options.plugins.datalabels || {};
    switch (opts.render) {
      case "percentage": {
        const total = ctx.dataset.data.reduce(function (a, b) { return a + b; }, 0);
        return total > 0 ? Math.round(value / total * 100) + "%" : "";
      }
      case "label":
        return ctx.chart.data.labels[ctx.dataIndex];
      default:
        return value;
    }
  };
}
{{ range .Charts }}
new Chart(document.getElementById({{ .ID }}).getContext("2d"), {{ .Config }});
{{ end -}}
`))

type scriptChart struct {
	ID     string
	Config string
}

// WriteScript writes a script that attaches every chart to the canvas whose
// element id equals the chart's surface id
func WriteScript(w io.Writer, version string, charts ...*model.Chart) error {
	data := struct {
		Version string
		Charts  []scriptChart
	}{}

	if version != "" {
		// quoted so that line breaks cannot end the comment
		v, err := json.Marshal(version)
		if err != nil {
			return goerr.Wrap(err, "failed to encode dataset version", goerr.V("version", version))
		}
		data.Version = string(v)
	}

	for _, c := range charts {
		if c == nil {
			continue
		}
		id, err := json.Marshal(c.SurfaceID.String())
		if err != nil {
			return goerr.Wrap(err, "failed to encode surface id", goerr.V("surface", c.SurfaceID))
		}
		cfg, err := c.Config.JSON()
		if err != nil {
			return err
		}
		data.Charts = append(data.Charts, scriptChart{ID: string(id), Config: string(cfg)})
	}

	if err := scriptTemplate.Execute(w, data); err != nil {
		return goerr.Wrap(err, "failed to write chart script")
	}
	return nil
}
