// Package page writes the static site that hosts the charts: index.html and
// the script that draws on its canvases.
package page

import (
	"context"
	"io"
	"path/filepath"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/pubchart/frontend"
	"github.com/secmon-lab/pubchart/pkg/domain/model"
	"github.com/secmon-lab/pubchart/pkg/domain/types"
	"github.com/secmon-lab/pubchart/pkg/service/chartjs"
	"github.com/secmon-lab/pubchart/pkg/utils/fileutil"
)

const (
	IndexFile  = "index.html"
	ScriptFile = "assets/index-chart.js"

	DefaultTitle = "Publications"
)

type indexData struct {
	Title          string
	Subtitle       string
	Version        string
	PaperCount     int
	ScholarCount   int
	BarDescription string
	BarID          string
	PieID          string
	ScriptPath     string

	LibraryURL      string
	LabelsPluginURL string
}

// Write writes index.html and the chart script into dir
func Write(ctx context.Context, dir string, dataset *model.Dataset, charts ...*model.Chart) error {
	if dataset == nil {
		return goerr.New("dataset is nil")
	}

	tmpl, err := frontend.IndexTemplate()
	if err != nil {
		return err
	}

	if err := WriteScript(ctx, dir, dataset.Version, charts...); err != nil {
		return err
	}

	data := indexData{
		Title:          dataset.Title,
		Version:        dataset.Version,
		PaperCount:     dataset.PaperCount,
		ScholarCount:   dataset.ScholarCount,
		BarDescription: dataset.DescriptionOrDefault(),
		BarID:          types.SurfaceBarChart.String(),
		PieID:          types.SurfacePieChart.String(),
		ScriptPath:     ScriptFile,

		LibraryURL:      chartjs.LibraryURL,
		LabelsPluginURL: chartjs.LabelsPluginURL,
	}
	if data.Title == "" {
		data.Title = DefaultTitle
	}
	if dataset.UpdatedAt != "" {
		data.Subtitle = "Last updated " + dataset.UpdatedAt
	}

	path := filepath.Join(dir, IndexFile)
	if err := fileutil.WriteAtomic(path, func(w io.Writer) error {
		if err := tmpl.Execute(w, data); err != nil {
			return goerr.Wrap(err, "failed to render page", goerr.V("path", path))
		}
		return nil
	}); err != nil {
		return err
	}

	ctxlog.From(ctx).Info("page written", "path", path, "dataset", dataset)
	return nil
}

// WriteScript writes only the chart script, for hosts that bring their own
// page
func WriteScript(ctx context.Context, dir, version string, charts ...*model.Chart) error {
	path := filepath.Join(dir, filepath.FromSlash(ScriptFile))
	if err := fileutil.WriteAtomic(path, func(w io.Writer) error {
		return chartjs.WriteScript(w, version, charts...)
	}); err != nil {
		return err
	}

	ctxlog.From(ctx).Debug("chart script written", "path", path, "charts", len(charts))
	return nil
}
