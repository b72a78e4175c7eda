package slack

import (
	"bytes"
	"context"
	"fmt"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/pubchart/pkg/domain/interfaces"
	"github.com/secmon-lab/pubchart/pkg/domain/model"
	"github.com/secmon-lab/pubchart/pkg/domain/types"
	"github.com/secmon-lab/pubchart/pkg/service/raster"
	"github.com/slack-go/slack"
)

// Surface posts each chart drawn on it to Slack as a PNG. Slack keeps every
// upload, so "replacing" the content means a newer message in the channel.
type Surface struct {
	id      types.SurfaceID
	svc     *Service
	size    model.ImageStyle
	caption string
}

// NewSurface returns a surface uploading to svc's channel. caption is used
// as the initial comment of every upload.
func NewSurface(id types.SurfaceID, svc *Service, size model.ImageStyle, caption string) *Surface {
	return &Surface{id: id, svc: svc, size: size, caption: caption}
}

// ID returns the surface id
func (s *Surface) ID() types.SurfaceID {
	return s.id
}

// Stage renders the PNG; the upload happens on commit
func (s *Surface) Stage(ctx context.Context, chart *model.Chart) (interfaces.Commit, error) {
	if chart == nil {
		return nil, goerr.New("chart is nil", goerr.V("surface", s.id))
	}
	var buf bytes.Buffer
	if err := raster.Draw(&buf, types.FormatPNG, chart.Config, s.size); err != nil {
		return nil, err
	}
	title := chartTitle(chart)

	return func(ctx context.Context) error {
		filename := fmt.Sprintf("%s.png", s.id)
		file, err := s.svc.UploadImage(ctx, filename, title, s.caption, buf.Bytes())
		if err != nil {
			return err
		}

		ctxlog.From(ctx).Info("chart uploaded to Slack",
			"surface", s.id,
			"channel", s.svc.ChannelID(),
			"file_id", file.ID)
		return nil
	}, nil
}

// Draw uploads the chart as a PNG
func (s *Surface) Draw(ctx context.Context, chart *model.Chart) error {
	commit, err := s.Stage(ctx, chart)
	if err != nil {
		return err
	}
	return commit(ctx)
}

var _ interfaces.StagedSurface = (*Surface)(nil)

func chartTitle(chart *model.Chart) string {
	switch chart.Config.Type {
	case types.ChartTypeBar:
		if label := chart.Config.Primary().Label; label != "" {
			return label
		}
		return "Publications by year"
	case types.ChartTypePie:
		return "Publications by topic"
	default:
		return chart.SurfaceID.String()
	}
}

// PostSummary posts the dataset summary that accompanies the uploads
func (s *Service) PostSummary(ctx context.Context, dataset *model.Dataset, warnings []model.Warning) error {
	_, ts, err := s.PostMessage(ctx,
		slack.MsgOptionText(SummaryText(dataset), false),
		slack.MsgOptionBlocks(BuildSummaryBlocks(dataset, warnings)...),
	)
	if err != nil {
		return err
	}

	ctxlog.From(ctx).Debug("summary posted to Slack", "channel", s.channelID, "ts", ts)
	return nil
}
