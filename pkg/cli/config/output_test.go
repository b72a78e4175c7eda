package config_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/pubchart/pkg/cli/config"
	"github.com/secmon-lab/pubchart/pkg/domain/model"
	"github.com/secmon-lab/pubchart/pkg/domain/types"
)

func TestOutputConfigure(t *testing.T) {
	o := config.Output{Dir: "out", Formats: "js, PNG,js"}
	formats, err := o.Configure()
	gt.NoError(t, err).Required()
	gt.Equal(t, formats, []types.OutputFormat{types.FormatScript, types.FormatPNG})

	o.Formats = "gif"
	_, err = o.Configure()
	gt.Error(t, err)

	o = config.Output{Dir: "", Formats: "js"}
	_, err = o.Configure()
	gt.Error(t, err)

	o = config.Output{Dir: "out", Formats: "png", Width: -1}
	_, err = o.Configure()
	gt.Error(t, err)
}

func TestOutputImageStyle(t *testing.T) {
	o := config.Output{}
	gt.Equal(t, o.ImageStyle(model.ImageStyle{}), model.ImageStyle{
		Width:  model.DefaultImageWidth,
		Height: model.DefaultImageHeight,
	})
	gt.Equal(t, o.ImageStyle(model.ImageStyle{Width: 640}).Width, 640)

	o = config.Output{Width: 1024, Height: 768}
	gt.Equal(t, o.ImageStyle(model.ImageStyle{Width: 640, Height: 400}), model.ImageStyle{Width: 1024, Height: 768})
}

func TestSlackValidate(t *testing.T) {
	gt.NoError(t, (&config.Slack{}).Validate())
	gt.NoError(t, (&config.Slack{OAuthToken: "xoxb-1", ChannelID: "C1"}).Validate())
	gt.Error(t, (&config.Slack{OAuthToken: "xoxb-1"}).Validate())
	gt.Error(t, (&config.Slack{ChannelID: "C1"}).Validate())

	gt.True(t, (&config.Slack{OAuthToken: "xoxb-1", ChannelID: "C1"}).IsConfigured())
	gt.False(t, (&config.Slack{}).IsConfigured())
}

func TestLoggerValidate(t *testing.T) {
	gt.NoError(t, (&config.Logger{Level: "debug", Format: "json"}).Validate())
	gt.Error(t, (&config.Logger{Level: "trace", Format: "json"}).Validate())
	gt.Error(t, (&config.Logger{Level: "info", Format: "xml"}).Validate())

	logger, err := (&config.Logger{Level: "info", Format: "json"}).Configure()
	gt.NoError(t, err).Required()
	gt.V(t, logger).NotNil()
}
