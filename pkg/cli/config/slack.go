package config

import (
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	slackSvc "github.com/secmon-lab/pubchart/pkg/service/slack"
	"github.com/urfave/cli/v3"
)

// Slack holds the destination of chart uploads
type Slack struct {
	OAuthToken string
	ChannelID  string
	Comment    string
}

// Flags returns CLI flags for Slack configuration
func (s *Slack) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "slack-oauth-token",
			Usage:       "Slack OAuth token for API access (needs files:write and chat:write)",
			Category:    "Slack",
			Sources:     cli.EnvVars("PUBCHART_SLACK_OAUTH_TOKEN"),
			Destination: &s.OAuthToken,
		},
		&cli.StringFlag{
			Name:        "slack-channel",
			Usage:       "Slack channel ID to upload rendered charts to",
			Category:    "Slack",
			Sources:     cli.EnvVars("PUBCHART_SLACK_CHANNEL"),
			Destination: &s.ChannelID,
		},
		&cli.StringFlag{
			Name:        "slack-comment",
			Usage:       "Comment attached to every uploaded chart",
			Category:    "Slack",
			Sources:     cli.EnvVars("PUBCHART_SLACK_COMMENT"),
			Destination: &s.Comment,
		},
	}
}

// IsConfigured reports whether uploads are enabled
func (s *Slack) IsConfigured() bool {
	return s.OAuthToken != "" && s.ChannelID != ""
}

// Validate rejects a half configured destination
func (s *Slack) Validate() error {
	if (s.OAuthToken == "") != (s.ChannelID == "") {
		return goerr.New("both --slack-oauth-token and --slack-channel are required to upload charts",
			goerr.V("has_oauth_token", s.OAuthToken != ""),
			goerr.V("has_channel", s.ChannelID != ""))
	}
	return nil
}

// ConfigureOptional creates a Slack service if configured, returns nil if not
func (s *Slack) ConfigureOptional(logger *slog.Logger) *slackSvc.Service {
	if !s.IsConfigured() {
		logger.Debug("Slack not configured, charts will not be uploaded")
		return nil
	}

	logger.Info("Configuring Slack upload", "channel", s.ChannelID)
	return slackSvc.New(s.OAuthToken, s.ChannelID)
}

// LogValue returns structured log value
func (s Slack) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("has_oauth_token", s.OAuthToken != ""),
		slog.String("channel", s.ChannelID),
	)
}
