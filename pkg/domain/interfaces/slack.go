package interfaces

import (
	"context"

	"github.com/slack-go/slack"
)

// SlackClient is the subset of the Slack API used to publish charts
type SlackClient interface {
	UploadFileV2Context(ctx context.Context, params slack.UploadFileV2Parameters) (*slack.FileSummary, error)
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}
