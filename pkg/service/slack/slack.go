// Package slack publishes rendered charts to a Slack channel.
package slack

import (
	"bytes"
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/pubchart/pkg/domain/interfaces"
	"github.com/slack-go/slack"
)

// Service uploads chart images and posts dataset summaries
type Service struct {
	client    interfaces.SlackClient
	channelID string
}

// New creates a Service backed by the Slack Web API
func New(token, channelID string) *Service {
	return NewWithClient(slack.New(token), channelID)
}

// NewWithClient creates a Service on top of an existing client
func NewWithClient(client interfaces.SlackClient, channelID string) *Service {
	return &Service{client: client, channelID: channelID}
}

// ChannelID returns the destination channel
func (s *Service) ChannelID() string {
	return s.channelID
}

// UploadImage uploads an image file to the channel
func (s *Service) UploadImage(ctx context.Context, filename, title, comment string, data []byte) (*slack.FileSummary, error) {
	file, err := s.client.UploadFileV2Context(ctx, slack.UploadFileV2Parameters{
		Channel:        s.channelID,
		Filename:       filename,
		FileSize:       len(data),
		Reader:         bytes.NewReader(data),
		Title:          title,
		InitialComment: comment,
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to upload file to Slack",
			goerr.V("channel", s.channelID),
			goerr.V("filename", filename))
	}
	return file, nil
}

// PostMessage sends a message to the channel
func (s *Service) PostMessage(ctx context.Context, options ...slack.MsgOption) (string, string, error) {
	channel, timestamp, err := s.client.PostMessageContext(ctx, s.channelID, options...)
	if err != nil {
		return "", "", goerr.Wrap(err, "failed to post message to Slack", goerr.V("channel", s.channelID))
	}
	return channel, timestamp, nil
}
