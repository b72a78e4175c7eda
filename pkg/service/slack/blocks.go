package slack

import (
	"fmt"
	"strings"

	"github.com/secmon-lab/pubchart/pkg/domain/model"
	"github.com/slack-go/slack"
)

const maxListedWarnings = 5

// BuildSummaryBlocks describes a dataset: header, counts and any
// consistency warnings
func BuildSummaryBlocks(dataset *model.Dataset, warnings []model.Warning) []slack.Block {
	title := dataset.Title
	if title == "" {
		title = "Publications"
	}

	blocks := []slack.Block{
		slack.NewHeaderBlock(slack.NewTextBlockObject(slack.PlainTextType, "📊 "+title, false, false)),
	}

	var fields []*slack.TextBlockObject
	if dataset.Version != "" {
		fields = append(fields, slack.NewTextBlockObject(slack.MarkdownType, fmt.Sprintf("*Version:*\n%s", dataset.Version), false, false))
	}
	if _, last, ok := dataset.Series.Last(); ok {
		fields = append(fields, slack.NewTextBlockObject(slack.MarkdownType, fmt.Sprintf("*Publications:*\n%d", last), false, false))
	}
	if dataset.PaperCount > 0 {
		fields = append(fields, slack.NewTextBlockObject(slack.MarkdownType, fmt.Sprintf("*Papers:*\n%d", dataset.PaperCount), false, false))
	}
	if dataset.ScholarCount > 0 {
		fields = append(fields, slack.NewTextBlockObject(slack.MarkdownType, fmt.Sprintf("*Scholars:*\n%d", dataset.ScholarCount), false, false))
	}
	if dataset.Breakdown.Len() > 0 {
		fields = append(fields, slack.NewTextBlockObject(slack.MarkdownType, fmt.Sprintf("*Categories:*\n%d", dataset.Breakdown.Len()), false, false))
	}
	if len(fields) > 0 {
		blocks = append(blocks, slack.NewSectionBlock(nil, fields, nil))
	}

	if desc := dataset.DescriptionOrDefault(); desc != "" {
		blocks = append(blocks, slack.NewContextBlock("",
			slack.NewTextBlockObject(slack.MarkdownType, desc, false, false)))
	}

	if len(warnings) > 0 {
		var lines []string
		for i, w := range warnings {
			if i == maxListedWarnings {
				lines = append(lines, fmt.Sprintf("…and %d more", len(warnings)-maxListedWarnings))
				break
			}
			lines = append(lines, fmt.Sprintf("• `%s` %s", w.Code, w.Message))
		}
		blocks = append(blocks,
			slack.NewDividerBlock(),
			slack.NewSectionBlock(
				slack.NewTextBlockObject(slack.MarkdownType, "⚠️ *Warnings*\n"+strings.Join(lines, "\n"), false, false),
				nil, nil),
		)
	}

	return blocks
}

// SummaryText is the plain text fallback of the summary blocks
func SummaryText(dataset *model.Dataset) string {
	if _, last, ok := dataset.Series.Last(); ok {
		return fmt.Sprintf("Charts updated: %d publications (version %s)", last, dataset.Version)
	}
	return fmt.Sprintf("Charts updated (version %s)", dataset.Version)
}
