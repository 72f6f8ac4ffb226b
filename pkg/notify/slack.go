package notify

import (
	"context"
	"fmt"

	goslack "github.com/slack-go/slack"
)

const maxBlockTextLength = 2900

var outcomeEmoji = map[string]string{
	"complete":     ":white_check_mark:",
	"saturated":    ":white_check_mark:",
	"bounded":      ":hourglass:",
	"inconclusive": ":question:",
	"failed":       ":x:",
	"cancelled":    ":no_entry_sign:",
}

var outcomeLabel = map[string]string{
	"complete":     "Task Complete",
	"saturated":    "Task Complete (saturated)",
	"bounded":      "Task Hit Its Bounds",
	"inconclusive": "Task Inconclusive",
	"failed":       "Task Failed",
	"cancelled":    "Task Cancelled",
}

// SlackSender posts notices via the Slack Web API. The channel target
// is the Slack channel or DM ID.
type SlackSender struct {
	api *goslack.Client
}

// NewSlackSender builds a sender against the public Slack API.
func NewSlackSender(token string) *SlackSender {
	return &SlackSender{api: goslack.New(token)}
}

// NewSlackSenderWithAPIURL targets a custom API URL, for tests with a
// mock server.
func NewSlackSenderWithAPIURL(token, apiURL string) *SlackSender {
	return &SlackSender{api: goslack.New(token, goslack.OptionAPIURL(apiURL))}
}

// Send posts the notice as Block Kit blocks.
func (s *SlackSender) Send(ctx context.Context, target string, notice TaskNotice) error {
	_, _, err := s.api.PostMessageContext(ctx, target, goslack.MsgOptionBlocks(buildTaskBlocks(notice)...))
	if err != nil {
		return fmt.Errorf("chat.postMessage failed: %w", err)
	}
	return nil
}

// buildTaskBlocks renders the notice: a header with outcome and
// confidence, the originating query, and the summary when present.
func buildTaskBlocks(notice TaskNotice) []goslack.Block {
	emoji := outcomeEmoji[notice.Outcome]
	if emoji == "" {
		emoji = ":bell:"
	}
	label := outcomeLabel[notice.Outcome]
	if label == "" {
		label = "Task " + notice.Outcome
	}

	headerText := fmt.Sprintf("%s *%s* (%.0f%% confidence)\n_%s_",
		emoji, label, notice.Confidence*100, truncateForSlack(notice.Query))

	blocks := []goslack.Block{
		goslack.NewSectionBlock(
			goslack.NewTextBlockObject(goslack.MarkdownType, headerText, false, false),
			nil, nil,
		),
	}
	if notice.Summary != "" {
		blocks = append(blocks, goslack.NewSectionBlock(
			goslack.NewTextBlockObject(goslack.MarkdownType, truncateForSlack(notice.Summary), false, false),
			nil, nil,
		))
	}
	return blocks
}

func truncateForSlack(text string) string {
	if len(text) <= maxBlockTextLength {
		return text
	}
	return text[:maxBlockTextLength] + "\n\n_... (truncated)_"
}
