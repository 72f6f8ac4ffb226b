package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"net/http"
	"strings"
	"time"
)

const telegramAPIURL = "https://api.telegram.org"

// TelegramSender posts notices to a chat via the Bot API sendMessage
// method. The channel target is the chat ID.
type TelegramSender struct {
	token  string
	apiURL string
	client *http.Client
}

// NewTelegramSender builds a sender against the public Bot API.
func NewTelegramSender(token string, timeout time.Duration) *TelegramSender {
	return &TelegramSender{
		token:  token,
		apiURL: telegramAPIURL,
		client: &http.Client{Timeout: timeout},
	}
}

// NewTelegramSenderWithAPIURL points the sender at a custom API base,
// for tests against a local HTTP server.
func NewTelegramSenderWithAPIURL(token, apiURL string, timeout time.Duration) *TelegramSender {
	s := NewTelegramSender(token, timeout)
	s.apiURL = strings.TrimRight(apiURL, "/")
	return s
}

// Send posts the notice as an HTML-formatted message.
func (s *TelegramSender) Send(ctx context.Context, target string, notice TaskNotice) error {
	payload := map[string]interface{}{
		"chat_id":    target,
		"text":       formatTelegramText(notice),
		"parse_mode": "HTML",
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal telegram payload: %w", err)
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", s.apiURL, s.token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build telegram request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("telegram request failed: %w", err)
	}
	defer resp.Body.Close()

	var result struct {
		OK          bool   `json:"ok"`
		Description string `json:"description"`
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<16)).Decode(&result); err != nil {
		return fmt.Errorf("failed to decode telegram response: %w", err)
	}
	if !result.OK {
		if result.Description == "" {
			result.Description = fmt.Sprintf("status %d", resp.StatusCode)
		}
		return fmt.Errorf("telegram rejected message: %s", result.Description)
	}
	return nil
}

func formatTelegramText(notice TaskNotice) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<b>Task %s</b> (%.0f%% confidence)\n", html.EscapeString(notice.Outcome), notice.Confidence*100)
	fmt.Fprintf(&b, "<i>%s</i>", html.EscapeString(notice.Query))
	if notice.Summary != "" {
		fmt.Fprintf(&b, "\n\n%s", html.EscapeString(notice.Summary))
	}
	return b.String()
}
