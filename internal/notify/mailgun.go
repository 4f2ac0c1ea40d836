package notify

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ravenstudio/raven-community-api/internal/config"
)

// MailgunMailer sends through the Mailgun messages API with a
// form-encoded POST.
type MailgunMailer struct {
	apiKey     string
	domain     string
	baseURL    string
	httpClient *http.Client
}

func NewMailgunMailer(cfg *config.Config) *MailgunMailer {
	return &MailgunMailer{
		apiKey:     cfg.MailgunAPIKey,
		domain:     cfg.MailgunDomain,
		baseURL:    "https://api.mailgun.net",
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

func (m *MailgunMailer) Send(ctx context.Context, msg Message) error {
	if msg.To == "" {
		return fmt.Errorf("mailgun: recipient required")
	}

	form := url.Values{}
	form.Set("from", msg.From)
	form.Set("to", msg.To)
	form.Set("subject", msg.Subject)
	form.Set("text", msg.Text)
	if msg.HTML != "" {
		form.Set("html", msg.HTML)
	}

	endpoint := fmt.Sprintf("%s/v3/%s/messages", m.baseURL, m.domain)
	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		endpoint,
		strings.NewReader(form.Encode()),
	)
	if err != nil {
		return err
	}
	req.SetBasicAuth("api", m.apiKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("mailgun: http %d: %s", resp.StatusCode, string(body))
	}
	return nil
}

var _ Mailer = (*MailgunMailer)(nil)
