// Package contact relays contact-form submissions. Delivery is tried in
// priority order: the configured HTTP JSON endpoint, then the third-party
// form-relay service, and as a last resort the caller receives a prefilled
// mailto URL to open a compose window with.
package contact

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/nmorandeau/portfolio-os/internal/config"
	"github.com/nmorandeau/portfolio-os/pkg/apperror"
	"github.com/nmorandeau/portfolio-os/pkg/logger"
)

// Message is one form submission. Company is the honeypot field: humans
// never see it, so a non-empty value marks an automated submission.
type Message struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Body    string `json:"message"`
	Company string `json:"company,omitempty"`
}

type Result struct {
	Delivered bool   `json:"delivered"`
	Via       string `json:"via"`
	MailtoURL string `json:"mailtoUrl,omitempty"`
}

type Service struct {
	cfg    config.Config
	client *http.Client
	logger logger.Logger
}

func NewService(cfg config.Config, log logger.Logger) *Service {
	return &Service{
		cfg:    cfg,
		client: &http.Client{Timeout: 15 * time.Second},
		logger: log,
	}
}

// Send relays msg. Honeypot hits are accepted silently and dropped, so
// bots cannot distinguish themselves from real senders.
func (s *Service) Send(ctx context.Context, msg Message) (*Result, error) {
	if strings.TrimSpace(msg.Company) != "" {
		s.logger.Warn("dropping honeypot contact submission")
		return &Result{Delivered: true, Via: "drop"}, nil
	}

	if s.cfg.Contact.Endpoint != "" {
		if err := s.post(ctx, s.cfg.Contact.Endpoint, msg); err == nil {
			return &Result{Delivered: true, Via: "endpoint"}, nil
		} else {
			s.logger.Warn("contact endpoint failed, trying relay", zap.Error(err))
		}
	}

	if s.cfg.Contact.RelayURL != "" {
		if err := s.post(ctx, s.cfg.Contact.RelayURL, msg); err == nil {
			return &Result{Delivered: true, Via: "form-relay"}, nil
		} else {
			s.logger.Warn("form-relay failed, falling back to mailto", zap.Error(err))
		}
	}

	if s.cfg.Contact.Email == "" {
		return nil, apperror.NewUpstream("no contact delivery channel is configured or reachable", nil)
	}
	return &Result{Delivered: false, Via: "mailto", MailtoURL: s.mailtoURL(msg)}, nil
}

func (s *Service) post(ctx context.Context, endpoint string, msg Message) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("cannot marshal contact message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("cannot build contact request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("cannot reach %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%s answered status %d", endpoint, resp.StatusCode)
	}
	return nil
}

func (s *Service) mailtoURL(msg Message) string {
	values := url.Values{}
	values.Set("subject", msg.Subject)
	values.Set("body", fmt.Sprintf("%s\n\n%s (%s)", msg.Body, msg.Name, msg.Email))
	// Mail clients expect %20, not '+', for spaces in the query part.
	query := strings.ReplaceAll(values.Encode(), "+", "%20")
	return fmt.Sprintf("mailto:%s?%s", s.cfg.Contact.Email, query)
}
