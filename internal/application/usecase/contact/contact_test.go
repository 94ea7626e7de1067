package contact

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nmorandeau/portfolio-os/internal/config"
	"github.com/nmorandeau/portfolio-os/pkg/logger"
)

func newService(cfg config.Config) *Service {
	return NewService(cfg, logger.NewNop())
}

func Test_Send_HoneypotDroppedSilently(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	var cfg config.Config
	cfg.Contact.Endpoint = srv.URL

	result, err := newService(cfg).Send(context.Background(), Message{
		Name: "bot", Email: "bot@spam", Body: "buy now", Company: "Spam Inc",
	})

	assert.NoError(t, err)
	assert.True(t, result.Delivered)
	assert.Equal(t, "drop", result.Via)
	assert.False(t, called)
}

func Test_Send_UsesEndpointFirst(t *testing.T) {
	var received Message
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&received)
	}))
	defer srv.Close()

	var cfg config.Config
	cfg.Contact.Endpoint = srv.URL
	cfg.Contact.RelayURL = "http://127.0.0.1:1/unreachable"

	result, err := newService(cfg).Send(context.Background(), Message{
		Name: "Alice", Email: "alice@example.com", Subject: "Hello", Body: "Hi there",
	})

	assert.NoError(t, err)
	assert.True(t, result.Delivered)
	assert.Equal(t, "endpoint", result.Via)
	assert.Equal(t, "Alice", received.Name)
}

func Test_Send_FallsBackToRelayWhenEndpointFails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	var cfg config.Config
	cfg.Contact.Endpoint = "http://127.0.0.1:1/dead"
	cfg.Contact.RelayURL = srv.URL

	result, err := newService(cfg).Send(context.Background(), Message{Name: "n", Email: "e", Body: "b"})

	assert.NoError(t, err)
	assert.Equal(t, "form-relay", result.Via)
}

func Test_Send_MailtoFallback(t *testing.T) {
	var cfg config.Config
	cfg.Contact.Email = "owner@example.com"

	result, err := newService(cfg).Send(context.Background(), Message{
		Name: "Bob", Email: "bob@example.com", Subject: "Stage", Body: "Bonjour à vous",
	})

	assert.NoError(t, err)
	assert.False(t, result.Delivered)
	assert.Equal(t, "mailto", result.Via)
	assert.Contains(t, result.MailtoURL, "mailto:owner@example.com?")
	assert.Contains(t, result.MailtoURL, "subject=Stage")
	assert.NotContains(t, result.MailtoURL, "+")
}

func Test_Send_NoChannelConfigured(t *testing.T) {
	var cfg config.Config

	_, err := newService(cfg).Send(context.Background(), Message{Name: "n", Email: "e", Body: "b"})

	assert.Error(t, err)
}

func Test_MailtoURL_EncodesSpacesAsPercent20(t *testing.T) {
	var cfg config.Config
	cfg.Contact.Email = "owner@example.com"
	svc := newService(cfg)

	u := svc.mailtoURL(Message{Subject: "two words", Body: "line one", Name: "A B", Email: "a@b"})

	assert.Contains(t, u, "subject=two%20words")
}
