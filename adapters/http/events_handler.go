package http

import (
	"io"

	"github.com/gin-gonic/gin"

	"github.com/nmorandeau/portfolio-os/internal/domain/content"
	"github.com/nmorandeau/portfolio-os/pkg/logger"
)

type EventsHandler struct {
	store  content.Store
	logger logger.Logger
}

func NewEventsHandler(store content.Store, log logger.Logger) *EventsHandler {
	return &EventsHandler{store: store, logger: log}
}

// Stream pushes a server-sent event for every content change topic, so the
// site can re-fetch a section the moment an edit or sync touches it. Bursts
// beyond the channel buffer are dropped; the client re-fetches on the next
// event anyway.
func (h *EventsHandler) Stream(c *gin.Context) {
	changes := make(chan string, 16)

	unsubscribes := make([]func(), 0, len(content.Topics()))
	for _, topic := range content.Topics() {
		topic := topic
		unsubscribes = append(unsubscribes, h.store.Subscribe(topic, func() {
			select {
			case changes <- topic:
			default:
			}
		}))
	}
	defer func() {
		for _, unsub := range unsubscribes {
			unsub()
		}
	}()

	c.Writer.Header().Set("Cache-Control", "no-store")
	c.Stream(func(w io.Writer) bool {
		select {
		case topic := <-changes:
			c.SSEvent("change", gin.H{"topic": topic})
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
