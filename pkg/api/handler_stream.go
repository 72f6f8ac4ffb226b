package api

import (
	"errors"
	"time"

	"github.com/gin-contrib/sse"
	"github.com/gin-gonic/gin"

	"github.com/loop-symphony/symphony/pkg/models"
	"github.com/loop-symphony/symphony/pkg/services"
)

// streamTaskHandler handles GET /task/:id/stream as Server-Sent Events.
// History replays from Last-Event-ID (or ?since=) so late joiners and
// reconnects miss nothing, and the stream closes itself after the
// terminal event. Keepalive frames pace idle streams so proxies keep
// the connection open.
func (s *Server) streamTaskHandler(c *gin.Context) {
	taskID := c.Param("id")
	app := currentApp(c)

	if _, err := s.tasks.GetTask(c.Request.Context(), app.ID, taskID); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			taskNotFound(c, taskID)
			return
		}
		mapServiceError(c, err)
		return
	}

	sinceID := c.GetHeader("Last-Event-ID")
	if sinceID == "" {
		sinceID = c.Query("since")
	}
	ch, cancel := s.bus.Subscribe(taskID, sinceID)
	defer cancel()

	h := c.Writer.Header()
	h.Set("Content-Type", "text/event-stream")
	h.Set("Cache-Control", "no-cache")
	h.Set("Connection", "keep-alive")
	h.Set("X-Accel-Buffering", "no")
	c.Writer.Flush()

	ticker := time.NewTicker(s.keepalive)
	defer ticker.Stop()

	for {
		select {
		case <-c.Request.Context().Done():
			return
		case evt, ok := <-ch:
			if !ok {
				return
			}
			if err := writeEvent(c.Writer, sse.Event{Id: evt.ID, Event: string(evt.Type), Data: evt}); err != nil {
				return
			}
			if evt.Type.IsTerminal() {
				return
			}
		case <-ticker.C:
			keep := models.TaskEvent{TaskID: taskID, Type: models.EventKeepalive, Timestamp: time.Now().UTC()}
			if err := writeEvent(c.Writer, sse.Event{Event: string(models.EventKeepalive), Data: keep}); err != nil {
				return
			}
		}
	}
}

// writeEvent encodes one SSE frame and flushes it out immediately.
func writeEvent(w gin.ResponseWriter, evt sse.Event) error {
	if err := sse.Encode(w, evt); err != nil {
		return err
	}
	w.Flush()
	return nil
}
