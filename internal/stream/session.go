// Package stream owns the push-event connection: it replays rendered
// replies as timed segments or relays live provider output, with
// heartbeats and structured lifecycle events.
package stream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/akaki911/aispace-sub003/internal/model"
	"github.com/akaki911/aispace-sub003/internal/provider"
	"github.com/akaki911/aispace-sub003/pkg/logger"
	"github.com/akaki911/aispace-sub003/pkg/metrics"
)

// Config holds streaming pacing knobs.
type Config struct {
	Heartbeat    time.Duration
	SegmentDelay time.Duration
	ChunkDelay   time.Duration
	ChunkSize    int
}

// ErrStreamingUnsupported is returned when the response writer cannot
// flush.
var ErrStreamingUnsupported = errors.New("streaming not supported by connection")

// Session is one event-stream connection, Opening → Streaming → Closed.
type Session struct {
	w       http.ResponseWriter
	flusher http.Flusher
	cfg     Config
	log     *logger.Logger

	// mu serializes heartbeat writes against content writes.
	mu sync.Mutex

	stopHeartbeat chan struct{}
	heartbeatDone chan struct{}
	stopOnce      sync.Once
}

// NewSession wraps a response writer. The caller must have set the SSE
// headers before the first event is written.
func NewSession(w http.ResponseWriter, cfg Config, log *logger.Logger) (*Session, error) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		return nil, ErrStreamingUnsupported
	}
	if cfg.Heartbeat <= 0 {
		cfg.Heartbeat = time.Second
	}
	return &Session{
		w:             w,
		flusher:       flusher,
		cfg:           cfg,
		log:           log,
		stopHeartbeat: make(chan struct{}),
		heartbeatDone: make(chan struct{}),
	}, nil
}

// RunOffline replays rendered content as sanitized, timed segments.
func (s *Session) RunOffline(ctx context.Context, content Content, userMessage string) {
	s.open(ctx, model.ModeOffline)
	defer s.close()

	n := s.replaySegments(ctx, content, userMessage, model.ModeOffline)
	if ctx.Err() != nil {
		return
	}
	s.haltHeartbeat()
	s.emit(ctx, model.EventEnd, model.StreamEndPayload{Segments: n, Mode: model.ModeOffline})
}

// RunLive relays a completion provider's partial output. Provider
// failure before any output degrades to the offline fallback; failure
// mid-stream emits one sanitized error event and closes.
func (s *Session) RunLive(ctx context.Context, client provider.Client, req *provider.Request, fallback Content, userMessage string) {
	s.open(ctx, model.ModeLive)
	defer s.close()

	start := time.Now()
	var buf []rune
	emitted := 0

	_, err := client.Stream(ctx, req, func(delta string, _ int) error {
		buf = append(buf, []rune(delta)...)
		for s.cfg.ChunkSize > 0 && len(buf) >= s.cfg.ChunkSize {
			span := string(buf[:s.cfg.ChunkSize])
			buf = buf[s.cfg.ChunkSize:]

			if err := s.emitChunk(ctx, span, userMessage); err != nil {
				return err
			}
			emitted++
			s.pause(ctx, s.cfg.ChunkDelay)
		}
		return ctx.Err()
	})

	switch {
	case err == nil:
		metrics.RecordProviderStream(client.Name(), "success", time.Since(start).Seconds())
		if rest := string(buf); strings.TrimSpace(rest) != "" {
			if e := s.emitChunk(ctx, rest, userMessage); e == nil {
				emitted++
			}
		}
		if ctx.Err() != nil {
			return
		}
		s.haltHeartbeat()
		s.emit(ctx, model.EventEnd, model.StreamEndPayload{Segments: emitted, Mode: model.ModeLive})

	case errors.Is(err, context.Canceled) || ctx.Err() != nil:
		// Caller closed the connection; nothing more may be written.
		metrics.RecordProviderStream(client.Name(), "cancelled", time.Since(start).Seconds())

	case emitted == 0:
		// Provider never produced output: degrade silently to the
		// rendered fallback.
		metrics.RecordProviderStream(client.Name(), "error", time.Since(start).Seconds())
		s.log.Warn("completion provider failed, falling back to offline replay", zap.Error(err))
		n := s.replaySegments(ctx, fallback, userMessage, model.ModeOffline)
		if ctx.Err() == nil {
			s.haltHeartbeat()
			s.emit(ctx, model.EventEnd, model.StreamEndPayload{Segments: n, Mode: model.ModeOffline})
		}

	default:
		metrics.RecordProviderStream(client.Name(), "error", time.Since(start).Seconds())
		s.log.Error("completion provider failed mid-stream", zap.Error(err))
		s.haltHeartbeat()
		s.emit(ctx, model.EventError, model.StreamErrorPayload{
			Code:    "provider_error",
			Message: Sanitize("the live response was interrupted", userMessage),
		})
	}
}

// replaySegments emits the paragraph/thirds segmentation of content,
// each segment as a meta (index/total/mode) followed by a chunk.
func (s *Session) replaySegments(ctx context.Context, content Content, userMessage string, mode model.DeliveryMode) int {
	var segments []string
	if paragraphs, ok := content.(Paragraphs); ok && len(paragraphs) >= minParagraphSegments {
		segments = paragraphs
	} else {
		segments = Split(content.Text())
	}

	total := len(segments)
	for i, seg := range segments {
		if ctx.Err() != nil {
			return i
		}
		s.emit(ctx, model.EventMeta, model.SegmentMeta{Index: i, Total: total, Mode: mode})
		s.emit(ctx, model.EventChunk, Sanitize(seg, userMessage))
		if i < total-1 {
			s.pause(ctx, s.cfg.SegmentDelay)
		}
	}
	return total
}

// open emits the session-opening events and starts the heartbeat.
func (s *Session) open(ctx context.Context, mode model.DeliveryMode) {
	metrics.IncrementSSEConnections()
	s.emit(ctx, model.EventStart, map[string]string{"status": "open"})
	s.emit(ctx, model.EventMeta, model.StreamMeta{Mode: mode, Timestamp: time.Now().UTC()})
	go s.heartbeat(ctx)
}

// close stops the heartbeat on every terminal path and waits for its
// goroutine to exit, so no event is written after the Run method (and
// therefore the HTTP handler) returns.
func (s *Session) close() {
	s.haltHeartbeat()
	metrics.DecrementSSEConnections()
}

// haltHeartbeat signals the heartbeat goroutine and joins it. Terminal
// events are emitted only after this returns, which keeps end and error
// the last frame on the wire.
func (s *Session) haltHeartbeat() {
	s.stopOnce.Do(func() { close(s.stopHeartbeat) })
	<-s.heartbeatDone
}

func (s *Session) heartbeat(ctx context.Context) {
	defer close(s.heartbeatDone)

	ticker := time.NewTicker(s.cfg.Heartbeat)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-s.stopHeartbeat:
			return
		case <-ticker.C:
			// A tick racing the stop signal must not win the write.
			select {
			case <-s.stopHeartbeat:
				return
			default:
			}
			s.emit(ctx, model.EventPing, model.PingPayload{Timestamp: time.Now().UTC()})
			metrics.HeartbeatsTotal.Inc()
		}
	}
}

func (s *Session) emitChunk(ctx context.Context, text, userMessage string) error {
	return s.emit(ctx, model.EventChunk, Sanitize(text, userMessage))
}

// emit writes one framed event. Chunk payloads are raw text with each
// line framed as its own data field; other payloads are JSON.
func (s *Session) emit(ctx context.Context, event model.EventType, payload any) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}

	var data string
	if text, ok := payload.(string); ok && event == model.EventChunk {
		data = text
	} else {
		raw, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		data = string(raw)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := fmt.Fprintf(s.w, "event: %s\n", event); err != nil {
		return err
	}
	for _, line := range strings.Split(data, "\n") {
		if _, err := fmt.Fprintf(s.w, "data: %s\n", line); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprint(s.w, "\n"); err != nil {
		return err
	}
	s.flusher.Flush()
	return nil
}

func (s *Session) pause(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	select {
	case <-ctx.Done():
	case <-time.After(d):
	}
}
