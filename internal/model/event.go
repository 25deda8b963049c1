package model

import "time"

// EventType is the closed set of stream event types.
type EventType string

const (
	EventStart EventType = "start"
	EventMeta  EventType = "meta"
	EventChunk EventType = "chunk"
	EventPing  EventType = "ping"
	EventEnd   EventType = "end"
	EventError EventType = "error"
)

// DeliveryMode describes how stream content is produced.
type DeliveryMode string

const (
	// ModeLive relays a completion provider's partial output.
	ModeLive DeliveryMode = "live"
	// ModeOffline replays a fully rendered template reply as timed
	// segments.
	ModeOffline DeliveryMode = "offline"
)

// StreamMeta is the payload of the session-opening meta event.
type StreamMeta struct {
	Mode      DeliveryMode `json:"mode"`
	Timestamp time.Time    `json:"timestamp"`
}

// SegmentMeta is the payload of the per-segment meta event.
type SegmentMeta struct {
	Index int          `json:"index"`
	Total int          `json:"total"`
	Mode  DeliveryMode `json:"mode"`
}

// PingPayload is the heartbeat payload.
type PingPayload struct {
	Timestamp time.Time `json:"timestamp"`
}

// StreamErrorPayload is the payload of a terminal error event. Message
// is sanitized before emission.
type StreamErrorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// StreamEndPayload is the payload of the terminal end event.
type StreamEndPayload struct {
	Segments int          `json:"segments"`
	Mode     DeliveryMode `json:"mode"`
}
