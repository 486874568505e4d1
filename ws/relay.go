package ws

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog"
)

const relayBufferSize = 256

type FrameScope string

const (
	ScopeRoom FrameScope = "room"
	ScopeUser FrameScope = "user"
	ScopeAll  FrameScope = "all"
)

// Frame is one fan-out unit: an encoded event plus its routing scope.
// ExcludeConn carries the sender's connection id for events that must
// not echo back (typing, read markers); it is a connection id rather
// than a pointer so the frame survives crossing process boundaries.
type Frame struct {
	Scope       FrameScope      `json:"scope"`
	Target      string          `json:"target,omitempty"`
	ExcludeConn string          `json:"excludeConn,omitempty"`
	Payload     json.RawMessage `json:"payload"`
}

// Relay moves frames from publishers to the connections a frame
// targets. LocalRelay serves a single process; RedisRelay bridges
// several processes through pub/sub so a message sent on one instance
// reaches connections held by another.
type Relay interface {
	Publish(ctx context.Context, frame Frame) error
	Start()
	Close()
}

func deliver(registry *Registry, frame Frame, log zerolog.Logger) {
	var targets []*Client
	switch frame.Scope {
	case ScopeRoom:
		targets = registry.RoomClients(frame.Target)
	case ScopeUser:
		targets = registry.UserClients(frame.Target)
	case ScopeAll:
		targets = registry.AllClients()
	default:
		log.Warn().Str("scope", string(frame.Scope)).Msg("unknown frame scope")
		return
	}

	for _, c := range targets {
		if frame.ExcludeConn != "" && c.ID == frame.ExcludeConn {
			continue
		}
		if !c.enqueue(frame.Payload) {
			log.Warn().Str("connId", c.ID).Str("userId", c.UserID).Msg("dropping frame for slow client")
		}
	}
}

// LocalRelay fans frames out to the in-process registry. Default mode.
type LocalRelay struct {
	registry *Registry
	frames   chan Frame
	done     chan struct{}
	log      zerolog.Logger
}

func NewLocalRelay(registry *Registry, log zerolog.Logger) *LocalRelay {
	return &LocalRelay{
		registry: registry,
		frames:   make(chan Frame, relayBufferSize),
		done:     make(chan struct{}),
		log:      log,
	}
}

func (r *LocalRelay) Publish(ctx context.Context, frame Frame) error {
	select {
	case r.frames <- frame:
		return nil
	case <-r.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (r *LocalRelay) Start() {
	go func() {
		for {
			select {
			case frame := <-r.frames:
				deliver(r.registry, frame, r.log)
			case <-r.done:
				return
			}
		}
	}()
}

func (r *LocalRelay) Close() {
	close(r.done)
}
