package ws

import (
	"context"

	"github.com/rs/zerolog"
)

// NotificationDispatcher is the façade other subsystems use to push
// real-time nudges at users. Everything here is best-effort: an
// offline user is silently skipped, and the durable trail lives in the
// notification table written by the caller, not here.
type NotificationDispatcher struct {
	registry *Registry
	relay    Relay
	log      zerolog.Logger
}

func NewNotificationDispatcher(registry *Registry, relay Relay, log zerolog.Logger) *NotificationDispatcher {
	return &NotificationDispatcher{registry: registry, relay: relay, log: log}
}

// NotifyUser delivers to every live connection of the user at once.
// No-op if the user is offline.
func (d *NotificationDispatcher) NotifyUser(ctx context.Context, userID string, payload interface{}) error {
	return d.publish(ctx, Frame{Scope: ScopeUser, Target: userID}, OutboundEvent{
		Type: EventNotification,
		Data: payload,
	})
}

func (d *NotificationDispatcher) NotifyUsers(ctx context.Context, userIDs []string, payload interface{}) error {
	for _, userID := range userIDs {
		if err := d.NotifyUser(ctx, userID, payload); err != nil {
			return err
		}
	}
	return nil
}

func (d *NotificationDispatcher) NotifyRoom(ctx context.Context, roomID string, payload interface{}) error {
	return d.publish(ctx, Frame{Scope: ScopeRoom, Target: roomID}, OutboundEvent{
		Type: EventNotification,
		Data: payload,
	})
}

// Announce pushes to every online connection across the deployment.
func (d *NotificationDispatcher) Announce(ctx context.Context, payload interface{}) error {
	return d.publish(ctx, Frame{Scope: ScopeAll}, OutboundEvent{
		Type: EventAnnouncement,
		Data: payload,
	})
}

func (d *NotificationDispatcher) IsUserOnline(userID string) bool {
	return d.registry.IsUserOnline(userID)
}

func (d *NotificationDispatcher) OnlineUsers() []string {
	return d.registry.OnlineUsers()
}

func (d *NotificationDispatcher) publish(ctx context.Context, frame Frame, event OutboundEvent) error {
	payload, err := event.encode()
	if err != nil {
		return err
	}
	frame.Payload = payload
	if err := d.relay.Publish(ctx, frame); err != nil {
		d.log.Error().Err(err).Str("scope", string(frame.Scope)).Msg("failed to publish notification")
		return err
	}
	return nil
}
