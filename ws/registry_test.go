package ws

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func testClient(userID string) *Client {
	return newClient(&fakeConn{}, userID, userID)
}

func TestRegistryMultipleConnectionsPerUser(t *testing.T) {
	registry := NewRegistry()

	first := testClient("user-1")
	second := testClient("user-1")

	registry.Register(first)
	registry.Register(second)

	require.True(t, registry.IsUserOnline("user-1"))
	require.Len(t, registry.UserClients("user-1"), 2)

	registry.Unregister(first)
	require.True(t, registry.IsUserOnline("user-1"), "remaining connection keeps the user online")
	require.Len(t, registry.UserClients("user-1"), 1)

	registry.Unregister(second)
	require.False(t, registry.IsUserOnline("user-1"))
}

func TestRegistrySubscribeUnsubscribe(t *testing.T) {
	registry := NewRegistry()
	client := testClient("user-1")
	registry.Register(client)

	registry.Subscribe("room-7", client)
	require.True(t, registry.IsSubscribed("room-7", client))
	require.Len(t, registry.RoomClients("room-7"), 1)

	// duplicate subscribe is a set operation, not an error
	registry.Subscribe("room-7", client)
	require.Len(t, registry.RoomClients("room-7"), 1)

	registry.Unsubscribe("room-7", client)
	require.False(t, registry.IsSubscribed("room-7", client))

	// unsubscribing a channel never joined is a no-op
	registry.Unsubscribe("room-9", client)
}

func TestRegistryUnregisterDropsRoomSubscriptions(t *testing.T) {
	registry := NewRegistry()
	client := testClient("user-1")
	other := testClient("user-2")
	registry.Register(client)
	registry.Register(other)
	registry.Subscribe("room-7", client)
	registry.Subscribe("room-7", other)

	registry.Unregister(client)

	require.False(t, registry.IsSubscribed("room-7", client))
	require.True(t, registry.IsSubscribed("room-7", other), "other users keep their subscriptions")
}

func TestRegistrySubscribeRefusesUnregisteredClient(t *testing.T) {
	registry := NewRegistry()
	client := testClient("user-1")

	// never registered
	registry.Subscribe("room-7", client)
	require.False(t, registry.IsSubscribed("room-7", client))
	require.Empty(t, registry.RoomClients("room-7"))

	// registered then unregistered: a stale subscribe must not bring
	// the connection back
	registry.Register(client)
	registry.Unregister(client)
	registry.Subscribe("room-7", client)
	require.False(t, registry.IsSubscribed("room-7", client))
}

func TestRegistryOnlineUsers(t *testing.T) {
	registry := NewRegistry()
	registry.Register(testClient("user-1"))
	registry.Register(testClient("user-2"))

	online := registry.OnlineUsers()
	require.ElementsMatch(t, []string{"user-1", "user-2"}, online)
}
