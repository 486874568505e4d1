package ws

import "sync"

// Registry tracks which connections belong to which user and which
// room channels each connection is subscribed to. Subscribe and
// Unsubscribe are pure set operations; membership authorization
// happens in the session manager, never here. Only the session
// manager mutates the registry.
type Registry struct {
	mu    sync.RWMutex
	users map[string]map[*Client]struct{}
	rooms map[string]map[*Client]struct{}
}

func NewRegistry() *Registry {
	return &Registry{
		users: make(map[string]map[*Client]struct{}),
		rooms: make(map[string]map[*Client]struct{}),
	}
}

// Register adds a connection for a user. Additive: other connections
// of the same user are untouched.
func (r *Registry) Register(c *Client) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.users[c.UserID] == nil {
		r.users[c.UserID] = make(map[*Client]struct{})
	}
	r.users[c.UserID][c] = struct{}{}
}

// Unregister drops the connection from the user set and from every
// room channel it was subscribed to.
func (r *Registry) Unregister(c *Client) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if clients, ok := r.users[c.UserID]; ok {
		delete(clients, c)
		if len(clients) == 0 {
			delete(r.users, c.UserID)
		}
	}
	for roomID, clients := range r.rooms {
		delete(clients, c)
		if len(clients) == 0 {
			delete(r.rooms, roomID)
		}
	}
}

// Subscribe adds the connection to a room channel. Connections that
// are no longer registered are refused; a subscription racing a
// disconnect must not put a closed client back into the room sets.
func (r *Registry) Subscribe(roomID string, c *Client) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, live := r.users[c.UserID][c]; !live {
		return
	}
	if r.rooms[roomID] == nil {
		r.rooms[roomID] = make(map[*Client]struct{})
	}
	r.rooms[roomID][c] = struct{}{}
}

// Unsubscribe is idempotent; leaving a channel you never joined is a
// no-op.
func (r *Registry) Unsubscribe(roomID string, c *Client) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if clients, ok := r.rooms[roomID]; ok {
		delete(clients, c)
		if len(clients) == 0 {
			delete(r.rooms, roomID)
		}
	}
}

func (r *Registry) IsSubscribed(roomID string, c *Client) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.rooms[roomID][c]
	return ok
}

func (r *Registry) RoomClients(roomID string) []*Client {
	r.mu.RLock()
	defer r.mu.RUnlock()
	clients := make([]*Client, 0, len(r.rooms[roomID]))
	for c := range r.rooms[roomID] {
		clients = append(clients, c)
	}
	return clients
}

func (r *Registry) UserClients(userID string) []*Client {
	r.mu.RLock()
	defer r.mu.RUnlock()
	clients := make([]*Client, 0, len(r.users[userID]))
	for c := range r.users[userID] {
		clients = append(clients, c)
	}
	return clients
}

func (r *Registry) AllClients() []*Client {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var clients []*Client
	for _, set := range r.users {
		for c := range set {
			clients = append(clients, c)
		}
	}
	return clients
}

func (r *Registry) IsUserOnline(userID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users[userID]) > 0
}

func (r *Registry) OnlineUsers() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	users := make([]string, 0, len(r.users))
	for userID := range r.users {
		users = append(users, userID)
	}
	return users
}
