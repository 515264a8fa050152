package service

// Broadcaster interface for WebSocket broadcasting (avoids import cycle)
type Broadcaster interface {
	BroadcastToUser(userID string, msgType string, payload interface{})
}

// Message types pushed to connected clients
const (
	MsgProfileUpdated = "profile_updated"
)
