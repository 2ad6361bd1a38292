package ws

// ConnState is the lifecycle state of a feed connection.
type ConnState int32

const (
	// StateDisconnected means no connection is active.
	StateDisconnected ConnState = iota
	// StateConnecting means a handshake is in progress.
	StateConnecting
	// StateConnected means the connection is established.
	StateConnected
	// StateReconnecting means the connection dropped and is being
	// reestablished.
	StateReconnecting
	// StateClosed means the connection was shut down for good.
	StateClosed
)

func (s ConnState) String() string {
	switch s {
	case StateDisconnected:
		return "disconnected"
	case StateConnecting:
		return "connecting"
	case StateConnected:
		return "connected"
	case StateReconnecting:
		return "reconnecting"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}
