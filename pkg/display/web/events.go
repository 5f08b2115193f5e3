package web

// Type identifies a server to client message. The type byte leads
// every frame sent down the socket.
type Type = uint8

const (
	// Frame carries a cache index followed by a full compressed
	// frame.
	Frame Type = iota
	// FrameCache carries only a cache index; the client replays
	// the frame it received under that index earlier.
	FrameCache
	// ClientClosing announces that the server is shutting the
	// connection down.
	ClientClosing
)
