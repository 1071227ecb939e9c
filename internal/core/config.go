package core

// RuntimeConfig is what the front end needs to start a session.
type RuntimeConfig struct {
	ScreenW  int   // Terminal width in characters
	ScreenH  int   // Terminal height in characters
	TickRate int   // Frames per second
	Seed     int64 // RNG seed, 0 means time based
}

// DefaultConfig returns a RuntimeConfig for an 80×24 terminal at 60 fps.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}
