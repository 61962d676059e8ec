package fps

// Snapshot captures the player state for determinism testing.
type Snapshot struct {
	Tick    uint64
	Map     string
	X, Y    float64
	Angle   float64
	Minimap bool
	Paused  bool
}

// Snapshot returns the current player state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:    g.tick,
		Map:     g.level.ID,
		X:       g.pose.X,
		Y:       g.pose.Y,
		Angle:   g.pose.Angle,
		Minimap: g.showMap,
		Paused:  g.paused,
	}
}
