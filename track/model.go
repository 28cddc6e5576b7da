// model.go - Runtime track model handed to collaborators
package track

// Track is the trimmed runtime model. It is created once per load and not
// mutated afterwards; renderer, physics and AI all read the same value.
type Track struct {
	Name         string
	Length       float32 // meters, sum of section lengths
	ObjectShapes []ObjectShape
	Sections     []Section
	RacingLine   RacingLine
	AIBehavior   AIBehavior
	PitLane      []Section
	Cameras      []Camera
	Checksum     uint32
}

// ObjectShape is a placeholder for the trackside object format, which has no
// recovered byte layout yet. Raw bytes are kept so a future decode is not a
// breaking change.
type ObjectShape struct {
	Raw []byte
}

// Camera is a placeholder for the trackside camera format (not yet decoded).
type Camera struct {
	Raw []byte
}

// AIBehavior holds AI tuning and the track-specific car setup.
type AIBehavior struct {
	Aggression  float32 // 0.0 - 1.0
	Consistency float32 // 0.0 - 1.0, higher = fewer mistakes
	CarSetup    CarSetup
}

// CarSetup holds the per-track default car configuration.
type CarSetup struct {
	FrontWing    uint8
	RearWing     uint8
	GearRatios   [6]uint8
	BrakeBalance uint8 // front/rear split, 0-100
}

// DefaultAIBehavior returns the neutral AI setup used when a track carries no
// decoded behavior data.
func DefaultAIBehavior() AIBehavior {
	return AIBehavior{
		Aggression:  0.5,
		Consistency: 0.5,
		CarSetup: CarSetup{
			FrontWing:    10,
			RearWing:     10,
			GearRatios:   [6]uint8{4, 8, 12, 16, 20, 24},
			BrakeBalance: 50,
		},
	}
}
