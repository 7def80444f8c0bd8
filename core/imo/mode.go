package imo

// Mode is one of the four operating modes of a voyage profile.
type Mode int

const (
	ModeAtBerth Mode = iota
	ModeAnchored
	ModeManoeuvring
	ModeAtSea
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeAtBerth:
		return "at_berth"
	case ModeAnchored:
		return "anchored"
	case ModeManoeuvring:
		return "manoeuvring"
	case ModeAtSea:
		return "at_sea"
	default:
		return "unknown"
	}
}
