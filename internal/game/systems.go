package game

// BodySystem identifies one regulated physiological system. The set is
// closed: GLUCOSE, PH and TEMPERATURE are the only systems the game tracks
// and there is no dynamic extension. Using constants avoids typos and keeps
// content references consistent.
type BodySystem string

const (
	SystemGlucose     BodySystem = "GLUCOSE"
	SystemPH          BodySystem = "PH"
	SystemTemperature BodySystem = "TEMPERATURE"
)

// Systems returns the closed set in canonical order.
func Systems() []BodySystem {
	return []BodySystem{SystemGlucose, SystemPH, SystemTemperature}
}

// ValidSystem reports whether sys is part of the closed set. Content
// validation uses it to reject unknown target systems before a session is
// ever played.
func ValidSystem(sys BodySystem) bool {
	switch sys {
	case SystemGlucose, SystemPH, SystemTemperature:
		return true
	}
	return false
}
