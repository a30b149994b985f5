package game

// Mode identifies one of the four mini-games. All modes share the session
// engine; they differ in how answers are entered and when a session is won.
type Mode string

const (
	ModeMatch    Mode = "match"    // memory-match: pick the pair among options
	ModeScramble Mode = "scramble" // letter-unscramble: type the unscrambled word
	ModeDuel     Mode = "duel"     // duel: typed answers, race to a score target
	ModeRace     Mode = "race"     // lane-racing: pick the lane with the right word
)

// AllModes returns the modes in display order.
func AllModes() []Mode {
	return []Mode{ModeMatch, ModeScramble, ModeDuel, ModeRace}
}

// DisplayName returns a human-readable label for the mode.
func (m Mode) DisplayName() string {
	switch m {
	case ModeMatch:
		return "Memory Match"
	case ModeScramble:
		return "Unscramble"
	case ModeDuel:
		return "Word Duel"
	case ModeRace:
		return "Lane Race"
	default:
		return string(m)
	}
}

// InputStyle says how the player answers in a mode.
type InputStyle int

const (
	InputTyped  InputStyle = iota // free text via SubmitAnswer
	InputChoice                   // pick an option via SelectOption
)

// modeSpec captures the per-mode variation: input style, option count for
// choice modes, and the completion rule. TargetItems wins after that many
// correct answers; TargetScore wins on reaching a score. Exactly one of the
// two is set per mode.
type modeSpec struct {
	Input       InputStyle
	Choices     int
	TargetItems int
	TargetScore int
}

var modeSpecs = map[Mode]modeSpec{
	ModeMatch:    {Input: InputChoice, Choices: 4, TargetItems: 8},
	ModeScramble: {Input: InputTyped, TargetItems: 10},
	ModeDuel:     {Input: InputTyped, TargetScore: 10000},
	ModeRace:     {Input: InputChoice, Choices: 3, TargetItems: 12},
}

// Input returns the mode's input style.
func (m Mode) Input() InputStyle {
	return modeSpecs[m].Input
}

// spec returns the mode's variation table entry, defaulting to scramble's
// shape for unknown modes.
func (m Mode) spec() modeSpec {
	if s, ok := modeSpecs[m]; ok {
		return s
	}
	return modeSpecs[ModeScramble]
}
