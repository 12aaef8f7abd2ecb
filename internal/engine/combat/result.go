package combat

// Result is where a fight stands
type Result int

// Fight states. Victory, Escaped and FailedEscape are terminal. Defeat is
// terminal unless the player tries to run. Escaping means the first escape
// roll failed and a second one is still allowed.
const (
	ResultInProgress Result = iota
	ResultVictory
	ResultDefeat
	ResultEscaping
	ResultEscaped
	ResultFailedEscape
)

func (r Result) String() string {
	switch r {
	case ResultInProgress:
		return "in_progress"
	case ResultVictory:
		return "victory"
	case ResultDefeat:
		return "defeat"
	case ResultEscaping:
		return "escaping"
	case ResultEscaped:
		return "escaped"
	case ResultFailedEscape:
		return "failed_escape"
	default:
		return "unknown"
	}
}

// IsTerminal reports whether no further combat action can change the outcome
func (r Result) IsTerminal() bool {
	return r == ResultVictory || r == ResultEscaped || r == ResultFailedEscape
}

// VictoryOutcome records what winning gave out
type VictoryOutcome struct {
	LevelsGained   int
	Treasure       int
	HelperRewarded bool
}

// DefeatOutcome records what losing cost. Roll is set when the monster's
// level loss had to be rolled.
type DefeatOutcome struct {
	Applied     bool
	LevelsLost  int
	Rolled      bool
	Roll        int
	NastyEffect string
}

// EscapeOutcome is one escape attempt. Rolled is false when the monster
// stopped the attempt before any die was thrown.
type EscapeOutcome struct {
	Success bool
	Rolled  bool
	Roll    int
	Bonus   int
	Total   int
}
