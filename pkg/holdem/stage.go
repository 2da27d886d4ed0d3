package holdem

import (
	"encoding/json"
	"fmt"
)

// Stage represents the betting street a hand is on.
//
// There are only three stages. The deal after the flop keeps the
// stage at Flop until the fifth community card lands, at which point
// the stage becomes River; there is no distinct turn stage.
type Stage int

// constants for Stage
const (
	StagePreFlop Stage = iota
	StageFlop
	StageRiver
)

func (s Stage) String() string {
	switch s {
	case StagePreFlop:
		return "pre-flop"
	case StageFlop:
		return "flop"
	case StageRiver:
		return "river"
	}

	panic(fmt.Sprintf("unknown stage: %d", int(s)))
}

// MarshalJSON encodes the stage as its wire name
func (s Stage) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}
