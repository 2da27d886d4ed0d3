package deck

import (
	"errors"

	"github.com/aryanved123/Ultimate-Texas-Holdem/internal/rng"
)

// ErrDeckExhausted is an error when Draw() is attempted and all 52 cards are out
var ErrDeckExhausted = errors.New("no cards left to deal")

// Issuer deals random cards, guaranteeing no card is dealt twice
// between calls to Reset().
//
// Cards are found by rejection sampling: a rank and a suit are drawn
// independently until the pair hasn't been dealt yet. The expected
// number of attempts is 52/(52-k) after k cards, so for the handful
// of cards a single hand needs this settles on the first or second
// try. Draw returns ErrDeckExhausted once all 52 cards are out rather
// than looping forever.
type Issuer struct {
	rng   rng.Generator
	dealt map[Card]bool
}

// NewIssuer returns a new Issuer drawing randomness from the generator
func NewIssuer(generator rng.Generator) *Issuer {
	return &Issuer{
		rng:   generator,
		dealt: make(map[Card]bool),
	}
}

// Draw returns a random card not yet dealt and marks it as dealt
func (i *Issuer) Draw() (Card, error) {
	if len(i.dealt) >= Size {
		return Card{}, ErrDeckExhausted
	}

	for {
		card := Card{
			Rank: MinRank + i.rng.Intn(MaxRank-MinRank+1),
			Suit: Suits[i.rng.Intn(len(Suits))],
		}

		if !i.dealt[card] {
			i.dealt[card] = true
			return card, nil
		}
	}
}

// Reset forgets the dealt cards, making all 52 available again
func (i *Issuer) Reset() {
	i.dealt = make(map[Card]bool)
}

// DealtCount returns the number of cards dealt since the last Reset
func (i *Issuer) DealtCount() int {
	return len(i.dealt)
}
