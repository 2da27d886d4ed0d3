package deck

import (
	"testing"

	"github.com/aryanved123/Ultimate-Texas-Holdem/internal/rng"
	"github.com/stretchr/testify/assert"
)

// script replays a fixed sequence of values
type script struct {
	values []int
	index  int
}

func (s *script) Intn(n int) int {
	val := s.values[s.index%len(s.values)]
	s.index++
	return val % n
}

func TestIssuer_Draw(t *testing.T) {
	a := assert.New(t)

	issuer := NewIssuer(rng.Crypto{})
	seen := make(map[Card]bool)
	for i := 0; i < Size; i++ {
		card, err := issuer.Draw()
		a.NoError(err)
		a.False(seen[card], "card %s dealt twice", card)
		seen[card] = true
	}

	a.Equal(Size, issuer.DealtCount())

	card, err := issuer.Draw()
	a.Equal(ErrDeckExhausted, err)
	a.Equal(Card{}, card)
}

func TestIssuer_Draw_rejectsDealtCards(t *testing.T) {
	a := assert.New(t)

	// rank then suit per attempt; the second attempt repeats the
	// first card and must be rejected
	issuer := NewIssuer(&script{values: []int{0, 0, 0, 0, 1, 0}})

	card, err := issuer.Draw()
	a.NoError(err)
	a.Equal(Card{Rank: 2, Suit: Hearts}, card)

	card, err = issuer.Draw()
	a.NoError(err)
	a.Equal(Card{Rank: 3, Suit: Hearts}, card)
}

func TestIssuer_Reset(t *testing.T) {
	a := assert.New(t)

	issuer := NewIssuer(&script{values: []int{0, 0}})
	_, err := issuer.Draw()
	a.NoError(err)
	a.Equal(1, issuer.DealtCount())

	issuer.Reset()
	a.Equal(0, issuer.DealtCount())

	// the same card may be dealt again after a reset
	card, err := issuer.Draw()
	a.NoError(err)
	a.Equal(Card{Rank: 2, Suit: Hearts}, card)
}
