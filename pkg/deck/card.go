package deck

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Suit represents a card suit
type Suit string

// suit constants
const (
	Hearts   Suit = "Hearts"
	Clubs    Suit = "Clubs"
	Spades   Suit = "Spades"
	Diamonds Suit = "Diamonds"
)

// Suits lists every suit in deal order
var Suits = []Suit{Hearts, Clubs, Spades, Diamonds}

// face cards
const (
	Jack    = 11
	Queen   = 12
	King    = 13
	Ace     = 14
	MinRank = 2
	MaxRank = Ace
)

// Size is the number of distinct cards
const Size = 52

// Card is an individual playing card
type Card struct {
	Rank int
	Suit Suit
}

// RankLabel returns the rank as it appears on the card face
func (c Card) RankLabel() string {
	switch c.Rank {
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	default:
		return strconv.Itoa(c.Rank)
	}
}

func (c Card) String() string {
	var suit string
	switch c.Suit {
	case Clubs:
		suit = "♣"
	case Diamonds:
		suit = "♢"
	case Hearts:
		suit = "♡"
	case Spades:
		suit = "♠"
	default:
		panic("unknown suit")
	}

	return fmt.Sprintf("%s%s", c.RankLabel(), suit)
}

// MarshalJSON encodes the card in its wire format, a two-element
// array of rank label and suit: ["10","Hearts"]
func (c Card) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]string{c.RankLabel(), string(c.Suit)})
}

// UnmarshalJSON decodes the two-element wire format
func (c *Card) UnmarshalJSON(b []byte) error {
	var pair [2]string
	if err := json.Unmarshal(b, &pair); err != nil {
		return err
	}

	rank, err := RankFromLabel(pair[0])
	if err != nil {
		return err
	}

	suit := Suit(pair[1])
	switch suit {
	case Hearts, Clubs, Spades, Diamonds:
	default:
		return fmt.Errorf("could not parse suit: %s", pair[1])
	}

	c.Rank = rank
	c.Suit = suit
	return nil
}

var rankByLabel = map[string]int{
	"J": Jack,
	"Q": Queen,
	"K": King,
	"A": Ace,
}

// RankFromLabel returns the rank value for a card face label
func RankFromLabel(label string) (int, error) {
	if rank, ok := rankByLabel[strings.ToUpper(label)]; ok {
		return rank, nil
	}

	rank, err := strconv.Atoi(label)
	if err != nil || rank < MinRank || rank > 10 {
		return 0, fmt.Errorf("could not parse rank: %s", label)
	}

	return rank, nil
}

var cardRx = regexp.MustCompile(`(?i)^([0-9]|1[0-4])([cdhs])\z`)

// CardFromString returns a Card from the string.
// The string must be in the format of <rank><suit> where rank >= 2 and <= 14 and suit in [cdhs]
func CardFromString(s string) Card {
	match := cardRx.FindStringSubmatch(s)
	if match == nil {
		panic(fmt.Sprintf("could not parse card: %s", s))
	}

	rank, err := strconv.Atoi(match[1])
	if err != nil {
		panic(fmt.Sprintf("could not parse card `%s`: %v", s, err))
	}

	var suit Suit
	switch strings.ToLower(match[2]) {
	case "c":
		suit = Clubs
	case "d":
		suit = Diamonds
	case "h":
		suit = Hearts
	case "s":
		suit = Spades
	default:
		// should never be hit due to the regexp
		panic("unknown suit")
	}

	return Card{
		Rank: rank,
		Suit: suit,
	}
}

// CardsFromString will returns a slice of cards
func CardsFromString(s string) []Card {
	if s == "" {
		return []Card{}
	}

	cardStrings := strings.Split(s, ",")
	cards := make([]Card, len(cardStrings))
	for i, card := range cardStrings {
		cards[i] = CardFromString(card)
	}

	return cards
}
