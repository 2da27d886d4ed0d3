package holdem

import (
	"github.com/aryanved123/Ultimate-Texas-Holdem/pkg/deck"
)

// participant holds the cards dealt to one seat
type participant struct {
	hand deck.Hand
}

// Hand returns the participant's hole cards in deal order
func (p *participant) Hand() deck.Hand {
	return p.hand
}

func (p *participant) addCard(card deck.Card) {
	p.hand.AddCard(card)
}

func (p *participant) newHand() {
	p.hand = make(deck.Hand, 0, 2)
}

// cards the participant can make a hand from at showdown
func (p *participant) showdownCards(community deck.Hand) deck.Hand {
	cards := make(deck.Hand, 0, len(p.hand)+len(community))
	cards = append(cards, p.hand...)
	cards = append(cards, community...)

	return cards
}

// Player is the human seat; it owns the chip stack
type Player struct {
	participant
	balance int
}

// NewPlayer returns a player staked with the buy-in
func NewPlayer(buyIn int) *Player {
	return &Player{balance: buyIn}
}

// Balance returns the player's current chip balance
func (p *Player) Balance() int {
	return p.balance
}

// TryBet subtracts amount from the balance if the balance covers it.
// On failure the balance is untouched.
func (p *Player) TryBet(amount int) bool {
	if amount > p.balance {
		return false
	}

	p.balance -= amount
	return true
}

// AdjustBalance adds amount to the player's balance
func (p *Player) AdjustBalance(amount int) {
	p.balance += amount
}

// Dealer is the house seat; it holds cards but never bets
type Dealer struct {
	participant
}

// NewDealer returns a dealer
func NewDealer() *Dealer {
	return &Dealer{}
}
