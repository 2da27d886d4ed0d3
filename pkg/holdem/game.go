package holdem

import (
	"github.com/sirupsen/logrus"

	"github.com/aryanved123/Ultimate-Texas-Holdem/internal/rng"
	"github.com/aryanved123/Ultimate-Texas-Holdem/pkg/deck"
)

// Winner identifies how a hand resolved
type Winner string

// Winner constants
const (
	WinnerPlayer Winner = "player"
	WinnerDealer Winner = "dealer"
	WinnerTie    Winner = "tie"
)

// Game is a single-player game of casino hold'em against the house
// dealer. A Game is not safe for concurrent use; callers must
// serialize access, and they are responsible for sequencing the
// street deals correctly.
type Game struct {
	logger logrus.FieldLogger
	issuer *deck.Issuer

	player *Player
	dealer *Dealer

	community deck.Hand
	pot       int
	ante      int
	blind     int
	stage     Stage

	// payout multiplier recorded by the most recent evaluation
	lastMultiplier int
}

// NewGame seats a player staked with buyIn against the dealer.
// The per-bet ante is a thirtieth of the buy-in; the blind equals the
// ante.
func NewGame(logger logrus.FieldLogger, buyIn int, generator rng.Generator) *Game {
	return &Game{
		logger:         logger,
		issuer:         deck.NewIssuer(generator),
		player:         NewPlayer(buyIn),
		dealer:         NewDealer(),
		ante:           buyIn / 30,
		blind:          buyIn / 30,
		stage:          StagePreFlop,
		lastMultiplier: 1,
	}
}

// HandStart is the state returned at the start of a hand
type HandStart struct {
	PlayerHand deck.Hand `json:"player_hand"`
	DealerHand deck.Hand `json:"dealer_hand"`
	Balance    int       `json:"balance"`
	Pot        int       `json:"pot"`
	Stage      Stage     `json:"stage"`
}

// StartHand resets all per-hand state, posts the blind, and deals two
// cards each to the player and the dealer.
// The blind is posted unconditionally, so the balance may go negative.
func (g *Game) StartHand() (*HandStart, error) {
	g.issuer.Reset()
	g.community = make(deck.Hand, 0, 5)
	g.player.newHand()
	g.dealer.newHand()
	g.pot = g.blind
	g.stage = StagePreFlop
	g.lastMultiplier = 1

	for i := 0; i < 2; i++ {
		card, err := g.issuer.Draw()
		if err != nil {
			return nil, err
		}

		g.player.addCard(card)
	}

	for i := 0; i < 2; i++ {
		card, err := g.issuer.Draw()
		if err != nil {
			return nil, err
		}

		g.dealer.addCard(card)
	}

	g.player.AdjustBalance(-g.blind)

	g.logger.WithFields(logrus.Fields{
		"blind":   g.blind,
		"balance": g.player.Balance(),
	}).Debug("hand started")

	return &HandStart{
		PlayerHand: g.player.Hand(),
		DealerHand: g.dealer.Hand(),
		Balance:    g.player.Balance(),
		Pot:        g.pot,
		Stage:      g.stage,
	}, nil
}

// BetResult reports the outcome of a bet attempt
type BetResult struct {
	Success bool `json:"success"`
	Pot     int  `json:"pot"`
	Balance int  `json:"balance"`
}

// PlaceBet wagers times the ante. If the player's balance cannot
// cover the amount, nothing changes and Success is false; otherwise
// the amount moves from the balance into the pot. The stage does not
// advance.
func (g *Game) PlaceBet(times int) BetResult {
	amount := times * g.ante
	if times != 0 && g.ante != 0 && amount/times != g.ante {
		// the multiplication overflowed; a negative amount would
		// slip past TryBet and corrupt the pot
		g.logger.WithField("times", times).Debug("bet rejected")
		return BetResult{
			Success: false,
			Pot:     g.pot,
			Balance: g.player.Balance(),
		}
	}

	success := g.player.TryBet(amount)
	if success {
		g.pot += amount
	} else {
		g.logger.WithFields(logrus.Fields{
			"amount":  amount,
			"balance": g.player.Balance(),
		}).Debug("bet rejected")
	}

	return BetResult{
		Success: success,
		Pot:     g.pot,
		Balance: g.player.Balance(),
	}
}

// DealFlop deals three community cards and moves the stage to Flop.
// Precondition: no community cards have been dealt this hand. The
// engine does not check; calling out of order deals extra cards.
func (g *Game) DealFlop() (deck.Hand, error) {
	for i := 0; i < 3; i++ {
		card, err := g.issuer.Draw()
		if err != nil {
			return nil, err
		}

		g.community.AddCard(card)
	}

	g.stage = StageFlop
	return g.community, nil
}

// DealTurnOrRiver deals a single community card. When the fifth card
// lands the stage becomes River.
// Precondition: the flop has been dealt.
func (g *Game) DealTurnOrRiver() (deck.Card, error) {
	card, err := g.issuer.Draw()
	if err != nil {
		return deck.Card{}, err
	}

	g.community.AddCard(card)
	if len(g.community) == 5 {
		g.stage = StageRiver
	}

	return card, nil
}

// Outcome reports how a hand resolved
type Outcome struct {
	Winner  Winner `json:"winner"`
	Balance int    `json:"balance"`
}

// Fold concedes the hand to the dealer. The pot is abandoned: the
// blind and any bets already placed are not refunded.
func (g *Game) Fold() Outcome {
	return Outcome{Winner: WinnerDealer, Balance: g.player.Balance()}
}

// scoreHand runs the evaluator and records the payout multiplier for
// the class it found. Every call overwrites the previous multiplier,
// so at showdown the dealer's evaluation, which runs second, decides
// the payout.
func (g *Game) scoreHand(cards deck.Hand) HandRank {
	rank := Evaluate(cards)
	g.lastMultiplier = rank.Class.Multiplier()

	return rank
}

// DetermineWinner compares the player's and dealer's showdown hands
// and settles the pot. A winning player collects the pot times the
// recorded payout multiplier; a tie returns the pot minus the blind.
// This ends the hand; play continues with StartHand.
func (g *Game) DetermineWinner() Outcome {
	playerRank := g.scoreHand(g.player.showdownCards(g.community))
	dealerRank := g.scoreHand(g.dealer.showdownCards(g.community))

	var winner Winner
	switch {
	case playerRank.Beats(dealerRank):
		g.player.AdjustBalance(g.pot * g.lastMultiplier)
		winner = WinnerPlayer
	case dealerRank.Beats(playerRank):
		winner = WinnerDealer
	default:
		g.player.AdjustBalance(g.pot - g.blind)
		winner = WinnerTie
	}

	g.logger.WithFields(logrus.Fields{
		"winner":     winner,
		"playerHand": playerRank.Class,
		"dealerHand": dealerRank.Class,
		"pot":        g.pot,
	}).Debug("hand resolved")

	return Outcome{Winner: winner, Balance: g.player.Balance()}
}

// PlayerHand returns the player's hole cards
func (g *Game) PlayerHand() deck.Hand {
	return g.player.Hand()
}

// DealerHand returns the dealer's hole cards
func (g *Game) DealerHand() deck.Hand {
	return g.dealer.Hand()
}

// Community returns the community cards dealt so far
func (g *Game) Community() deck.Hand {
	return g.community
}

// Pot returns the current pot
func (g *Game) Pot() int {
	return g.pot
}

// Ante returns the per-bet unit for the session
func (g *Game) Ante() int {
	return g.ante
}

// Stage returns the current betting street
func (g *Game) Stage() Stage {
	return g.stage
}

// PlayerBalance returns the player's chip balance
func (g *Game) PlayerBalance() int {
	return g.player.Balance()
}
