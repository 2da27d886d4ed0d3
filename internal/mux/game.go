package mux

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/aryanved123/Ultimate-Texas-Holdem/internal/rng"
	"github.com/aryanved123/Ultimate-Texas-Holdem/pkg/deck"
	"github.com/aryanved123/Ultimate-Texas-Holdem/pkg/holdem"
	"github.com/aryanved123/Ultimate-Texas-Holdem/pkg/session"
)

var errInsufficientBalance = errors.New("not enough balance")
var errNegativeMultiplier = errors.New("multiplier cannot be negative")

type startGamePayload struct {
	BuyIn int `json:"buy_in"`
}

type startGameResponse struct {
	GameID uuid.UUID `json:"game_id"`
	*holdem.HandStart
}

func (m *Mux) postGame() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var pp startGamePayload
		if !decodeRequest(w, r, &pp) {
			return
		}

		buyIn := pp.BuyIn
		if buyIn <= 0 {
			buyIn = m.defaultBuyIn
		}

		game := holdem.NewGame(logrus.WithField("component", "holdem"), buyIn, rng.Crypto{})
		sess := session.New(game)

		start, err := game.StartHand()
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		m.store.Add(sess)
		logrus.WithFields(logrus.Fields{
			"game":  sess.ID,
			"buyIn": buyIn,
		}).Info("game started")

		writeJSON(w, http.StatusCreated, startGameResponse{
			GameID:    sess.ID,
			HandStart: start,
		})
	}
}

func (m *Mux) postGameStart() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := r.Context().Value(ctxSessionKey).(*session.Session)

		start, err := sess.Game.StartHand()
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		writeJSON(w, http.StatusOK, startGameResponse{
			GameID:    sess.ID,
			HandStart: start,
		})
	})
}

type betPayload struct {
	// nil means the wager defaults to a single ante
	Multiplier *int `json:"multiplier"`
}

func (b betPayload) times() int {
	if b.Multiplier == nil {
		return 1
	}

	return *b.Multiplier
}

func (m *Mux) postGameBet() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var pp betPayload
		if !decodeRequest(w, r, &pp) {
			return
		}

		if pp.times() < 0 {
			writeJSONError(w, http.StatusBadRequest, errNegativeMultiplier)
			return
		}

		sess := r.Context().Value(ctxSessionKey).(*session.Session)
		writeJSON(w, http.StatusOK, sess.Game.PlaceBet(pp.times()))
	})
}

type flopResponse struct {
	Flop deck.Hand `json:"flop"`
}

func (m *Mux) getGameFlop() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := r.Context().Value(ctxSessionKey).(*session.Session)

		flop, err := sess.Game.DealFlop()
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		writeJSON(w, http.StatusOK, flopResponse{Flop: flop})
	})
}

type turnOrRiverResponse struct {
	Card deck.Card `json:"card"`
}

func (m *Mux) getGameTurnOrRiver() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := r.Context().Value(ctxSessionKey).(*session.Session)

		card, err := sess.Game.DealTurnOrRiver()
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		writeJSON(w, http.StatusOK, turnOrRiverResponse{Card: card})
	})
}

func (m *Mux) postGameFold() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := r.Context().Value(ctxSessionKey).(*session.Session)
		writeJSON(w, http.StatusOK, sess.Game.Fold())
	})
}

func (m *Mux) getGameWinner() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := r.Context().Value(ctxSessionKey).(*session.Session)
		writeJSON(w, http.StatusOK, sess.Game.DetermineWinner())
	})
}

type playResponse struct {
	PlayerHand     deck.Hand     `json:"player_hand"`
	DealerHand     deck.Hand     `json:"dealer_hand"`
	CommunityCards deck.Hand     `json:"community_cards"`
	Pot            int           `json:"pot"`
	Balance        int           `json:"balance"`
	Winner         holdem.Winner `json:"winner"`
}

// postGamePlay places a bet and runs the hand out: flop if it hasn't
// been dealt, community cards up to five, then the showdown
func (m *Mux) postGamePlay() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var pp betPayload
		if !decodeRequest(w, r, &pp) {
			return
		}

		if pp.times() < 0 {
			writeJSONError(w, http.StatusBadRequest, errNegativeMultiplier)
			return
		}

		sess := r.Context().Value(ctxSessionKey).(*session.Session)
		game := sess.Game

		if !game.PlaceBet(pp.times()).Success {
			writeJSONError(w, http.StatusBadRequest, errInsufficientBalance)
			return
		}

		if len(game.Community()) < 3 {
			if _, err := game.DealFlop(); err != nil {
				writeJSONError(w, http.StatusInternalServerError, err)
				return
			}
		}

		for len(game.Community()) < 5 {
			if _, err := game.DealTurnOrRiver(); err != nil {
				writeJSONError(w, http.StatusInternalServerError, err)
				return
			}
		}

		out := game.DetermineWinner()

		writeJSON(w, http.StatusOK, playResponse{
			PlayerHand:     game.PlayerHand(),
			DealerHand:     game.DealerHand(),
			CommunityCards: game.Community(),
			Pot:            game.Pot(),
			Balance:        out.Balance,
			Winner:         out.Winner,
		})
	})
}
