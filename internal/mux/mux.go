package mux

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	gmux "github.com/gorilla/mux"

	"github.com/aryanved123/Ultimate-Texas-Holdem/internal/config"
	"github.com/aryanved123/Ultimate-Texas-Holdem/pkg/session"
)

type ctxKey int

const ctxSessionKey ctxKey = iota

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	version      string
	store        *session.Store
	defaultBuyIn int
}

// NewMux returns a new HTTP mux
func NewMux(version string) *Mux {
	this := &Mux{
		Router:       gmux.NewRouter(),
		version:      version,
		store:        session.NewStore(),
		defaultBuyIn: config.Instance().DefaultBuyIn,
	}

	this.Router.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
	this.Router.Methods(http.MethodPost).Path("/game").Handler(this.postGame())

	gr := this.Router.PathPrefix("/game/{uuid:(?i)[a-f0-9]{8}(?:-[a-f0-9]{4}){3}-[a-f0-9]{12}}").Subrouter()
	gr.Use(this.sessionMiddleware)

	gr.Methods(http.MethodPost).Path("/start").Handler(this.postGameStart())
	gr.Methods(http.MethodPost).Path("/bet").Handler(this.postGameBet())
	gr.Methods(http.MethodGet).Path("/flop").Handler(this.getGameFlop())
	gr.Methods(http.MethodGet).Path("/turn-or-river").Handler(this.getGameTurnOrRiver())
	gr.Methods(http.MethodPost).Path("/fold").Handler(this.postGameFold())
	gr.Methods(http.MethodGet).Path("/winner").Handler(this.getGameWinner())
	gr.Methods(http.MethodPost).Path("/play").Handler(this.postGamePlay())

	return this
}

// sessionMiddleware resolves the session from the URL and holds its
// lock for the duration of the request; the game engine assumes
// single-writer access
func (m *Mux) sessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(gmux.Vars(r)["uuid"])
		if err != nil {
			writeJSONError(w, http.StatusNotFound, session.ErrNotFound)
			return
		}

		sess, err := m.store.Get(id)
		if err != nil {
			writeJSONError(w, http.StatusNotFound, err)
			return
		}

		sess.Lock()
		defer sess.Unlock()

		newCtx := context.WithValue(r.Context(), ctxSessionKey, sess)
		next.ServeHTTP(w, r.WithContext(newCtx))
	})
}
