package api

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/CELO-Colombia-invierte/invierte-api/internal/auth"
)

// session carries the verified identity and the raw bearer token, which is
// forwarded to the platform API on behalf of the user.
type session struct {
	identity auth.Identity
	token    string
}

type sessionKey struct{}

func sessionFrom(r *http.Request) session {
	s, _ := r.Context().Value(sessionKey{}).(session)
	return s
}

// NewServer creates an HTTP server with all routes configured. Every route
// except the public catalog requires a valid wallet session token.
func NewServer(port string, handler *Handler, verifier *auth.Verifier) *http.Server {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/v1/catalog/latest", handler.GetCatalog)

	authed := func(h http.HandlerFunc) http.Handler {
		return requireAuth(verifier, h)
	}
	mux.Handle("GET /api/v1/profile", authed(handler.GetProfile))
	mux.Handle("PATCH /api/v1/profile", authed(handler.UpdateProfile))
	mux.Handle("GET /api/v1/portfolio", authed(handler.GetPortfolio))
	mux.Handle("GET /api/v1/portfolio/statement.xlsx", authed(handler.GetStatement))
	mux.Handle("GET /api/v1/projects", authed(handler.ListProjects))
	mux.Handle("GET /api/v1/projects/{id}", authed(handler.GetProject))
	mux.Handle("GET /api/v1/conversations", authed(handler.ListConversations))
	mux.Handle("GET /api/v1/conversations/{id}/messages", authed(handler.ListMessages))
	mux.Handle("POST /api/v1/conversations/{id}/messages", authed(handler.PostMessage))
	mux.Handle("DELETE /api/v1/conversations/{id}/messages/{messageId}", authed(handler.DeleteMessage))
	mux.Handle("GET /api/v1/onboarding", authed(handler.GetOnboarding))
	mux.Handle("PUT /api/v1/onboarding", authed(handler.SetOnboarding))

	return &http.Server{
		Addr:         ":" + port,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

func requireAuth(verifier *auth.Verifier, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token := strings.TrimPrefix(header, "Bearer ")
		if !strings.HasPrefix(header, "Bearer ") || token == "" {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		identity, err := verifier.Verify(token)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		ctx := context.WithValue(r.Context(), sessionKey{}, session{identity: identity, token: token})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
