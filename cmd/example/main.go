// Command example mounts the Foursquare strategy on a chi router and shows the identity it produces.
package main

import (
	"context"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/cccteam/foursquare"
	"github.com/cccteam/foursquare/identity"
	"github.com/cccteam/httpio"
	"github.com/cccteam/logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/errors/v5"
)

type config struct {
	Addr         string `env:"ADDR"                     envDefault:":8080"`
	ClientID     string `env:"FOURSQUARE_CLIENT_ID,required"`
	ClientSecret string `env:"FOURSQUARE_CLIENT_SECRET,required"`
	RedirectURL  string `env:"FOURSQUARE_REDIRECT_URL,required"`
	CookieKey    string `env:"FOURSQUARE_COOKIE_KEY"`
	Display      string `env:"FOURSQUARE_DISPLAY"`
	CookieDomain string `env:"FOURSQUARE_COOKIE_DOMAIN"`
}

func main() {
	ctx := context.Background()
	if err := run(ctx); err != nil {
		logger.Ctx(ctx).Error(err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		return errors.Wrap(err, "env.Parse()")
	}

	users := &userStore{identities: make(map[string]*identity.AuthHash)}

	options := []foursquare.Option{
		foursquare.WithLogHandler(httpio.Log),
		foursquare.WithLoginURL("/"),
	}
	if cfg.Display != "" {
		options = append(options, foursquare.WithDisplay(cfg.Display))
	}
	if cfg.CookieDomain != "" {
		options = append(options, foursquare.WithCookieDomain(cfg.CookieDomain))
	}

	strategy, err := foursquare.New(users, cfg.CookieKey, cfg.ClientID, cfg.ClientSecret, cfg.RedirectURL, options...)
	if err != nil {
		return errors.Wrap(err, "foursquare.New()")
	}

	r := chi.NewRouter()
	r.Get("/", users.Index())
	r.Get("/auth/foursquare", strategy.Login())
	r.Get("/auth/foursquare/callback", strategy.Callback())
	r.Get("/users/{uid}", users.User())

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Ctx(ctx).Infof("listening on %s", cfg.Addr)
	if err := srv.ListenAndServe(); err != nil {
		return errors.Wrap(err, "http.Server.ListenAndServe()")
	}

	return nil
}

// userStore keeps the last identity seen for each Foursquare user.
type userStore struct {
	mu         sync.RWMutex
	identities map[string]*identity.AuthHash
}

func (s *userStore) Authenticated(ctx context.Context, _ http.ResponseWriter, _ *http.Request, hash *identity.AuthHash) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.identities[hash.UID] = hash
	logger.Ctx(ctx).Infof("stored identity for %s (%s)", hash.UID, hash.UserInfo.Name)

	return nil
}

func (s *userStore) Index() http.HandlerFunc {
	return httpio.Log(func(w http.ResponseWriter, r *http.Request) error {
		type response struct {
			Message string   `json:"message,omitempty"`
			Users   []string `json:"users"`
		}

		s.mu.RLock()
		defer s.mu.RUnlock()

		res := response{Message: r.URL.Query().Get("message"), Users: make([]string, 0, len(s.identities))}
		for uid := range s.identities {
			res.Users = append(res.Users, uid)
		}

		return httpio.NewEncoder(w).Ok(res)
	})
}

func (s *userStore) User() http.HandlerFunc {
	return httpio.Log(func(w http.ResponseWriter, r *http.Request) error {
		uid := chi.URLParam(r, "uid")

		s.mu.RLock()
		hash, ok := s.identities[uid]
		s.mu.RUnlock()

		if !ok {
			return httpio.NewEncoder(w).ClientMessage(r.Context(), httpio.NewNotFoundMessagef("user %s has not signed in", uid))
		}

		return httpio.NewEncoder(w).Ok(hash)
	})
}
