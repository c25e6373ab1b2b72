package httpinterface

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.uber.org/ratelimit"

	"github.com/gameswap-network/gameswapd/internal/core/application"
	"github.com/gameswap-network/gameswapd/internal/interfaces"
)

type ServiceOpts struct {
	Address         string
	AccountService  application.AccountService
	LibraryService  application.LibraryService
	ExchangeService application.ExchangeService
	WishlistService application.WishlistService
	// RequestRate caps the number of requests served per second. Zero
	// disables throttling.
	RequestRate int
}

func (o ServiceOpts) validate() error {
	if o.Address == "" {
		return fmt.Errorf("missing listening address")
	}
	if o.AccountService == nil {
		return fmt.Errorf("missing account service")
	}
	if o.LibraryService == nil {
		return fmt.Errorf("missing library service")
	}
	if o.ExchangeService == nil {
		return fmt.Errorf("missing exchange service")
	}
	if o.WishlistService == nil {
		return fmt.Errorf("missing wishlist service")
	}
	return nil
}

type service struct {
	opts   ServiceOpts
	server *http.Server
}

// NewService returns the HTTP interface of the daemon, exposing the account,
// library, exchange and wishlist operations as a JSON API.
func NewService(opts ServiceOpts) (interfaces.Service, error) {
	if err := opts.validate(); err != nil {
		return nil, fmt.Errorf("invalid service opts: %s", err)
	}

	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(requestLogger)
	if opts.RequestRate > 0 {
		router.Use(throttle(ratelimit.New(opts.RequestRate)))
	}

	accountHandler := newAccountHandler(opts.AccountService)
	libraryHandler := newLibraryHandler(opts.LibraryService)
	exchangeHandler := newExchangeHandler(opts.ExchangeService)
	wishlistHandler := newWishlistHandler(opts.WishlistService)

	router.Route("/v1", func(r chi.Router) {
		r.Post("/users", accountHandler.register)
		r.Get("/users/{userID}", accountHandler.getUser)
		r.Post("/sessions", accountHandler.authenticate)

		r.Post("/games", libraryHandler.addGame)
		r.Get("/games", libraryHandler.searchGames)
		r.Get("/games/{gameID}", libraryHandler.getGame)
		r.Delete("/games/{gameID}", libraryHandler.removeGame)
		r.Get("/users/{userID}/games", libraryHandler.gamesForUser)

		r.Post("/exchanges", exchangeHandler.propose)
		r.Get("/exchanges", exchangeHandler.listAll)
		r.Get("/exchanges/{exchangeID}", exchangeHandler.getExchange)
		r.Post("/exchanges/{exchangeID}/accept", exchangeHandler.accept)
		r.Post("/exchanges/{exchangeID}/reject", exchangeHandler.reject)
		r.Post("/exchanges/{exchangeID}/counter", exchangeHandler.counterPropose)
		r.Get("/users/{userID}/exchanges/active", exchangeHandler.activeForUser)
		r.Get("/users/{userID}/exchanges/history", exchangeHandler.historyForUser)
		r.Get("/users/{userID}/exchanges/counters", exchangeHandler.pendingCountersForUser)

		r.Get("/users/{userID}/wishlist", wishlistHandler.wishlistForUser)
		r.Put("/users/{userID}/wishlist/{gameID}", wishlistHandler.addToWishlist)
		r.Delete("/users/{userID}/wishlist/{gameID}", wishlistHandler.removeFromWishlist)
	})
	router.Handle("/metrics", promhttp.Handler())

	return &service{
		opts: opts,
		server: &http.Server{
			Addr:    opts.Address,
			Handler: router,
		},
	}, nil
}

func (s *service) Start() error {
	log.Infof("http interface is listening on %s", s.opts.Address)
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *service) Stop() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.server.Shutdown(ctx); err != nil {
		log.WithError(err).Warn("http interface did not shut down cleanly")
		return
	}
	log.Debug("stopped http interface")
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		log.WithFields(log.Fields{
			"method":  r.Method,
			"path":    r.URL.Path,
			"status":  ww.Status(),
			"elapsed": time.Since(start).String(),
		}).Debug("served request")
	})
}

func throttle(limiter ratelimit.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			limiter.Take()
			next.ServeHTTP(w, r)
		})
	}
}
