// Package wusultest provides an in-memory fake of the Wusul API for tests.
//
// The fake verifies the signature of every authenticated request exactly as
// the real API does, stores access passes, card templates and the event log
// in memory, and can be told to fail specific requests:
//
//	srv := wusultest.NewServer("test_account", "test_secret")
//	defer srv.Close()
//
//	sdk, err := wusul.NewSDK("test_account", "test_secret", wusul.WithBaseURL(srv.URL))
package wusultest

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"sync"

	"github.com/benbjohnson/clock"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"go.wusul.io/sdk/internal/jsonerr"
	"go.wusul.io/sdk/pkg/auth"
	"go.wusul.io/sdk/types"
)

// Request is a request received by the fake server.
type Request struct {
	Method    string
	Path      string
	Query     url.Values
	AccountID string
	Signature auth.Signature
	Body      []byte
}

// Server is a fake Wusul API listening on a local address.
type Server struct {
	*httptest.Server

	accountID    string
	sharedSecret string
	tier         types.AccountTier
	clock        clock.Clock
	logger       zerolog.Logger

	mu        sync.Mutex
	passes    map[string]*types.AccessPass
	passOrder []string
	templates map[string]*types.CardTemplate
	published map[string]bool
	events    []types.EventLogEntry
	failures  []failure
	requests  []Request
}

type failure struct {
	method, path string
	status       int
	body         string
}

// Option configures a [Server].
type Option func(*Server)

// WithClock sets the clock used to stamp records and events.
func WithClock(clk clock.Clock) Option {
	return func(s *Server) {
		s.clock = clk
	}
}

// WithLogger sets the logger the server writes request logs to.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithTier sets the tier of the fake account. Console endpoints reject
// accounts below Enterprise with 403 Forbidden. The default is Enterprise.
func WithTier(tier types.AccountTier) Option {
	return func(s *Server) {
		s.tier = tier
	}
}

// NewServer starts a fake API that accepts requests signed for accountID
// with sharedSecret. Callers must Close it when done.
func NewServer(accountID, sharedSecret string, options ...Option) *Server {
	s := &Server{
		accountID:    accountID,
		sharedSecret: sharedSecret,
		tier:         types.AccountTierEnterprise,
		clock:        clock.New(),
		logger:       zerolog.Nop(),
		passes:       map[string]*types.AccessPass{},
		templates:    map[string]*types.CardTemplate{},
		published:    map[string]bool{},
	}
	for _, option := range options {
		option(s)
	}

	s.Server = httptest.NewServer(s.router())
	return s
}

// Fail makes the next request for method and path respond with status and
// body instead of being handled.
func (s *Server) Fail(method, path string, status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures = append(s.failures, failure{method, path, status, body})
}

// Requests returns every request received so far, in order.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request(nil), s.requests...)
}

// LastRequest returns the most recent request received.
func (s *Server) LastRequest() (Request, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.requests) == 0 {
		return Request{}, false
	}
	return s.requests[len(s.requests)-1], true
}

// AccessPass returns a copy of the stored access pass with the given id.
func (s *Server) AccessPass(id string) (types.AccessPass, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	pass, ok := s.passes[id]
	if !ok {
		return types.AccessPass{}, false
	}
	return *pass, true
}

// IsPublished reports whether the card template with the given id has been published.
func (s *Server) IsPublished(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.published[id]
}

func (s *Server) router() http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/health", s.health).Methods(http.MethodGet)

	api := r.PathPrefix("/v1").Subrouter()
	api.Use(s.authenticate)

	passes := api.PathPrefix("/access-passes").Subrouter()
	passes.HandleFunc("", s.issuePass).Methods(http.MethodPost)
	passes.HandleFunc("", s.listPasses).Methods(http.MethodGet)
	passes.HandleFunc("/{id}", s.updatePass).Methods(http.MethodPatch)
	passes.HandleFunc("/{id}", s.deletePass).Methods(http.MethodDelete)
	passes.HandleFunc("/{id}/{action:suspend|resume|unlink}", s.transitionPass).Methods(http.MethodPost)

	console := api.PathPrefix("/console").Subrouter()
	console.Use(s.requireEnterprise)
	console.HandleFunc("/card-templates", s.createTemplate).Methods(http.MethodPost)
	console.HandleFunc("/card-templates/{id}", s.readTemplate).Methods(http.MethodGet)
	console.HandleFunc("/card-templates/{id}", s.updateTemplate).Methods(http.MethodPatch)
	console.HandleFunc("/card-templates/{id}/publish", s.publishTemplate).Methods(http.MethodPost)
	console.HandleFunc("/event-log", s.eventLog).Methods(http.MethodGet)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		jsonerr.Error(w, errors.New("Route not found"), http.StatusNotFound)
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		jsonerr.Error(w, errors.New("Method not allowed"), http.StatusMethodNotAllowed)
	})

	// Router middleware only runs for matched routes, so wrap the whole
	// router to see unknown paths and methods too.
	return s.record(s.injectFailures(r))
}

// record stores every request, leaving the body readable for later handlers.
func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body := readBody(r)

		headers, _ := auth.HeadersFromRequest(r)
		req := Request{
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  r.URL.Query(),
			Body:   body,
		}
		if headers != nil {
			req.AccountID = headers.AccountID
			req.Signature = headers.Signature
		}

		s.mu.Lock()
		s.requests = append(s.requests, req)
		s.mu.Unlock()

		s.logger.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Str("request_id", r.Header.Get("X-Request-ID")).
			Msg("fake wusul api request")

		next.ServeHTTP(w, r)
	})
}

func (s *Server) injectFailures(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		var forced *failure
		for i, f := range s.failures {
			if f.method == r.Method && f.path == r.URL.Path {
				forced = &f
				s.failures = append(s.failures[:i], s.failures[i+1:]...)
				break
			}
		}
		s.mu.Unlock()

		if forced == nil {
			next.ServeHTTP(w, r)
			return
		}
		w.WriteHeader(forced.status)
		_, _ = io.WriteString(w, forced.body)
	})
}

// authenticate verifies the account and payload signature headers.
func (s *Server) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		headers, err := auth.HeadersFromRequest(r)
		if err != nil {
			jsonerr.Error(w, err, http.StatusUnauthorized)
			return
		}
		if headers.AccountID != s.accountID {
			jsonerr.Error(w, errors.New("Invalid account ID"), http.StatusUnauthorized)
			return
		}

		if err := headers.Verify(s.sharedSecret, signedPayload(r)); err != nil {
			s.logger.Warn().Err(err).Str("path", r.URL.Path).Msg("rejecting request with invalid signature")
			jsonerr.Error(w, auth.ErrAuthenticationFailed, http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) requireEnterprise(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.tier != types.AccountTierEnterprise {
			jsonerr.Error(w, errors.New("This feature requires an Enterprise tier account"), http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// integerParams are the query parameters the API treats as numbers.
var integerParams = map[string]bool{
	"limit":  true,
	"offset": true,
}

// signedPayload rebuilds the payload a client signed for r.
//
// GET requests sign their query object, whose numeric parameters are typed
// as numbers. Every other request signs its body, or the empty object.
func signedPayload(r *http.Request) any {
	if r.Method == http.MethodGet {
		query := r.URL.Query()
		if len(query) == 0 {
			return nil
		}
		payload := make(map[string]any, len(query))
		for key := range query {
			value := query.Get(key)
			if integerParams[key] {
				if n, err := strconv.ParseInt(value, 10, 64); err == nil {
					payload[key] = n
					continue
				}
			}
			payload[key] = value
		}
		return payload
	}

	return auth.BytesPayload(readBody(r))
}

// readBody reads the request body and replaces it so it can be read again.
func readBody(r *http.Request) []byte {
	if r.Body == nil {
		return nil
	}
	body, _ := io.ReadAll(r.Body)
	_ = r.Body.Close()
	r.Body = io.NopCloser(bytes.NewReader(body))
	return body
}
