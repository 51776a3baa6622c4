package http

import (
	"context"
	"io"
	"net/http"
	"runtime/debug"
	"sync"
	"time"

	"cakue/internal/core"
	applog "cakue/internal/log"
	mwauth "cakue/internal/middleware/auth"
	"cakue/internal/middleware/ratelimit"
	"cakue/internal/middleware/security"
	"cakue/internal/middleware/trace"
	"cakue/internal/services"
	"cakue/internal/storage"
)

// Authenticator registers users and logs them in.
type Authenticator interface {
	Register(ctx context.Context, name, email, password string) (core.User, core.Account, error)
	Login(ctx context.Context, email, password string) (string, core.User, error)
}

// Ledger manages the accounts, categories and transaction listings of a user.
type Ledger interface {
	Accounts(ctx context.Context, userID int64) ([]core.Account, error)
	CreateAccount(ctx context.Context, userID int64, name string, typ core.AccountType) (core.Account, error)
	Categories(ctx context.Context, userID, accountID int64) ([]core.Category, error)
	CreateCategory(ctx context.Context, userID, accountID int64, name string, typ core.TransactionType) (core.Category, error)
	Transactions(ctx context.Context, userID, accountID int64) ([]core.Transaction, error)
}

// Reconciler applies offline batches and reports device checkpoints.
type Reconciler interface {
	Reconcile(ctx context.Context, userID int64, deviceID string, batch []core.TransactionInput) (core.ReconcileResult, error)
	Checkpoint(ctx context.Context, userID int64, deviceID string) (core.SyncCheckpoint, error)
}

// Reporter builds summaries over a date range.
type Reporter interface {
	Summarize(ctx context.Context, userID, accountID int64, start, end core.Date) (core.Summary, error)
	DefaultAccountID(ctx context.Context, userID int64) (int64, error)
}

// DocumentRenderer writes a summary as a document.
type DocumentRenderer interface {
	Render(w io.Writer, sum core.Summary) error
}

// HealthChecker is pinged by the readiness check.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// OutboxStats reports the sync event backlog on the readiness check.
type OutboxStats interface {
	SyncEventStats(ctx context.Context) (storage.GetSyncEventStatsRow, error)
}

// Deps are the collaborators of the API. Outbox may be nil.
type Deps struct {
	Auth         Authenticator
	Ledger       Ledger
	Transactions services.Ingestor
	Sync         Reconciler
	Reports      Reporter
	Renderer     DocumentRenderer
	Tokens       mwauth.Verifier
	DB           HealthChecker
	Outbox       OutboxStats
}

// Config holds the HTTP settings taken from the application config.
type Config struct {
	Addr                 string
	AllowedOrigins       []string
	RateLimitWindow      time.Duration
	RateLimitMaxRequests int
	LoginRateLimitMax    int
}

type Server struct {
	http.Server
	deps Deps

	limiter      *ratelimit.Limiter
	loginLimiter *ratelimit.Limiter
	detector     *security.Detector
	tracer       *trace.Middleware
	logger       *applog.Logger
	started      time.Time

	shutdownOnce sync.Once
}

func NewServer(cfg Config, deps Deps, logger *applog.Logger) *Server {
	if logger == nil {
		logger = applog.New(applog.DefaultConfig())
	}
	httpLogger := logger.WithComponent(applog.ComponentHTTP)
	detector := security.NewDetector()

	s := &Server{
		deps: deps,
		limiter: ratelimit.NewLimiter(ratelimit.Config{
			Window:      cfg.RateLimitWindow,
			MaxRequests: cfg.RateLimitMaxRequests,
		}),
		loginLimiter: ratelimit.NewLimiter(ratelimit.Config{
			Window:      cfg.RateLimitWindow,
			MaxRequests: cfg.LoginRateLimitMax,
		}),
		detector: detector,
		tracer:   trace.NewMiddleware(detector.ExtractClientIP, httpLogger),
		logger:   httpLogger,
		started:  time.Now(),
	}

	s.Server = http.Server{
		Addr:              cfg.Addr,
		Handler:           s.routes(cfg),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	return s
}

func (s *Server) routes(cfg Config) http.Handler {
	mux := http.NewServeMux()
	requireAuth := mwauth.Middleware(s.deps.Tokens)
	protected := func(h http.HandlerFunc) http.Handler { return requireAuth(h) }
	loginLimited := s.loginLimiter.Middleware(s.detector.ExtractClientIP, s.onRateLimit)

	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /readyz", s.handleReady)

	mux.Handle("POST /api/auth/register", loginLimited(http.HandlerFunc(s.handleRegister)))
	mux.Handle("POST /api/auth/login", loginLimited(http.HandlerFunc(s.handleLogin)))

	mux.Handle("GET /api/accounts", protected(s.handleListAccounts))
	mux.Handle("POST /api/accounts", protected(s.handleCreateAccount))
	mux.Handle("GET /api/categories/{accountId}", protected(s.handleListCategories))
	mux.Handle("POST /api/categories/{accountId}", protected(s.handleCreateCategory))
	mux.Handle("GET /api/transactions/{accountId}", protected(s.handleListTransactions))
	mux.Handle("POST /api/transactions", protected(s.handleCreateTransaction))

	mux.Handle("POST /api/sync/transactions", protected(s.handleSyncTransactions))
	mux.Handle("GET /api/sync/checkpoint", protected(s.handleSyncCheckpoint))

	mux.Handle("GET /api/reports/{accountId}", protected(s.handleReport))
	mux.Handle("GET /api/finance/pdf", protected(s.handleReportPDF))

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "Route not found")
	})

	// Outermost first.
	chain := []func(http.Handler) http.Handler{
		applog.Middleware(s.logger),
		s.tracer.Middleware,
		applog.RequestIDMiddleware(trace.RequestIDFromRequest),
		s.recoverer,
		security.NewHeadersMiddleware(security.DefaultHeadersConfig()).Middleware,
		security.NewCORS(security.DefaultCORSConfig(cfg.AllowedOrigins)).Middleware,
		s.detector.Middleware,
		s.limiter.Middleware(s.detector.ExtractClientIP, s.onRateLimit),
	}

	var h http.Handler = mux
	for i := len(chain) - 1; i >= 0; i-- {
		h = chain[i](h)
	}
	return h
}

func (s *Server) onRateLimit(w http.ResponseWriter, r *http.Request) {
	applog.FromContext(r.Context()).WarnContext(r.Context(), "Rate limit exceeded",
		applog.FieldComponent, applog.ComponentRateLimit,
		applog.FieldClientIP, s.detector.ExtractClientIP(r),
		applog.FieldPath, r.URL.Path)
	writeError(w, http.StatusTooManyRequests, "Too many requests, please try again later.")
}

// recoverer turns a handler panic into a 500 response.
func (s *Server) recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				applog.FromContext(r.Context()).ErrorContext(r.Context(), "Handler panic",
					applog.FieldMethod, r.Method,
					applog.FieldPath, r.URL.Path,
					"panic", rec,
					"stack", string(debug.Stack()))
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// Shutdown stops the limiters and drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	var shutdownErr error
	s.shutdownOnce.Do(func() {
		s.limiter.Stop()
		s.loginLimiter.Stop()
		shutdownErr = s.Server.Shutdown(ctx)
	})
	return shutdownErr
}
