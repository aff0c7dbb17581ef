// Package server exposes the tracker as an authenticated JSON API: record
// CRUD, derived statistics, export/import and the chat advisor. Identity is
// delegated to an external issuer; the server only verifies bearer tokens.
package server

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/finsight/finsight"
	"github.com/finsight/finsight/advisor"
	"github.com/finsight/finsight/store"
)

// Config carries the server dependencies.
type Config struct {
	Store      store.Store
	Advisor    *advisor.Advisor
	JWTSecret  []byte
	Quiescence time.Duration // write-coalescing window, DefaultQuiescence when zero
	Logger     zerolog.Logger
}

// Server holds one in-memory session per authenticated user: the book plus
// its write coalescer. Collections load on first touch and stay
// authoritative for the session; the store sees debounced overwrites, last
// write wins across devices.
type Server struct {
	cfg Config

	mu       sync.Mutex
	sessions map[string]*session
}

type session struct {
	mu     sync.Mutex
	book   *finsight.Book
	syncer *store.Syncer
}

// New creates a server; Router assembles its HTTP surface.
func New(cfg Config) *Server {
	return &Server{cfg: cfg, sessions: make(map[string]*session)}
}

// session returns the user's live session, loading the book on first touch.
func (s *Server) session(ctx context.Context, uid string) (*session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sess, ok := s.sessions[uid]; ok {
		return sess, nil
	}
	book, seeded, err := store.LoadBook(ctx, s.cfg.Store, uid)
	if err != nil {
		return nil, err
	}
	sess := &session{
		book:   book,
		syncer: store.NewSyncer(s.cfg.Store, uid, s.cfg.Quiescence, s.cfg.Logger),
	}
	if seeded {
		// A first touch starts from the sample records; persist them so the
		// next load finds written documents.
		s.queueAll(sess)
	}
	s.sessions[uid] = sess
	return sess, nil
}

// Router assembles the gin engine with auth and logging middleware.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(s.cfg.Logger))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api", AuthMiddleware(s.cfg.JWTSecret))

	api.GET("/transactions", s.listTransactions)
	api.POST("/transactions", s.addTransaction)
	api.PUT("/transactions", s.replaceTransactions)
	api.PATCH("/transactions/:id", s.updateTransaction)
	api.DELETE("/transactions/:id", s.deleteTransaction)

	api.GET("/investments", s.listInvestments)
	api.POST("/investments", s.addInvestment)
	api.PUT("/investments", s.replaceInvestments)
	api.PATCH("/investments/:id", s.updateInvestment)
	api.DELETE("/investments/:id", s.deleteInvestment)

	api.GET("/debts", s.listDebts)
	api.POST("/debts", s.addDebt)
	api.PUT("/debts", s.replaceDebts)
	api.PATCH("/debts/:id", s.updateDebt)
	api.DELETE("/debts/:id", s.deleteDebt)

	api.GET("/settings", s.getSettings)
	api.PUT("/settings", s.putSettings)

	api.GET("/summary", s.getSummary)
	api.GET("/forecast", s.getForecast)
	api.GET("/payoff", s.getPayoff)
	api.GET("/sync", s.getSyncStatus)

	api.GET("/export", s.exportData)
	api.POST("/import", s.importData)
	api.POST("/reset", s.resetData)
	api.DELETE("/data", s.clearData)

	api.GET("/prompts", s.listPrompts)
	api.POST("/chat", s.chat)

	return r
}

// Run starts the HTTP server and blocks.
func (s *Server) Run(addr string) error {
	s.cfg.Logger.Info().Str("addr", addr).Msg("finsight API listening")
	return s.Router().Run(addr)
}

// Close flushes every live session.
func (s *Server) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	var failed error
	for _, sess := range s.sessions {
		if err := sess.syncer.Close(); err != nil {
			failed = err
		}
	}
	return failed
}

// requestLogger emits one structured line per request.
func requestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Msg("request")
	}
}
