// Package server provides the HTTP REST API for the interview prep service.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/FlyRocketToMars/RocktheInterview/internal/config"
	"github.com/FlyRocketToMars/RocktheInterview/internal/db"
	"github.com/FlyRocketToMars/RocktheInterview/internal/jobfeeds"
	"github.com/FlyRocketToMars/RocktheInterview/internal/plan"
	"github.com/FlyRocketToMars/RocktheInterview/internal/questionbank"
	"github.com/FlyRocketToMars/RocktheInterview/internal/server/middleware"
	"github.com/FlyRocketToMars/RocktheInterview/internal/server/ratelimit"
	"github.com/FlyRocketToMars/RocktheInterview/internal/skills"
	"github.com/FlyRocketToMars/RocktheInterview/internal/taxonomy"
)

// Server represents the HTTP server
type Server struct {
	httpServer  *http.Server
	db          *db.DB
	rateLimiter *ratelimit.Limiter
	jwtService  *JWTService
	userService *UserService
	authHandler *AuthHandler

	taxonomy  *taxonomy.Taxonomy
	extractor *skills.Extractor
	templates *plan.Registry
	bank      *questionbank.Bank
	feeds     *jobfeeds.Aggregator
}

// Config holds server configuration
type Config struct {
	Port        int
	DatabaseURL string
}

// Deps holds the immutable static configuration the server serves from.
type Deps struct {
	Taxonomy  *taxonomy.Taxonomy
	Aliases   taxonomy.AliasTable
	Templates *plan.Registry
	Bank      *questionbank.Bank
}

// New creates a new server instance
func New(cfg Config, deps Deps) (*Server, error) {
	// Connect to database
	database, err := db.Connect(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	s := &Server{
		db:        database,
		taxonomy:  deps.Taxonomy,
		extractor: skills.NewExtractor(deps.Taxonomy, deps.Aliases),
		templates: deps.Templates,
		bank:      deps.Bank,
		feeds:     jobfeeds.NewAggregator(),
	}

	// Initialize rate limiter
	s.rateLimiter = ratelimit.NewLimiter(ratelimit.LoadConfig())

	// Initialize authentication services
	passwordConfig, err := config.NewPasswordConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create password config: %w", err)
	}
	s.userService = NewUserService(database, passwordConfig)

	jwtConfig, err := config.NewJWTConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT config: %w", err)
	}
	s.jwtService = NewJWTService(jwtConfig)
	s.authHandler = NewAuthHandler(s.userService, s.jwtService)

	// Setup router
	mux := http.NewServeMux()
	auth := middleware.AuthMiddleware(s.jwtService.AsTokenValidator())

	mux.HandleFunc("GET /health", s.handleHealth)

	// Authentication endpoints
	mux.HandleFunc("POST /auth/register", s.handleRegister)
	mux.HandleFunc("POST /auth/login", s.handleLogin)
	mux.Handle("GET /users/me", auth(http.HandlerFunc(s.handleMe)))
	mux.Handle("PUT /users/me/password", auth(http.HandlerFunc(s.handleUpdatePassword)))

	// User profile endpoints
	mux.HandleFunc("GET /users/{id}", s.handleGetUser)
	mux.HandleFunc("PUT /users/{id}", s.handleUpdateUser)
	mux.HandleFunc("DELETE /users/{id}", s.handleDeleteUser)

	// Skill analysis endpoints
	mux.HandleFunc("POST /analysis/extract", s.handleExtractSkills)
	mux.HandleFunc("POST /analysis/gap", s.handleGapAnalysis)

	// Study plan endpoints
	mux.HandleFunc("GET /plans/templates", s.handleListTemplates)
	mux.HandleFunc("POST /users/{id}/plan", s.handleCreatePlan)
	mux.HandleFunc("GET /users/{id}/plan", s.handleGetPlan)
	mux.HandleFunc("DELETE /users/{id}/plan", s.handleDeletePlan)
	mux.HandleFunc("GET /users/{id}/plan/today", s.handlePlanToday)
	mux.HandleFunc("POST /users/{id}/plan/complete", s.handleCompleteTask)
	mux.HandleFunc("GET /users/{id}/plan/progress", s.handlePlanProgress)

	// Community Q&A endpoints
	mux.HandleFunc("GET /questions", s.handleListQuestions)
	mux.HandleFunc("POST /questions", s.handleCreateQuestion)
	mux.HandleFunc("GET /questions/{id}", s.handleGetQuestion)
	mux.HandleFunc("POST /questions/{id}/answers", s.handleAddAnswer)
	mux.HandleFunc("POST /questions/{id}/vote", s.handleVoteQuestion)
	mux.HandleFunc("POST /questions/{id}/answers/{answer_id}/vote", s.handleVoteAnswer)
	mux.HandleFunc("POST /questions/{id}/answers/{answer_id}/accept", s.handleAcceptAnswer)
	mux.HandleFunc("GET /community/search", s.handleSearchQuestions)
	mux.HandleFunc("GET /community/stats", s.handleCommunityStats)

	// Practice endpoints
	mux.HandleFunc("GET /practice/daily", s.handleDailyPractice)
	mux.HandleFunc("GET /practice/random", s.handleRandomPractice)

	// Gamification endpoints
	mux.HandleFunc("GET /leaderboard", s.handleLeaderboard)
	mux.HandleFunc("GET /users/{id}/gamification", s.handleGetGamification)
	mux.HandleFunc("POST /users/{id}/gamification/login", s.handleDailyLogin)

	// Job feed endpoints
	mux.HandleFunc("GET /jobfeeds/platforms", s.handleListPlatforms)
	mux.HandleFunc("GET /jobfeeds/companies", s.handleListCompanies)
	mux.HandleFunc("GET /jobfeeds/specialized", s.handleListSpecialized)
	mux.HandleFunc("GET /jobfeeds/search", s.handleJobSearch)

	// Create HTTP server
	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withRateLimit(s.withLogging(s.withCORS(mux))),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// Start begins listening for requests
func (s *Server) Start() error {
	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	// Stop rate limiter cleanup goroutine
	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}

	s.db.Close()
	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withRateLimit adds rate limiting middleware
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID := s.extractClientID(r)

		allowed, info := s.rateLimiter.Allow(clientID, r.URL.Path, r.Method)

		if !allowed {
			s.setRateLimitHeaders(w, info)
			s.rateLimitResponse(w, info)
			return
		}

		s.setRateLimitHeaders(w, info)
		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// handleRegister handles user registration requests.
func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	s.authHandler.Register(w, r)
}

// handleLogin handles user login requests.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	s.authHandler.Login(w, r)
}

// handleUpdatePassword handles password update requests for the
// authenticated user.
func (s *Server) handleUpdatePassword(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	s.authHandler.UpdatePasswordWithUserID(w, r, userID)
}

// extractClientID extracts the client identifier from the request.
// This uses the IP address from RemoteAddr; X-Forwarded-For would only be
// trustworthy behind a known proxy.
func (s *Server) extractClientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// setRateLimitHeaders sets standard rate limit headers on the response.
func (s *Server) setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit > 0 {
		w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", info.Limit))
		w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", info.Remaining))
		w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", info.ResetTime.Unix()))
	}
}

// rateLimitResponse writes a 429 Too Many Requests response with rate limit information.
func (s *Server) rateLimitResponse(w http.ResponseWriter, info ratelimit.Info) {
	response := map[string]interface{}{
		"error":     "rate_limit_exceeded",
		"message":   "Rate limit exceeded. Please try again later.",
		"limit":     info.Limit,
		"remaining": info.Remaining,
		"reset_at":  info.ResetTime.Format(time.RFC3339),
	}

	if info.RetryAfter > 0 {
		response["retry_after"] = int(info.RetryAfter.Seconds())
		w.Header().Set("Retry-After", fmt.Sprintf("%d", int(info.RetryAfter.Seconds())))
	}

	log.Printf("[rate-limit] Rate limit exceeded: Limit=%d Remaining=%d Reset=%s",
		info.Limit, info.Remaining, info.ResetTime.Format(time.RFC3339))

	s.jsonResponse(w, http.StatusTooManyRequests, response)
}
