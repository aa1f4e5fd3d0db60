// Package api は旅行プランサービスのAPIサーバー実装を提供します。
package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/stsysd/tabi/config"
	"github.com/stsysd/tabi/core"
	"github.com/stsysd/tabi/logger"
	"github.com/stsysd/tabi/store"
)

// Server はAPIサーバーの構造体です。
type Server struct {
	router   *http.ServeMux
	handler  http.Handler
	store    store.Store
	managers *core.Managers
	config   *config.Config
}

// NewServer は新しいAPIサーバーインスタンスを生成します。
func NewServer(s store.Store, cfg *config.Config, opts ...core.Option) *Server {
	srv := &Server{
		router:   http.NewServeMux(),
		store:    s,
		managers: core.New(s, opts...),
		config:   cfg,
	}
	srv.routes()
	srv.handler = recoverMiddleware(loggingMiddleware(srv.router))
	return srv
}

// routes はAPIエンドポイントのルーティングを設定します。
func (s *Server) routes() {
	// ヘルスチェックエンドポイントは認証不要
	s.router.HandleFunc("GET /api/health", s.handleHealthCheck)

	// 更新系のエンドポイントはAPIキーで保護する
	api := http.NewServeMux()

	// TravelPlan endpoints
	api.HandleFunc("GET /api/travel", s.handleListTravelPlans)
	api.HandleFunc("POST /api/travel", s.handleCreateTravelPlan)
	api.HandleFunc("GET /api/travel/{id}", s.handleGetTravelPlan)
	api.HandleFunc("PUT /api/travel/{id}", s.handleUpdateTravelPlan)
	api.HandleFunc("DELETE /api/travel/{id}", s.handleDeleteTravelPlan)
	api.HandleFunc("POST /api/travel/{id}/itinerary", s.handleAddItineraryActivity)
	api.HandleFunc("PUT /api/travel/{id}/itinerary/{activity_id}", s.handleUpdateItineraryActivity)
	api.HandleFunc("DELETE /api/travel/{id}/itinerary/{activity_id}", s.handleDeleteItineraryActivity)
	api.HandleFunc("GET /api/travel/{id}/calendar.svg", s.handleGetCalendar)

	// Accommodation endpoints
	api.HandleFunc("GET /api/accommodations", s.handleListAccommodations)
	api.HandleFunc("POST /api/accommodations", s.handleCreateAccommodation)
	api.HandleFunc("GET /api/accommodations/recommended", s.handleRecommendedAccommodations)
	api.HandleFunc("GET /api/accommodations/type/{type}", s.handleAccommodationsByType)
	api.HandleFunc("GET /api/accommodations/{id}", s.handleGetAccommodation)
	api.HandleFunc("PUT /api/accommodations/{id}", s.handleUpdateAccommodation)
	api.HandleFunc("DELETE /api/accommodations/{id}", s.handleDeleteAccommodation)
	api.HandleFunc("POST /api/accommodations/{id}/reviews", s.handleAddAccommodationReview)

	// Attraction endpoints
	api.HandleFunc("GET /api/attractions", s.handleListAttractions)
	api.HandleFunc("POST /api/attractions", s.handleCreateAttraction)
	api.HandleFunc("GET /api/attractions/recommended", s.handleRecommendedAttractions)
	api.HandleFunc("GET /api/attractions/category/{category}", s.handleAttractionsByCategory)
	api.HandleFunc("GET /api/attractions/{id}", s.handleGetAttraction)
	api.HandleFunc("PUT /api/attractions/{id}", s.handleUpdateAttraction)
	api.HandleFunc("DELETE /api/attractions/{id}", s.handleDeleteAttraction)
	api.HandleFunc("POST /api/attractions/{id}/reviews", s.handleAddAttractionReview)

	api.HandleFunc("/api/", s.handleNotFound)

	// 認証ミドルウェアを適用し、メインルータにマウント
	s.router.Handle("/api/", s.authMiddleware(api))
	s.router.HandleFunc("/", s.handleNotFound)
}

// ServeHTTP はServer構造体をhttp.Handlerとして実装します。
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

// handleHealthCheck はヘルスチェックエンドポイントのハンドラーです。
func (s *Server) handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Ping(r.Context()); err != nil {
		logger.L().ErrorContext(r.Context(), "health check failed", "error", err)
		writeJSONError(w, "データベースに接続できません", http.StatusServiceUnavailable)
		return
	}
	writeData(w, http.StatusOK, map[string]string{"status": "ok"}, "")
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	writeJSONError(w, fmt.Sprintf("%s %s は存在しません", r.Method, r.URL.Path), http.StatusNotFound)
}

// Run はサーバーを起動し、ctx がキャンセルされるとグレースフルシャットダウンします。
func (s *Server) Run(ctx context.Context, addr string, shutdownTimeout time.Duration) error {
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.L().Info("server started", "addr", addr)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.L().Info("shutting down server", "timeout", shutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	return nil
}
