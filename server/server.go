package server

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"tailor-system/config"
	"tailor-system/logger"
	"tailor-system/logsink"
	"tailor-system/store"
)

type Server struct {
	cfg    *config.Config
	stores store.Stores
	sink   *logsink.Sink
	lg     *logger.Logger
}

func New(cfg *config.Config, stores store.Stores, sink *logsink.Sink) *Server {
	return &Server{
		cfg:    cfg,
		stores: stores,
		sink:   sink,
		lg:     logger.New("http"),
	}
}

func (s *Server) Routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/whatsapp", s.handleWhatsApp)
	mux.HandleFunc("GET /api/logs", s.handleLogsGet)
	mux.HandleFunc("POST /api/logs", s.handleLogsPost)

	mux.HandleFunc("GET /api/orders", s.handleOrderSearch)
	mux.HandleFunc("GET /api/orders/batch", s.handleOrderBatch)
	mux.HandleFunc("POST /api/orders", s.handleOrderCreate)
	mux.HandleFunc("GET /api/orders/{id}", s.handleOrderGet)
	mux.HandleFunc("PATCH /api/orders/{id}", s.handleOrderUpdate)
	mux.HandleFunc("DELETE /api/orders/{id}", s.handleOrderDelete)

	mux.HandleFunc("GET /api/customers", s.handleCustomerSearch)
	mux.HandleFunc("GET /api/customers/batch", s.handleCustomerBatch)
	mux.HandleFunc("POST /api/customers", s.handleCustomerCreate)
	mux.HandleFunc("GET /api/customers/{uid}", s.handleCustomerGet)
	mux.HandleFunc("PATCH /api/customers/{uid}", s.handleCustomerUpdate)

	mux.HandleFunc("GET /api/garments", s.handleGarments)
	mux.HandleFunc("GET /api/settings", s.handleSettingsGet)
	mux.HandleFunc("PATCH /api/settings", s.handleSettingsUpdate)
	mux.HandleFunc("GET /api/capacity", s.handleCapacity)

	return mux
}

// Run serves until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         ":" + strconv.Itoa(s.cfg.HTTP.Port),
		Handler:      s.Routes(),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	s.lg.Info("server_started", map[string]any{"addr": srv.Addr})
	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		return nil
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	}
}
