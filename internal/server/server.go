package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/velocart/delivery-coverage/internal/coverage"
	"github.com/velocart/delivery-coverage/internal/metrics"
	"github.com/velocart/delivery-coverage/internal/pricing"
	"github.com/velocart/delivery-coverage/internal/zone"
)

type Server struct {
	Router   *chi.Mux
	Addr     string
	Interval time.Duration
	Logger   *log.Logger
	Zones    *zone.Service
	Coverage *coverage.Service
	Pricing  *pricing.Calculator

	handler      *Handler
	shutdownCh   chan os.Signal
	worker       *worker
	workerKillCh chan<- struct{}
	wg           *sync.WaitGroup
}

func (s *Server) addr() string {
	if s.Addr == "" {
		s.Addr = "8080"
	}

	return fmt.Sprintf(":%s", s.Addr)
}

func (s *Server) interval() time.Duration {
	if s.Interval == 0 {
		s.Interval = 30 * time.Second
	}

	return s.Interval
}

func (s *Server) init() {
	s.handler = NewHandler(s.Logger)
	s.handler.zones = s.Zones
	s.handler.coverage = s.Coverage
	s.handler.pricing = s.Pricing
	s.setRoutes()

	s.shutdownCh = make(chan os.Signal, 1)
	signal.Notify(s.shutdownCh, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	workerKillCh := make(chan struct{}, 1)
	s.workerKillCh = workerKillCh
	s.worker = &worker{
		zones:  s.Zones,
		d:      s.interval(),
		killCh: workerKillCh,
	}

	s.wg = &sync.WaitGroup{}
}

func (s *Server) setRoutes() {
	meter := RequestMeter{}

	s.Router.Get("/", s.handler.HelloWorld())
	s.Router.Post("/addresses/validate", meter.Measure("validate_address", s.handler.HandleValidateAddress()))
	s.Router.Post("/orders/quote", meter.Measure("order_quote", s.handler.HandleOrderQuote()))
	s.Router.Handle("/metrics", metrics.Handler())
}

func (s *Server) run(runFn func()) {
	go func() {
		s.wg.Add(1)
		defer s.wg.Done()

		runFn()
	}()
}

func (s *Server) listenAndServe() error {
	httpServer := &http.Server{
		Addr:    s.addr(),
		Handler: s.Router,
	}

	startCh := make(chan error, 1)
	go func() {
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			startCh <- fmt.Errorf("failed to start server: %w", err)
		}
	}()

	// Wait for either a shutdown signal or an error if the server
	// cannot start.
	select {
	case err := <-startCh:
		return err
	case <-s.shutdownCh:
		ctx, cancel := context.WithTimeout(context.Background(), 7*time.Second)
		defer func() {
			defer cancel()

			// Kill background worker.
			s.workerKillCh <- struct{}{}

			// Wait for all resources to stop.
			s.wg.Wait()
		}()

		// Gracefully shutdown the http server.
		if err := httpServer.Shutdown(ctx); err != nil {
			return fmt.Errorf("failed to shutdown server: %w", err)
		}
	}

	return nil
}

func (s *Server) validate() error {
	if s.Router == nil {
		return errors.New("router is nil")
	}

	if s.Logger == nil {
		return errors.New("logger is nil")
	}

	if s.Zones == nil {
		return errors.New("zones is nil")
	}

	if s.Coverage == nil {
		return errors.New("coverage is nil")
	}

	if s.Pricing == nil {
		return errors.New("pricing is nil")
	}

	return nil
}

func (s *Server) Start() error {
	if err := s.validate(); err != nil {
		return err
	}

	s.init()
	if s.Zones.Cache != nil {
		s.run(func() {
			s.worker.start()
		})
	}

	return s.listenAndServe()
}
