// Package metrics exports gameplay counters to Prometheus.
package metrics

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"arcadepong/internal/pong"
)

const namespace = "arcadepong"

// Recorder implements game.Recorder. A nil *Recorder records nothing.
type Recorder struct {
	paddleHits *prometheus.CounterVec
	wallHits   prometheus.Counter
	points     *prometheus.CounterVec
	matches    *prometheus.CounterVec
	rally      prometheus.Histogram
	overruns   prometheus.Counter
}

func NewRecorder(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		paddleHits: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "paddle_hits_total",
				Help:      "Ball contacts per paddle",
			},
			[]string{"side"},
		),
		wallHits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "wall_hits_total",
			Help:      "Ball bounces off the barriers",
		}),
		points: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "points_total",
				Help:      "Points awarded per side",
			},
			[]string{"side"},
		),
		matches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "matches_finished_total",
				Help:      "Finished matches by mode and winner",
			},
			[]string{"mode", "winner"},
		),
		rally: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "rally_length",
			Help:      "Paddle contacts between serves",
			Buckets:   []float64{0, 1, 2, 4, 8, 16, 32},
		}),
		overruns: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tick_overruns_total",
			Help:      "Frames whose work took longer than the tick period",
		}),
	}
	reg.MustRegister(r.paddleHits, r.wallHits, r.points, r.matches, r.rally, r.overruns)
	return r
}

func (r *Recorder) PaddleHit(side pong.Side) {
	if r == nil {
		return
	}
	r.paddleHits.WithLabelValues(side.String()).Inc()
}

func (r *Recorder) WallHit() {
	if r == nil {
		return
	}
	r.wallHits.Inc()
}

func (r *Recorder) Point(side pong.Side) {
	if r == nil {
		return
	}
	r.points.WithLabelValues(side.String()).Inc()
}

func (r *Recorder) Rally(hits int) {
	if r == nil {
		return
	}
	r.rally.Observe(float64(hits))
}

func (r *Recorder) MatchFinished(mode pong.GameMode, winner pong.Side) {
	if r == nil {
		return
	}
	r.matches.WithLabelValues(mode.String(), winner.String()).Inc()
}

func (r *Recorder) TickOverrun() {
	if r == nil {
		return
	}
	r.overruns.Inc()
}

// Router serves /metrics from g and a trivial /healthz.
func Router(g prometheus.Gatherer) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(g, promhttp.HandlerOpts{})))
	r.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	return r
}

// Serve exposes g on addr until ctx is cancelled.
func Serve(ctx context.Context, addr string, g prometheus.Gatherer) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           Router(g),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		slog.Info("metrics server started", slog.String("addr", addr))
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return fmt.Errorf("metrics server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("metrics shutdown: %w", err)
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("metrics server: %w", err)
	}
	return nil
}
