package metrics

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"arcadepong/internal/pong"
)

func TestRecorderCounts(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := NewRecorder(reg)

	r.PaddleHit(pong.Left)
	r.PaddleHit(pong.Left)
	r.PaddleHit(pong.Right)
	r.WallHit()
	r.Point(pong.Right)
	r.Rally(3)
	r.MatchFinished(pong.SinglePlayer, pong.Right)
	r.TickOverrun()

	tests := []struct {
		name string
		c    prometheus.Collector
		want float64
	}{
		{"left hits", r.paddleHits.WithLabelValues("left"), 2},
		{"right hits", r.paddleHits.WithLabelValues("right"), 1},
		{"walls", r.wallHits, 1},
		{"right points", r.points.WithLabelValues("right"), 1},
		{"left points", r.points.WithLabelValues("left"), 0},
		{"matches", r.matches.WithLabelValues("single_player", "right"), 1},
		{"overruns", r.overruns, 1},
	}
	for _, tt := range tests {
		if got := testutil.ToFloat64(tt.c); got != tt.want {
			t.Errorf("%s = %v, want %v", tt.name, got, tt.want)
		}
	}
	if n := testutil.CollectAndCount(r.rally); n != 1 {
		t.Errorf("Expected one rally histogram, got %d", n)
	}
}

func TestNilRecorderIsSafe(t *testing.T) {
	var r *Recorder
	r.PaddleHit(pong.Left)
	r.WallHit()
	r.Point(pong.Left)
	r.Rally(1)
	r.MatchFinished(pong.TwoPlayer, pong.Left)
	r.TickOverrun()
}

func TestRouterServesMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := NewRecorder(reg)
	r.WallHit()

	rec := httptest.NewRecorder()
	Router(reg).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "arcadepong_wall_hits_total 1") {
		t.Errorf("Expected wall hit counter in body:\n%s", rec.Body.String())
	}

	rec = httptest.NewRecorder()
	Router(reg).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Code != http.StatusOK || rec.Body.String() != "ok" {
		t.Errorf("healthz = %d %q", rec.Code, rec.Body.String())
	}
}

func TestServeStopsOnCancel(t *testing.T) {
	reg := prometheus.NewRegistry()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- Serve(ctx, "127.0.0.1:0", reg) }()

	time.Sleep(50 * time.Millisecond)
	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Serve returned %v", err)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("Serve did not stop after cancel")
	}
}

func TestServeReportsListenError(t *testing.T) {
	ln := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		io.WriteString(w, "busy")
	}))
	defer ln.Close()

	addr := strings.TrimPrefix(ln.URL, "http://")
	err := Serve(context.Background(), addr, prometheus.NewRegistry())
	if err == nil {
		t.Fatal("Expected an error for an address in use")
	}
}
