package metrics

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/pixil98/go-adventure/internal/game"
	"github.com/pixil98/go-testutil"
	promtest "github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetrics_ObserveCommand(t *testing.T) {
	m := New()

	m.ObserveCommand("go", game.Success)
	m.ObserveCommand("go", game.Failure)
	m.ObserveCommand("go", game.Victory)
	m.ObserveCommand("take", game.Success)
	m.ObserveCommand("unknown", game.Failure)

	testutil.AssertEqual(t, "go success", promtest.ToFloat64(m.commands.WithLabelValues("go", "success")), 1.0)
	testutil.AssertEqual(t, "go failure", promtest.ToFloat64(m.commands.WithLabelValues("go", "failure")), 1.0)
	testutil.AssertEqual(t, "go victory", promtest.ToFloat64(m.commands.WithLabelValues("go", "victory")), 1.0)
	testutil.AssertEqual(t, "unknown", promtest.ToFloat64(m.commands.WithLabelValues("unknown", "failure")), 1.0)
	testutil.AssertEqual(t, "rooms entered", promtest.ToFloat64(m.roomsEntered), 2.0)
	testutil.AssertEqual(t, "victories", promtest.ToFloat64(m.victories), 1.0)
}

func TestServer_Routes(t *testing.T) {
	m := New()
	m.ObserveCommand("money", game.Success)
	s := NewServer("127.0.0.1:0", m, nil)

	tests := map[string]struct {
		path      string
		expStatus int
		expBody   string
	}{
		"health":  {path: "/healthz", expStatus: http.StatusOK, expBody: "ok"},
		"metrics": {path: "/metrics", expStatus: http.StatusOK, expBody: `adventure_commands_total{outcome="success",verb="money"} 1`},
		"unknown": {path: "/nope", expStatus: http.StatusNotFound},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			testutil.AssertEqual(t, "status", rec.Code, tt.expStatus)
			if tt.expBody != "" && !strings.Contains(rec.Body.String(), tt.expBody) {
				t.Errorf("body missing %q\ngot:\n%s", tt.expBody, rec.Body.String())
			}
		})
	}
}

func TestServer_StopsWhenDone(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	done := make(chan struct{})
	s := NewServer(ln.Addr().String(), New(), done)

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.serve(context.Background(), ln)
	}()

	resp, err := http.Get("http://" + ln.Addr().String() + "/healthz")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	testutil.AssertEqual(t, "body", string(body), "ok")

	close(done)

	select {
	case err := <-errCh:
		if err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestServer_StartBadAddress(t *testing.T) {
	s := NewServer("not-an-address", New(), nil)

	err := s.Start(context.Background())
	testutil.AssertErrorContains(t, err, "listening on not-an-address")
}
