package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/vektorlabs/embeddings/v1/observability"
)

func TestObserveOperationCountsByStatus(t *testing.T) {
	m := NewMetrics(Config{ServiceName: "test"})

	m.ObserveOperation(observability.OperationContext{
		Component: "voyageai",
		Operation: "generate",
		Duration:  25 * time.Millisecond,
		Size:      3,
	})
	m.ObserveOperation(observability.OperationContext{
		Component: "voyageai",
		Operation: "generate",
		Duration:  5 * time.Millisecond,
		Error:     errors.New("boom"),
	})

	success := testutil.ToFloat64(m.operationsTotal.WithLabelValues("voyageai", "generate", "success"))
	if success != 1 {
		t.Errorf("expected 1 success, got %v", success)
	}
	failure := testutil.ToFloat64(m.operationsTotal.WithLabelValues("voyageai", "generate", "error"))
	if failure != 1 {
		t.Errorf("expected 1 error, got %v", failure)
	}
}

func TestHandlerServesMetrics(t *testing.T) {
	m := NewMetrics(Config{ServiceName: "test"})
	m.ObserveOperation(observability.OperationContext{
		Component: "voyageai",
		Operation: "generate",
		Duration:  time.Millisecond,
		Size:      2,
	})

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "embedding_operations_total") {
		t.Error("expected embedding_operations_total in scrape output")
	}
	if !strings.Contains(body, `service="test"`) {
		t.Error("expected constant service label in scrape output")
	}
}

func TestCreateCounterRegisters(t *testing.T) {
	m := NewMetrics(Config{ServiceName: "test", EnableDefaultCollectors: false})

	c := m.CreateCounter("custom_total", "A custom counter.", []string{"kind"})
	c.WithLabelValues("x").Inc()

	if got := testutil.ToFloat64(c.WithLabelValues("x")); got != 1 {
		t.Errorf("expected 1, got %v", got)
	}
}
