package metrics

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestStoreCollector(t *testing.T) {
	source := StatsFunc(func(context.Context) Counts {
		return Counts{Webpages: 10, SearchQueries: 3}
	})

	expected := `
# HELP searchportal_search_queries_total Total number of logged search queries
# TYPE searchportal_search_queries_total counter
searchportal_search_queries_total 3
# HELP searchportal_webpages Number of indexed webpages
# TYPE searchportal_webpages gauge
searchportal_webpages 10
`
	if err := testutil.CollectAndCompare(NewStoreCollector(source), strings.NewReader(expected)); err != nil {
		t.Fatalf("unexpected collector output: %v", err)
	}
}

func TestRecorderObserve(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := NewRecorder()
	if err := r.Register(reg, StatsFunc(func(context.Context) Counts { return Counts{} })); err != nil {
		t.Fatalf("Register() error: %v", err)
	}

	r.Observe(2*time.Millisecond, 4)
	r.Observe(time.Millisecond, 0)

	if got := testutil.CollectAndCount(r.duration); got != 1 {
		t.Errorf("duration series = %d, want 1", got)
	}

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather() error: %v", err)
	}
	for _, mf := range families {
		if mf.GetName() != "searchportal_search_results" {
			continue
		}
		if got := mf.GetMetric()[0].GetHistogram().GetSampleCount(); got != 2 {
			t.Errorf("results sample count = %d, want 2", got)
		}
		return
	}
	t.Fatal("searchportal_search_results not gathered")
}

func TestObserveSearchBeforeInit(t *testing.T) {
	// Must not panic when metrics are disabled.
	ObserveSearch(time.Millisecond, 1)
}

func TestRecorderRegister(t *testing.T) {
	reg := prometheus.NewRegistry()
	source := StatsFunc(func(context.Context) Counts { return Counts{Webpages: 2} })

	if err := NewRecorder().Register(reg, source); err != nil {
		t.Fatalf("Register() error: %v", err)
	}

	names := map[string]bool{}
	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather() error: %v", err)
	}
	for _, mf := range families {
		names[mf.GetName()] = true
	}
	for _, want := range []string{
		"searchportal_webpages",
		"searchportal_search_queries_total",
		"searchportal_search_duration_seconds",
		"searchportal_search_results",
	} {
		if !names[want] {
			t.Errorf("%s not registered", want)
		}
	}

	// A second recorder on the same registry collides with the first.
	if err := NewRecorder().Register(reg, source); err == nil {
		t.Error("second Register() succeeded, want duplicate registration error")
	}
}
