package metrics

import (
	"errors"
	"sync"
	"testing"
	"time"
)

// fakeBackend is an in-memory Backend implementation for tests.
type fakeBackend struct {
	mu sync.Mutex

	counters   []counterCall
	durations  []durationCall
	flushCount int
}

type counterCall struct {
	name   string
	delta  float64
	labels Labels
}

type durationCall struct {
	name   string
	value  float64
	labels Labels
}

func (f *fakeBackend) IncCounter(name string, delta float64, labels Labels) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.counters = append(f.counters, counterCall{name, delta, labels})
}

func (f *fakeBackend) ObserveDuration(name string, value float64, labels Labels) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.durations = append(f.durations, durationCall{name, value, labels})
}

func (f *fakeBackend) Flush() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.flushCount++
	return nil
}

func TestRecordStageSuccessAndFailure(t *testing.T) {
	orig := backend
	defer func() { backend = orig }()

	fb := &fakeBackend{}
	backend = fb

	RecordStage("hist_servicos", "read", nil, 2*time.Second)
	RecordStage("hist_vendas_pecas", "load", errors.New("boom"), 1500*time.Millisecond)

	if len(fb.counters) != 2 || len(fb.durations) != 2 {
		t.Fatalf("calls = %d counters, %d durations", len(fb.counters), len(fb.durations))
	}

	c0 := fb.counters[0]
	if c0.name != "bronze_stage_total" || c0.delta != 1 {
		t.Fatalf("counter[0] = %#v", c0)
	}
	if c0.labels["dataset"] != "hist_servicos" || c0.labels["stage"] != "read" || c0.labels["status"] != "success" {
		t.Fatalf("counter[0] labels = %v", c0.labels)
	}
	d0 := fb.durations[0]
	if d0.name != "bronze_stage_duration_seconds" || d0.value < 1.999 || d0.value > 2.001 {
		t.Fatalf("duration[0] = %#v", d0)
	}

	c1 := fb.counters[1]
	if c1.labels["status"] != "failure" || c1.labels["stage"] != "load" {
		t.Fatalf("counter[1] labels = %v", c1.labels)
	}
}

func TestRecordRowsAndBatches(t *testing.T) {
	orig := backend
	defer func() { backend = orig }()

	fb := &fakeBackend{}
	backend = fb

	RecordRows("estoque_pecas", "read", 3)
	RecordRows("estoque_pecas", "read", 0) // ignored
	RecordRows("estoque_veiculos", "inserted", 5)
	RecordBatches("estoque_veiculos", 2)

	if len(fb.counters) != 3 {
		t.Fatalf("counter calls = %d, want 3", len(fb.counters))
	}
	c0 := fb.counters[0]
	if c0.name != "bronze_rows_total" || c0.delta != 3 || c0.labels["kind"] != "read" {
		t.Fatalf("counter[0] = %#v", c0)
	}
	c2 := fb.counters[2]
	if c2.name != "bronze_batches_total" || c2.delta != 2 || c2.labels["dataset"] != "estoque_veiculos" {
		t.Fatalf("counter[2] = %#v", c2)
	}
}

func TestSetBackendAndFlush(t *testing.T) {
	orig := backend
	defer func() { backend = orig }()

	fb := &fakeBackend{}
	SetBackend(fb)
	if backend != fb {
		t.Fatal("SetBackend did not replace global backend")
	}
	if err := Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if fb.flushCount != 1 {
		t.Fatalf("flushCount = %d", fb.flushCount)
	}

	SetBackend(nil)
	if backend != fb {
		t.Fatal("SetBackend(nil) should not change backend")
	}
}
