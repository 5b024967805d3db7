package trace

import "testing"

func TestDisabledTracerRecordsNothing(t *testing.T) {
	tr := New()
	tr.Eval(0, "x")
	tr.Result(0, "1")
	if len(tr.Entries()) != 0 {
		t.Errorf("disabled tracer should record nothing, got %v", tr.Entries())
	}
}

func TestEnabledTracerIndentsByDepth(t *testing.T) {
	tr := New()
	tr.Enable(true)
	tr.Eval(0, "forall x in [1] : x > 0")
	tr.Eval(1, "x > 0")
	tr.Result(1, "true")
	tr.Result(0, "true")

	entries := tr.Entries()
	if len(entries) != 4 {
		t.Fatalf("expected 4 entries, got %d: %v", len(entries), entries)
	}
	if entries[1][:2] != "  " {
		t.Errorf("depth-1 entry should be indented, got %q", entries[1])
	}
}

func TestMetricsCounters(t *testing.T) {
	tr := New()
	tr.FunctionCall()
	tr.FunctionCall()
	tr.CacheMiss()
	tr.Enable(true)
	tr.CacheHit(0)

	m := tr.Metrics()
	if m.FunctionCalls != 2 || m.CacheMisses != 1 || m.CacheHits != 1 {
		t.Errorf("unexpected metrics: %+v", m)
	}
}

func TestResetClearsOnlyMetrics(t *testing.T) {
	tr := New()
	tr.Enable(true)
	tr.Eval(0, "x")
	tr.FunctionCall()
	tr.Reset()

	if tr.Metrics().FunctionCalls != 0 {
		t.Error("Reset should zero metrics")
	}
	if len(tr.Entries()) != 1 {
		t.Error("Reset should not clear the trace log")
	}
}

func TestTruncation(t *testing.T) {
	tr := New()
	tr.Enable(true)
	long := ""
	for i := 0; i < 200; i++ {
		long += "a"
	}
	tr.Eval(0, long)
	entries := tr.Entries()
	if len(entries[0]) > len("EVAL: ")+renderTruncateLen+len("...")+1 {
		t.Errorf("long render should be truncated, got length %d", len(entries[0]))
	}
}
