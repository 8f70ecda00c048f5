package mactable

import "testing"

func TestLearnAndPortOf(t *testing.T) {
	tb := New()
	m := [6]byte{1}
	tb.Learn(m, 2)
	if p, ok := tb.PortOf(m); !ok || p != 2 {
		t.Fatalf("PortOf = %d, %v, want 2, true", p, ok)
	}
}

func TestFlushRemovesOnlyThatPort(t *testing.T) {
	tb := New()
	a, b := [6]byte{1}, [6]byte{2}
	tb.Learn(a, 1)
	tb.Learn(b, 2)
	tb.Flush(1)
	if _, ok := tb.PortOf(a); ok {
		t.Fatalf("expected mac a to be flushed")
	}
	if _, ok := tb.PortOf(b); !ok {
		t.Fatalf("mac b should survive flushing port 1")
	}
	if tb.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", tb.Len())
	}
}

func TestCopyTableRetagsEntries(t *testing.T) {
	tb := New()
	a := [6]byte{1}
	tb.Learn(a, 1)
	tb.CopyTable(1, 5)
	if p, ok := tb.PortOf(a); !ok || p != 5 {
		t.Fatalf("PortOf after CopyTable = %d, %v, want 5, true", p, ok)
	}
}
