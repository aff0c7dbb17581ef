package store

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/finsight/finsight"
	"github.com/finsight/finsight/date"
)

func testTx(id string) finsight.Transaction {
	return finsight.Transaction{
		ID: id, Type: finsight.Income, Category: "Salary", Amount: 100,
		Date: date.MustParse("2026-02-01"),
	}
}

// Rapid queues inside the quiescence window coalesce into one write holding
// the latest snapshot.
func TestSyncerCoalesces(t *testing.T) {
	st := newMemStore()
	s := NewSyncer(st, "alice", 50*time.Millisecond, zerolog.Nop())

	for i := 0; i < 5; i++ {
		s.QueueCollection(Transactions, []finsight.Transaction{testTx("t1")})
	}
	if got := s.Status(); got != StatusSaving {
		t.Errorf("status while pending = %q, want saving", got)
	}

	deadline := time.Now().Add(2 * time.Second)
	for s.Status() != StatusSaved && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	if got := s.Status(); got != StatusSaved {
		t.Fatalf("status = %q after flush, want saved", got)
	}
	if got := st.savedCount(); got != 1 {
		t.Errorf("store saw %d writes, want 1 coalesced write", got)
	}
}

func TestSyncerFlush(t *testing.T) {
	st := newMemStore()
	s := NewSyncer(st, "alice", time.Hour, zerolog.Nop())

	s.QueueCollection(Debts, finsight.SampleDebts())
	s.QueueSettings(finsight.Settings{View: finsight.Monthly, ActiveTab: "dashboard"})
	if st.savedCount() != 0 {
		t.Fatalf("store saw writes before the window elapsed")
	}

	if err := s.Flush(context.Background()); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if got := st.savedCount(); got != 2 {
		t.Errorf("store saw %d writes after flush, want 2", got)
	}
	if got := s.Status(); got != StatusSaved {
		t.Errorf("status = %q after flush, want saved", got)
	}

	// The flushed document round trips through LoadBook.
	b, _, err := LoadBook(context.Background(), st, "alice")
	if err != nil {
		t.Fatalf("LoadBook: %v", err)
	}
	if len(b.Debts) != 3 {
		t.Errorf("LoadBook sees %d debts, want 3", len(b.Debts))
	}
}

func TestSyncerWriteFailure(t *testing.T) {
	st := newMemStore()
	st.fail = true
	s := NewSyncer(st, "alice", time.Hour, zerolog.Nop())

	s.QueueCollection(Transactions, []finsight.Transaction{testTx("t1")})
	if err := s.Flush(context.Background()); err == nil {
		t.Fatalf("Flush succeeded against a failing store")
	}
	if got := s.Status(); got != StatusError {
		t.Errorf("status = %q after failed flush, want error", got)
	}
}

// A snapshot that cannot be marshaled is dropped without wedging the
// syncer in the saving state.
func TestSyncerUnencodableSnapshot(t *testing.T) {
	st := newMemStore()
	s := NewSyncer(st, "alice", time.Hour, zerolog.Nop())

	s.QueueCollection(Transactions, make(chan int))
	if got := s.Status(); got != StatusSaved {
		t.Errorf("status after dropped snapshot = %q, want saved", got)
	}
	if err := s.Flush(context.Background()); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if st.savedCount() != 0 {
		t.Errorf("store saw a write for a snapshot that never encoded")
	}
}

func TestSyncerClose(t *testing.T) {
	st := newMemStore()
	s := NewSyncer(st, "alice", time.Hour, zerolog.Nop())
	s.QueueCollection(Investments, finsight.SampleInvestments())
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if st.savedCount() != 1 {
		t.Errorf("Close did not flush the pending write")
	}
}
