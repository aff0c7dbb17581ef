package store

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/finsight/finsight"
)

// Status is the user-visible sync indicator.
type Status string

const (
	StatusLoading Status = "loading"
	StatusSaving  Status = "saving"
	StatusSaved   Status = "saved"
	StatusError   Status = "error"
)

// DefaultQuiescence is the debounce window between the last mutation and
// the write-through to the store.
const DefaultQuiescence = 500 * time.Millisecond

// Syncer is the write-coalescing policy between in-memory mutations and the
// store: every mutation queues a fresh snapshot of the affected document,
// and the flush fires only after the quiescence window passes with no newer
// snapshot. Writes are best effort: a failure flips the status flag, is
// logged, and is not retried; local mutations are never blocked.
type Syncer struct {
	st     Store
	user   string
	window time.Duration
	log    zerolog.Logger

	mu      sync.Mutex
	pending map[string][]byte
	timer   *time.Timer
	status  Status
}

// NewSyncer creates a syncer for one user's documents.
func NewSyncer(st Store, user string, window time.Duration, log zerolog.Logger) *Syncer {
	if window <= 0 {
		window = DefaultQuiescence
	}
	return &Syncer{
		st:      st,
		user:    user,
		window:  window,
		log:     log,
		pending: make(map[string][]byte),
		status:  StatusSaved,
	}
}

// QueueCollection snapshots a record collection for the next flush. The
// snapshot is taken now, so later mutations cannot leak into it; a newer
// snapshot for the same document simply supersedes this one. A snapshot
// that cannot be encoded is logged and dropped.
func (s *Syncer) QueueCollection(name string, items any) {
	doc, err := EncodeCollection(items)
	if err != nil {
		s.log.Error().Err(err).Str("user", s.user).Str("doc", name).Msg("cannot snapshot document")
		return
	}
	s.queue(name, doc)
}

// QueueSettings snapshots the flat settings document for the next flush.
func (s *Syncer) QueueSettings(settings finsight.Settings) {
	doc, err := EncodeSettings(settings)
	if err != nil {
		s.log.Error().Err(err).Str("user", s.user).Str("doc", Settings).Msg("cannot snapshot document")
		return
	}
	s.queue(Settings, doc)
}

func (s *Syncer) queue(name string, doc []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending[name] = doc
	s.status = StatusSaving
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.window, s.flushPending)
}

// Flush writes every pending document now, without waiting for quiescence.
func (s *Syncer) Flush(ctx context.Context) error {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	batch := s.pending
	s.pending = make(map[string][]byte)
	s.mu.Unlock()

	return s.write(ctx, batch)
}

// flushPending runs on the timer goroutine after the quiescence window.
func (s *Syncer) flushPending() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = s.Flush(ctx)
}

func (s *Syncer) write(ctx context.Context, batch map[string][]byte) error {
	if len(batch) == 0 {
		s.setStatus(StatusSaved)
		return nil
	}
	var failed error
	for name, doc := range batch {
		if err := s.st.Save(ctx, s.user, name, doc); err != nil {
			s.log.Error().Err(err).Str("user", s.user).Str("doc", name).Msg("sync failed")
			failed = err
		}
	}
	if failed != nil {
		s.setStatus(StatusError)
		return failed
	}
	s.setStatus(StatusSaved)
	return nil
}

func (s *Syncer) setStatus(st Status) {
	s.mu.Lock()
	// A snapshot queued while this flush ran keeps the status at saving.
	if len(s.pending) == 0 || st == StatusError {
		s.status = st
	}
	s.mu.Unlock()
}

// Status reports the current sync state.
func (s *Syncer) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// Close stops the timer and flushes whatever is pending.
func (s *Syncer) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.Flush(ctx)
}
