package memory

import (
	"context"
	"sync"
	"time"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/pkg/e"
)

// SessionRepo хранит сессии в памяти процесса. Неактивные сессии удаляются по истечении ttl.
type SessionRepo struct {
	mu       sync.Mutex
	sessions map[string]*domain.Session
	ttl      time.Duration
	now      func() time.Time

	stop     chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

func NewSessionRepo(ttl time.Duration) *SessionRepo {
	return &SessionRepo{
		sessions: make(map[string]*domain.Session),
		ttl:      ttl,
		now:      time.Now,
		stop:     make(chan struct{}),
	}
}

// StartJanitor запускает фоновую очистку устаревших сессий с периодом interval.
func (r *SessionRepo) StartJanitor(interval time.Duration) {
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-r.stop:
				return
			case <-ticker.C:
				r.evictExpired()
			}
		}
	}()
}

// Close останавливает фоновую очистку.
func (r *SessionRepo) Close() error {
	r.stopOnce.Do(func() { close(r.stop) })
	r.wg.Wait()
	return nil
}

func (r *SessionRepo) Get(_ context.Context, id string) (*domain.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.lookup(id)
	if !ok {
		return nil, e.Wrap(id, e.ErrSessionNotFound)
	}

	return s.Clone(), nil
}

// Update применяет fn к копии сессии под блокировкой и сохраняет её только при успехе.
func (r *SessionRepo) Update(ctx context.Context, id string, fn func(s *domain.Session) error) (*domain.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()

	working := domain.NewSession(id, now)
	if s, ok := r.lookup(id); ok {
		working = s.Clone()
	}

	if err := fn(working); err != nil {
		return nil, err
	}

	working.UpdatedAt = now
	r.sessions[id] = working

	return working.Clone(), nil
}

// Len возвращает число живых сессий.
func (r *SessionRepo) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := 0
	for id := range r.sessions {
		if _, ok := r.lookup(id); ok {
			n++
		}
	}
	return n
}

// lookup возвращает сессию, если она не устарела. Вызывается под r.mu.
func (r *SessionRepo) lookup(id string) (*domain.Session, bool) {
	s, ok := r.sessions[id]
	if !ok {
		return nil, false
	}

	if r.expired(s) {
		delete(r.sessions, id)
		return nil, false
	}

	return s, true
}

func (r *SessionRepo) expired(s *domain.Session) bool {
	return r.ttl > 0 && r.now().Sub(s.UpdatedAt) > r.ttl
}

func (r *SessionRepo) evictExpired() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, s := range r.sessions {
		if r.expired(s) {
			delete(r.sessions, id)
		}
	}
}
