package services

import (
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"DF-DSGNR/internal/design"
	"DF-DSGNR/internal/designer"

	"github.com/google/uuid"
)

// Session owns one designer state. The state itself is not safe for
// concurrent use, so every access goes through Do.
type Session struct {
	ID         string
	TemplateID string

	state      *designer.State
	mu         sync.Mutex
	lastActive int64 // unix nanoseconds
}

// Do runs fn with exclusive access to the session's designer state and
// refreshes the idle clock.
func (s *Session) Do(fn func(st *designer.State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	atomic.StoreInt64(&s.lastActive, time.Now().UnixNano())
	fn(s.state)
}

func (s *Session) idleSince() time.Time {
	return time.Unix(0, atomic.LoadInt64(&s.lastActive))
}

type SessionService struct {
	sessions map[string]*Session
	mu       sync.RWMutex
	ttl      time.Duration
	interval time.Duration
	ticker   *time.Ticker
	done     chan bool
}

func NewSessionService(ttlStr, cleanupIntervalStr string) *SessionService {
	ttl, err := time.ParseDuration(ttlStr)
	if err != nil {
		ttl = 30 * time.Minute
		fmt.Printf("Warning: failed to parse session TTL '%s', using default 30m: %v\n", ttlStr, err)
	}

	interval, err := time.ParseDuration(cleanupIntervalStr)
	if err != nil {
		interval = 5 * time.Minute
		fmt.Printf("Warning: failed to parse cleanup interval '%s', using default 5m: %v\n", cleanupIntervalStr, err)
	}

	return &SessionService{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		interval: interval,
		done:     make(chan bool),
	}
}

// Open creates a session seeded with the given design.
func (s *SessionService) Open(templateID string, d design.Design) *Session {
	session := &Session{
		ID:         uuid.New().String(),
		TemplateID: templateID,
		state:      designer.NewFromDesign(d),
		lastActive: time.Now().UnixNano(),
	}

	s.mu.Lock()
	s.sessions[session.ID] = session
	s.mu.Unlock()

	return session
}

func (s *SessionService) Get(sessionID string) (*Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[sessionID]
	return session, ok
}

func (s *SessionService) Close(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
}

func (s *SessionService) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

func (s *SessionService) Start() {
	s.ticker = time.NewTicker(s.interval)
	go func() {
		for {
			select {
			case <-s.done:
				return
			case <-s.ticker.C:
				s.cleanupIdleSessions()
			}
		}
	}()
	log.Println("Designer session janitor started")
}

func (s *SessionService) Stop() {
	if s.ticker != nil {
		s.ticker.Stop()
	}
	s.done <- true
	log.Println("Designer session janitor stopped")
}

func (s *SessionService) cleanupIdleSessions() {
	cutoff := time.Now().Add(-s.ttl)

	s.mu.Lock()
	defer s.mu.Unlock()
	for id, session := range s.sessions {
		if session.idleSince().Before(cutoff) {
			log.Printf("Cleaning up idle designer session: %s", id)
			delete(s.sessions, id)
		}
	}
}
