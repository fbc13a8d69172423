package accessibility

import (
	"context"
	"os"
	"strings"
	"sync"
)

// Service is the platform accessibility surface the screen depends on: a
// one-shot query for the current screen reader state and a subscription to
// change notifications. Subscriptions must be released by the caller when
// the consuming component deactivates.
type Service interface {
	Enabled(ctx context.Context) (bool, error)
	Subscribe() (<-chan bool, func())
}

// Toggler is implemented by services that can flip the screen reader state
// at runtime. The demo uses it to drive the enabled/disabled transition
// without a real assistive service attached.
type Toggler interface {
	Toggle() bool
}

// Override forces the detected state regardless of environment probes.
type Override int

const (
	OverrideAuto Override = iota
	OverrideOn
	OverrideOff
)

// screenReaderEnvVars are the probes checked for an active screen reader.
// NVDA, JAWS and VOICEOVER are set by their respective bridges; the generic
// variables cover terminal screen readers and test harnesses.
var screenReaderEnvVars = []string{
	"SCREEN_READER",
	"ACCESSIBILITY_SCREEN_READER",
	"NVDA",
	"JAWS",
	"VOICEOVER",
}

// EnvService detects screen reader presence from the process environment
// and broadcasts state changes to subscribers.
type EnvService struct {
	mu       sync.Mutex
	enabled  bool
	resolved bool
	override Override
	subs     map[int]chan bool
	nextID   int
}

// NewEnvService creates a service with the given override mode.
func NewEnvService(override Override) *EnvService {
	return &EnvService{
		override: override,
		subs:     make(map[int]chan bool),
	}
}

// Enabled reports whether a screen reader is currently active. The first
// call probes the environment; later calls return the tracked state so that
// runtime toggles are reflected.
func (s *EnvService) Enabled(ctx context.Context) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.resolved {
		s.enabled = s.detect()
		s.resolved = true
	}
	return s.enabled, nil
}

func (s *EnvService) detect() bool {
	switch s.override {
	case OverrideOn:
		return true
	case OverrideOff:
		return false
	}
	for _, name := range screenReaderEnvVars {
		if envTrue(name) {
			return true
		}
	}
	return false
}

// Subscribe registers a change listener. The returned release func must be
// called when the listener goes away; the channel is closed on release.
func (s *EnvService) Subscribe() (<-chan bool, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++

	ch := make(chan bool, 16)
	s.subs[id] = ch

	release := func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if sub, ok := s.subs[id]; ok {
			delete(s.subs, id)
			close(sub)
		}
	}
	return ch, release
}

// Set overwrites the tracked state and notifies subscribers. Every call
// broadcasts, including calls that repeat the current value: coalescing is
// the listener's business, not the service's.
func (s *EnvService) Set(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.enabled = enabled
	s.resolved = true
	for _, ch := range s.subs {
		select {
		case ch <- enabled:
		default:
			// Subscriber stalled; dropping beats blocking the broadcaster.
		}
	}
}

// Toggle flips the tracked state and returns the new value.
func (s *EnvService) Toggle() bool {
	s.mu.Lock()
	next := !s.enabled
	s.mu.Unlock()

	s.Set(next)
	return next
}

func envTrue(name string) bool {
	value := strings.ToLower(os.Getenv(name))
	switch value {
	case "true", "1", "yes", "on":
		return true
	}
	// NVDA/JAWS/VOICEOVER bridges export non-boolean markers.
	switch name {
	case "NVDA", "JAWS", "VOICEOVER":
		return value != ""
	}
	return false
}
