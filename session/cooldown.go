package session

import (
	"strings"
	"sync"
	"time"
)

// CooldownManager enforces the OTP resend window. Each send arms a
// single-shot timer that clears its own entry; nothing polls.
type CooldownManager struct {
	mu      sync.Mutex
	entries map[string]*cooldownEntry
}

type cooldownEntry struct {
	until time.Time
	timer *time.Timer
}

// Cooldowns is the process-wide manager, keyed by "<sid>:<channel>".
var Cooldowns = NewCooldownManager()

func NewCooldownManager() *CooldownManager {
	return &CooldownManager{entries: make(map[string]*cooldownEntry)}
}

func cooldownKey(sid, channel string) string {
	return sid + ":" + channel
}

// Start arms the resend window for a sid/channel pair.
func (m *CooldownManager) Start(sid, channel string, d time.Duration) {
	key := cooldownKey(sid, channel)

	m.mu.Lock()
	defer m.mu.Unlock()

	if e, ok := m.entries[key]; ok {
		e.timer.Stop()
	}
	m.entries[key] = &cooldownEntry{
		until: time.Now().Add(d),
		timer: time.AfterFunc(d, func() { m.clear(key) }),
	}
}

// Remaining returns how long the sid/channel pair must wait before resend.
// Zero means sending is allowed.
func (m *CooldownManager) Remaining(sid, channel string) time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.entries[cooldownKey(sid, channel)]
	if !ok {
		return 0
	}
	left := time.Until(e.until)
	if left < 0 {
		return 0
	}
	return left
}

// CancelAll stops every pending timer for the sid. Called on logout so
// session teardown never leaks timers.
func (m *CooldownManager) CancelAll(sid string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	prefix := sid + ":"
	for key, e := range m.entries {
		if strings.HasPrefix(key, prefix) {
			e.timer.Stop()
			delete(m.entries, key)
		}
	}
}

func (m *CooldownManager) clear(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, key)
}
