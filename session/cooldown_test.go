package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCooldownBlocksUntilWindowPasses(t *testing.T) {
	m := NewCooldownManager()

	assert.Zero(t, m.Remaining("sid1", ChannelPhone), "fresh pair has no cooldown")

	m.Start("sid1", ChannelPhone, 50*time.Millisecond)
	assert.Greater(t, m.Remaining("sid1", ChannelPhone), time.Duration(0))

	// Channels are independent.
	assert.Zero(t, m.Remaining("sid1", ChannelAadhaar))
	// Sessions are independent.
	assert.Zero(t, m.Remaining("sid2", ChannelPhone))

	time.Sleep(80 * time.Millisecond)
	assert.Zero(t, m.Remaining("sid1", ChannelPhone), "window passed")
}

func TestCooldownRestartRearms(t *testing.T) {
	m := NewCooldownManager()

	m.Start("sid1", ChannelPhone, 30*time.Millisecond)
	time.Sleep(10 * time.Millisecond)
	m.Start("sid1", ChannelPhone, 60*time.Millisecond)

	time.Sleep(40 * time.Millisecond)
	assert.Greater(t, m.Remaining("sid1", ChannelPhone), time.Duration(0), "second send rearmed the window")
}

func TestCancelAllStopsTimersForSession(t *testing.T) {
	m := NewCooldownManager()

	m.Start("sid1", ChannelPhone, time.Minute)
	m.Start("sid1", ChannelAadhaar, time.Minute)
	m.Start("sid2", ChannelPhone, time.Minute)

	m.CancelAll("sid1")

	assert.Zero(t, m.Remaining("sid1", ChannelPhone))
	assert.Zero(t, m.Remaining("sid1", ChannelAadhaar))
	assert.Greater(t, m.Remaining("sid2", ChannelPhone), time.Duration(0), "other sessions unaffected")
}
