package middleware_test

import (
	"testing"
	"time"

	"equiedge/internal/middleware"

	"github.com/stretchr/testify/assert"
)

func TestLimiter_CapsPerKey(t *testing.T) {
	l := middleware.NewLimiter(3, time.Minute)
	for i := 0; i < 3; i++ {
		assert.True(t, l.Allow("10.0.0.1"))
	}
	assert.False(t, l.Allow("10.0.0.1"))
	assert.True(t, l.Allow("10.0.0.2"), "keys are limited independently")
}

func TestLimiter_WindowResets(t *testing.T) {
	l := middleware.NewLimiter(1, 20*time.Millisecond)
	assert.True(t, l.Allow("k"))
	assert.False(t, l.Allow("k"))
	time.Sleep(25 * time.Millisecond)
	assert.True(t, l.Allow("k"))
}
