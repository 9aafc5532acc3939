package mlfq

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTryUnblockIgnoresNonBlocked(t *testing.T) {
	r := fixed(always)
	io := NewIOManager(r)

	for _, status := range []Status{StatusReady, StatusRunning, StatusDone, StatusDead} {
		p := ready(1, 4, 5)
		p.Status = status
		assert.False(t, io.TryUnblock(&p))
		assert.Equal(t, status, p.Status)
	}
	assert.Equal(t, 0, r.draws)
}

func TestTryUnblockSucceedsEarly(t *testing.T) {
	r := fixed(never, never, 0.1)
	io := NewIOManager(r)
	p := NewProcess(1, 4, StatusBlocked, 5, 1, "user1", 0)

	assert.True(t, io.TryUnblock(&p))
	assert.Equal(t, StatusReady, p.Status)
	assert.Equal(t, 4, p.Remaining)
	// 第二次就成功了，不会再试第三次
	assert.Equal(t, 2, r.draws)
}

func TestTryUnblockStarvation(t *testing.T) {
	r := fixed(never)
	io := NewIOManager(r)
	p := NewProcess(1, 7, StatusBlocked, 5, 1, "user1", 0)

	assert.False(t, io.TryUnblock(&p))
	assert.Equal(t, StatusDead, p.Status)
	assert.Equal(t, 0, p.Remaining)
	assert.Equal(t, 3, r.draws)

	// 死了就不会再试
	assert.False(t, io.TryUnblock(&p))
	assert.Equal(t, 3, r.draws)
}

func TestTryUnblockAttemptsConfigurable(t *testing.T) {
	r := fixed(never)
	io := NewIOManager(r)
	io.Attempts = 5
	p := NewProcess(1, 7, StatusBlocked, 5, 1, "user1", 0)

	assert.False(t, io.TryUnblock(&p))
	assert.Equal(t, 5, r.draws)
}
