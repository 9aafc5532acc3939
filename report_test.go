package mlfq

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func reportProcs() []Process {
	done := ready(1, 4, 5)
	done.Dispatches, done.CPUTime = 2, 4
	done.Terminate()

	dead := NewProcess(2, 6, StatusBlocked, 5, 1, "user1", 0)
	dead.Dispatches, dead.CPUTime = 1, 2
	dead.Kill()

	idle := NewProcess(3, 5, StatusBlocked, 2, 1, "user2", 0)

	truncated := ready(4, 8, 3)
	truncated.Dispatches, truncated.CPUTime, truncated.Remaining = 1, 4, 4

	starved := NewProcess(5, 3, StatusBlocked, 1, 1, "user3", 0)
	starved.Kill()

	return []Process{done, dead, idle, truncated, starved}
}

func TestSummarize(t *testing.T) {
	r := Summarize(reportProcs(), &Clock{Tick: 30, Ceiling: 30, ContextSwitches: 4})

	assert.Equal(t, []int{1}, r.Successful)
	assert.Equal(t, []int{2, 5}, r.Dead)
	assert.Equal(t, []int{3}, r.NeverRan)
	assert.Equal(t, []int{4}, r.Truncated)
	assert.Equal(t, 4, r.ContextSwitches)
	assert.Equal(t, 30, r.Tick)

	assert.InDelta(t, 2.0, r.MeanCPUTime, 1e-9)
	// (1 + 1/3 + 0 + 1/2 + 0) / 5
	assert.InDelta(t, (1.0+1.0/3+0.5)/5, r.MeanCompletion, 1e-9)
}

func TestSummarizeEmpty(t *testing.T) {
	r := Summarize(nil, &Clock{Ceiling: 20})
	assert.Empty(t, r.Successful)
	assert.Equal(t, 0.0, r.MeanCPUTime)
	assert.Equal(t, 0.0, r.MeanCompletion)
}

func TestReportWrite(t *testing.T) {
	var buf bytes.Buffer
	Summarize(reportProcs(), &Clock{Tick: 30, Ceiling: 30, ContextSwitches: 4}).Write(&buf)

	out := buf.String()
	assert.Contains(t, out, "[P1]")
	assert.Contains(t, out, "[P2, P5]")
	assert.Contains(t, out, "30/30")

	buf.Reset()
	Summarize(nil, &Clock{Ceiling: 20}).Write(&buf)
	assert.Contains(t, buf.String(), "[none]")
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	WriteTable(&buf, reportProcs())

	out := buf.String()
	assert.Contains(t, out, "TERMINATED")
	assert.Contains(t, out, "DEAD")
	assert.Contains(t, out, "user3")
}

func TestPids(t *testing.T) {
	assert.Equal(t, "[none]", pids(nil))
	assert.Equal(t, "[P1, P4, P5]", pids([]int{1, 4, 5}))
}
