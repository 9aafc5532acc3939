package mlfq

import "context"

// 测试用的固定随机序列
const (
	never  = 0.99 // 不会触发 IO，也解除不了阻塞
	always = 0.0
)

// scripted 按顺序返回 floats，用完了一直返回 fallback。
// Intn 同理，用完了返回 0。
type scripted struct {
	floats   []float64
	ints     []int
	fallback float64
	draws    int
}

func (s *scripted) Float64() float64 {
	s.draws += 1
	if len(s.floats) > 0 {
		f := s.floats[0]
		s.floats = s.floats[1:]
		return f
	}
	return s.fallback
}

func (s *scripted) Intn(n int) int {
	if len(s.ints) > 0 {
		i := s.ints[0]
		s.ints = s.ints[1:]
		return i % n
	}
	return 0
}

func fixed(f float64, floats ...float64) *scripted {
	return &scripted{floats: floats, fallback: f}
}

// runMLFQ 用固定随机序列跑一次 FeedbackQueue，返回所有 turn
func runMLFQ(ceiling int, sched, io Random, procs ...Process) (*Table, *Clock, []Turn) {
	table := NewTable(procs...)
	clock := &Clock{Ceiling: ceiling}
	var turns []Turn
	f := NewFeedbackQueue(sched)
	f.Observer = func(turn Turn) { turns = append(turns, turn) }
	NewOS(f).Boot(context.Background(), clock, table, NewIOManager(io))
	return table, clock, turns
}

func ready(id, work, precedence int) Process {
	return NewProcess(id, work, StatusReady, precedence, 1, "user1", 0)
}

func dispatched(turns []Turn) []Turn {
	var ts []Turn
	for _, t := range turns {
		if t.Outcome != OutcomeIdle {
			ts = append(ts, t)
		}
	}
	return ts
}
