package mlfq

import (
	"fmt"

	log "github.com/sirupsen/logrus"
)

// Clock 是模拟的「时钟」，同时也是整个模拟的时间预算。
// 这里是软的实现：每消耗一个单位的 CPU 时间就 Advance 一次。
// Tick < Ceiling 的时候调度才能继续。
type Clock struct {
	// Tick 当前时刻，从 0 开始
	Tick int
	// Ceiling 时间上限，构造时随机决定，之后不变
	Ceiling int
	// Quantum 时间片。多级反馈队列用不到，留给轮转、彩票之类的调度器
	Quantum int
	// ContextSwitches 上下文切换次数，只增不减
	ContextSwitches int
}

// NewClock 按 cfg 给的范围随机生成 Ceiling 和 Quantum (闭区间)。
func NewClock(r Random, cfg ClockConfig) *Clock {
	c := &Clock{
		Ceiling: between(r, cfg.MinCeiling, cfg.MaxCeiling),
		Quantum: between(r, cfg.MinQuantum, cfg.MaxQuantum),
	}
	log.WithFields(log.Fields{
		"ceiling": c.Ceiling,
		"quantum": c.Quantum,
	}).Info("[Clock] new clock")
	return c
}

// Advance 时钟增长一个 tick
func (c *Clock) Advance() {
	c.Tick += 1
}

// RecordContextSwitch 记一次上下文切换
func (c *Clock) RecordContextSwitch() {
	c.ContextSwitches += 1
}

// WithinBudget 还有没有时间可以用
func (c *Clock) WithinBudget() bool {
	return c.Tick < c.Ceiling
}

func (c *Clock) String() string {
	return fmt.Sprintf("t=%d/%d switches=%d", c.Tick, c.Ceiling, c.ContextSwitches)
}
