package mlfq

import log "github.com/sirupsen/logrus"

// DefaultIOChance 每个 tick 请求 IO 的概率
const DefaultIOChance = 0.3

// CPU 处理器：是一个模拟的「CPU」。
// 单核，某一时刻只跑一个进程；每跑一个 tick 时钟就走一格。
type CPU struct {
	Clock *Clock

	rand Random
	// IOChance 进程在一个 tick 里请求 IO 的概率
	IOChance float64
}

// NewCPU 新建挂在 clock 上的 CPU
func NewCPU(clock *Clock, r Random, ioChance float64) *CPU {
	return &CPU{
		Clock:    clock,
		rand:     r,
		IOChance: ioChance,
	}
}

// Run 让 p 在 CPU 上最多跑 length 个 tick，时钟没有预算了也会停。
// 每个 tick 开始之前，如果 p 剩下的活多于 1，就有 IOChance 的概率请求 IO 阻塞，
// 这个 tick 不算跑过。
// 返回实际跑了多少 tick，以及是不是因为 IO 被打断的。
func (c *CPU) Run(p *Process, length int) (ran int, blocked bool) {
	for ran < length && c.Clock.WithinBudget() {
		if p.Remaining > 1 && chance(c.rand, c.IOChance) {
			p.RunningToBlocked()
			log.WithFields(log.Fields{
				"pid":  p.Id,
				"tick": ran + 1,
			}).Info("[CPU] process requested I/O and got blocked")
			return ran, true
		}

		p.Remaining -= 1
		p.CPUTime += 1
		c.Clock.Advance()
		ran += 1
	}
	return ran, false
}
