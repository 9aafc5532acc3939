package mlfq

import log "github.com/sirupsen/logrus"

// 默认的 IO 解除阻塞参数
const (
	DefaultUnblockAttempts = 3
	DefaultUnblockChance   = 0.5
)

// Unblocker 负责把阻塞的进程弄回就绪。
// 调度器扫描队列遇到 BLOCKED 进程的时候会先调用它。
type Unblocker interface {
	// TryUnblock 尝试解除 p 的阻塞，成功返回 true。
	// p 不是 BLOCKED 的时候什么都不做，返回 false。
	TryUnblock(p *Process) bool
}

// IOManager 模拟 IO 完成「中断」。
// 每次调用最多试 Attempts 次，每次以 Chance 的概率成功，成功就回到 READY；
// 全部失败的话进程饿死 (DEAD)。
type IOManager struct {
	rand     Random
	Attempts int
	Chance   float64
}

// NewIOManager 用 r 作为随机来源，参数取默认值
func NewIOManager(r Random) *IOManager {
	return &IOManager{
		rand:     r,
		Attempts: DefaultUnblockAttempts,
		Chance:   DefaultUnblockChance,
	}
}

// TryUnblock 见 Unblocker
func (m *IOManager) TryUnblock(p *Process) bool {
	if p.Status != StatusBlocked {
		return false
	}

	for attempt := 1; attempt <= m.Attempts; attempt++ {
		logger := log.WithFields(log.Fields{
			"pid":     p.Id,
			"attempt": attempt,
		})
		if chance(m.rand, m.Chance) {
			p.BlockedToReady()
			logger.Info("[IO] unblocked, back to ready queue")
			return true
		}
		logger.Debug("[IO] still blocked")
	}

	// 全部失败: 饿死
	p.Kill()
	log.WithFields(log.Fields{
		"pid":      p.Id,
		"attempts": m.Attempts,
	}).Warn("[IO] starvation: process could not be unblocked, it dies")
	return false
}
