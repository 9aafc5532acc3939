package mlfq

import (
	"fmt"

	log "github.com/sirupsen/logrus"
)

// Populate 随机生成初始进程表。
// 进程号从 1 开始；状态按 BlockedChance 决定是 BLOCKED 还是 READY；
// 其他属性都在 cfg 给的范围里均匀分布。tick 是创建时刻。
func Populate(r Random, cfg PopulationConfig, tick int) *Table {
	n := between(r, cfg.MinProcs, cfg.MaxProcs)
	t := NewTable()

	for id := 1; id <= n; id++ {
		work := between(r, cfg.MinWork, cfg.MaxWork)

		status := StatusReady
		if chance(r, cfg.BlockedChance) {
			status = StatusBlocked
		}

		precedence := between(r, cfg.MinPriority, cfg.MaxPriority)
		tickets := between(r, cfg.MinTickets, cfg.MaxTickets)
		owner := fmt.Sprintf("user%d", between(r, 1, cfg.Owners))

		t.Add(NewProcess(id, work, status, precedence, tickets, owner, tick))
	}

	log.WithField("processes", n).Info("[Sim] initial processes created")
	return t
}
