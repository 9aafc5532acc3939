package mlfq

import (
	"context"
	"errors"
	"fmt"
	"sort"

	log "github.com/sirupsen/logrus"
)

var (
	// ErrNoScheduler 没有设置调度器就 Boot
	ErrNoScheduler = errors.New("no scheduler assigned")
	// ErrUnknownAlgorithm 不认识 (或者还没实现) 的调度算法
	ErrUnknownAlgorithm = errors.New("unknown scheduling algorithm")
)

// OS 是模拟的「操作系统」，这里只负责选一个调度器然后把控制权交给它。
type OS struct {
	Scheduler Scheduler
}

// NewOS 构建一个「操作系统」，调度器要自己设置
func NewOS(s Scheduler) *OS {
	return &OS{Scheduler: s}
}

// Boot 启动操作系统，即启动调度器。
// 调度器退出标志着操作系统的退出，也就是关机。
// 没有设置调度器是配置错误，直接 panic(ErrNoScheduler)。
func (os *OS) Boot(ctx context.Context, clock *Clock, table *Table, io Unblocker) {
	field := "[OS] "

	if os.Scheduler == nil {
		log.WithError(ErrNoScheduler).Error(field, "cannot boot")
		panic(ErrNoScheduler)
	}

	log.WithField("scheduler", fmt.Sprintf("%T", os.Scheduler)).Info(field, "OS Boot: start scheduler")

	os.Scheduler.Schedule(ctx, clock, table, io)

	log.WithField("clock", clock).Info(field, "No time left. Shutdown OS.")
}

// AlgorithmMLFQ 多级反馈队列
const AlgorithmMLFQ = "mlfq"

// Algorithms 调度算法名到构造函数的映射。
// 轮转、SJF、彩票之类的还没有实现。
var Algorithms = map[string]func(r Random, cfg SchedulerConfig) Scheduler{
	AlgorithmMLFQ: func(r Random, cfg SchedulerConfig) Scheduler {
		f := NewFeedbackQueue(r)
		f.IOChance = cfg.IOChance
		return f
	},
}

// NewScheduler 按名字构造调度器
func NewScheduler(name string, r Random, cfg SchedulerConfig) (Scheduler, error) {
	newFn, ok := Algorithms[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %v)", ErrUnknownAlgorithm, name, AlgorithmNames())
	}
	return newFn(r, cfg), nil
}

// AlgorithmNames 已经实现的算法名，排好序
func AlgorithmNames() []string {
	names := make([]string, 0, len(Algorithms))
	for name := range Algorithms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
