package mlfq

import (
	"context"

	"github.com/google/uuid"
	"github.com/markphelps/optional"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

// Simulation 把一次模拟需要的东西装在一起：
// 时钟、进程表、IO 管理器和带着调度器的 OS，它们共用一个随机来源。
type Simulation struct {
	ID    string
	Clock *Clock
	Table *Table
	IO    *IOManager
	OS    *OS

	config    *Config
	seed      optional.Int64
	rand      Random
	algorithm string
	scheduler Scheduler
	observer  Observer
}

// NewSimulation 新建一次模拟。算法名不认识的时候返回 ErrUnknownAlgorithm。
func NewSimulation(options ...Option) (*Simulation, error) {
	s := &Simulation{
		ID:        uuid.New().String(),
		algorithm: AlgorithmMLFQ,
	}
	for _, opt := range options {
		opt(s)
	}
	if s.config == nil {
		s.config = DefaultConfig()
	}
	if err := s.config.Validate(); err != nil {
		return nil, err
	}

	if s.rand == nil {
		seed := s.seed.OrElse(timeSeed())
		log.WithFields(log.Fields{"run": s.ID, "seed": seed}).Info("[Sim] random seed")
		s.rand = NewRandom(seed)
	}

	s.Clock = NewClock(s.rand, s.config.Clock)

	if s.Table == nil {
		s.Table = Populate(s.rand, s.config.Population, s.Clock.Tick)
	}

	s.IO = NewIOManager(s.rand)
	s.IO.Attempts = s.config.Scheduler.UnblockAttempts
	s.IO.Chance = s.config.Scheduler.UnblockChance

	if s.scheduler == nil {
		scheduler, err := NewScheduler(s.algorithm, s.rand, s.config.Scheduler)
		if err != nil {
			return nil, err
		}
		s.scheduler = scheduler
	}
	if f, ok := s.scheduler.(*FeedbackQueue); ok && s.observer != nil {
		f.Observer = s.observer
	}
	s.OS = NewOS(s.scheduler)

	return s, nil
}

// Run 启动 OS 一直跑到时钟没有预算，返回最后的报告
func (s *Simulation) Run(ctx context.Context) Report {
	ctx, span := startSpan(ctx, "simulation.run",
		attribute.String("run", s.ID),
		attribute.Int("processes", s.Table.Len()),
	)
	defer span.End()

	log.WithFields(log.Fields{
		"run":       s.ID,
		"processes": s.Table.Len(),
		"clock":     s.Clock,
	}).Info("[Sim] start")

	s.OS.Boot(ctx, s.Clock, s.Table, s.IO)

	report := Summarize(s.Table.Snapshot(), s.Clock)
	log.WithFields(log.Fields{
		"run":        s.ID,
		"successful": len(report.Successful),
		"dead":       len(report.Dead),
		"never_ran":  len(report.NeverRan),
		"truncated":  len(report.Truncated),
	}).Info("[Sim] done")
	return report
}
