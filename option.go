package mlfq

import "github.com/markphelps/optional"

// Option 配置 Simulation
type Option func(s *Simulation)

// WithConfig 使用 cfg 代替 DefaultConfig
func WithConfig(cfg *Config) Option {
	return func(s *Simulation) {
		s.config = cfg
	}
}

// WithSeed 固定随机种子。不设置的话按当前时间取种子。
func WithSeed(seed int64) Option {
	return func(s *Simulation) {
		s.seed = optional.NewInt64(seed)
	}
}

// WithRandom 直接指定随机来源，优先于 WithSeed
func WithRandom(r Random) Option {
	return func(s *Simulation) {
		s.rand = r
	}
}

// WithAlgorithm 按名字选调度算法，默认 AlgorithmMLFQ
func WithAlgorithm(name string) Option {
	return func(s *Simulation) {
		s.algorithm = name
	}
}

// WithScheduler 直接指定调度器，优先于 WithAlgorithm
func WithScheduler(scheduler Scheduler) Option {
	return func(s *Simulation) {
		s.scheduler = scheduler
	}
}

// WithObserver 每一轮调度之后回调 observer (只对 FeedbackQueue 有效)
func WithObserver(observer Observer) Option {
	return func(s *Simulation) {
		s.observer = observer
	}
}

// WithTable 用现成的进程表，不再随机生成
func WithTable(table *Table) Option {
	return func(s *Simulation) {
		s.Table = table
	}
}
