package mlfq

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config 是整个模拟的配置，可以从 YAML 读。
// 零值没有意义，从 DefaultConfig 开始改。
type Config struct {
	Clock      ClockConfig      `yaml:"clock"`
	Population PopulationConfig `yaml:"population"`
	Scheduler  SchedulerConfig  `yaml:"scheduler"`
}

// ClockConfig 时钟上限和时间片的随机范围 (闭区间)
type ClockConfig struct {
	MinCeiling int `yaml:"minCeiling"`
	MaxCeiling int `yaml:"maxCeiling"`
	MinQuantum int `yaml:"minQuantum"`
	MaxQuantum int `yaml:"maxQuantum"`
}

// PopulationConfig 初始进程的随机范围
type PopulationConfig struct {
	MinProcs      int     `yaml:"minProcs"`
	MaxProcs      int     `yaml:"maxProcs"`
	MinWork       int     `yaml:"minWork"`
	MaxWork       int     `yaml:"maxWork"`
	BlockedChance float64 `yaml:"blockedChance"`
	MinPriority   int     `yaml:"minPriority"`
	MaxPriority   int     `yaml:"maxPriority"`
	MinTickets    int     `yaml:"minTickets"`
	MaxTickets    int     `yaml:"maxTickets"`
	Owners        int     `yaml:"owners"`
}

// SchedulerConfig 调度过程中的随机事件
type SchedulerConfig struct {
	IOChance        float64 `yaml:"ioChance"`
	UnblockAttempts int     `yaml:"unblockAttempts"`
	UnblockChance   float64 `yaml:"unblockChance"`
}

// DefaultConfig 默认配置
func DefaultConfig() *Config {
	return &Config{
		Clock: ClockConfig{
			MinCeiling: 20,
			MaxCeiling: 35,
			MinQuantum: 2,
			MaxQuantum: 5,
		},
		Population: PopulationConfig{
			MinProcs:      5,
			MaxProcs:      10,
			MinWork:       3,
			MaxWork:       10,
			BlockedChance: 0.3,
			MinPriority:   1,
			MaxPriority:   10,
			MinTickets:    1,
			MaxTickets:    5,
			Owners:        3,
		},
		Scheduler: SchedulerConfig{
			IOChance:        DefaultIOChance,
			UnblockAttempts: DefaultUnblockAttempts,
			UnblockChance:   DefaultUnblockChance,
		},
	}
}

// LoadConfig 读 YAML 文件，没写的字段保持默认值
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate 检查配置，把所有问题合在一起返回
func (c *Config) Validate() error {
	if c == nil {
		return nil
	}
	var errs []error
	rng := func(name string, lo, hi, floor int) {
		if lo < floor {
			errs = append(errs, fmt.Errorf("%s: min must be >= %d, got %d", name, floor, lo))
		}
		if hi < lo {
			errs = append(errs, fmt.Errorf("%s: max %d < min %d", name, hi, lo))
		}
	}
	prob := func(name string, p float64) {
		if p < 0 || p > 1 {
			errs = append(errs, fmt.Errorf("%s must be in [0,1], got %v", name, p))
		}
	}

	rng("clock.ceiling", c.Clock.MinCeiling, c.Clock.MaxCeiling, 1)
	rng("clock.quantum", c.Clock.MinQuantum, c.Clock.MaxQuantum, 1)
	rng("population.procs", c.Population.MinProcs, c.Population.MaxProcs, 0)
	rng("population.work", c.Population.MinWork, c.Population.MaxWork, 1)
	rng("population.priority", c.Population.MinPriority, c.Population.MaxPriority, 1)
	if c.Population.MaxPriority > 10 {
		errs = append(errs, fmt.Errorf("population.priority: max must be <= 10, got %d", c.Population.MaxPriority))
	}
	rng("population.tickets", c.Population.MinTickets, c.Population.MaxTickets, 0)
	if c.Population.Owners < 1 {
		errs = append(errs, fmt.Errorf("population.owners must be > 0"))
	}
	prob("population.blockedChance", c.Population.BlockedChance)
	prob("scheduler.ioChance", c.Scheduler.IOChance)
	prob("scheduler.unblockChance", c.Scheduler.UnblockChance)
	if c.Scheduler.UnblockAttempts < 1 {
		errs = append(errs, fmt.Errorf("scheduler.unblockAttempts must be > 0"))
	}
	return errors.Join(errs...)
}
