package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	log "github.com/sirupsen/logrus"

	"mlfq"
)

func main() {
	var (
		configPath = flag.String("config", "", "YAML config file (defaults are used when empty)")
		seed       = flag.Int64("seed", 0, "random seed (0 means seeded from the current time)")
		algorithm  = flag.String("algorithm", mlfq.AlgorithmMLFQ, fmt.Sprintf("scheduling algorithm %v", mlfq.AlgorithmNames()))
		pace       = flag.Duration("pace", 0, "pause after every scheduling turn, e.g. 1s")
		traceFile  = flag.String("trace", "", "write OpenTelemetry spans to this file")
		logLevel   = flag.String("log-level", "info", "log level: trace, debug, info, warn, error")
		showTable  = flag.Bool("table", false, "print the process table after every turn")
	)
	flag.Parse()

	if err := mlfq.SetLogLevel(*logLevel); err != nil {
		log.WithError(err).Fatal("[main] bad log level")
	}

	ctx := context.Background()
	if *traceFile != "" {
		shutdown, err := mlfq.InitTracing("mlfqsim", *traceFile)
		if err != nil {
			log.WithError(err).Fatal("[main] init tracing")
		}
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.WithError(err).Warn("[main] shutdown tracing")
			}
		}()
	}

	options := []mlfq.Option{mlfq.WithAlgorithm(*algorithm)}
	if *configPath != "" {
		cfg, err := mlfq.LoadConfig(*configPath)
		if err != nil {
			log.WithError(err).Fatal("[main] load config")
		}
		options = append(options, mlfq.WithConfig(cfg))
	}
	if *seed != 0 {
		options = append(options, mlfq.WithSeed(*seed))
	}

	var sim *mlfq.Simulation
	options = append(options, mlfq.WithObserver(func(turn mlfq.Turn) {
		fmt.Println(turn)
		if *showTable {
			mlfq.WriteTable(os.Stdout, sim.Table.Snapshot())
		}
		if *pace > 0 {
			time.Sleep(*pace)
		}
	}))

	sim, err := mlfq.NewSimulation(options...)
	if err != nil {
		log.WithError(err).Fatal("[main] new simulation")
	}

	fmt.Printf("run %s  ceiling %d ticks  quantum %d ticks\n", sim.ID, sim.Clock.Ceiling, sim.Clock.Quantum)
	mlfq.WriteTable(os.Stdout, sim.Table.Snapshot())

	report := sim.Run(ctx)

	mlfq.WriteTable(os.Stdout, sim.Table.Snapshot())
	report.Write(os.Stdout)
}
