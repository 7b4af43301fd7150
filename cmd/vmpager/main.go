// Command vmpager replays a memory-reference trace against a
// simulated MMU and reports the resulting page/frame tables and cost
// accounting under one of six replacement policies.
package main

import (
	"log"
	"os"

	"github.com/relaypager/vmpager/internal/config"
	"github.com/relaypager/vmpager/internal/report"
	"github.com/relaypager/vmpager/internal/trace"
	"github.com/relaypager/vmpager/internal/vmm"
)

func main() {
	root := config.NewRootCommand(run)
	if err := root.Execute(); err != nil {
		log.Fatalf("vmpager: %v", err)
	}
}

func run(cfg *config.Config) error {
	input, err := trace.LoadInput(cfg.InputFile)
	if err != nil {
		log.Fatalf("vmpager: %v", err)
	}

	vals, err := trace.LoadRandomValues(cfg.RandomFile)
	if err != nil {
		log.Fatalf("vmpager: %v", err)
	}
	rng := vmm.NewRNG(vals)

	pager, err := vmm.NewPager(cfg.Algorithm, rng)
	if err != nil {
		log.Fatalf("vmpager: %v", err)
	}

	frames := vmm.NewFrameTable(cfg.NumFrames)

	sinks := []vmm.EventSink{report.NewTextReporter(os.Stdout, cfg.Opts.Verbose)}
	if cfg.Opts.DebugSQLiteLog {
		sqliteSink, err := report.NewSQLiteEventSink(cfg.InputFile + ".events.sqlite3")
		if err != nil {
			log.Fatalf("vmpager: %v", err)
		}
		defer sqliteSink.Close()
		sinks = append(sinks, sqliteSink)
	}

	sim := vmm.NewSimulation(frames, input.Processes, pager, report.NewMultiSink(sinks...))

	if cfg.Opts.DebugFaultTrace || cfg.Opts.DebugAgingInfo || cfg.Opts.DebugFreelist {
		sim.Debug = report.NewDebugReporter(os.Stdout,
			cfg.Opts.DebugFaultTrace, cfg.Opts.DebugAgingInfo, cfg.Opts.DebugFreelist)
	}

	if err := sim.Run(input.Instructions); err != nil {
		log.Fatalf("vmpager: %v", err)
	}

	report.WriteTables(os.Stdout, input.Processes, frames, sim,
		cfg.Opts.PageTables, cfg.Opts.FrameTable, cfg.Opts.Stats)

	return nil
}
