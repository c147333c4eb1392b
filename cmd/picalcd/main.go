// Command picalcd computes the decimal expansion of π to a requested
// number of digits using either the Chudnovsky series (the default, and
// the only algorithm this repository's core specifies) or a
// Gauss–Legendre fallback, optionally verifying the result against a
// reference file. It mirrors the teacher's cmd/server/main.go shape:
// parse configuration, install a signal handler, run, exit with a
// status reflecting the outcome.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"picalcd/internal/chudnovsky"
	"picalcd/internal/config"
	"picalcd/internal/gausslegendre"
	"picalcd/internal/health"
	"picalcd/internal/logging"
	"picalcd/internal/metrics"
	"picalcd/internal/output"
	"picalcd/internal/perr"
	"picalcd/internal/report"
	"picalcd/internal/util"
	"picalcd/internal/verify"
)

func main() {
	cfg := config.Default()
	var method string
	var mode string

	root := &cobra.Command{
		Use:   "picalcd",
		Short: "Compute the decimal expansion of pi using Chudnovsky or Gauss-Legendre",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.Method = config.Method(method)
			cfg.Mode = config.Mode(mode)
			return run(cfg)
		},
	}

	flags := root.Flags()
	flags.IntVarP(&cfg.Digits, "digits", "d", 0, "requested decimal places (required, > 0)")
	flags.IntVarP(&cfg.Threads, "threads", "t", cfg.Threads, "worker thread count (default: hardware_concurrency-1)")
	flags.StringVar(&mode, "mode", string(config.ModeStatic), "dispatcher partitioning mode: static|dynamic")
	flags.Uint64Var(&cfg.ChunkSize, "chunk-size", cfg.ChunkSize, "dynamic-mode chunk size (terms per claim)")
	flags.StringVar(&method, "method", string(config.MethodChudnovsky), "algorithm: chudnovsky|gauss-legendre")
	flags.UintVar(&cfg.PrecisionBuffer, "precision-buffer", cfg.PrecisionBuffer, "guard bits added on top of digits*log2(10)")
	flags.UintVar(&cfg.MaxPrecisionBits, "max-precision-bits", cfg.MaxPrecisionBits, "implementation ceiling on working precision")
	flags.IntVar(&cfg.DebugLevel, "debug", 0, "debug verbosity 0-4")
	flags.StringVar(&cfg.ReferencePath, "reference", "", "reference file to verify the result against")
	flags.StringVar(&cfg.OutputPath, "out", cfg.OutputPath, "output file path")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCodeFor(err))
	}
}

func run(cfg config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	log := logging.New(cfg.DebugLevel)
	runID := util.NewRunID()
	log.Debug().Str("run_id", runID).Msg("starting run")

	precisionBits, err := chudnovsky.PrecisionBitsChecked(cfg.Digits, cfg.PrecisionBuffer, cfg.MaxPrecisionBits)
	if err != nil {
		return err
	}

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	var cancelFlag atomic.Bool
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancelFlag.CompareAndSwap(false, true)
		stop()
	}()

	healthCtx, stopHealth := context.WithCancel(ctx)
	defer stopHealth()
	if cfg.DebugLevel >= 1 {
		go health.Monitor(healthCtx, time.Second, log)
	}

	start := time.Now()
	var piText string
	var termCount uint64

	switch cfg.Method {
	case config.MethodGaussLegendre:
		piText = gausslegendre.Compute(cfg.Digits)
	default:
		reg := metrics.New()
		reg.PrecisionBits.Set(float64(precisionBits))

		termCount = chudnovsky.EstimateRequiredTerms(cfg.Digits)
		partials, err := chudnovsky.Run(ctx, cfg, precisionBits, termCount, &cancelFlag, log, reg)
		if err != nil {
			return err
		}
		piText, err = chudnovsky.Finalize(partials, precisionBits, cfg.Digits)
		if err != nil {
			return err
		}

		if cfg.DebugLevel >= 2 {
			if dump, derr := reg.Dump(); derr == nil {
				log.Debug().Msg(dump)
			}
		}
	}
	elapsed := time.Since(start)

	if err := output.WritePi(cfg.OutputPath, piText); err != nil {
		return err
	}

	var verified *verify.Result
	if cfg.ReferencePath != "" {
		r, err := verify.File(cfg.OutputPath, cfg.ReferencePath)
		if err != nil {
			log.Warn().Err(err).Msg("verification failed to run")
		} else {
			verified = &r
		}
	}

	summary := report.Summary{
		RunID:     runID,
		Digits:    cfg.Digits,
		Threads:   cfg.Threads,
		Mode:      cfg.Mode,
		Method:    cfg.Method,
		Elapsed:   elapsed,
		TermCount: termCount,
		Verified:  verified,
	}
	summary.Log(log)
	fmt.Println(summary.Table())

	if verified != nil && !verified.Matched {
		return perr.New(perr.InternalArithmetic, "output does not match reference file")
	}
	return nil
}

func exitCodeFor(err error) int {
	if perr.Is(err, perr.Cancelled) {
		return 2
	}
	return 1
}
