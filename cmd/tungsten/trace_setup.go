package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"tungsten/internal/trace"
)

// traceConfigFromFlags reads the persistent --trace* flags.
func traceConfigFromFlags(flags *pflag.FlagSet) (trace.Config, error) {
	var (
		cfg             trace.Config
		level, mode     string
		errLevel, errMd error
		err             error
	)
	if cfg.OutputPath, err = flags.GetString("trace"); err != nil {
		return cfg, err
	}
	if level, err = flags.GetString("trace-level"); err != nil {
		return cfg, err
	}
	if mode, err = flags.GetString("trace-mode"); err != nil {
		return cfg, err
	}
	if cfg.RingSize, err = flags.GetInt("trace-ring-size"); err != nil {
		return cfg, err
	}
	if cfg.Heartbeat, err = flags.GetDuration("trace-heartbeat"); err != nil {
		return cfg, err
	}

	cfg.Level, errLevel = trace.ParseLevel(level)
	cfg.Mode, errMd = trace.ParseMode(mode)
	if err := errors.Join(errLevel, errMd); err != nil {
		return cfg, err
	}
	// --trace без уровня включает фазы
	if cfg.Level == trace.LevelOff && cfg.OutputPath != "" {
		cfg.Level = trace.LevelPhase
	}
	return cfg, nil
}

// traceSession owns the tracer installed for one command run.
type traceSession struct {
	tracer    trace.Tracer
	heartbeat *trace.Heartbeat
	errOut    io.Writer
}

func (s *traceSession) close() {
	if s.heartbeat != nil {
		s.heartbeat.Stop()
	}
	var errs []error
	if ring, ok := s.tracer.(*trace.RingTracer); ok {
		errs = append(errs, ring.Dump(s.errOut, trace.FormatText))
	}
	errs = append(errs, s.tracer.Flush(), s.tracer.Close())
	if err := errors.Join(errs...); err != nil {
		fmt.Fprintf(s.errOut, "trace: %v\n", err)
	}
}

// setupTracing installs a tracer into the command context and returns the
// function that shuts it down.
func setupTracing(cmd *cobra.Command) (func(), error) {
	cfg, err := traceConfigFromFlags(cmd.Root().PersistentFlags())
	if err != nil {
		return nil, fmt.Errorf("invalid trace flags: %w", err)
	}
	if cfg.Level == trace.LevelOff {
		cmd.SetContext(trace.WithTracer(cmd.Context(), trace.Nop))
		return func() {}, nil
	}

	tracer, err := trace.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create tracer: %w", err)
	}
	cmd.SetContext(trace.WithTracer(cmd.Context(), tracer))

	s := &traceSession{tracer: tracer, errOut: cmd.ErrOrStderr()}
	if cfg.Heartbeat > 0 {
		s.heartbeat = trace.StartHeartbeat(tracer, cfg.Heartbeat)
	}
	return s.close, nil
}
