package workflow

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"chanreg/internal/config"
	"chanreg/internal/failures"
	"chanreg/internal/fileutil"
	"chanreg/internal/logging"
	"chanreg/internal/report"
)

const (
	StageEnrich = "enrich"
	StageMerge  = "merge"
)

// Runner executes chanreg stages for one configuration.
type Runner struct {
	cfg    *config.Config
	logger *slog.Logger
	now    func() time.Time
	runID  string
	dryRun bool
}

// Option configures optional Runner behavior.
type Option func(*Runner)

// WithClock overrides the time source used for versioned file names.
func WithClock(now func() time.Time) Option {
	return func(r *Runner) {
		if now != nil {
			r.now = now
		}
	}
}

// WithRunID sets the identifier recorded in logs and summaries.
func WithRunID(id string) Option {
	return func(r *Runner) {
		if id != "" {
			r.runID = id
		}
	}
}

// WithDryRun computes every result without writing artifacts.
func WithDryRun(enabled bool) Option {
	return func(r *Runner) {
		r.dryRun = enabled
	}
}

// NewRunner constructs a runner. A nil logger discards output.
func NewRunner(cfg *config.Config, logger *slog.Logger, opts ...Option) *Runner {
	if logger == nil {
		logger = logging.NewNop()
	}
	r := &Runner{
		cfg:    cfg,
		logger: logging.NewComponentLogger(logger, "workflow"),
		now:    time.Now,
		runID:  uuid.NewString(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RunID returns the identifier of this run.
func (r *Runner) RunID() string {
	return r.runID
}

// Enrich runs the baseline enrichment stage.
func (r *Runner) Enrich(ctx context.Context) (report.Summary, error) {
	return r.execute(ctx, StageEnrich, StageEnrich)
}

// Merge runs the curated list merge stage.
func (r *Runner) Merge(ctx context.Context) (report.Summary, error) {
	return r.execute(ctx, StageMerge, StageMerge)
}

// Run executes enrich followed by merge under a single lock.
func (r *Runner) Run(ctx context.Context) (report.Summary, error) {
	return r.execute(ctx, "run", StageEnrich, StageMerge)
}

func (r *Runner) execute(ctx context.Context, command string, stages ...string) (report.Summary, error) {
	summary := report.Summary{
		RunID:     r.runID,
		Command:   command,
		DryRun:    r.dryRun,
		StartedAt: r.now(),
	}

	lock, err := r.acquireLock()
	if err != nil {
		return summary, err
	}
	defer func() {
		if err := lock.Release(); err != nil {
			r.logger.Warn("release run lock failed", logging.Error(err))
		}
	}()

	for _, stage := range stages {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		stageCtx := logging.WithStage(ctx, stage)
		if err := r.executeStage(stageCtx, stage, &summary); err != nil {
			return summary, err
		}
	}
	summary.FinishedAt = r.now()
	return summary, nil
}

func (r *Runner) acquireLock() (*fileutil.RunLock, error) {
	path := r.cfg.LockPath()
	lock, held, err := fileutil.AcquireRunLock(path)
	if err != nil {
		return nil, err
	}
	if !held {
		return nil, failures.Wrap(failures.ErrLocked, "", "acquire lock", path, nil)
	}
	return lock, nil
}

func (r *Runner) executeStage(ctx context.Context, stage string, summary *report.Summary) error {
	logger := logging.WithContext(ctx, r.logger)
	start := time.Now()
	logger.Info("stage started",
		logging.String(logging.FieldEventType, "stage_start"),
		logging.Bool("dry_run", r.dryRun),
	)

	var err error
	switch stage {
	case StageEnrich:
		summary.Enrich, err = r.enrich(ctx, logger)
	case StageMerge:
		summary.Merge, err = r.merge(ctx, logger)
	}
	if err != nil {
		r.handleStageFailure(logger, stage, err)
		return err
	}

	logger.Info("stage completed",
		logging.String(logging.FieldEventType, "stage_complete"),
		logging.Duration("stage_duration", time.Since(start)),
	)
	return nil
}

// inputFile describes an input artifact for the summary.
func inputFile(name, path string, rows int, missing bool) report.File {
	f := report.File{Name: name, Path: path, Rows: rows, Missing: missing}
	if info, err := os.Stat(path); err == nil {
		f.Bytes = info.Size()
	}
	return f
}
