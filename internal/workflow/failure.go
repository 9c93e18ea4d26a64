package workflow

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"chanreg/internal/failures"
	"chanreg/internal/logging"
)

func (r *Runner) handleStageFailure(logger *slog.Logger, stage string, stageErr error) {
	if errors.Is(stageErr, context.Canceled) || errors.Is(stageErr, context.DeadlineExceeded) {
		logger.Warn("stage interrupted; no outputs written", logging.Error(stageErr))
		return
	}
	logging.ErrorWithContext(logger, "stage failed", "stage_failure",
		logging.String("error_message", classifyFailure(stage, stageErr)),
		logging.String(logging.FieldErrorHint, failures.Hint(stageErr)),
		logging.Int("exit_code", failures.ExitCode(stageErr)),
		logging.Error(stageErr),
	)
}

func classifyFailure(stage string, err error) string {
	var schemaErr *failures.SchemaError
	switch {
	case errors.As(err, &schemaErr):
		return fmt.Sprintf("%s aborted: %s", stage, schemaErr.Error())
	case errors.Is(err, failures.ErrMissingFile):
		return fmt.Sprintf("%s aborted: required input missing", stage)
	default:
		return fmt.Sprintf("%s failed", stage)
	}
}
