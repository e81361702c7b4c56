package jobs

import (
	"context"
	"errors"
	"log/slog"

	"grocery/internal/core/application/usecases/commands"
	"grocery/internal/core/application/usecases/queries"
	"grocery/internal/core/domain/services"
	"grocery/internal/pkg/errs"

	"github.com/robfig/cron/v3"
)

// AutoAssignmentJob periodically sweeps placed orders and tries to bind each
// one to an available partner in its zone.
type AutoAssignmentJob struct {
	pendingOrders queries.GetPendingOrderIDsQueryHandler
	assignHandler commands.AssignOrderCommandHandler
	schedule      string
	cron          *cron.Cron
	logger        *slog.Logger
}

// NewAutoAssignmentJob creates the assignment sweep job. schedule is a
// six-field cron expression, typically "*/5 * * * * *".
func NewAutoAssignmentJob(
	pendingOrders queries.GetPendingOrderIDsQueryHandler,
	assignHandler commands.AssignOrderCommandHandler,
	schedule string,
	logger *slog.Logger,
) *AutoAssignmentJob {
	return &AutoAssignmentJob{
		pendingOrders: pendingOrders,
		assignHandler: assignHandler,
		schedule:      schedule,
		cron:          cron.New(cron.WithSeconds()),
		logger:        logger.With("component", "auto_assignment_job"),
	}
}

// Start schedules the sweep.
func (j *AutoAssignmentJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, j.sweep)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Auto assignment job started", "schedule", j.schedule)
	return nil
}

// Stop stops the sweep.
func (j *AutoAssignmentJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Auto assignment job stopped")
}

func (j *AutoAssignmentJob) sweep() {
	ctx := context.Background()

	query := queries.NewGetPendingOrderIDsQuery()
	orderIDs, err := j.pendingOrders.Handle(ctx, query)
	if err != nil {
		j.logger.ErrorContext(ctx, "Failed to list pending orders", "error", err)
		return
	}

	for _, orderID := range orderIDs {
		cmd, cmdErr := commands.NewAutoAssignOrderCommand(orderID)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Failed to build assignment command",
				"order_id", orderID.String(), "error", cmdErr)
			continue
		}

		if handleErr := j.assignHandler.Handle(ctx, cmd); handleErr != nil {
			// Only log errors that are not expected business scenarios: a zone
			// with nobody available, an order grabbed by a manual assignment
			// mid-sweep, or a lost optimistic write.
			if !errors.Is(handleErr, commands.ErrNoPartnersAvailable) &&
				!errors.Is(handleErr, services.ErrOrderNotAvailable) &&
				!errors.Is(handleErr, errs.ErrConcurrencyConflict) {
				j.logger.ErrorContext(ctx, "Auto assignment failed",
					"order_id", orderID.String(), "error", handleErr)
			}
		}
	}
}
