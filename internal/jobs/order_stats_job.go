package jobs

import (
	"context"
	"log/slog"

	"ordering/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
	"github.com/shopspring/decimal"
)

// OrderStatsJob periodically reports order volume and revenue totals to the
// log. Read-only: it rides the order listing query and never mutates state.
type OrderStatsJob struct {
	handler queries.GetAllOrdersQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOrderStatsJob creates a new job for order statistics reporting.
// Uses GetAllOrdersQueryHandler to compute the totals every minute.
func NewOrderStatsJob(handler queries.GetAllOrdersQueryHandler, logger *slog.Logger) *OrderStatsJob {
	return &OrderStatsJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "order_stats_job"),
	}
}

// Start begins the order statistics job to run every minute.
func (j *OrderStatsJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		orders, err := j.handler.Handle(ctx, queries.NewGetAllOrdersQuery())
		if err != nil {
			j.logger.ErrorContext(ctx, "Order stats job failed", "error", err)
			return
		}

		revenue := decimal.Zero
		itemCount := 0
		for _, orderModel := range orders {
			revenue = revenue.Add(orderModel.TotalAmount)
			itemCount += len(orderModel.Items)
		}

		j.logger.InfoContext(ctx, "Order stats",
			"orders", len(orders),
			"items", itemCount,
			"revenue", revenue.String(),
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order stats job started (running every minute)")
	return nil
}

// Stop stops the order statistics job.
func (j *OrderStatsJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order stats job stopped")
}
