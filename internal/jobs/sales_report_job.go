package jobs

import (
	"context"
	"log/slog"

	"coffeemachine/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// SalesReportJob periodically logs the sales totals per coffee. The
// operator watches the machine through logs, so the report runs every
// minute against the order ledger.
type SalesReportJob struct {
	handler queries.GetOrderSummariesQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewSalesReportJob creates a job reporting per-coffee sales once a minute.
func NewSalesReportJob(handler queries.GetOrderSummariesQueryHandler, logger *slog.Logger) *SalesReportJob {
	return &SalesReportJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "sales_report_job"),
	}
}

// Start begins the sales report job to run every minute.
func (j *SalesReportJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		query := queries.NewGetOrderSummariesQuery()

		summaries, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Sales report job failed", "error", err)
			return
		}

		for _, summary := range summaries {
			j.logger.InfoContext(ctx, "Sales report",
				"coffee", summary.Name,
				"orders", summary.OrderCount,
				"total", summary.TotalCache.String(),
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Sales report job started (running every minute)")
	return nil
}

// Stop stops the sales report job.
func (j *SalesReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Sales report job stopped")
}
