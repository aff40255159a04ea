// Package jobs provides scheduled background tasks of the cargo service.
//
// Jobs are built on github.com/robfig/cron/v3 with a leading seconds field
// in their schedules.
//
// # Available Jobs
//
// DailyReceiptJob - bills every customer whose parcels reached the sorting
// center and were not billed yet. Runs at 02:00 by default, the schedule is
// taken from RECEIPT_CRON.
//
// # Usage
//
//	receiptJob := jobs.NewDailyReceiptJob(ownersHandler, &generateHandler, cfg.ReceiptCron, logger)
//	jobManager := jobs.NewJobManager(receiptJob)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A customer with nothing left to bill is skipped silently. Any other
// failure is logged and the pass continues with the next customer.
package jobs
