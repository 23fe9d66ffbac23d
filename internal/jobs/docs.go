// Package jobs provides scheduled background tasks built on
// github.com/robfig/cron/v3.
//
// PushRelayJob runs every 30 seconds and re-attempts push delivery for
// notifications whose push state is still pending or failed. The in-app
// record is authoritative; the relay only chases the out-of-band copy.
//
// Jobs are managed through JobManager:
//
//	jobManager := jobs.NewJobManager(dispatcher, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
package jobs
