package cronjobs

import (
	"github.com/apex/log"
	"github.com/robfig/cron/v3"

	"trapcheck/rag"
)

// InitCronJobs schedules the background refresh of the calibration
// database so edits to the file are picked up without a restart.
// A nil retriever means no database is configured and nothing is
// scheduled.
func InitCronJobs(retriever *rag.Retriever) {
	if retriever == nil {
		return
	}

	log.Info("starting cron jobs")
	c := cron.New()

	// Calibration database reload: run hourly on the hour
	_, err := c.AddFunc("0 * * * *", func() {
		log.Info("cronjob: reloading calibration database")
		if err := retriever.Reload(); err != nil {
			log.WithError(err).Error("calibration database reload failed")
			return
		}
		log.Infof("calibration database reloaded, %d entries", retriever.Size())
	})
	if err != nil {
		log.WithError(err).Error("error scheduling calibration reload")
	}

	c.Start()
}
