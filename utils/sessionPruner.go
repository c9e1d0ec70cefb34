package utils

import (
	"time"

	"github.com/robfig/cron/v3"
	logrus "github.com/sirupsen/logrus"

	"sevasetu/database"
	"sevasetu/session"
)

func logPruner(message string) {
	logrus.Infof("[SESSION-PRUNER %s] %s", time.Now().Format(time.RFC3339), message)
}

func pruneSessions() {
	pruned, err := session.PruneExpired(database.Database.Db)
	if err != nil {
		logPruner("Error pruning sessions: " + err.Error())
		return
	}
	if pruned > 0 {
		logrus.Infof("[SESSION-PRUNER] removed %d expired sessions", pruned)
	}
}

// StartSessionPruner schedules the hourly cleanup of expired session rows.
func StartSessionPruner() *cron.Cron {
	c := cron.New()
	if _, err := c.AddFunc("@every 1h", pruneSessions); err != nil {
		logPruner("Failed to schedule pruning: " + err.Error())
		return c
	}
	c.Start()
	logPruner("Scheduled hourly session pruning")
	return c
}
