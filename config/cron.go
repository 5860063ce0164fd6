package config

import (
	"ethnicshop.GO/cron/jobs"
)

// Map of job names to job functions
type CronJob struct {
	Schedule string
	Job      func(...string)
}

var CronJobs = map[string]CronJob{
	"statebackup":    {Schedule: "@every 15m", Job: jobs.StateBackupJob},
	"catalogreindex": {Schedule: "0 * * * *", Job: jobs.CatalogReindexJob},
	// Add more jobs here
}
