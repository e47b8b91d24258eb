// Offline sweep that repairs anomaly events missing message, recommendation
// or plot back-reference, then regenerates their recommendations.
package main

import (
	"log"

	"agrisense/config"
	"agrisense/database"
	anomRepoImp "agrisense/pkg/anomaly/repositoryImp"
	anomSvcImp "agrisense/pkg/anomaly/serviceImp"
	readRepoImp "agrisense/pkg/reading/repositoryImp"
	"agrisense/pkg/thresholds"
)

func main() {
	cfg := config.Load()
	db := database.OpenSQLite(cfg.DBPath)
	th := thresholds.LoadFromFiles(cfg.ThresholdsCSV, cfg.ThresholdsXLSX)

	svc := anomSvcImp.New(anomRepoImp.New(db), readRepoImp.New(db), th)

	stats, err := svc.Reconcile()
	if err != nil {
		log.Fatalf("backfill: %v (scanned=%d updated=%d skipped=%d)",
			err, stats.Scanned, stats.Updated, stats.Skipped)
	}
	log.Printf("backfill done: scanned=%d updated=%d skipped=%d",
		stats.Scanned, stats.Updated, stats.Skipped)
}
