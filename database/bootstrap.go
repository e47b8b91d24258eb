// database/bootstrap.go
package database

import (
	"fmt"
	"log"
	"strings"

	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	"gorm.io/gorm"

	"agrisense/entities"
)

func OpenSQLite(path string) *gorm.DB {
	// PRAGMAs are per-connection; setting foreign_keys through the DSN covers
	// every pooled connection.
	dsn := path
	if strings.Contains(dsn, "?") {
		dsn += "&_pragma=foreign_keys(1)"
	} else {
		dsn += "?_pragma=foreign_keys(1)"
	}
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("open sqlite: %v", err)
	}

	// IMPORTANT: collapse legacy duplicate anomalies BEFORE AutoMigrate so the
	// unique index on reading_id can be created.
	if err := dedupAnomalyEvents(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	if err := db.AutoMigrate(
		&entities.FarmProfile{},
		&entities.FieldPlot{},
		&entities.SensorReading{},
		&entities.AnomalyEvent{},
		&entities.AgentRecommendation{},
	); err != nil {
		log.Fatalf("automigrate: %v", err)
	}

	return db
}

// dedupAnomalyEvents keeps, for each reading, only the newest anomaly row.
// Selection policy: created_at DESC, event_id DESC — the same canonical
// ordering the materializer uses when it meets duplicates at runtime.
func dedupAnomalyEvents(db *gorm.DB) error {
	var tbl string
	if err := db.Raw(`SELECT name FROM sqlite_master WHERE type='table' AND name='anomaly_events'`).Scan(&tbl).Error; err != nil {
		return fmt.Errorf("check table exist: %w", err)
	}
	if tbl == "" {
		// fresh DB, nothing to do
		return nil
	}

	var dups int64
	countSQL := `
SELECT COUNT(*) FROM anomaly_events a
WHERE a.event_id NOT IN (
    SELECT event_id FROM (
        SELECT event_id,
               ROW_NUMBER() OVER (PARTITION BY reading_id ORDER BY created_at DESC, event_id DESC) AS rn
        FROM anomaly_events
    ) WHERE rn = 1
);`
	if err := db.Raw(countSQL).Scan(&dups).Error; err != nil {
		return fmt.Errorf("count duplicates: %w", err)
	}
	if dups == 0 {
		return nil
	}

	log.Printf("[db] collapsing %d duplicate anomaly rows", dups)

	deleteSQL := `
DELETE FROM anomaly_events
WHERE event_id NOT IN (
    SELECT event_id FROM (
        SELECT event_id,
               ROW_NUMBER() OVER (PARTITION BY reading_id ORDER BY created_at DESC, event_id DESC) AS rn
        FROM anomaly_events
    ) WHERE rn = 1
);`
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(deleteSQL).Error; err != nil {
			return err
		}
		// orphaned one-to-one recommendations go with their events
		return tx.Exec(`DELETE FROM agent_recommendations WHERE event_id NOT IN (SELECT event_id FROM anomaly_events)`).Error
	})
}
