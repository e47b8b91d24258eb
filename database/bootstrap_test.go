package database

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agrisense/entities"
)

func TestOpenSQLite_ReadingsInsertWithForeignKeysOn(t *testing.T) {
	db := OpenSQLite("file:" + uuid.NewString() + "?mode=memory&cache=shared")

	farm := &entities.FarmProfile{Name: "farm", Role: "farmer"}
	require.NoError(t, db.Create(farm).Error)
	plot := &entities.FieldPlot{FarmID: farm.FarmID, Name: "plot", SizeHectares: 1}
	require.NoError(t, db.Create(plot).Error)

	// The FK points from anomaly to reading, never the other way: a reading
	// must insert with no anomaly row in sight.
	temp, soil, hum := 50.0, 40.0, 50.0
	r := &entities.SensorReading{PlotID: plot.PlotID, AirTemperature: &temp, SoilMoisture: &soil, Humidity: &hum}
	require.NoError(t, db.Create(r).Error)

	plotID := plot.PlotID
	ev := &entities.AnomalyEvent{
		ReadingID:      r.ReadingID,
		PlotID:         &plotID,
		Category:       entities.CategoryTemperature,
		Severity:       entities.SeverityHigh,
		Message:        "too hot",
		Recommendation: "shade",
	}
	require.NoError(t, db.Create(ev).Error)

	require.NoError(t, db.Delete(r).Error)
	var n int64
	require.NoError(t, db.Model(&entities.AnomalyEvent{}).Count(&n).Error)
	assert.Zero(t, n, "deleting a reading cascades to its anomaly")
}
