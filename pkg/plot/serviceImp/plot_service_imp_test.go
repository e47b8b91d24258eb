package serviceImp

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"agrisense/database"
	"agrisense/entities"
	anomRepoImp "agrisense/pkg/anomaly/repositoryImp"
	anomSvcImp "agrisense/pkg/anomaly/serviceImp"
	plotRepoImp "agrisense/pkg/plot/repositoryImp"
	readRepoImp "agrisense/pkg/reading/repositoryImp"
	"agrisense/pkg/thresholds"
)

func openDB(t *testing.T) *gorm.DB {
	t.Helper()
	return database.OpenSQLite("file:" + uuid.NewString() + "?mode=memory&cache=shared")
}

func TestStatus_RollsUpNewestSeverity(t *testing.T) {
	db := openDB(t)
	farm := &entities.FarmProfile{Name: "farm"}
	require.NoError(t, db.Create(farm).Error)

	quiet := &entities.FieldPlot{FarmID: farm.FarmID, Name: "quiet", SizeHectares: 1}
	warn := &entities.FieldPlot{FarmID: farm.FarmID, Name: "warn", SizeHectares: 2}
	crit := &entities.FieldPlot{FarmID: farm.FarmID, Name: "crit", SizeHectares: 3}
	damp := &entities.FieldPlot{FarmID: farm.FarmID, Name: "damp", SizeHectares: 4}
	require.NoError(t, db.Create(quiet).Error)
	require.NoError(t, db.Create(warn).Error)
	require.NoError(t, db.Create(crit).Error)
	require.NoError(t, db.Create(damp).Error)

	anomSvc := anomSvcImp.New(anomRepoImp.New(db), readRepoImp.New(db), thresholds.Default())
	mkReading := func(plotID uint, temp, soil, hum float64) {
		r := &entities.SensorReading{PlotID: plotID, AirTemperature: &temp, SoilMoisture: &soil, Humidity: &hum}
		require.NoError(t, db.Create(r).Error)
		_, _, _, err := anomSvc.Materialize(r)
		require.NoError(t, err)
	}
	mkReading(warn.PlotID, 20, 5, 50)  // soil_low → medium
	mkReading(crit.PlotID, 50, 40, 50) // temperature → high
	mkReading(damp.PlotID, 20, 40, 10) // humidity → low

	svc := New(plotRepoImp.New(db), anomRepoImp.New(db))
	statuses, err := svc.Status()
	require.NoError(t, err)
	require.Len(t, statuses, 4)

	byName := map[string]string{}
	for _, st := range statuses {
		byName[st.Name] = st.Status
	}
	assert.Equal(t, "OK", byName["quiet"])
	assert.Equal(t, "WARNING", byName["warn"])
	assert.Equal(t, "CRITICAL", byName["crit"])
	assert.Equal(t, "OK", byName["damp"], "low severity stays below the warning rank")
}
