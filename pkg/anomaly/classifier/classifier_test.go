package classifier

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agrisense/entities"
)

func reading(temp, soil, hum float64) *entities.SensorReading {
	return &entities.SensorReading{
		AirTemperature: &temp,
		SoilMoisture:   &soil,
		Humidity:       &hum,
	}
}

func TestClassify_NormalRange(t *testing.T) {
	tests := []struct {
		name            string
		temp, soil, hum float64
	}{
		{"mid range", 22, 45, 55},
		{"temp lower boundary", 0, 45, 55},
		{"temp upper boundary", 45, 45, 55},
		{"soil lower boundary", 22, 10, 55},
		{"soil upper boundary", 22, 80, 55},
		{"humidity lower boundary", 22, 45, 20},
		{"humidity upper boundary", 22, 45, 95},
		{"all boundaries at once", 45, 80, 95},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Classify(reading(tt.temp, tt.soil, tt.hum))
			require.NoError(t, err)
			assert.False(t, v.IsAnomaly)
		})
	}
}

func TestClassify_Anomalies(t *testing.T) {
	tests := []struct {
		name            string
		temp, soil, hum float64
		category        entities.Category
		severity        entities.Severity
	}{
		{"hot", 50, 40, 50, entities.CategoryTemperature, entities.SeverityHigh},
		{"just above max temp", 45.0001, 40, 50, entities.CategoryTemperature, entities.SeverityHigh},
		{"freezing", -2, 40, 50, entities.CategoryTemperature, entities.SeverityHigh},
		{"dry soil", 20, 5, 50, entities.CategorySoilLow, entities.SeverityMedium},
		{"waterlogged soil", 20, 85, 50, entities.CategorySoilHigh, entities.SeverityMedium},
		{"dry air", 20, 40, 15, entities.CategoryHumidity, entities.SeverityLow},
		{"saturated air", 20, 40, 98, entities.CategoryHumidity, entities.SeverityLow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Classify(reading(tt.temp, tt.soil, tt.hum))
			require.NoError(t, err)
			require.True(t, v.IsAnomaly)
			assert.Equal(t, tt.category, v.Category)
			assert.Equal(t, tt.severity, v.Severity)
		})
	}
}

func TestClassify_PriorityOrder(t *testing.T) {
	// violates temperature, soil and humidity rules at once; rule 1 wins
	v, err := Classify(reading(50, 5, 10))
	require.NoError(t, err)
	require.True(t, v.IsAnomaly)
	assert.Equal(t, entities.CategoryTemperature, v.Category)
	assert.Equal(t, entities.SeverityHigh, v.Severity)

	// soil beats humidity
	v, err = Classify(reading(20, 5, 10))
	require.NoError(t, err)
	assert.Equal(t, entities.CategorySoilLow, v.Category)
}

func TestClassify_MissingValues(t *testing.T) {
	soil, hum := 40.0, 50.0
	r := &entities.SensorReading{SoilMoisture: &soil, Humidity: &hum}
	_, err := Classify(r)
	require.Error(t, err)

	var miss ErrMissingValue
	require.ErrorAs(t, err, &miss)
	assert.Equal(t, "air_temperature", miss.Field)

	nan := math.NaN()
	r.AirTemperature = &nan
	_, err = Classify(r)
	require.Error(t, err)
}
