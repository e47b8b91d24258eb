package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"agrisense/entities"
)

func TestGenerate_SoilLow(t *testing.T) {
	action, explanation := Generate(entities.CategorySoilLow, entities.SeverityMedium,
		Values{SoilMoisture: 5, AirTemperature: 20, Humidity: 50})

	assert.Equal(t, "Start irrigation for this plot and verify the irrigation system.", action)
	assert.Contains(t, explanation, "(5%)")
	assert.Contains(t, explanation, "water stress")
}

func TestGenerate_SoilHigh(t *testing.T) {
	action, explanation := Generate(entities.CategorySoilHigh, entities.SeverityMedium,
		Values{SoilMoisture: 91.5})

	assert.Equal(t, "Stop irrigation and check drainage conditions.", action)
	assert.Contains(t, explanation, "(91.5%)")
}

func TestGenerate_TemperatureHeatBranch(t *testing.T) {
	action, explanation := Generate(entities.CategoryTemperature, entities.SeverityHigh,
		Values{AirTemperature: 50, SoilMoisture: 40, Humidity: 50})

	assert.Contains(t, action, "Increase irrigation frequency")
	assert.Contains(t, explanation, "(50°C)")
	assert.Contains(t, explanation, "extremely high")
}

func TestGenerate_TemperatureColdBranch(t *testing.T) {
	action, explanation := Generate(entities.CategoryTemperature, entities.SeverityHigh,
		Values{AirTemperature: -3.2})

	assert.Contains(t, action, "Protect crops from cold")
	assert.Contains(t, explanation, "(-3.2°C)")
}

// The split is strictly greater-than: 40°C exactly takes the cold branch.
func TestGenerate_TemperatureSplitBoundary(t *testing.T) {
	action, _ := Generate(entities.CategoryTemperature, entities.SeverityHigh,
		Values{AirTemperature: 40})
	assert.Contains(t, action, "Protect crops from cold")

	action, explanation := Generate(entities.CategoryTemperature, entities.SeverityHigh,
		Values{AirTemperature: 40.0001})
	assert.Contains(t, action, "Increase irrigation frequency")
	assert.Contains(t, explanation, "(40.0001°C)")
}

func TestGenerate_Humidity(t *testing.T) {
	action, explanation := Generate(entities.CategoryHumidity, entities.SeverityLow,
		Values{Humidity: 98})

	assert.Contains(t, action, "Inspect sensor calibration")
	assert.Contains(t, explanation, "(98%)")
}

func TestGenerate_UnknownFallsBack(t *testing.T) {
	action, explanation := Generate(entities.CategoryUnknown, entities.SeverityLow, Values{})

	assert.Equal(t, "Monitor the plot and verify sensor readings.", action)
	assert.Contains(t, explanation, "No specific rule matched")
}

func TestFromReading_MissingValuesZero(t *testing.T) {
	soil := 33.0
	v := FromReading(&entities.SensorReading{SoilMoisture: &soil})
	assert.Equal(t, 33.0, v.SoilMoisture)
	assert.Equal(t, 0.0, v.AirTemperature)
	assert.Equal(t, 0.0, v.Humidity)
}
