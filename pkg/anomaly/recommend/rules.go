package recommend

import (
	"fmt"

	"agrisense/entities"
	"agrisense/pkg/thresholds"
)

// Values carries the raw sensor numbers a recommendation interpolates.
// Keeping this detached from any persisted record lets the same rules serve
// fresh anomalies and reconciliation of historical ones.
type Values struct {
	SoilMoisture   float64
	AirTemperature float64
	Humidity       float64
}

// Generate returns (recommended action, explanation) for an anomaly. Keyed by
// category; temperature splits into heat and cold advice at the heat-split
// threshold. Unknown categories fall back to generic monitoring advice.
func Generate(cat entities.Category, sev entities.Severity, v Values) (string, string) {
	return GenerateWith(thresholds.Default(), cat, sev, v)
}

func GenerateWith(t thresholds.Thresholds, cat entities.Category, _ entities.Severity, v Values) (string, string) {
	switch cat {
	case entities.CategorySoilLow:
		action := "Start irrigation for this plot and verify the irrigation system."
		explanation := fmt.Sprintf(
			"Soil moisture is very low (%v%%). "+
				"This may cause water stress and reduce crop yield. "+
				"Irrigation is recommended and the sensor/irrigation lines should be checked.",
			v.SoilMoisture)
		return action, explanation

	case entities.CategorySoilHigh:
		action := "Stop irrigation and check drainage conditions."
		explanation := fmt.Sprintf(
			"Soil moisture is unusually high (%v%%). "+
				"This can increase risk of root diseases. "+
				"Stop irrigation and inspect drainage / water accumulation.",
			v.SoilMoisture)
		return action, explanation

	case entities.CategoryTemperature:
		if v.AirTemperature > t.TempHeatSplit {
			action := "Increase irrigation frequency and consider shading during peak heat."
			explanation := fmt.Sprintf(
				"Air temperature is extremely high (%v°C). "+
					"Heat stress can affect plant growth. "+
					"Increase irrigation, monitor plants, and consider shading if possible.",
				v.AirTemperature)
			return action, explanation
		}
		action := "Protect crops from cold (cover plants) and monitor temperature."
		explanation := fmt.Sprintf(
			"Air temperature is unusually low (%v°C). "+
				"Cold stress may damage crops. "+
				"Use protective covers and monitor the plot closely.",
			v.AirTemperature)
		return action, explanation

	case entities.CategoryHumidity:
		action := "Inspect sensor calibration and monitor for fungal disease risk."
		explanation := fmt.Sprintf(
			"Humidity is abnormal (%v%%). "+
				"This may indicate sensor issues or conditions favoring fungal diseases. "+
				"Check sensor and monitor crop health.",
			v.Humidity)
		return action, explanation
	}

	action := "Monitor the plot and verify sensor readings."
	explanation := "An anomaly was detected. No specific rule matched; please review the readings."
	return action, explanation
}

// FromReading extracts Values from a reading, substituting zero for missing
// fields. Callers that need strict validation classify first.
func FromReading(r *entities.SensorReading) Values {
	deref := func(p *float64) float64 {
		if p == nil {
			return 0
		}
		return *p
	}
	return Values{
		SoilMoisture:   deref(r.SoilMoisture),
		AirTemperature: deref(r.AirTemperature),
		Humidity:       deref(r.Humidity),
	}
}
