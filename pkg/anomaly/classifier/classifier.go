package classifier

import (
	"fmt"
	"math"

	"agrisense/entities"
	"agrisense/pkg/thresholds"
)

// Verdict is the outcome of classifying one reading.
type Verdict struct {
	IsAnomaly bool
	Category  entities.Category
	Severity  entities.Severity
}

// ErrMissingValue marks a reading whose sensor values cannot be classified.
// A missing value is never treated as "no anomaly".
type ErrMissingValue struct {
	Field string
}

func (e ErrMissingValue) Error() string {
	return fmt.Sprintf("reading has missing or non-numeric %s", e.Field)
}

// Classify runs the default threshold set against a reading.
func Classify(r *entities.SensorReading) (Verdict, error) {
	return ClassifyWith(thresholds.Default(), r)
}

// ClassifyWith evaluates the rules in fixed priority order; the first match
// wins. The order encodes severity precedence: temperature beats soil
// moisture beats humidity. Boundary values are not anomalous.
func ClassifyWith(t thresholds.Thresholds, r *entities.SensorReading) (Verdict, error) {
	temp, err := value(r.AirTemperature, "air_temperature")
	if err != nil {
		return Verdict{}, err
	}
	soil, err := value(r.SoilMoisture, "soil_moisture")
	if err != nil {
		return Verdict{}, err
	}
	hum, err := value(r.Humidity, "humidity")
	if err != nil {
		return Verdict{}, err
	}

	if temp < t.TempMin || temp > t.TempMax {
		return Verdict{IsAnomaly: true, Category: entities.CategoryTemperature, Severity: entities.SeverityHigh}, nil
	}
	if soil < t.SoilMin {
		return Verdict{IsAnomaly: true, Category: entities.CategorySoilLow, Severity: entities.SeverityMedium}, nil
	}
	if soil > t.SoilMax {
		return Verdict{IsAnomaly: true, Category: entities.CategorySoilHigh, Severity: entities.SeverityMedium}, nil
	}
	if hum < t.HumidityMin || hum > t.HumidityMax {
		return Verdict{IsAnomaly: true, Category: entities.CategoryHumidity, Severity: entities.SeverityLow}, nil
	}
	return Verdict{}, nil
}

func value(p *float64, field string) (float64, error) {
	if p == nil || math.IsNaN(*p) {
		return 0, ErrMissingValue{Field: field}
	}
	return *p, nil
}
