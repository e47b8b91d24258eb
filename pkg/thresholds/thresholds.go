package thresholds

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Thresholds holds the operating bounds the classifier checks readings
// against. Values outside a (min, max) pair are anomalous; the boundary
// values themselves are not.
type Thresholds struct {
	TempMin float64
	TempMax float64
	// TempHeatSplit separates the heat-stress recommendation from the
	// cold-stress one for temperature anomalies.
	TempHeatSplit float64

	SoilMin float64
	SoilMax float64

	HumidityMin float64
	HumidityMax float64
}

func Default() Thresholds {
	return Thresholds{
		TempMin:       0,
		TempMax:       45,
		TempHeatSplit: 40,
		SoilMin:       10,
		SoilMax:       80,
		HumidityMin:   20,
		HumidityMax:   95,
	}
}

// LoadFromFiles returns Default overridden by whatever rows the optional
// CSV/XLSX files provide. A missing or unreadable file is logged and skipped;
// the classifier must never start without a complete threshold set.
func LoadFromFiles(csvPath, xlsxPath string) Thresholds {
	t := Default()
	if csvPath != "" {
		if err := t.loadCSV(csvPath); err != nil {
			log.Printf("[thresholds] csv warn: %v", err)
		}
	}
	if xlsxPath != "" {
		if err := t.loadXLSX(xlsxPath); err != nil {
			log.Printf("[thresholds] xlsx warn: %v", err)
		}
	}
	return t
}

func norm(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "\uFEFF") // BOM
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "-", "")
	s = strings.ReplaceAll(s, "_", "")
	return s
}

// apply maps one metric row onto the threshold set. Unknown metrics are
// ignored so a shared workbook can carry rows this service does not use.
func (t *Thresholds) apply(metric string, min, max *float64) {
	switch norm(metric) {
	case "airtemperature", "temperature", "temp":
		if min != nil {
			t.TempMin = *min
		}
		if max != nil {
			t.TempMax = *max
		}
	case "heatsplit", "tempheatsplit":
		if max != nil {
			t.TempHeatSplit = *max
		} else if min != nil {
			t.TempHeatSplit = *min
		}
	case "soilmoisture", "soil":
		if min != nil {
			t.SoilMin = *min
		}
		if max != nil {
			t.SoilMax = *max
		}
	case "humidity":
		if min != nil {
			t.HumidityMin = *min
		}
		if max != nil {
			t.HumidityMax = *max
		}
	}
}

func (t *Thresholds) loadCSV(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	cr := csv.NewReader(f)
	head, err := cr.Read()
	if err != nil {
		return err
	}

	hmap := map[string]int{}
	for i, h := range head {
		hmap[norm(h)] = i
	}
	findAny := func(keys ...string) int {
		for _, k := range keys {
			if idx, ok := hmap[norm(k)]; ok {
				return idx
			}
		}
		return -1
	}

	cMetric := findAny("Metric", "metric", "name", "sensor")
	cMin := findAny("Min", "minimum", "low")
	cMax := findAny("Max", "maximum", "high")
	if cMetric == -1 || (cMin == -1 && cMax == -1) {
		return fmt.Errorf("thresholds csv missing required columns, found headers: %v", head)
	}

	for {
		rec, err := cr.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return err
		}
		get := func(idx int) string {
			if idx < 0 || idx >= len(rec) {
				return ""
			}
			return rec[idx]
		}
		t.apply(get(cMetric), parseFloat(get(cMin)), parseFloat(get(cMax)))
	}
	return nil
}

func (t *Thresholds) loadXLSX(path string) error {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return err
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return err
	}
	if len(rows) < 2 {
		return fmt.Errorf("thresholds xlsx sheet %q has no data rows", sheet)
	}

	get := func(row []string, idx int) string {
		if idx < 0 || idx >= len(row) {
			return ""
		}
		return row[idx]
	}
	cMetric, cMin, cMax := -1, -1, -1
	for i, h := range rows[0] {
		switch norm(h) {
		case "metric", "name", "sensor":
			cMetric = i
		case "min", "minimum", "low":
			cMin = i
		case "max", "maximum", "high":
			cMax = i
		}
	}
	if cMetric == -1 || (cMin == -1 && cMax == -1) {
		return fmt.Errorf("thresholds xlsx missing required columns, found headers: %v", rows[0])
	}

	for _, row := range rows[1:] {
		t.apply(get(row, cMetric), parseFloat(get(row, cMin)), parseFloat(get(row, cMax)))
	}
	return nil
}

func parseFloat(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}
