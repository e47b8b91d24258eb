// Synthetic sensor traffic generator. Logs in against the API, discovers
// plots, and posts one reading per plot every cycle. Purely an external
// client; it shares no code with the pipeline.
package main

import (
	"bytes"
	"encoding/json"
	"log"
	"math"
	"math/rand"
	"net/http"
	"os"
	"strconv"
	"time"
)

type simConfig struct {
	baseURL   string
	username  string
	password  string
	frequency time.Duration
	fallback  []uint
}

func loadSimConfig() simConfig {
	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	freq := 5
	if v, err := strconv.Atoi(os.Getenv("SIM_FREQUENCY_SECONDS")); err == nil && v > 0 {
		freq = v
	}
	return simConfig{
		baseURL:   get("SIM_API_URL", "http://127.0.0.1:8080"),
		username:  get("SIM_USERNAME", "agriculture"),
		password:  get("SIM_PASSWORD", "soasoa"),
		frequency: time.Duration(freq) * time.Second,
		fallback:  []uint{1, 2, 3},
	}
}

type simulator struct {
	cfg     simConfig
	httpc   *http.Client
	access  string
	refresh string

	// per-plot phase offsets so plots don't move in lockstep
	phases map[uint]float64
}

func (s *simulator) post(path string, body any, out any, authed bool) (int, error) {
	b, _ := json.Marshal(body)
	req, err := http.NewRequest("POST", s.cfg.baseURL+path, bytes.NewReader(b))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	if authed {
		req.Header.Set("Authorization", "Bearer "+s.access)
	}
	resp, err := s.httpc.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	if out != nil {
		_ = json.NewDecoder(resp.Body).Decode(out)
	}
	return resp.StatusCode, nil
}

func (s *simulator) get(path string, out any) (int, error) {
	req, err := http.NewRequest("GET", s.cfg.baseURL+path, nil)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Authorization", "Bearer "+s.access)
	resp, err := s.httpc.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	if out != nil {
		_ = json.NewDecoder(resp.Body).Decode(out)
	}
	return resp.StatusCode, nil
}

func (s *simulator) login() bool {
	var tokens struct {
		Access  string `json:"access"`
		Refresh string `json:"refresh"`
	}
	code, err := s.post("/api/token", map[string]string{
		"username": s.cfg.username,
		"password": s.cfg.password,
	}, &tokens, false)
	if err != nil || code != http.StatusOK {
		log.Printf("[sim] token error: code=%d err=%v", code, err)
		return false
	}
	s.access, s.refresh = tokens.Access, tokens.Refresh
	log.Printf("[sim] new tokens obtained")
	return true
}

func (s *simulator) refreshAccess() bool {
	if s.refresh == "" {
		return s.login()
	}
	var tokens struct {
		Access string `json:"access"`
	}
	code, err := s.post("/api/token/refresh", map[string]string{"refresh": s.refresh}, &tokens, false)
	if err != nil || code != http.StatusOK || tokens.Access == "" {
		return s.login()
	}
	s.access = tokens.Access
	return true
}

func (s *simulator) plotIDs() []uint {
	var plots []struct {
		PlotID uint `json:"plot_id"`
	}
	code, err := s.get("/api/plots", &plots)
	if err != nil || code != http.StatusOK || len(plots) == 0 {
		log.Printf("[sim] plot discovery failed (code=%d err=%v), using fallback", code, err)
		return s.cfg.fallback
	}
	ids := make([]uint, 0, len(plots))
	for _, p := range plots {
		ids = append(ids, p.PlotID)
	}
	return ids
}

// values follows a slow daily sinusoid with noise; roughly one reading in
// twenty is pushed outside a threshold to exercise the anomaly pipeline.
func (s *simulator) values(plotID uint) (soil, temp, hum float64) {
	phase, ok := s.phases[plotID]
	if !ok {
		phase = rand.Float64() * 2 * math.Pi
		s.phases[plotID] = phase
	}
	tick := float64(time.Now().Unix()) / 3600.0

	soil = 45 + 20*math.Sin(tick+phase) + rand.Float64()*6 - 3
	temp = 24 + 10*math.Sin(tick/24+phase) + rand.Float64()*4 - 2
	hum = 60 + 25*math.Sin(tick/12+phase) + rand.Float64()*8 - 4

	if rand.Float64() < 0.05 {
		switch rand.Intn(4) {
		case 0:
			temp = 46 + rand.Float64()*6
		case 1:
			soil = rand.Float64() * 8
		case 2:
			soil = 82 + rand.Float64()*15
		case 3:
			hum = 96 + rand.Float64()*4
		}
	}
	return round1(soil), round1(temp), round1(hum)
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }

func (s *simulator) sendReading(plotID uint) {
	soil, temp, hum := s.values(plotID)
	body := map[string]any{
		"plot_id":         plotID,
		"soil_moisture":   soil,
		"air_temperature": temp,
		"humidity":        hum,
	}
	code, err := s.post("/api/sensor-readings", body, nil, true)
	if err != nil {
		log.Printf("[sim] post error: %v", err)
		return
	}
	if code == http.StatusUnauthorized {
		if s.refreshAccess() {
			code, _ = s.post("/api/sensor-readings", body, nil, true)
		}
	}
	log.Printf("[sim] plot=%d soil=%.1f temp=%.1f hum=%.1f -> %d", plotID, soil, temp, hum, code)
}

func main() {
	cfg := loadSimConfig()
	s := &simulator{
		cfg:    cfg,
		httpc:  &http.Client{Timeout: 10 * time.Second},
		phases: map[uint]float64{},
	}

	for !s.login() {
		time.Sleep(cfg.frequency)
	}

	for {
		for _, id := range s.plotIDs() {
			s.sendReading(id)
		}
		time.Sleep(cfg.frequency)
	}
}
