package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// vitalsPayload - тело запроса POST /api/v1/vitals
type vitalsPayload struct {
	HeartRate   float64 `json:"heart_rate"`
	SpO2        float64 `json:"spo2"`
	SystolicBP  float64 `json:"systolic_bp"`
	DiastolicBP float64 `json:"diastolic_bp"`
}

// walker - случайное блуждание вокруг базового значения в пределах [min, max]
type walker struct {
	value, base, min, max, step float64
}

func (w *walker) next(r *rand.Rand) float64 {
	w.value += (r.Float64()*2 - 1) * w.step
	// Мягкое притяжение к базовому значению
	w.value += (w.base - w.value) * 0.05
	if w.value < w.min {
		w.value = w.min
	}
	if w.value > w.max {
		w.value = w.max
	}
	return w.value
}

func main() {
	var (
		apiURL    = flag.String("api", "http://localhost:8080", "Адрес API сервера")
		token     = flag.String("token", "", "JWT токен пользователя")
		interval  = flag.Duration("interval", 5*time.Second, "Интервал между измерениями")
		spikeProb = flag.Float64("spike-prob", 0.05, "Вероятность выброса показателей (для проверки алертов)")
	)
	flag.Parse()

	if *token == "" {
		log.Fatalf("[FATAL] -token is required (register and login via /api/v1/auth)")
	}

	log.Printf("[INFO] Starting vitals emulator: api=%s interval=%s spike_prob=%.2f",
		*apiURL, *interval, *spikeProb)

	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	hr := &walker{value: 72, base: 72, min: 45, max: 120, step: 3}
	spo2 := &walker{value: 98, base: 98, min: 93, max: 100, step: 0.5}
	sys := &walker{value: 118, base: 118, min: 95, max: 150, step: 3}
	dia := &walker{value: 76, base: 76, min: 55, max: 95, step: 2}

	client := &http.Client{Timeout: 10 * time.Second}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		log.Printf("[INFO] Received signal %v, stopping emulator...", sig)
		cancel()
	}()

	ticker := time.NewTicker(*interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Printf("[INFO] Emulator stopped")
			return

		case <-ticker.C:
			payload := vitalsPayload{
				HeartRate:   round1(hr.next(r)),
				SpO2:        round1(spo2.next(r)),
				SystolicBP:  round1(sys.next(r)),
				DiastolicBP: round1(dia.next(r)),
			}

			// Редкие выбросы за пороги, чтобы проверить алерты и дедупликацию
			if r.Float64() < *spikeProb {
				switch r.Intn(3) {
				case 0:
					payload.HeartRate = 185 + r.Float64()*20
					log.Printf("[SPIKE] Injecting tachycardia: hr=%.0f", payload.HeartRate)
				case 1:
					payload.SpO2 = 84 + r.Float64()*5
					log.Printf("[SPIKE] Injecting hypoxemia: spo2=%.0f", payload.SpO2)
				case 2:
					payload.SystolicBP = 165 + r.Float64()*20
					log.Printf("[SPIKE] Injecting hypertension: sys=%.0f", payload.SystolicBP)
				}
			}

			if err := submit(ctx, client, *apiURL, *token, payload); err != nil {
				log.Printf("[WARN] Failed to submit vitals: %v", err)
			}
		}
	}
}

func submit(ctx context.Context, client *http.Client, apiURL, token string, payload vitalsPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, apiURL+"/api/v1/vitals", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	log.Printf("[INFO] Submitted vitals: hr=%.1f spo2=%.1f sys=%.1f dia=%.1f",
		payload.HeartRate, payload.SpO2, payload.SystolicBP, payload.DiastolicBP)
	return nil
}

func round1(v float64) float64 {
	return float64(int(v*10+0.5)) / 10
}
