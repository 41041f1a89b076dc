package risk

import (
	"context"
	"log"

	mlservicev1 "github.com/healthwatch/vital-monitor/proto/mlservice"
)

// MLStub - локальная заглушка ML сервиса для демо и разработки.
// Считает score детерминированной эвристикой по отклонениям показателей
// от нормы, чтобы демо вело себя осмысленно без обученной модели.
type MLStub struct {
	mlservicev1.UnimplementedMLServiceServer
}

func (s *MLStub) Predict(ctx context.Context, req *mlservicev1.PredictRequest) (*mlservicev1.PredictResponse, error) {
	score := heuristicScore(req)

	log.Printf("Received prediction request for user %s: hr=%.0f spo2=%.0f sys=%.0f dia=%.0f -> %.4f",
		req.UserId, req.HeartRate, req.Spo2, req.SystolicBp, req.DiastolicBp, score)

	return &mlservicev1.PredictResponse{
		UserId:       req.UserId,
		RiskScore:    score,
		Status:       "ok",
		ModelVersion: "stub-heuristic-1",
	}, nil
}

// heuristicScore - линейная комбинация нормированных отклонений от нормы.
// Нулевые поля (отсутствующие показатели) не вносят вклада.
func heuristicScore(req *mlservicev1.PredictRequest) float64 {
	score := 0.05

	if req.HeartRate > 0 {
		score += deviation(req.HeartRate, 60, 100, 200) * 0.35
	}
	if req.Spo2 > 0 {
		score += deviation(req.Spo2, 95, 100, 20) * 0.35
	}
	if req.SystolicBp > 0 {
		score += deviation(req.SystolicBp, 90, 130, 100) * 0.20
	}
	if req.DiastolicBp > 0 {
		score += deviation(req.DiastolicBp, 60, 85, 80) * 0.10
	}

	if score > 1.0 {
		score = 1.0
	}
	return score
}

// deviation возвращает нормированное отклонение значения от диапазона [lo, hi]
func deviation(value, lo, hi, span float64) float64 {
	var d float64
	switch {
	case value < lo:
		d = (lo - value) / span
	case value > hi:
		d = (value - hi) / span
	}
	if d > 1.0 {
		d = 1.0
	}
	return d
}
