package risk

import (
	"context"
	"fmt"
	"log"
	"math"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/healthwatch/vital-monitor/internal/monitor"
	mlservicev1 "github.com/healthwatch/vital-monitor/proto/mlservice"
)

// Безопасные дефолтные значения для fallback при недоступной модели
const (
	fallbackScore = 0.10
	fallbackLevel = monitor.RiskLevelLow
)

// Classifier - обертка над внешним ML сервисом предсказания кардиориска.
// Модель - внешний артефакт: классификатор не знает ее устройства,
// только контракт PredictRequest/PredictResponse и cutpoints для
// отображения score в дискретный уровень.
type Classifier struct {
	client mlservicev1.MLServiceClient
	conn   *grpc.ClientConn

	requestTimeout time.Duration
	lowCutpoint    float64
	highCutpoint   float64
	fallback       bool
}

// NewClassifier подключается к ML сервису и создает классификатор.
// Соединение ленивое: недоступность сервиса проявится при первом Predict.
func NewClassifier(mlServiceAddr string, requestTimeout time.Duration, lowCutpoint, highCutpoint float64, fallback bool) (*Classifier, error) {
	conn, err := grpc.NewClient(mlServiceAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to ML service: %w", err)
	}

	return &Classifier{
		client:         mlservicev1.NewMLServiceClient(conn),
		conn:           conn,
		requestTimeout: requestTimeout,
		lowCutpoint:    lowCutpoint,
		highCutpoint:   highCutpoint,
		fallback:       fallback,
	}, nil
}

// NewClassifierWithClient создает классификатор поверх готового клиента (для тестов)
func NewClassifierWithClient(client mlservicev1.MLServiceClient, lowCutpoint, highCutpoint float64, fallback bool) *Classifier {
	return &Classifier{
		client:         client,
		requestTimeout: time.Second,
		lowCutpoint:    lowCutpoint,
		highCutpoint:   highCutpoint,
		fallback:       fallback,
	}
}

// Classify строит вектор признаков из измерения, вызывает ML сервис и
// отображает score в уровень. Score всегда зажимается в [0, 1].
func (c *Classifier) Classify(ctx context.Context, reading *monitor.VitalReading) (float64, monitor.RiskLevel, error) {
	request, err := c.buildFeatures(reading)
	if err != nil {
		return 0, "", err
	}

	ctx, cancel := context.WithTimeout(ctx, c.requestTimeout)
	defer cancel()

	response, err := c.client.Predict(ctx, request)
	if err != nil {
		return 0, "", fmt.Errorf("%w: %v", monitor.ErrModelUnavailable, err)
	}

	score := clamp(response.RiskScore, 0.0, 1.0)
	level := c.MapLevel(score)

	log.Printf("[RISK] Prediction for user %s: score=%.4f level=%s model=%s",
		reading.UserID, score, level, response.ModelVersion)

	return score, level, nil
}

// buildFeatures собирает вектор признаков для модели.
// Отсутствующие показатели кодируются нулем: модель обучена на полном
// векторе, поэтому вектор без единого показателя считается некорректным.
func (c *Classifier) buildFeatures(reading *monitor.VitalReading) (*mlservicev1.PredictRequest, error) {
	features := map[string]*float64{
		"heart_rate":   reading.HeartRate,
		"spo2":         reading.SpO2,
		"systolic_bp":  reading.SystolicBP,
		"diastolic_bp": reading.DiastolicBP,
	}

	present := 0
	for name, value := range features {
		if value == nil {
			continue
		}
		if math.IsNaN(*value) || math.IsInf(*value, 0) || *value <= 0 {
			return nil, fmt.Errorf("%w: feature %s has invalid value %f",
				monitor.ErrValidation, name, *value)
		}
		present++
	}

	if present == 0 {
		return nil, fmt.Errorf("%w: empty feature vector", monitor.ErrValidation)
	}

	return &mlservicev1.PredictRequest{
		UserId:      reading.UserID,
		HeartRate:   deref(reading.HeartRate),
		Spo2:        deref(reading.SpO2),
		SystolicBp:  deref(reading.SystolicBP),
		DiastolicBp: deref(reading.DiastolicBP),
	}, nil
}

// MapLevel отображает score в дискретный уровень по настроенным cutpoints.
// Отображение монотонно: больший score никогда не дает меньший уровень.
func (c *Classifier) MapLevel(score float64) monitor.RiskLevel {
	switch {
	case score < c.lowCutpoint:
		return monitor.RiskLevelLow
	case score < c.highCutpoint:
		return monitor.RiskLevelModerate
	default:
		return monitor.RiskLevelHigh
	}
}

// Fallback возвращает безопасную оценку по умолчанию
func (c *Classifier) Fallback() (float64, monitor.RiskLevel) {
	return fallbackScore, fallbackLevel
}

// FallbackEnabled сообщает, разрешена ли подмена при недоступной модели
func (c *Classifier) FallbackEnabled() bool {
	return c.fallback
}

// Close закрывает gRPC соединение
func (c *Classifier) Close() error {
	if c.conn == nil {
		return nil
	}
	return c.conn.Close()
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
