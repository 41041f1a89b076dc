package monitor

import "fmt"

// thresholdRule описывает одно пороговое правило для метрики
type thresholdRule struct {
	Metric   Metric
	Severity AlertSeverity
	// Exceeds: true - алерт при value > Threshold, false - при value < Threshold
	Exceeds   bool
	Threshold float64
	Format    string
}

// Фиксированная таблица порогов. Порядок правил определяет порядок кандидатов.
var thresholdRules = []thresholdRule{
	{MetricHeartRate, SeverityCritical, true, 180, "Heart rate %.0f bpm exceeds critical threshold %.0f bpm"},
	{MetricSpO2, SeverityCritical, false, 90, "SpO2 %.0f%% below critical threshold %.0f%%"},
	{MetricSystolicBP, SeverityWarning, true, 160, "Systolic blood pressure %.0f mmHg exceeds threshold %.0f mmHg"},
}

// EvaluateThresholds оценивает измерение по таблице порогов и возвращает
// упорядоченный список кандидатов на алерты. Чистая функция без побочных
// эффектов; отсутствующие показатели пропускаются.
func EvaluateThresholds(reading *VitalReading) []AlertCandidate {
	var candidates []AlertCandidate

	for _, rule := range thresholdRules {
		value := metricValue(reading, rule.Metric)
		if value == nil {
			continue
		}

		triggered := false
		if rule.Exceeds {
			triggered = *value > rule.Threshold
		} else {
			triggered = *value < rule.Threshold
		}

		if !triggered {
			continue
		}

		candidates = append(candidates, AlertCandidate{
			Metric:   rule.Metric,
			Severity: rule.Severity,
			Message:  fmt.Sprintf(rule.Format, *value, rule.Threshold),
			Value:    *value,
		})
	}

	return candidates
}

// metricValue извлекает значение метрики из измерения
func metricValue(reading *VitalReading, metric Metric) *float64 {
	switch metric {
	case MetricHeartRate:
		return reading.HeartRate
	case MetricSpO2:
		return reading.SpO2
	case MetricSystolicBP:
		return reading.SystolicBP
	case MetricDiastolicBP:
		return reading.DiastolicBP
	}
	return nil
}
