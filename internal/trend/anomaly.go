package trend

import "time"

const (
	// emaAlpha is the exponential moving average smoothing factor.
	emaAlpha = 0.3

	// DefaultAnomalyThreshold is the deviation (in standard deviations from
	// the EMA) beyond which a point is flagged as an anomaly.
	DefaultAnomalyThreshold = 2.0

	// minAnomalySamples is the minimum series length for anomaly detection.
	minAnomalySamples = 14

	// emaWarmup is the number of leading samples skipped while the EMA
	// converges.
	emaWarmup = 7
)

// Severity grades how far an anomalous point deviates from the EMA.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Anomaly is one flagged point in a metric series.
type Anomaly struct {
	Date       time.Time `json:"date"`
	Actual     float64   `json:"actual"`
	Expected   float64   `json:"expected"`
	Deviations float64   `json:"deviations"`
	Severity   Severity  `json:"severity"`
}

// DetectAnomalies flags points whose deviation from a running exponential
// moving average exceeds threshold standard deviations of the whole series.
// Requires at least 14 samples; the first 7 are used only to warm up the EMA.
// A non-positive threshold selects DefaultAnomalyThreshold.
func DetectAnomalies(samples []Sample, threshold float64) []Anomaly {
	if threshold <= 0 {
		threshold = DefaultAnomalyThreshold
	}
	if len(samples) < minAnomalySamples {
		return nil
	}

	sd := stdDev(values(samples))
	if sd == 0 {
		return nil
	}

	var anomalies []Anomaly
	ema := samples[0].Value
	for i := 1; i < len(samples); i++ {
		v := samples[i].Value
		if i >= emaWarmup {
			dev := abs(v-ema) / sd
			if dev > threshold {
				anomalies = append(anomalies, Anomaly{
					Date:       samples[i].Date,
					Actual:     v,
					Expected:   ema,
					Deviations: dev,
					Severity:   severityFor(dev),
				})
			}
		}
		ema = emaAlpha*v + (1-emaAlpha)*ema
	}
	return anomalies
}

func severityFor(deviations float64) Severity {
	switch {
	case deviations > 3:
		return SeverityHigh
	case deviations > 2.5:
		return SeverityMedium
	default:
		return SeverityLow
	}
}
