package sources

// Measure is a payload that can be shown as a fill ratio in [0, 1].
type Measure interface {
	Ratio() float64
}

// Progress is a completion ratio in [0, 1].
type Progress float64

// Ratio returns p as a float64.
func (p Progress) Ratio() float64 { return float64(p) }

// CPULoad is the machine-wide CPU utilisation as a ratio in [0, 1].
type CPULoad float64

// Ratio returns l as a float64.
func (l CPULoad) Ratio() float64 { return float64(l) }

// MeasureOf returns the ratio carried by a user payload.
func MeasureOf(payload any) (float64, bool) {
	m, ok := payload.(Measure)
	if !ok {
		return 0, false
	}
	return m.Ratio(), true
}

func clamp01(v float64) float64 {
	return min(max(v, 0), 1)
}
