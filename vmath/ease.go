package vmath

// Ease maps linear progress t in [0,1] to eased progress
type Ease int

const (
	EaseLinear Ease = iota
	EaseQuadInOut
)

// Apply clamps t and applies the curve
func (e Ease) Apply(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	switch e {
	case EaseQuadInOut:
		if t < 0.5 {
			return 2 * t * t
		}
		u := -2*t + 2
		return 1 - u*u/2
	default:
		return t
	}
}
