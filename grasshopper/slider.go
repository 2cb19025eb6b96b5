package grasshopper

import "math"

// SliderRange captures the travel range, current value and precision of a
// Number Slider. Invariant: Min <= Value <= Max and Rounding > 0.
type SliderRange struct {
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Value    float64 `json:"value"`
	Rounding float64 `json:"rounding"`
}

// AutoBounds computes the add_component fall-back range used when a slider is
// created without explicit bounds. It deliberately differs from InferRange:
// the two formulas produce different results for the same value (e.g. 3.0
// yields max 10 here but max 13 from InferRange) and must stay separate.
func AutoBounds(value *float64) (min, max float64) {
	if value == nil {
		return 0, 10
	}
	v := *value
	switch {
	case v > 1:
		return 0, math.Max(10, v*2)
	case v < 0:
		return math.Min(v*2, -10), math.Max(10, math.Abs(v)*2)
	default:
		return 0, math.Max(2, v*2)
	}
}

// InferRange computes a slider range for the dedicated slider-creation path.
// Explicit bounds win verbatim; otherwise the range is derived from the
// target's magnitude so that it always contains the target with visible
// headroom. Precision scales with the value's order of magnitude.
func InferRange(target, min, max *float64) SliderRange {
	var r SliderRange
	switch {
	case min != nil && max != nil:
		r.Min, r.Max = *min, *max
		if target != nil {
			r.Value = *target
		} else {
			r.Value = (r.Min + r.Max) / 2
		}
	case target != nil:
		t := *target
		r.Value = t
		switch {
		case t < 0:
			r.Min = math.Min(t*2, -10)
			r.Max = math.Max(10, math.Abs(t)*2)
		case t <= 1:
			r.Min = 0
			r.Max = math.Max(2, t*2)
		default:
			r.Min = 0
			r.Max = math.Max(t*2, t+10)
		}
	default:
		r.Min, r.Max = 0, 10
		r.Value = 5
	}

	// A single explicit bound narrows the inferred range but must not exclude
	// the value.
	if min != nil {
		r.Min = *min
	}
	if max != nil {
		r.Max = *max
	}
	if r.Value < r.Min {
		r.Min = r.Value
	}
	if r.Value > r.Max {
		r.Max = r.Value
	}

	r.Rounding = Precision(r.Value)
	return r
}

// Precision picks a rounding step from the magnitude of value so that the
// slider stays usably granular at any scale.
func Precision(value float64) float64 {
	abs := math.Abs(value)
	switch {
	case abs < 0.1:
		return 0.01
	case abs < 1.0:
		return 0.1
	default:
		return 0.5
	}
}
