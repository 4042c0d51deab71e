package metrics

import (
	"math"
	"reflect"

	"github.com/kjustin2/Financial-Adviser-App-sub000/internal/model"
)

// finite maps NaN and ±Inf to 0.
func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// sum adds values, treating non-finite entries as 0.
func sum(values ...float64) float64 {
	var total float64
	for _, v := range values {
		total += finite(v)
	}
	return finite(total)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// percentOf returns part/whole*100, or 0 when whole is not positive.
func percentOf(part, whole float64) float64 {
	if !(whole > 0) {
		return 0
	}
	return finite(finite(part) / whole * 100)
}

// sanitize zeroes every non-finite float in m, including nested breakdowns.
func sanitize(m model.Metrics) model.Metrics {
	zeroNonFinite(reflect.ValueOf(&m).Elem())
	return m
}

func zeroNonFinite(v reflect.Value) {
	switch v.Kind() {
	case reflect.Float64:
		if f := v.Float(); math.IsNaN(f) || math.IsInf(f, 0) {
			v.SetFloat(0)
		}
	case reflect.Struct:
		for i := 0; i < v.NumField(); i++ {
			zeroNonFinite(v.Field(i))
		}
	}
}
