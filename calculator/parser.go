package calculator

import (
	"math"
	"strconv"
	"strings"

	"fincalc/domain"
)

// ParseFloat converts a free-text amount, rate or period into a finite number.
// Surrounding whitespace is ignored. Range is not checked.
func ParseFloat(field, raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, domain.NewInvalidNumber(field, raw)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || !isFinite(v) {
		return 0, domain.NewInvalidNumber(field, raw)
	}
	return v, nil
}

// ParseCount converts a free-text integer count such as a compounding frequency.
func ParseCount(field, raw string) (int, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, domain.NewInvalidNumber(field, raw)
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, domain.NewInvalidNumber(field, raw)
	}
	return v, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func allFinite(values ...float64) bool {
	for _, v := range values {
		if !isFinite(v) {
			return false
		}
	}
	return true
}

// fields pulls values out of a RawInputSet, applying defaults for absent keys
// and remembering the first parse failure.
type fields struct {
	raw domain.RawInputSet
	err error
}

func (f *fields) value(name string) string {
	if v, ok := f.raw[name]; ok {
		return v
	}
	return defaults[name]
}

func (f *fields) float(name string) float64 {
	if f.err != nil {
		return 0
	}
	v, err := ParseFloat(name, f.value(name))
	if err != nil {
		f.err = err
	}
	return v
}

func (f *fields) count(name string) int {
	if f.err != nil {
		return 0
	}
	v, err := ParseCount(name, f.value(name))
	if err != nil {
		f.err = err
	}
	return v
}
