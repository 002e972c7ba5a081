package tenure

import (
	"fmt"
	"math"
	"strings"
)

// Unit is the unit a tenure is entered in
type Unit string

const (
	Months Unit = "months"
	Years  Unit = "years"
)

// MonthsPerYear is the number of payment periods in a year
const MonthsPerYear = 12

// integralTolerance absorbs float noise such as 1.1*12 = 13.200000000000001.
const integralTolerance = 1e-9

// ParseUnit resolves a user supplied unit. An empty string means months.
func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "m", "mo", "month", "months":
		return Months, nil
	case "y", "yr", "yrs", "year", "years":
		return Years, nil
	default:
		return "", fmt.Errorf("unknown tenure unit %q: use 'months' or 'years'", s)
	}
}

// ToMonths converts a tenure to a whole number of monthly periods.
// Tenures that do not land on a whole month are rejected.
func ToMonths(value float64, unit Unit) (int, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, fmt.Errorf("tenure must be a finite number")
	}

	months := value
	switch unit {
	case Months, "":
	case Years:
		months = value * MonthsPerYear
	default:
		return 0, fmt.Errorf("unknown tenure unit %q", unit)
	}

	rounded := math.Round(months)
	if math.Abs(months-rounded) > integralTolerance {
		return 0, fmt.Errorf("tenure of %v %s is not a whole number of months", value, unitOrMonths(unit))
	}
	if rounded <= 0 {
		return 0, fmt.Errorf("tenure must be positive, got %v %s", value, unitOrMonths(unit))
	}
	if rounded > math.MaxInt32 {
		return 0, fmt.Errorf("tenure of %v %s is too long", value, unitOrMonths(unit))
	}
	return int(rounded), nil
}

// Describe renders a month count as years and months, e.g. "1 yr 2 mo".
func Describe(months int) string {
	if months <= 0 {
		return "0 mo"
	}
	years, rest := months/MonthsPerYear, months%MonthsPerYear

	var parts []string
	switch {
	case years == 1:
		parts = append(parts, "1 yr")
	case years > 1:
		parts = append(parts, fmt.Sprintf("%d yrs", years))
	}
	if rest > 0 {
		parts = append(parts, fmt.Sprintf("%d mo", rest))
	}
	return strings.Join(parts, " ")
}

func unitOrMonths(u Unit) Unit {
	if u == "" {
		return Months
	}
	return u
}
