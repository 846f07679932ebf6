package parsing

import (
	"regexp"
	"strconv"
)

var (
	yearsRangePattern  = regexp.MustCompile(`(\d+\.?\d*)\s*(?:-|to)\s*(\d+\.?\d*)`)
	singleValuePattern = regexp.MustCompile(`(\d+\.?\d*)`)
)

// defaultRequiredYears is assumed when a job posting does not state a
// usable experience requirement.
const defaultRequiredYears = 2.0

// RequiredYears parses a required-experience figure from free text such as
// "3-5 years", "4 to 6 years" or "5+ years of experience". Ranges resolve
// to their midpoint. Missing or non-positive figures default to 2 years.
func RequiredYears(text string) float64 {
	required := 0.0
	if m := yearsRangePattern.FindStringSubmatch(text); m != nil {
		low, _ := strconv.ParseFloat(m[1], 64)
		high, _ := strconv.ParseFloat(m[2], 64)
		required = (low + high) / 2.0
	} else if m := singleValuePattern.FindStringSubmatch(text); m != nil {
		required, _ = strconv.ParseFloat(m[1], 64)
	}

	if required <= 0 {
		return defaultRequiredYears
	}
	return required
}
