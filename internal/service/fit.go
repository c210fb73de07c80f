package service

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Size guidance fallbacks
const (
	FitUnknown      = "I couldn't parse that. Try asking about jeans, tshirt, or shoe sizes."
	FitAskWaist     = "Tell me your waist (e.g., *30 inch* or *76 cm*) and I'll suggest a jeans size."
	FitAskChest     = "Share your chest size (in inches or cm) and I'll map it to T-shirt sizes."
	FitShoeFallback = "Common US sizes: **6-11**. If you know your **EU** size, tell me and I'll convert."
)

// SizePoint maps a letter size to its body measurement in inches
type SizePoint struct {
	Label  string
	Inches float64
}

// Size charts, smallest first. Ties resolve to the smaller size.
var (
	JeansWaistChart  = []SizePoint{{"XS", 26}, {"S", 28}, {"M", 30}, {"L", 32}, {"XL", 34}}
	TShirtChestChart = []SizePoint{{"XS", 34}, {"S", 36}, {"M", 38}, {"L", 40}, {"XL", 42}}
)

var (
	waistInchPattern  = measurementPattern("waist", `in|inch|inches`)
	waistCMPattern    = measurementPattern("waist", `cm|centimeter|centimeters`)
	waistPlainPattern = regexp.MustCompile(`waist\s*(\d+(?:\.\d+)?)\b`)
	chestInchPattern  = measurementPattern("chest", `in|inch|inches`)
	chestCMPattern    = measurementPattern("chest", `cm|centimeter|centimeters`)
	chestPlainPattern = regexp.MustCompile(`chest\s*(\d+(?:\.\d+)?)\b`)
	euShoePattern     = regexp.MustCompile(`\beu\s*(\d{2})\b`)
)

func measurementPattern(body, units string) *regexp.Regexp {
	return regexp.MustCompile(`(?:` + body + `\s*)?(\d+(?:\.\d+)?)[\s-]*(?:` + units + `)\b`)
}

// FitAdvisor answers size questions for jeans, T-shirts and shoes
type FitAdvisor struct{}

// NewFitAdvisor creates a new fit advisor
func NewFitAdvisor() *FitAdvisor {
	return &FitAdvisor{}
}

// Advise returns size guidance for a free-text question
func (f *FitAdvisor) Advise(text string) string {
	low := normalizeText(text)

	switch {
	case strings.Contains(low, "jean"):
		w, ok := measurement(low, waistInchPattern, waistCMPattern, waistPlainPattern)
		if !ok {
			return FitAskWaist
		}
		return fmt.Sprintf("For a **%.1f-inch waist**, try **%s** in jeans.", w, ClosestSize(JeansWaistChart, w))

	case strings.Contains(low, "t-shirt"), strings.Contains(low, "tshirt"),
		strings.Contains(low, "tee"), strings.Contains(low, "shirt"):
		c, ok := measurement(low, chestInchPattern, chestCMPattern, chestPlainPattern)
		if !ok {
			return FitAskChest
		}
		return fmt.Sprintf("For a **%.1f-inch chest**, try **%s** in T-shirts.", c, ClosestSize(TShirtChestChart, c))

	case strings.Contains(low, "shoe"), strings.Contains(low, "sneaker"):
		m := euShoePattern.FindStringSubmatch(low)
		if m == nil {
			return FitShoeFallback
		}
		eu, _ := strconv.Atoi(m[1])
		return fmt.Sprintf("EU %d is roughly **US %.1f**. Common US sizes we carry: **6-11**.", eu, EUToUS(eu))
	}

	return FitUnknown
}

// measurement reads a body measurement in inches, trying inch, centimeter
// and bare forms in that order
func measurement(text string, inch, cm, plain *regexp.Regexp) (float64, bool) {
	if m := inch.FindStringSubmatch(text); m != nil {
		return parseFloat(m[1])
	}
	if m := cm.FindStringSubmatch(text); m != nil {
		v, ok := parseFloat(m[1])
		return CMToInches(v), ok
	}
	if m := plain.FindStringSubmatch(text); m != nil {
		return parseFloat(m[1])
	}
	return 0, false
}

func parseFloat(s string) (float64, bool) {
	v, err := strconv.ParseFloat(s, 64)
	return v, err == nil
}

// CMToInches converts centimeters to inches rounded to one decimal
func CMToInches(cm float64) float64 {
	return roundTenth(cm / 2.54)
}

// EUToUS approximates a US shoe size from an EU size
func EUToUS(eu int) float64 {
	return roundTenth(float64(eu-33)*0.5 + 4)
}

// ClosestSize returns the chart label nearest to inches
func ClosestSize(chart []SizePoint, inches float64) string {
	best := ""
	bestDiff := math.Inf(1)
	for _, p := range chart {
		if d := math.Abs(p.Inches - inches); d < bestDiff {
			best, bestDiff = p.Label, d
		}
	}
	return best
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
