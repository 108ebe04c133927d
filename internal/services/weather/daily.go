package weather

import (
	"math"
	"slices"
	"time"
	"unicode"
	"unicode/utf8"

	"widget-weather/internal/models"
)

const (
	// MaxDailySummaries caps the number of days returned to the widgets.
	MaxDailySummaries = 10

	kelvinOffset = 273.15
	dateLayout   = "2006-01-02"
)

type dailyAccumulator struct {
	date          string
	tempMin       int
	tempMax       int
	conditions    []string
	precipitation int
}

// SummarizeDaily folds 3-hour samples into per-day summaries keyed by UTC date, in the order days
// are first seen, capped at MaxDailySummaries. The displayed condition is the day's first one.
func SummarizeDaily(samples []models.ForecastSample) []models.DailySummary {
	var days []*dailyAccumulator
	byDate := make(map[string]*dailyAccumulator)

	for _, sample := range samples {
		date := time.Unix(sample.TimestampUTC, 0).UTC().Format(dateLayout)
		tempMin := toCelsius(sample.TempMinKelvin)
		tempMax := toCelsius(sample.TempMaxKelvin)
		condition := capitalize(sample.Description)
		precipitation := int(math.Round(sample.RainMM + sample.SnowMM))

		day, ok := byDate[date]
		if !ok {
			day = &dailyAccumulator{
				date:          date,
				tempMin:       tempMin,
				tempMax:       tempMax,
				conditions:    []string{condition},
				precipitation: precipitation,
			}
			byDate[date] = day
			days = append(days, day)
			continue
		}

		day.tempMin = min(day.tempMin, tempMin)
		day.tempMax = max(day.tempMax, tempMax)
		if !slices.Contains(day.conditions, condition) {
			day.conditions = append(day.conditions, condition)
		}
		day.precipitation = max(day.precipitation, precipitation)
	}

	if len(days) > MaxDailySummaries {
		days = days[:MaxDailySummaries]
	}

	summaries := make([]models.DailySummary, 0, len(days))
	for _, day := range days {
		summaries = append(summaries, models.DailySummary{
			Date:          day.date,
			TempMin:       day.tempMin,
			TempMax:       day.tempMax,
			Condition:     day.conditions[0],
			Precipitation: day.precipitation,
		})
	}

	return summaries
}

func toCelsius(kelvin float64) int {
	return int(math.Round(kelvin - kelvinOffset))
}

// capitalize upper-cases the first rune only: "light rain showers" -> "Light rain showers".
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
