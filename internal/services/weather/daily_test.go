package weather

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"widget-weather/internal/models"
)

const (
	june1  int64 = 1717200000 // 2024-06-01T00:00:00Z
	day    int64 = 86400
	hours3       = 3 * 3600
)

func TestSummarizeDaily_LaterSampleUpdatesMinAndMax(t *testing.T) {
	samples := []models.ForecastSample{
		{TimestampUTC: june1, TempMinKelvin: 290, TempMaxKelvin: 298, Description: "clear sky"},
		{TimestampUTC: june1 + hours3, TempMinKelvin: 288, TempMaxKelvin: 300, Description: "light rain", RainMM: 4},
	}

	got := SummarizeDaily(samples)

	assert.Equal(t, []models.DailySummary{
		{Date: "2024-06-01", TempMin: 15, TempMax: 27, Condition: "Clear sky", Precipitation: 4},
	}, got)
}

func TestSummarizeDaily_Empty(t *testing.T) {
	for _, samples := range [][]models.ForecastSample{nil, {}} {
		got := SummarizeDaily(samples)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	}
}

func TestSummarizeDaily_CapsAtTenDaysInFirstSeenOrder(t *testing.T) {
	var samples []models.ForecastSample
	// Days 11 and 0 first, then 1..10, so first-seen order differs from date order.
	for _, d := range []int64{11, 0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10} {
		samples = append(samples, models.ForecastSample{
			TimestampUTC:  june1 + d*day,
			TempMinKelvin: 280,
			TempMaxKelvin: 290,
			Description:   "overcast clouds",
		})
	}

	got := SummarizeDaily(samples)

	require.Len(t, got, MaxDailySummaries)
	assert.Equal(t, "2024-06-12", got[0].Date)
	assert.Equal(t, "2024-06-01", got[1].Date)
	assert.Equal(t, "2024-06-09", got[9].Date)
}

func TestSummarizeDaily_GroupsByUTCDate(t *testing.T) {
	samples := []models.ForecastSample{
		{TimestampUTC: june1 - 1, TempMinKelvin: 283.15, TempMaxKelvin: 283.15, Description: "mist"},
		{TimestampUTC: june1, TempMinKelvin: 293.15, TempMaxKelvin: 293.15, Description: "haze"},
		{TimestampUTC: june1 + day - 1, TempMinKelvin: 273.15, TempMaxKelvin: 303.15, Description: "haze"},
	}

	got := SummarizeDaily(samples)

	assert.Equal(t, []models.DailySummary{
		{Date: "2024-05-31", TempMin: 10, TempMax: 10, Condition: "Mist"},
		{Date: "2024-06-01", TempMin: 0, TempMax: 30, Condition: "Haze"},
	}, got)
}

func TestSummarizeDaily_PrecipitationIsDailyMaximum(t *testing.T) {
	samples := []models.ForecastSample{
		{TimestampUTC: june1, Description: "rain", RainMM: 2.4},
		{TimestampUTC: june1 + hours3, Description: "rain", RainMM: 6.6},
		{TimestampUTC: june1 + 2*hours3, Description: "rain", RainMM: 3},
	}

	got := SummarizeDaily(samples)

	require.Len(t, got, 1)
	assert.Equal(t, 7, got[0].Precipitation)
}

func TestSummarizeDaily_RainAndSnowRoundedTogether(t *testing.T) {
	samples := []models.ForecastSample{
		{TimestampUTC: june1, Description: "rain and snow", RainMM: 0.3, SnowMM: 0.3},
	}

	got := SummarizeDaily(samples)

	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0].Precipitation)
}

func TestSummarizeDaily_ConditionIsFirstOfDay(t *testing.T) {
	samples := []models.ForecastSample{
		{TimestampUTC: june1, Description: "broken clouds"},
		{TimestampUTC: june1 + hours3, Description: "heavy intensity rain"},
		{TimestampUTC: june1 + 2*hours3, Description: "broken clouds"},
	}

	got := SummarizeDaily(samples)

	require.Len(t, got, 1)
	assert.Equal(t, "Broken clouds", got[0].Condition)
}

func TestSummarizeDaily_Idempotent(t *testing.T) {
	samples := []models.ForecastSample{
		{TimestampUTC: june1, TempMinKelvin: 295.4, TempMaxKelvin: 301.7, Description: "few clouds", SnowMM: 1.2},
		{TimestampUTC: june1 + day, TempMinKelvin: 294.1, TempMaxKelvin: 300.2, Description: "scattered clouds"},
	}

	assert.Equal(t, SummarizeDaily(samples), SummarizeDaily(samples))
}

func TestToCelsius(t *testing.T) {
	tests := []struct {
		kelvin float64
		want   int
	}{
		{273.15, 0},
		{288.0, 15},
		{300.0, 27},
		{263.15, -10},
		{0, -273},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, toCelsius(tt.kelvin), "kelvin %v", tt.kelvin)
	}
}

func TestCapitalize(t *testing.T) {
	tests := map[string]string{
		"clear sky":  "Clear sky",
		"Clear sky":  "Clear sky",
		"":           "",
		"éclaircies": "Éclaircies",
		"light RAIN": "Light RAIN",
		"1 cloud":    "1 cloud",
	}

	for in, want := range tests {
		assert.Equal(t, want, capitalize(in), in)
	}
}
