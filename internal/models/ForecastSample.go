package models

// ForecastSample is one provider-reported interval (3 hours for OpenWeatherMap).
type ForecastSample struct {
	TimestampUTC  int64   `json:"dt" example:"1717200000"`
	TempMinKelvin float64 `json:"temp_min" example:"288.0"`
	TempMaxKelvin float64 `json:"temp_max" example:"300.0"`
	Description   string  `json:"description" example:"light rain"`
	RainMM        float64 `json:"rain_mm" example:"4"`
	SnowMM        float64 `json:"snow_mm" example:"0"`
}
