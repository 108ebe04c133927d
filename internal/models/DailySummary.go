package models

// DailySummary is the display-ready forecast of one UTC calendar day.
type DailySummary struct {
	Date          string `json:"date" example:"2024-06-01"`
	TempMin       int    `json:"tempMin" example:"15"`
	TempMax       int    `json:"tempMax" example:"27"`
	Condition     string `json:"condition" example:"Clear sky"`
	Precipitation int    `json:"precipitation" example:"4"`
}

// CityForecast is the response body of the weather endpoint.
type CityForecast struct {
	City  string         `json:"city" example:"Hanoi"`
	Daily []DailySummary `json:"daily"`
}
