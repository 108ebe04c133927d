package models

import "fmt"

type Coordinates struct {
	Lat float64 `json:"lat" example:"21.0285"`
	Lon float64 `json:"lon" example:"105.8542"`
}

func (c Coordinates) RequestParams() string {
	return fmt.Sprintf("lat: %.4f lon: %.4f", c.Lat, c.Lon)
}
