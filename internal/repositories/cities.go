package repositories

import (
	"slices"

	"widget-weather/internal/models"
)

var knownCities = map[string]models.Coordinates{
	"Hanoi":            {Lat: 21.0285, Lon: 105.8542},
	"Ho Chi Minh City": {Lat: 10.8231, Lon: 106.6297},
	"Ha Long Bay":      {Lat: 20.9101, Lon: 107.1839},
	"San Francisco":    {Lat: 37.7749, Lon: -122.4194},
}

// CityRepository resolves the fixed set of cities the widgets display. Names match exactly.
type CityRepository struct {
	cities map[string]models.Coordinates
}

func NewCityRepository() *CityRepository {
	return &CityRepository{cities: knownCities}
}

func (c *CityRepository) Resolve(city string) (models.Coordinates, bool) {
	coords, ok := c.cities[city]
	return coords, ok
}

// Names returns the known city names in alphabetical order.
func (c *CityRepository) Names() []string {
	names := make([]string, 0, len(c.cities))
	for name := range c.cities {
		names = append(names, name)
	}
	slices.Sort(names)

	return names
}
