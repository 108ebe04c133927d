package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"widget-weather/internal/models"
)

func TestCityRepository_Resolve(t *testing.T) {
	repo := NewCityRepository()

	tests := []struct {
		city   string
		coords models.Coordinates
	}{
		{"Hanoi", models.Coordinates{Lat: 21.0285, Lon: 105.8542}},
		{"Ho Chi Minh City", models.Coordinates{Lat: 10.8231, Lon: 106.6297}},
		{"Ha Long Bay", models.Coordinates{Lat: 20.9101, Lon: 107.1839}},
		{"San Francisco", models.Coordinates{Lat: 37.7749, Lon: -122.4194}},
	}

	for _, tt := range tests {
		t.Run(tt.city, func(t *testing.T) {
			coords, ok := repo.Resolve(tt.city)
			assert.True(t, ok)
			assert.Equal(t, tt.coords, coords)
		})
	}
}

func TestCityRepository_ResolveUnknown(t *testing.T) {
	repo := NewCityRepository()

	for _, city := range []string{"", "Paris", "hanoi", " Hanoi", "San Francisco "} {
		_, ok := repo.Resolve(city)
		assert.False(t, ok, "city %q", city)
	}
}

func TestCityRepository_Names(t *testing.T) {
	repo := NewCityRepository()

	assert.Equal(t, []string{"Ha Long Bay", "Hanoi", "Ho Chi Minh City", "San Francisco"}, repo.Names())

	names := repo.Names()
	names[0] = "Atlantis"
	_, ok := repo.Resolve("Atlantis")
	assert.False(t, ok)
}
