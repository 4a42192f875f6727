package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineIdenticalPoints(t *testing.T) {
	points := [][2]float64{
		{0, 0},
		{28.6139, 77.2090},
		{-33.8688, 151.2093},
	}
	for _, p := range points {
		assert.Equal(t, 0.0, Haversine(p[0], p[1], p[0], p[1]))
	}
}

func TestHaversineSymmetry(t *testing.T) {
	d1 := Haversine(28.6139, 77.2090, 19.0760, 72.8777)
	d2 := Haversine(19.0760, 72.8777, 28.6139, 77.2090)
	assert.Equal(t, d1, d2)
}

func TestHaversineKnownDistance(t *testing.T) {
	// One degree of longitude along the equator is roughly 111.19 km.
	d := Haversine(0, 0, 0, 1)
	assert.InDelta(t, 111.19, d, 0.1)

	// Delhi to Mumbai is roughly 1150 km.
	d = Haversine(28.6139, 77.2090, 19.0760, 72.8777)
	assert.InDelta(t, 1150, d, 20)
}

func TestProximityFactor(t *testing.T) {
	assert.Equal(t, 1.0, ProximityFactor(0, 2000))
	assert.Equal(t, 0.5, ProximityFactor(1000, 2000))
	assert.Equal(t, 0.0, ProximityFactor(2000, 2000))
	assert.Equal(t, 0.0, ProximityFactor(5000, 2000))
}
