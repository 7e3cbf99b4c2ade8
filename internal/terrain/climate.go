package terrain

import (
	"github.com/marc-cr1810/deepbound/internal/noise"
	"github.com/marc-cr1810/deepbound/internal/world"
)

const (
	climateCellSize = 32
	temperatureFreq = 1.0 / 1800.0
	rainfallFreq    = 1.0 / 1300.0
	tempDitherAmp   = 3.0
	rainDitherAmp   = 8.0

	minTemperature = -50.0
	maxTemperature = 50.0
	maxRainfall    = 256.0
)

// climate samples the coarse climate for column x: temperature in
// degrees, rainfall in 0..256. Values are constant across each 32-column
// block so climate-gated rules cannot flicker at single-column width.
func (g *Generator) climate(x int) (temp, rain float64) {
	cx := float64(world.FloorDiv(x, climateCellSize) * climateCellSize)
	temp = g.field.Smooth(noise.Temperature, cx*temperatureFreq) * maxTemperature
	rain = (g.field.Smooth(noise.Rainfall, cx*rainfallFreq) + 1) * (maxRainfall / 2)
	return temp, rain
}

// ditherClimate perturbs the coarse climate per column. Landform gating
// reads the coarse values; soil gating and the chunk output carry the
// dither, so layer edges and reported climate vary column by column
// instead of stepping every climate cell.
func (g *Generator) ditherClimate(x int, temp, rain float64) (float64, float64) {
	temp += (noise.Hash01(g.field.SubSeed(noise.TempDither), int64(x)) - 0.5) * 2 * tempDitherAmp
	rain += (noise.Hash01(g.field.SubSeed(noise.RainDither), int64(x)) - 0.5) * 2 * rainDitherAmp
	return clampRange(temp, minTemperature, maxTemperature), clampRange(rain, 0, maxRainfall)
}

func clampRange(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
