package rules

// Defaults returns the built-in rule set used when no asset directory is
// configured. The tables are small but exercise every rule feature:
// climate-gated landforms and layers, both stratum directions, province
// budgets and ore deposits.
func Defaults() *Tables {
	return &Tables{
		Landforms: []Landform{
			{
				Code:             "plains",
				MapColor:         "#7dab63",
				Weight:           3,
				OctaveAmplitudes: []float64{0.6, 0.3, 0.15},
				OctaveThresholds: []float64{0.1, 0.05, 0},
				HeightCurve:      Spline{{At: 0, Value: 0.455}},
			},
			{
				Code:             "hills",
				MapColor:         "#8a9a5b",
				Weight:           2,
				OctaveAmplitudes: []float64{0.9, 0.5, 0.25, 0.12},
				OctaveThresholds: []float64{0.15, 0.08, 0, 0},
				HeightCurve:      Spline{{At: 0, Value: 0.48}, {At: 0.6, Value: 0.53}, {At: 1, Value: 0.56}},
			},
			{
				Code:             "mountains",
				MapColor:         "#8d8578",
				Weight:           1.5,
				OctaveAmplitudes: []float64{1.2, 0.8, 0.4, 0.2, 0.1},
				OctaveThresholds: []float64{0.2, 0.1, 0.05, 0, 0},
				HeightCurve:      Spline{{At: 0.3, Value: 0.55}, {At: 0.65, Value: 0.62}, {At: 1, Value: 0.66}},
			},
			{
				Code:             "rift-valley",
				MapColor:         "#5b4a3f",
				Weight:           0.5,
				OctaveAmplitudes: []float64{0.5, 0.25},
				OctaveThresholds: []float64{0.1, 0},
				HeightCurve:      Spline{{At: 0, Value: 0.38}},
			},
			{
				Code:             "desert-flats",
				MapColor:         "#d8c06a",
				Weight:           1,
				UseClimate:       true,
				Climate:          Climate{MinTemp: 18, MaxTemp: 50, MinRain: 0, MaxRain: 90},
				OctaveAmplitudes: []float64{0.4, 0.2, 0.1},
				OctaveThresholds: []float64{0.05, 0, 0},
				HeightCurve:      Spline{{At: 0, Value: 0.45}},
			},
			{
				Code:             "tundra-plain",
				MapColor:         "#b8c4c9",
				Weight:           1,
				UseClimate:       true,
				Climate:          Climate{MinTemp: -50, MaxTemp: -8, MinRain: 0, MaxRain: 256},
				OctaveAmplitudes: []float64{0.5, 0.3, 0.15},
				OctaveThresholds: []float64{0.1, 0.05, 0},
				HeightCurve:      Spline{{At: 0, Value: 0.46}},
			},
		},
		Strata: []RockStratum{
			{
				BlockCode:   "deepbound:rock-sandstone",
				Group:       "sedimentary",
				Direction:   TopDown,
				Amplitudes:  []float64{1, 0.5},
				Thresholds:  []float64{0.25, 0.1},
				Frequencies: []float64{0.0008, 0.0021},
			},
			{
				BlockCode:   "deepbound:rock-limestone",
				Group:       "sedimentary",
				Direction:   TopDown,
				Amplitudes:  []float64{0.9, 0.45},
				Thresholds:  []float64{0.3, 0.1},
				Frequencies: []float64{0.0011, 0.0027},
			},
			{
				BlockCode:   "deepbound:rock-slate",
				Group:       "metamorphic",
				Direction:   TopDown,
				Amplitudes:  []float64{0.8, 0.4},
				Thresholds:  []float64{0.35, 0.15},
				Frequencies: []float64{0.0009, 0.0024},
			},
			{
				BlockCode:   "deepbound:rock-basalt",
				Group:       "volcanic",
				Direction:   BottomUp,
				Amplitudes:  []float64{0.9, 0.5},
				Thresholds:  []float64{0.3, 0.12},
				Frequencies: []float64{0.0007, 0.0019},
			},
			{
				BlockCode:   "deepbound:rock-granite",
				Group:       "plutonic",
				Direction:   BottomUp,
				Amplitudes:  []float64{1.1, 0.6},
				Thresholds:  []float64{0.15, 0.05},
				Frequencies: []float64{0.0007, 0.0023},
			},
		},
		Provinces: []Province{
			{
				Code:   "craton",
				Weight: 2,
				Budgets: map[string]float64{
					"sedimentary": 96,
					"metamorphic": 128,
					"volcanic":    64,
					"plutonic":    1024,
				},
			},
			{
				Code:   "orogen",
				Weight: 1,
				Budgets: map[string]float64{
					"sedimentary": 48,
					"metamorphic": 256,
					"volcanic":    160,
					"plutonic":    1024,
				},
			},
			{
				Code:   "basin",
				Weight: 1.5,
				Budgets: map[string]float64{
					"sedimentary": 320,
					"metamorphic": 64,
					"volcanic":    96,
					"plutonic":    1024,
				},
			},
		},
		BlockLayers: []BlockLayer{
			{
				BlockCode:    "deepbound:soil-peat",
				UseClimate:   true,
				Climate:      Climate{MinTemp: -50, MaxTemp: 50, MinRain: 225, MaxRain: 256},
				MinThickness: 1,
				MaxThickness: 3,
			},
			{
				BlockCode:    "deepbound:soil-grass",
				UseClimate:   true,
				Climate:      Climate{MinTemp: -12, MaxTemp: 35, MinRain: 70, MaxRain: 256},
				MinThickness: 1,
				MaxThickness: 2,
			},
			{
				BlockCode:    "deepbound:soil-sand",
				UseClimate:   true,
				Climate:      Climate{MinTemp: 15, MaxTemp: 50, MinRain: 0, MaxRain: 90},
				MinThickness: 2,
				MaxThickness: 4,
			},
			{
				BlockCode:    "deepbound:soil-gravel",
				UseClimate:   true,
				Climate:      Climate{MinTemp: -50, MaxTemp: -8, MinRain: 0, MaxRain: 256},
				MinThickness: 1,
				MaxThickness: 3,
			},
			{
				BlockCode:    "deepbound:soil-dirt",
				MinThickness: 2,
				MaxThickness: 4,
			},
			{
				BlockCode:    "deepbound:soil-clay",
				UseClimate:   true,
				Climate:      Climate{MinTemp: -50, MaxTemp: 50, MinRain: 180, MaxRain: 256},
				MinThickness: 1,
				MaxThickness: 2,
			},
		},
		Ores: []OreDeposit{
			{
				BlockCode: "deepbound:ore-iron",
				HostGroup: "plutonic",
				Frequency: 0.11,
				Threshold: 0.62,
			},
			{
				BlockCode: "deepbound:ore-copper",
				HostGroup: "volcanic",
				Frequency: 0.13,
				Threshold: 0.66,
			},
		},
	}
}
