package noise

import "math"

// Hash mixes the seed and the given lattice coordinates into 64 uniformly
// distributed bits using the splitmix64 finalizer.
func Hash(seed int64, coords ...int64) uint64 {
	h := mix64(uint64(seed))
	for _, c := range coords {
		h = mix64(h ^ mix64(uint64(c)))
	}
	return h
}

// Hash01 maps Hash onto [0, 1).
func Hash01(seed int64, coords ...int64) float64 {
	return float64(Hash(seed, coords...)>>11) / float64(1<<53)
}

// Cellular returns Voronoi cell-value noise in [-1, 1): the hashed value of
// the nearest jittered feature point on the lattice scaled by frequency.
// Cells form irregular blobs of constant value, which makes thresholding
// the result carve out clustered deposits. channel decorrelates independent
// users of the same purpose.
func (f *Field) Cellular(p Purpose, channel int, x, y, frequency float64) float64 {
	seed := f.SubSeed(p) + int64(channel)*octaveStride
	px := x * frequency
	py := y * frequency
	cx := int64(math.Floor(px))
	cy := int64(math.Floor(py))

	best := math.MaxFloat64
	value := 0.0
	for dx := int64(-1); dx <= 1; dx++ {
		for dy := int64(-1); dy <= 1; dy++ {
			nx := cx + dx
			ny := cy + dy
			h := hash2(seed, nx, ny)
			fx := float64(nx) + float64(h&0xFFFF)/0x10000
			fy := float64(ny) + float64((h>>16)&0xFFFF)/0x10000
			ddx := px - fx
			ddy := py - fy
			if d := ddx*ddx + ddy*ddy; d < best {
				best = d
				value = float64((h>>32)&0xFFFF)/0x8000 - 1
			}
		}
	}
	return value
}

func hash2(seed, x, y int64) uint64 {
	h := mix64(uint64(seed))
	h = mix64(h ^ mix64(uint64(x)))
	return mix64(h ^ mix64(uint64(y)))
}

func mix64(v uint64) uint64 {
	v += 0x9e3779b97f4a7c15
	v = (v ^ (v >> 30)) * 0xbf58476d1ce4e5b9
	v = (v ^ (v >> 27)) * 0x94d049bb133111eb
	return v ^ (v >> 31)
}
