package components

// scriptedRand replays fixed values so tests can steer random choices.
// It repeats the last value once a script runs out.
type scriptedRand struct {
	floats []float64
	ints   []int
}

func (r *scriptedRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0
	}
	v := r.floats[0]
	if len(r.floats) > 1 {
		r.floats = r.floats[1:]
	}
	return v
}

func (r *scriptedRand) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0]
	if len(r.ints) > 1 {
		r.ints = r.ints[1:]
	}
	return v % n
}
