package components

import "github.com/yohamta/donburi"

// Rand is the random source injected into AI and spawning decisions.
// *math/rand.Rand satisfies it.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// inclusiveSteps is the resolution of RangeInclusive.
const inclusiveSteps = 1 << 24

// RangeInclusive returns a value in [lo, hi] where both ends can be drawn.
func RangeInclusive(rng Rand, lo, hi float64) float64 {
	return lo + float64(rng.Intn(inclusiveSteps+1))/inclusiveSteps*(hi-lo)
}

type RNGData struct {
	Rand
}

// RNG is the singleton random source of a world.
var RNG = donburi.NewComponentType[RNGData]()
