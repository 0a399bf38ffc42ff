package riemann

import (
	"math"
)

// WaveSpeeds bound the five self similar regions in xi = (x - x0)/t
type WaveSpeeds struct {
	Head    float64 // Left edge of the rarefaction fan
	Tail    float64 // Right edge of the rarefaction fan
	Contact float64
	Shock   float64
}

type Region uint8

const (
	LeftState Region = iota
	RarefactionFan
	StarLeft
	StarRight
	RightState
)

var regionNames = []string{
	"Left State",
	"Rarefaction Fan",
	"Star Left",
	"Star Right",
	"Right State",
}

func (r Region) String() string {
	if int(r) < len(regionNames) {
		return regionNames[r]
	}
	return "Unknown Region"
}

func NewWaveSpeeds(left, right GasState, star StarState, gamma float64) (ws WaveSpeeds, err error) {
	var (
		cl = left.SoundSpeed(gamma)
		cr = right.SoundSpeed(gamma)
		c3 = math.Sqrt(gamma * star.P / star.RhoL)
	)
	ws = WaveSpeeds{
		Head:    left.U - cl,
		Tail:    star.U - c3,
		Contact: star.U,
		Shock: right.U + cr*math.Sqrt(
			((gamma+1.)/(2.*gamma))*(star.P/right.P)+(gamma-1.)/(2.*gamma)),
	}
	// The fan and shock formulas hold only for p_R <= p* <= p_L
	if !ws.Ordered() || star.P > left.P || star.P < right.P {
		err = &RegionClassificationError{Speeds: ws}
	}
	return
}

// Ordered reports head <= tail <= contact <= shock
func (ws WaveSpeeds) Ordered() bool {
	return ws.Head <= ws.Tail && ws.Tail <= ws.Contact && ws.Contact <= ws.Shock
}

// Classify places xi in exactly one region. Every interval is closed below
// and open above, so a point sitting on a wave belongs to the region on its
// right.
func (ws WaveSpeeds) Classify(xi float64) Region {
	switch {
	case xi < ws.Head:
		return LeftState
	case xi < ws.Tail:
		return RarefactionFan
	case xi < ws.Contact:
		return StarLeft
	case xi < ws.Shock:
		return StarRight
	default:
		return RightState
	}
}

// Positions returns the head, tail, contact and shock locations at time t
func (ws WaveSpeeds) Positions(x0, t float64) (x [4]float64) {
	for i, s := range ws.Slice() {
		x[i] = x0 + s*t
	}
	return
}

func (ws WaveSpeeds) Slice() []float64 {
	return []float64{ws.Head, ws.Tail, ws.Contact, ws.Shock}
}
