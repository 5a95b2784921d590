package gridgraph

import "math"

// Equivalent converts a mean lift ceiling hval (ft) and a mean vertical
// velocity vval (fpm) into a single equivalent climb rate (fpm).
func (m CostModel) Equivalent(hval, vval float64) float64 {
	return vval + ((hval-m.RefHeight)/m.HeightScale)*m.HeightClimb
}

// DistanceRatio is the factor by which equiv scales geometric distance.
// It is positive and strictly decreasing in equiv.
func (m CostModel) DistanceRatio(equiv float64) float64 {
	return math.Exp(-equiv / m.ClimbScale)
}

// EdgeWeight is the cost of travelling dist cells between two endpoints
// with ceilings hu, hv and vertical velocities vu, vv. Swapping the
// endpoints leaves the result unchanged. Very weak lift may overflow to
// +Inf, which callers treat as impassable.
func (m CostModel) EdgeWeight(hu, hv, vu, vv, dist float64) float64 {
	hval := (hu + hv) / 2
	vval := (vu + vv) / 2

	return m.DistanceRatio(m.Equivalent(hval, vval)) * dist
}
