package classifier

import (
	"fmt"
	"math"

	"github.com/rocketman768/GliderWeatherBot/analytics"
	"github.com/rocketman768/GliderWeatherBot/grid"
)

// RASP parameters read by the local classifier.
const (
	ParamCuPotential = "zsfclcldif"
	ParamCuBase      = "zsfclcl"
	ParamSunPct      = "sfcsunpct"
)

// KCVH airfield on the hollister grid.
var KCVHSite = grid.C(15, 91)

const (
	feetPerKM = 3281.0
	// Glide ratio reported for cells outside the region of interest.
	outsideGlideRatio = 9999.0
	// Mean glide ratio used when no sunny cumulus is forecast.
	noCuGlideRatio = 60.0
)

var (
	localMean = []float64{0.15390316205533594, 34.15506672965842, 5078.433048507441}
	localStd  = []float64{0.06218479626157944, 11.551840246133619, 1535.9700754572946}
)

// Local scores soaring around a single site: how much of the area within
// final glide is reachable and how high and close the cumulus is.
type Local struct {
	model
	Site         grid.Coordinate
	ResolutionKM float64
	// RadiusKM bounds the region of interest: 30:1 from 8000 ft.
	RadiusKM float64
}

func init() {
	Register(KindLocal, "KCVH", func(p Params) (Classifier, error) { return NewKCVHLocal(p) })
}

// KCVHLocalModel is the trained KCVH local model.
func KCVHLocalModel() Linear {
	return Linear{
		Weight:    []float64{0.96896464, -0.41886308, 1.04899457},
		Bias:      -0.351320757116,
		Inclusive: true,
	}
}

// NewKCVHLocal builds the KCVH local classifier with p applied.
func NewKCVHLocal(p Params) (*Local, error) {
	lin := p.apply(KCVHLocalModel())
	if len(lin.Weight) != len(localMean) {
		return nil, fmt.Errorf("%w: local/KCVH wants %d weights, got %d", ErrWeightLength, len(localMean), len(lin.Weight))
	}
	c := &Local{
		Site:         KCVHSite,
		ResolutionKM: 4,
		RadiusKM:     8000.0 / feetPerKM * 30.0,
	}
	if p.Site != nil {
		c.Site = *p.Site
	}
	c.model = model{
		name:    "KCVH",
		kind:    KindLocal,
		params:  []string{ParamHcrit, ParamCuPotential, ParamCuBase, ParamSunPct},
		linear:  lin,
		feature: c.kcvhFeature,
	}

	return c, nil
}

// DistanceKM is the ground distance from Site to (x, y).
func (c *Local) DistanceKM(x, y int) float64 {
	return c.ResolutionKM * math.Hypot(float64(x-c.Site.X), float64(y-c.Site.Y))
}

// InRegion reports whether (x, y) lies inside the region of interest.
func (c *Local) InRegion(x, y int) bool {
	return c.DistanceKM(x, y) < c.RadiusKM
}

// kcvhFeature is [areaWhereGlideRatioIsSmall, avgSunnyCuGlideRatio,
// avgSunnyCuBase], each normalised.
func (c *Local) kcvhFeature(in Inputs) ([]float64, error) {
	gs, err := in.Require(ParamHcrit, ParamCuPotential, ParamCuBase, ParamSunPct)
	if err != nil {
		return nil, err
	}
	hcrit, cuPot, cuBase, sun := gs[0], gs[1], gs[2], gs[3]

	roi, err := grid.DeriveFrom(hcrit, func(x, y int) float64 {
		if c.InRegion(x, y) {
			return 1
		}
		return 0
	})
	if err != nil {
		return nil, err
	}
	roiArea, err := analytics.AreaFraction(roi, func(v float64) bool { return v > 0 })
	if err != nil {
		return nil, err
	}
	if roiArea == 0 {
		return nil, fmt.Errorf("%w: site %v radius %.1f km", ErrEmptyRegion, c.Site, c.RadiusKM)
	}

	// Glide ratio needed to reach the site from the top of the lift.
	glide, err := grid.DeriveFrom(hcrit, func(x, y int) float64 {
		if !c.InRegion(x, y) {
			return outsideGlideRatio
		}
		return c.DistanceKM(x, y) / (hcrit.Value(x, y) / feetPerKM)
	})
	if err != nil {
		return nil, err
	}
	small, err := analytics.AreaFraction(glide, func(v float64) bool { return v < 30 })
	if err != nil {
		return nil, err
	}

	// 1 where cumulus is likely, the sun is out and the cell is in range.
	sunnyCu, err := grid.DeriveFrom(hcrit, func(x, y int) float64 {
		if c.InRegion(x, y) && sun.Value(x, y) > 40 && cuPot.Value(x, y) > 300 {
			return 1
		}
		return 0
	})
	if err != nil {
		return nil, err
	}
	sunnyCuArea := analytics.Integral(sunnyCu, nil)

	avgGlide := noCuGlideRatio
	if sunnyCuArea > 0 {
		avgGlide = analytics.Integral(sunnyCu, func(x, y int, v float64) float64 {
			if v == 0 {
				return 0
			}
			return c.DistanceKM(x, y) / (cuBase.Value(x, y) / feetPerKM)
		}) / sunnyCuArea
	}
	avgBase := analytics.Integral(sunnyCu, func(x, y int, v float64) float64 {
		return v * cuBase.Value(x, y)
	}) / (sunnyCuArea + 0.001)

	raw := []float64{small / roiArea, avgGlide, avgBase}

	return analytics.Normalize(raw, localMean, localStd)
}
