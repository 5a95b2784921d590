package classifier

import (
	"fmt"
	"math"

	"github.com/rocketman768/GliderWeatherBot/analytics"
	"github.com/rocketman768/GliderWeatherBot/grid"
)

// RASP parameters read by the wave classifier.
const (
	ParamPress500   = "press500"
	ParamPress700   = "press700"
	ParamPress850   = "press850"
	ParamCloudCover = "blcloudpct"
)

// Lift in fpm at or above which a cell counts as usable wave.
const waveLiftFPM = 150.0

var (
	waveMean = []float64{
		-375.6296296296296, -513.5555555555555, -616.0370370370371,
		398.0, 601.1111111111111, 676.5925925925926,
		0.025068635068635065, 0.024910644910644906, 0.035129391681659704,
	}
	waveStd = []float64{
		209.48245717201664, 280.6614321672517, 362.9489793224674,
		293.31376197335675, 342.8986820809311, 295.1233589232939,
		0.03235570269886821, 0.028779773140666973, 0.030252204765808442,
	}
)

// Wave scores wave potential over the whole forecast domain.
type Wave struct {
	model
}

func init() {
	Register(KindWave, "KCVH", func(p Params) (Classifier, error) { return NewKCVHWave(p) })
}

// KCVHWaveModel is the trained KCVH wave model.
func KCVHWaveModel() Linear {
	return Linear{
		Weight:    []float64{-0.1, -0.1, -0.1, 0.1, 0.1, 0.1, 0.2, 0.4, 0.4},
		Bias:      -1.579,
		Inclusive: true,
	}
}

// NewKCVHWave builds the KCVH wave classifier with p applied.
func NewKCVHWave(p Params) (*Wave, error) {
	lin := p.apply(KCVHWaveModel())
	if len(lin.Weight) != len(waveMean) {
		return nil, fmt.Errorf("%w: wave/KCVH wants %d weights, got %d", ErrWeightLength, len(waveMean), len(lin.Weight))
	}
	c := &Wave{}
	c.model = model{
		name:    "KCVH",
		kind:    KindWave,
		params:  []string{ParamPress500, ParamPress700, ParamPress850, ParamCloudCover},
		linear:  lin,
		feature: waveFeature,
	}

	return c, nil
}

// CloudFactor scales lift by cloud cover pct: 1 - (pct/100)^8. Thin
// cover barely matters; overcast kills the lift.
func CloudFactor(pct float64) float64 {
	return 1 - math.Pow(pct/100, 8)
}

// waveFeature is [min500, min700, min850, max500, max700, max850,
// liftArea500, liftArea700, liftArea850], each normalised.
func waveFeature(in Inputs) ([]float64, error) {
	gs, err := in.Require(ParamPress500, ParamPress700, ParamPress850, ParamCloudCover)
	if err != nil {
		return nil, err
	}
	press, cloud := gs[:3], gs[3]
	names := []string{ParamPress500, ParamPress700, ParamPress850}

	raw := make([]float64, 9)
	for i, g := range press {
		lo, hi, err := analytics.MinMax(g)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", names[i], err)
		}
		raw[i], raw[3+i] = lo, hi

		usable, err := grid.DeriveFrom(g, func(x, y int) float64 {
			return g.Value(x, y) * CloudFactor(cloud.Value(x, y))
		})
		if err != nil {
			return nil, err
		}
		area, err := analytics.AreaFraction(usable, func(v float64) bool { return v >= waveLiftFPM })
		if err != nil {
			return nil, err
		}
		raw[6+i] = area
	}

	return analytics.Normalize(raw, waveMean, waveStd)
}
