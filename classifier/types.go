package classifier

import (
	"fmt"
	"sort"

	"github.com/rocketman768/GliderWeatherBot/dijkstra"
	"github.com/rocketman768/GliderWeatherBot/grid"
	"github.com/rocketman768/GliderWeatherBot/gridgraph"
)

// Kind groups classifiers by the question they answer.
type Kind string

const (
	KindXC    Kind = "xc"
	KindWave  Kind = "wave"
	KindLocal Kind = "local"
)

// Kinds lists every kind in a stable order.
func Kinds() []Kind { return []Kind{KindXC, KindWave, KindLocal} }

// Inputs maps a RASP parameter name (e.g. "hwcrit") to its grid for one
// forecast time.
type Inputs map[string]*grid.Grid

// Require returns the named grids in order. Every grid must be present
// and all must share dimensions.
func (in Inputs) Require(params ...string) ([]*grid.Grid, error) {
	out := make([]*grid.Grid, len(params))
	fields := make([]grid.Field, len(params))
	for i, p := range params {
		g, ok := in[p]
		if !ok || g == nil {
			return nil, fmt.Errorf("%w: %q", ErrMissingParameter, p)
		}
		out[i] = g
		fields[i] = g
	}
	if !grid.SameDimensions(fields...) {
		return nil, fmt.Errorf("%w: %v", ErrDimensionMismatch, in.describe(params))
	}

	return out, nil
}

func (in Inputs) describe(params []string) []string {
	out := make([]string, 0, len(params))
	for _, p := range params {
		w, h := in[p].Dimensions()
		out = append(out, fmt.Sprintf("%s=%dx%d", p, w, h))
	}
	sort.Strings(out)

	return out
}

// Verdict is the outcome of classifying one forecast time.
type Verdict struct {
	Positive bool
	Score    float64
	Feature  []float64
	// Path is the route an XC verdict was scored on, nil for other kinds.
	Path *dijkstra.Path
}

// Classifier scores the grids of one forecast time.
type Classifier interface {
	// Name is the site calibration, e.g. "KCVH".
	Name() string
	Kind() Kind
	// RequiredParameters lists the RASP parameters Feature reads.
	RequiredParameters() []string
	Feature(in Inputs) ([]float64, error)
	Score(in Inputs) (float64, error)
	Classify(in Inputs) (Verdict, error)
	// Model returns the linear model in use.
	Model() Linear
}

// Params overrides a classifier's defaults. Nil and zero fields keep the
// calibrated values.
type Params struct {
	Weight    []float64
	Bias      *float64
	Threshold *float64

	// Start and End are the XC route endpoints.
	Start, End *grid.Coordinate
	// CostModel retunes the XC path cost.
	CostModel *gridgraph.CostModel
	// Site is the centre of the local region of interest.
	Site *grid.Coordinate
}

// apply returns def with the model overrides of p.
func (p Params) apply(def Linear) Linear {
	out := def
	if p.Weight != nil {
		out.Weight = append([]float64(nil), p.Weight...)
	}
	if p.Bias != nil {
		out.Bias = *p.Bias
	}
	if p.Threshold != nil {
		out.Threshold = *p.Threshold
	}

	return out
}
