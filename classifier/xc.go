package classifier

import (
	"fmt"

	"github.com/rocketman768/GliderWeatherBot/dijkstra"
	"github.com/rocketman768/GliderWeatherBot/grid"
	"github.com/rocketman768/GliderWeatherBot/gridgraph"
)

// RASP parameters read by the XC classifier.
const (
	ParamHcrit = "hwcrit"
	ParamVvert = "wblmaxmin"
)

// KCVH route endpoints on the norcal-coast grid, y = 0 at the south edge.
var (
	ReleaseRanch  = grid.C(19, 80)
	BlackMountain = grid.C(24, 56)
)

// XC scores a cross-country route: the cheapest path between Start and
// End through the lift field, summarised by the ceiling along it.
type XC struct {
	model
	Start, End grid.Coordinate
	CostModel  gridgraph.CostModel
}

func init() {
	Register(KindXC, "KCVH", func(p Params) (Classifier, error) { return NewKCVHXC(p) })
}

// KCVHXCModel is the trained XC model for the Hollister to Black Mountain
// route.
func KCVHXCModel() Linear {
	return Linear{
		Weight: []float64{0.60975023, 0.51193634, 0.43192924},
		Bias:   -1.06425298269,
	}
}

// NewKCVHXC builds the KCVH XC classifier with p applied.
func NewKCVHXC(p Params) (*XC, error) {
	c := &XC{
		Start:     ReleaseRanch,
		End:       BlackMountain,
		CostModel: gridgraph.DefaultCostModel(),
	}
	if p.Start != nil {
		c.Start = *p.Start
	}
	if p.End != nil {
		c.End = *p.End
	}
	if p.CostModel != nil {
		c.CostModel = *p.CostModel
	}
	if err := c.CostModel.Validate(); err != nil {
		return nil, err
	}
	lin := p.apply(KCVHXCModel())
	if len(lin.Weight) != 3 {
		return nil, fmt.Errorf("%w: xc/KCVH wants 3 weights, got %d", ErrWeightLength, len(lin.Weight))
	}
	c.model = model{
		name:    "KCVH",
		kind:    KindXC,
		params:  []string{ParamHcrit, ParamVvert},
		linear:  lin,
		feature: c.kcvhFeature,
	}

	return c, nil
}

// Route returns the cheapest path from Start to End.
func (c *XC) Route(in Inputs) (*dijkstra.Path, error) {
	gs, err := in.Require(ParamHcrit, ParamVvert)
	if err != nil {
		return nil, err
	}
	g, err := gridgraph.New(gs[0], gs[1], gridgraph.WithCostModel(c.CostModel))
	if err != nil {
		return nil, err
	}

	return dijkstra.BestPath(g, c.Start, c.End)
}

// Classify scores the route once and keeps it on the verdict.
func (c *XC) Classify(in Inputs) (Verdict, error) {
	path, err := c.Route(in)
	if err != nil {
		return Verdict{}, fmt.Errorf("xc/%s route: %w", c.name, err)
	}
	f, err := c.profileFeature(path, in)
	if err != nil {
		return Verdict{}, fmt.Errorf("xc/%s feature: %w", c.name, err)
	}
	s, err := c.linear.Score(f)
	if err != nil {
		return Verdict{}, err
	}

	return Verdict{Positive: c.linear.Positive(s), Score: s, Feature: f, Path: path}, nil
}

// Score implements Classifier.
func (c *XC) Score(in Inputs) (float64, error) {
	v, err := c.Classify(in)

	return v.Score, err
}

func (c *XC) kcvhFeature(in Inputs) ([]float64, error) {
	path, err := c.Route(in)
	if err != nil {
		return nil, err
	}

	return c.profileFeature(path, in)
}

// profileFeature normalises the max, mean and min ceiling along path.
func (c *XC) profileFeature(path *dijkstra.Path, in Inputs) ([]float64, error) {
	prof, err := path.Profile(in[ParamHcrit])
	if err != nil {
		return nil, err
	}

	return []float64{
		(prof.Max - 6579.0) / 2280.0,
		(prof.Avg - 5689.0) / 2206.0,
		(prof.Min - 4711.0) / 2154.0,
	}, nil
}
