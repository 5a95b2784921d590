// Package classifier turns the forecast grids for one local time into a
// feature vector and scores it with a linear model.
//
// Three kinds of classifier exist:
//
//	xc    – best-path ceiling profile between two cells (hwcrit, wblmaxmin).
//	wave  – wave lift at 500/700/850 mb modulated by cloud cover.
//	local – glide-ratio and sunny-cumulus statistics around a site.
//
// Each kind has a registry of named site calibrations. "KCVH" is
// registered for all three:
//
//	c, err := classifier.New(classifier.KindXC, "KCVH", classifier.Params{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	v, err := c.Classify(inputs)
//
// Feature order and normalisation constants are part of each model's
// contract: trained weights are only meaningful against them.
//
// Weights, bias and threshold are plain Params passed to the constructor.
// This package never reads the environment.
package classifier
