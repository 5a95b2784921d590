// Package gliderweatherbot decides from RASP (Regional Atmospheric Soaring
// Prediction) forecast grids whether a day is good for cross-country
// soaring, mountain wave or local soaring.
//
// The module is organised as flat packages, lowest layer first:
//
//	grid/        dense row-major int32 grid with validity sentinels and lazy derived surfaces
//	raspdata/    ASCII RASP grid decoder and provider file names
//	pgz/         compact zlib container for archived grids
//	analytics/   area fractions, integrals, min/max and feature statistics
//	gridgraph/   8-connected path-cost graph over ceiling and lift grids
//	dijkstra/    single-source shortest paths and best-path reconstruction
//	classifier/  linear XC, wave and local classifiers plus dataset evaluation
//
// Process plumbing lives under internal/ (config, observability,
// datasource, forecast) and the command-line front end under
// cmd/weatherbot:
//
//	weatherbot classify               # every enabled kind, one line per forecast day
//	weatherbot path -d OUT+0 -t 1400  # cheapest XC route through an archived forecast
//	weatherbot mirror -k wave -b      # archive today's RASP files as PGZ
//	weatherbot evaluate data.json     # precision and recall on a labelled dataset
//	weatherbot convert FILE...        # re-encode text grids as PGZ
//
// Library packages never log: they return sentinel errors wrapped with
// context, matched with errors.Is.
package gliderweatherbot
