/*
 * diagnose.go, part of colloids
 *
 * Copyright 2024 the colloids authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 */

// Package diagnose renders two quick-look plots over a PNG boundary:
// the radial distribution function computed by package particles, and
// a histogram of a per-particle BOO invariant such as Q6. Nothing here
// feeds back into the analysis pipeline; it exists purely so a user can
// eyeball whether a run looks sane.
package diagnose

import (
	"fmt"

	"github.com/yusrishaharin/colloids"
	"github.com/yusrishaharin/colloids/particles"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

func basicPlot(title, xLabel, yLabel string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	p.Add(plotter.NewGrid())
	return p
}

// PlotRdf renders g(r) against r as a line plot and saves it to
// filename as a 5x5 inch PNG.
func PlotRdf(rdf *particles.Rdf, filename string) error {
	p := basicPlot("Radial distribution function", "r", "g(r)")
	pts := make(plotter.XYs, len(rdf.R))
	for i := range rdf.R {
		pts[i].X = rdf.R[i]
		pts[i].Y = rdf.G[i]
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return colloids.NewError(fmt.Sprintf("diagnose: PlotRdf: %v", err), true)
	}
	p.Add(line)
	if err := p.Save(5*vg.Inch, 5*vg.Inch, filename); err != nil {
		return colloids.NewError(fmt.Sprintf("diagnose: PlotRdf: %v", err), true)
	}
	return nil
}

// PlotHistogram renders values as an nBins-bin histogram titled with
// label (e.g. "Q6") and saves it to filename.
func PlotHistogram(values []float64, nBins int, label, filename string) error {
	p := basicPlot(label+" distribution", label, "count")
	h, err := plotter.NewHist(plotter.Values(values), nBins)
	if err != nil {
		return colloids.NewError(fmt.Sprintf("diagnose: PlotHistogram: %v", err), true)
	}
	p.Add(h)
	if err := p.Save(5*vg.Inch, 5*vg.Inch, filename); err != nil {
		return colloids.NewError(fmt.Sprintf("diagnose: PlotHistogram: %v", err), true)
	}
	return nil
}

// Summary reports the mean and standard deviation of values, the
// numeric backing for a diagnostic log line printed alongside a
// histogram plot.
func Summary(values []float64) (mean, stddev float64) {
	return stat.MeanStdDev(values, nil)
}
