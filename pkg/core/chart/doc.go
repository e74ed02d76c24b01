// Package chart provides the cartesian chart core that series are measured
// against.
//
// # Update loop
//
// [Chart.Update] runs one layout pass:
//
//  1. Every series reports its bounds through GetBounds; the results are
//     folded into the data bounds of the axes the series scales on.
//  2. A fresh [SeriesContext] assigns each bar series its column position
//     among the siblings that share its category axis.
//  3. Every series is measured. Measuring creates or mutates the visual of
//     each data point and registers it in [Chart.MeasuredDrawables].
//  4. Visuals that were not measured in this pass are detached from every
//     paint task, so points that disappeared stop drawing.
//
// The scalers used in step 3 are built from the bounds produced in step 1,
// which closes the layout loop.
//
// # Series base
//
// [SeriesBase] implements the generic parts of a series: value storage, the
// lazy [SeriesBase.Fetch] sequence of data points, and the raw data bounds.
// Concrete series types (see the series package) embed it and implement
// Measure and GetBounds.
package chart
