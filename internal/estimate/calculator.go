// Package estimate turns roof measurements and a price catalog into an
// itemized quote. Every catalog row is quantified against the measured
// geometry by a fixed rule table, priced, and partitioned into required
// materials and optional upgrades.
package estimate

import (
	"unicode"

	"github.com/rooftroops/estimator/internal/model"
)

// Calculate prices every catalog row against the measured roof and
// splits the results into the core material list and the optional
// upgrade list. Output order follows catalog row order, so identical
// inputs always produce identical lists. Rows that belong to neither
// set are priced but returned in neither list.
func Calculate(area float64, edges map[model.EdgeCategory]float64, catalog model.PriceCatalog) (core, optional []model.LineItem) {
	for _, row := range catalog.Rows {
		qty := model.Round2(quantityFor(row, area, edges))
		item := model.LineItem{
			Material:  titleCase(row.Name),
			UnitType:  row.UnitType,
			UnitPrice: row.UnitPrice,
			Quantity:  qty,
			// Cost is computed from the rounded quantity so the
			// printed line always multiplies out exactly.
			TotalCost: model.Round2(qty * row.UnitPrice),
		}
		switch {
		case RequiredMaterials[row.Name]:
			core = append(core, item)
		case OptionalUpgrades[row.Name]:
			optional = append(optional, item)
		}
	}
	return core, optional
}

// Build computes the full estimate for one roof: both item lists under
// a fresh reference, bound to the job details from the intake form.
func Build(geom model.RoofGeometry, catalog model.PriceCatalog, job model.JobInfo) model.Estimate {
	core, optional := Calculate(geom.TotalArea, geom.EdgeLengths, catalog)
	return model.NewEstimate(job, core, optional)
}

// quantityFor derives the unrounded quantity for one catalog row. The
// first matching rule wins: materials with a rule of their own outrank
// the generic unit-type rules.
func quantityFor(row model.CatalogItem, area float64, edges map[model.EdgeCategory]float64) float64 {
	switch row.Name {
	case matHipRidgeShingles:
		return edges[model.EdgeHip] + edges[model.EdgeRidge]
	case matStarterStripShingles:
		return edges[model.EdgeEave]
	case matRoofingNails:
		return area / 100.0
	case matCapNails:
		return 1.0
	case matDeckIntakeVent:
		return edges[model.EdgeEave] * 0.75
	case matDumpster:
		return 1.0
	}

	switch row.UnitType {
	case UnitSquareFeet:
		if WasteProneMaterials[row.Name] {
			return area * wasteFactor
		}
		return area
	case UnitLinearFeet:
		switch row.Name {
		case matRidgeVent:
			return edges[model.EdgeRidge]
		case matGutterGuards:
			return edges[model.EdgeEave]
		case matDripEdge:
			return edges[model.EdgeEave]
		}
		return 0.0
	case UnitEach:
		return 1.0
	}
	return 0.0
}

// titleCase uppercases the first letter of every word for display, so
// "hip & ridge shingles" prints as "Hip & Ridge Shingles".
func titleCase(s string) string {
	runes := []rune(s)
	prevLetter := false
	for i, r := range runes {
		if unicode.IsLetter(r) {
			if !prevLetter {
				runes[i] = unicode.ToUpper(r)
			}
			prevLetter = true
		} else {
			prevLetter = false
		}
	}
	return string(runes)
}
