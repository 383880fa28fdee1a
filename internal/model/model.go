package model

import (
	"math"

	"github.com/google/uuid"
)

// EdgeCategory classifies a measured roof line segment.
type EdgeCategory string

const (
	EdgeRidge  EdgeCategory = "ridge"
	EdgeHip    EdgeCategory = "hip"
	EdgeValley EdgeCategory = "valley"
	EdgeEave   EdgeCategory = "eave"
	EdgeRake   EdgeCategory = "rake"
)

// EdgeCategories lists every recognized category. Segments tagged with
// anything else are ignored by the extractor.
var EdgeCategories = []EdgeCategory{EdgeRidge, EdgeHip, EdgeValley, EdgeEave, EdgeRake}

// Round2 rounds a value to 2 decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// RoofGeometry holds the measurements taken from one roof report:
// total face area plus the summed length of each edge category.
type RoofGeometry struct {
	TotalArea   float64                  `json:"total_area"`   // sq ft
	EdgeLengths map[EdgeCategory]float64 `json:"edge_lengths"` // ft per category
}

// NewRoofGeometry returns a zero-valued geometry with every edge
// category present in the map. Callers rely on all five keys existing.
func NewRoofGeometry() RoofGeometry {
	lengths := make(map[EdgeCategory]float64, len(EdgeCategories))
	for _, c := range EdgeCategories {
		lengths[c] = 0.0
	}
	return RoofGeometry{EdgeLengths: lengths}
}

// CatalogItem is one row of the price list.
type CatalogItem struct {
	Name      string  `json:"name"`      // trimmed, lowercased
	UnitType  string  `json:"unit_type"` // "sq ft", "linear ft", "ea", or free text
	UnitPrice float64 `json:"unit_price"`
}

// PriceCatalog is the loaded price list. Rows keeps every source row in
// order, duplicates included; the name lookup is last-write-wins.
type PriceCatalog struct {
	Rows   []CatalogItem
	prices map[string]float64
}

// NewPriceCatalog builds a catalog from rows the loader already normalized.
func NewPriceCatalog(rows []CatalogItem) PriceCatalog {
	prices := make(map[string]float64, len(rows))
	for _, r := range rows {
		prices[r.Name] = r.UnitPrice
	}
	return PriceCatalog{Rows: rows, prices: prices}
}

// UnitPrice returns the price for a normalized item name, 0 if unknown.
func (pc PriceCatalog) UnitPrice(name string) float64 {
	return pc.prices[name]
}

// Len returns the number of catalog rows.
func (pc PriceCatalog) Len() int {
	return len(pc.Rows)
}

// LineItem is one priced material on an estimate. Quantity is rounded to
// 2 decimals and TotalCost is computed from that rounded quantity.
type LineItem struct {
	Material  string  `json:"material"` // title-cased display name
	UnitType  string  `json:"unit_type"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  float64 `json:"quantity"`
	TotalCost float64 `json:"total_cost"`
}

// JobInfo carries the client and job fields entered on the upload form.
type JobInfo struct {
	ClientName string `json:"client_name"`
	JobID      string `json:"job_id"`
	Location   string `json:"job_location"`
	RoofType   string `json:"roof_type"`
	PitchText  string `json:"pitch_text"`
}

// Estimate is one computed quote: the required materials, the optional
// upgrades, and the job they were priced for. An estimate lives for a
// single request and is never stored.
type Estimate struct {
	Reference     string     `json:"reference"`
	Job           JobInfo    `json:"job"`
	CoreItems     []LineItem `json:"core_items"`
	OptionalItems []LineItem `json:"optional_items"`
}

func NewEstimate(job JobInfo, core, optional []LineItem) Estimate {
	return Estimate{
		Reference:     uuid.New().String()[:8],
		Job:           job,
		CoreItems:     core,
		OptionalItems: optional,
	}
}

// GrandTotal sums every line item cost across both lists.
func (e Estimate) GrandTotal() float64 {
	var total float64
	for _, it := range e.CoreItems {
		total += it.TotalCost
	}
	for _, it := range e.OptionalItems {
		total += it.TotalCost
	}
	return Round2(total)
}
