package estimate

// Normalized catalog names (trimmed, lowercased) that the quantity
// rules call out by name.
const (
	matDimensionalShingle     = "dimensional shingle"
	matSyntheticUnderlayment  = "synthetic underlayment"
	matDripEdge               = "drip edge"
	matStarterStripShingles   = "starter strip shingles"
	matHipRidgeShingles       = "hip & ridge shingles"
	matRoofingNails           = "roofing nails"
	matCapNails               = "cap nails"
	matDumpster               = "dumpster"
	matLuxuryCompositeShingle = "luxury composite shingle"
	matIceWaterShield         = "ice & water shield"
	matRidgeVent              = "ridge vent"
	matPoweredAtticFan        = "powered attic fan"
	matDeckIntakeVent         = "deck intake vent"
	matGutterGuards           = "gutter guards"
)

// Unit types the generic quantity rules recognize (normalized).
const (
	UnitSquareFeet = "sq ft"
	UnitLinearFeet = "linear ft"
	UnitEach       = "ea"
)

// wasteFactor is the overage multiplier for waste-prone materials
// quantified by square footage.
const wasteFactor = 1.10

// RequiredMaterials is the fixed set of materials every estimate
// includes. Catalog rows with these names land on the core list.
var RequiredMaterials = map[string]bool{
	matDimensionalShingle:    true,
	matSyntheticUnderlayment: true,
	matDripEdge:              true,
	matStarterStripShingles:  true,
	matHipRidgeShingles:      true,
	matRoofingNails:          true,
	matCapNails:              true,
	matDumpster:              true,
}

// OptionalUpgrades is the fixed set of materials quoted separately as
// upgrades.
var OptionalUpgrades = map[string]bool{
	matLuxuryCompositeShingle: true,
	matIceWaterShield:         true,
	matRidgeVent:              true,
	matPoweredAtticFan:        true,
	matDeckIntakeVent:         true,
	matGutterGuards:           true,
}

// WasteProneMaterials receive the 10% overage allowance when ordered
// by the square foot.
var WasteProneMaterials = map[string]bool{
	matDimensionalShingle:    true,
	matSyntheticUnderlayment: true,
	matIceWaterShield:        true,
}
