package calendar

import (
	"fmt"
	"strings"
)

// Region identifies a calendar jurisdiction with its own holiday table.
type Region string

// Supported regions. The set is closed; anything else fails with
// ErrUnknownRegion.
const (
	RegionABMY Region = "ABMY" // Malaysia
	RegionABSG Region = "ABSG" // Singapore
	RegionABVN Region = "ABVN" // Vietnam
)

// Regions returns all supported regions in stable order.
func Regions() []Region {
	return []Region{RegionABMY, RegionABSG, RegionABVN}
}

// ParseRegion parses a region code, case-insensitively.
func ParseRegion(s string) (Region, error) {
	switch Region(strings.ToUpper(strings.TrimSpace(s))) {
	case RegionABMY:
		return RegionABMY, nil
	case RegionABSG:
		return RegionABSG, nil
	case RegionABVN:
		return RegionABVN, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownRegion, s)
}

// Valid reports whether r is one of the supported regions.
func (r Region) Valid() bool {
	switch r {
	case RegionABMY, RegionABSG, RegionABVN:
		return true
	}
	return false
}
