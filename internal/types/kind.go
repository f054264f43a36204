// Package types implements the shared value types and constants for the
// cargo container domain model. None of the types in this package are safe
// for concurrent mutation without external synchronization.
package types

import (
	"fmt"
	"strings"
)

// ContainerKind identifies one of the closed set of container variants.
type ContainerKind string

const (
	// KindLiquid is a container for liquid cargo, optionally hazardous.
	KindLiquid ContainerKind = "liquid"

	// KindGas is a pressurized container for gas cargo. Gas containers
	// retain a residual load after unloading.
	KindGas ContainerKind = "gas"

	// KindRefrigerated is a temperature-controlled container bound to a
	// single product type.
	KindRefrigerated ContainerKind = "refrigerated"
)

// String returns the string representation of ContainerKind.
func (k ContainerKind) String() string {
	return string(k)
}

// IsValid checks whether the ContainerKind value is one of the predefined
// variants.
func (k ContainerKind) IsValid() bool {
	switch k {
	case KindLiquid, KindGas, KindRefrigerated:
		return true
	default:
		return false
	}
}

// Code returns the single-letter code used in serial numbers.
func (k ContainerKind) Code() string {
	switch k {
	case KindLiquid:
		return "L"
	case KindGas:
		return "G"
	case KindRefrigerated:
		return "R"
	default:
		return "?"
	}
}

// ParseContainerKind converts a string to a ContainerKind.
// Returns an error if the string does not match any valid kind.
func ParseContainerKind(s string) (ContainerKind, error) {
	kind := ContainerKind(strings.ToLower(s))
	if !kind.IsValid() {
		return "", fmt.Errorf("invalid container kind: %q (valid: liquid, gas, refrigerated)", s)
	}
	return kind, nil
}

// Fill thresholds and conversion factors used by the loading rules.
const (
	// HazardousFillRatio is the fill ceiling for hazardous liquid cargo,
	// as a fraction of the container's maximum load.
	HazardousFillRatio = 0.5

	// SafeFillRatio is the fill ceiling for non-hazardous liquid cargo.
	SafeFillRatio = 0.9

	// GasResidualFraction is the fraction of gas cargo that remains in the
	// container after unloading. Gas cannot be fully purged.
	GasResidualFraction = 0.05

	// KilogramsPerTonne converts a ship's maximum weight, expressed in
	// tonnes, into the kilograms used for container masses.
	KilogramsPerTonne = 1000.0
)
