// File: internal/interfaces/container.go
package interfaces

// CargoContainer provides the common contract shared by every container
// variant. Load and Unload are the only mutators of a container's cargo;
// neither is safe for concurrent use without external synchronization.
type CargoContainer interface {
	// SerialNumber returns the unique serial number assigned at construction
	SerialNumber() string

	// Height returns the container height in centimetres
	Height() float64

	// TareWeight returns the weight of the empty container in kilograms, excluding cargo
	TareWeight() float64

	// Depth returns the container depth in centimetres
	Depth() float64

	// MaxLoad returns the maximum cargo mass the container may hold in kilograms
	MaxLoad() float64

	// SetMaxLoad replaces the maximum cargo mass; existing cargo is not revalidated
	SetMaxLoad(maxLoad float64)

	// LoadMass returns the mass of the cargo currently held in kilograms
	LoadMass() float64

	// Load sets the cargo mass to the given absolute value after validating
	// the variant's capacity rules. On failure the previous load is kept.
	Load(mass float64) error

	// Unload empties the container according to the variant's rules
	Unload()
}

// LiquidContainer is a container for liquid cargo. Hazardous liquids are
// held to a stricter fill ceiling than ordinary ones.
type LiquidContainer interface {
	CargoContainer
	HazardNotifier

	// Hazardous reports whether the container carries hazardous cargo
	Hazardous() bool
}

// GasContainer is a pressurized container for gas cargo.
type GasContainer interface {
	CargoContainer
	HazardNotifier

	// Pressure returns the container's operating pressure in atmospheres
	Pressure() float64
}

// RefrigeratedContainer is a temperature-controlled container bound to a
// single product type from the storage temperature table.
type RefrigeratedContainer interface {
	CargoContainer

	// ProductType returns the product the container is configured to carry
	ProductType() string

	// Temperature returns the container's set temperature in degrees Celsius
	Temperature() float64
}
