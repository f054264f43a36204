package containers

import (
	"github.com/deploymenttheory/go-cargoship/internal/interfaces"
	"github.com/deploymenttheory/go-cargoship/internal/types"
)

// refrigeratedContainer implements the RefrigeratedContainer interface
type refrigeratedContainer struct {
	cargo
	productType string
	temperature float64
}

// NewRefrigeratedContainer creates a new RefrigeratedContainer implementation
// set to the given temperature. The product type is validated against the
// storage temperature table on Load, not at construction, so a container may
// be built too cold and only rejected when cargo is loaded.
func NewRefrigeratedContainer(height, tareWeight, depth, maxLoad float64, productType string, temperature float64, opts ...Option) (interfaces.RefrigeratedContainer, error) {
	base, err := newCargo(types.KindRefrigerated, height, tareWeight, depth, maxLoad, opts...)
	if err != nil {
		return nil, err
	}
	return &refrigeratedContainer{cargo: base, productType: productType, temperature: temperature}, nil
}

func (c *refrigeratedContainer) ProductType() string { return c.productType }

func (c *refrigeratedContainer) Temperature() float64 { return c.temperature }

// Load sets the cargo mass to the given value. The product type is resolved
// first, so an unknown product fails before the temperature and capacity
// checks; a too-cold container fails before the capacity check.
func (c *refrigeratedContainer) Load(mass float64) error {
	if err := validateMass(mass); err != nil {
		return err
	}

	required, err := types.RequiredStorageTemperature(c.productType)
	if err != nil {
		return err
	}
	if c.temperature < required {
		return &types.TemperatureViolationError{
			Serial:      c.serialNumber,
			Product:     c.productType,
			Temperature: c.temperature,
			Required:    required,
		}
	}
	if mass > c.maxLoad {
		return &types.OverfillError{
			Serial: c.serialNumber,
			Mass:   mass,
			Limit:  c.maxLoad,
			Reason: "exceeds max load allowed for refrigerated cargo",
		}
	}

	c.loadMass = mass
	return nil
}
