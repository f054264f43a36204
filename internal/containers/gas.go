package containers

import (
	"github.com/deploymenttheory/go-cargoship/internal/interfaces"
	"github.com/deploymenttheory/go-cargoship/internal/types"
)

// gasContainer implements the GasContainer interface
type gasContainer struct {
	cargo
	pressure float64
}

// NewGasContainer creates a new GasContainer implementation operating at the
// given pressure in atmospheres.
func NewGasContainer(height, tareWeight, depth, maxLoad, pressure float64, opts ...Option) (interfaces.GasContainer, error) {
	base, err := newCargo(types.KindGas, height, tareWeight, depth, maxLoad, opts...)
	if err != nil {
		return nil, err
	}
	return &gasContainer{cargo: base, pressure: pressure}, nil
}

func (c *gasContainer) Pressure() float64 { return c.pressure }

// Load sets the cargo mass to the given value, up to the full max load.
func (c *gasContainer) Load(mass float64) error {
	if err := validateMass(mass); err != nil {
		return err
	}
	if mass > c.maxLoad {
		return &types.OverfillError{
			Serial: c.serialNumber,
			Mass:   mass,
			Limit:  c.maxLoad,
			Reason: "exceeds max load allowed for gas cargo",
		}
	}
	c.loadMass = mass
	return nil
}

// Unload purges the container. Gas cannot be fully purged, so 5% of the
// current load remains; repeated calls compound the decay.
func (c *gasContainer) Unload() {
	c.loadMass *= types.GasResidualFraction
}

// NotifyHazard emits the message, tagged with the serial number, to the
// configured hazard observer.
func (c *gasContainer) NotifyHazard(message string) {
	c.notifyHazard(message)
}
