package containers

import (
	"github.com/deploymenttheory/go-cargoship/internal/interfaces"
	"github.com/deploymenttheory/go-cargoship/internal/types"
)

// liquidContainer implements the LiquidContainer interface
type liquidContainer struct {
	cargo
	hazardous bool
}

// NewLiquidContainer creates a new LiquidContainer implementation. Hazardous
// containers are held to a 50% fill ceiling, ordinary ones to 90%.
func NewLiquidContainer(height, tareWeight, depth, maxLoad float64, hazardous bool, opts ...Option) (interfaces.LiquidContainer, error) {
	base, err := newCargo(types.KindLiquid, height, tareWeight, depth, maxLoad, opts...)
	if err != nil {
		return nil, err
	}
	return &liquidContainer{cargo: base, hazardous: hazardous}, nil
}

func (c *liquidContainer) Hazardous() bool { return c.hazardous }

// Load sets the cargo mass to the given value. The fill ceiling depends on
// whether the cargo is hazardous; on violation the previous load is kept.
func (c *liquidContainer) Load(mass float64) error {
	if err := validateMass(mass); err != nil {
		return err
	}

	ratio := types.SafeFillRatio
	reason := "exceeds 90% of max load allowed for liquid cargo"
	if c.hazardous {
		ratio = types.HazardousFillRatio
		reason = "exceeds 50% of max load allowed for hazardous liquid cargo"
	}

	limit := ratio * c.maxLoad
	if mass > limit {
		return &types.OverfillError{Serial: c.serialNumber, Mass: mass, Limit: limit, Reason: reason}
	}

	c.loadMass = mass
	return nil
}

// NotifyHazard emits the message, tagged with the serial number, to the
// configured hazard observer.
func (c *liquidContainer) NotifyHazard(message string) {
	c.notifyHazard(message)
}
