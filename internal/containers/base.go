// Package containers implements the cargo container variants: liquid, gas
// and refrigerated. Each constructor returns the matching interface from
// internal/interfaces with a freshly assigned serial number.
//
// Containers are plain mutable state and are not safe for concurrent
// mutation without external synchronization.
package containers

import (
	"fmt"
	"os"

	"github.com/deploymenttheory/go-cargoship/internal/interfaces"
	"github.com/deploymenttheory/go-cargoship/internal/types"
)

// cargo holds the physical attributes common to every container variant.
type cargo struct {
	serialNumber string
	height       float64
	tareWeight   float64
	depth        float64
	maxLoad      float64
	loadMass     float64
	observer     interfaces.HazardObserver
}

// options collects optional construction parameters shared by all variants.
type options struct {
	serialNumber string
	observer     interfaces.HazardObserver
}

// Option configures optional container construction parameters.
type Option func(*options)

// WithSerialNumber overrides the generated serial number. Serial numbers are
// assumed unique by convention; uniqueness is not enforced here.
func WithSerialNumber(serialNumber string) Option {
	return func(o *options) {
		o.serialNumber = serialNumber
	}
}

// WithHazardObserver sets the observer that receives hazard notifications.
// By default notifications are written to standard output.
func WithHazardObserver(observer interfaces.HazardObserver) Option {
	return func(o *options) {
		o.observer = observer
	}
}

// newCargo validates the shared physical attributes and assembles the common
// container state for a variant constructor.
func newCargo(kind types.ContainerKind, height, tareWeight, depth, maxLoad float64, opts ...Option) (cargo, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	if height < 0 || tareWeight < 0 || depth < 0 {
		return cargo{}, fmt.Errorf("container dimensions must be non-negative: height=%.2f tare=%.2f depth=%.2f", height, tareWeight, depth)
	}
	if maxLoad < 0 {
		return cargo{}, fmt.Errorf("max load must be non-negative, got %.2f", maxLoad)
	}

	if o.serialNumber == "" {
		o.serialNumber = NewSerialNumber(kind)
	}
	if o.observer == nil {
		o.observer = stdoutObserver{}
	}

	return cargo{
		serialNumber: o.serialNumber,
		height:       height,
		tareWeight:   tareWeight,
		depth:        depth,
		maxLoad:      maxLoad,
		observer:     o.observer,
	}, nil
}

func (c *cargo) SerialNumber() string { return c.serialNumber }

func (c *cargo) Height() float64 { return c.height }

func (c *cargo) TareWeight() float64 { return c.tareWeight }

func (c *cargo) Depth() float64 { return c.depth }

func (c *cargo) MaxLoad() float64 { return c.maxLoad }

// SetMaxLoad replaces the maximum cargo mass. Cargo already aboard is not
// revalidated against the new limit.
func (c *cargo) SetMaxLoad(maxLoad float64) { c.maxLoad = maxLoad }

func (c *cargo) LoadMass() float64 { return c.loadMass }

// Unload empties the container completely. The gas variant overrides this
// with its residual-retaining behavior.
func (c *cargo) Unload() { c.loadMass = 0 }

// notifyHazard forwards a hazard message, tagged with the serial number, to
// the configured observer.
func (c *cargo) notifyHazard(message string) {
	c.observer.HazardDetected(c.serialNumber, message)
}

// validateMass rejects negative load masses before any variant rule runs.
func validateMass(mass float64) error {
	if mass < 0 {
		return fmt.Errorf("load mass must be non-negative, got %.2f", mass)
	}
	return nil
}

// stdoutObserver is the default hazard sink when no observer is configured.
type stdoutObserver struct{}

func (stdoutObserver) HazardDetected(serialNumber, message string) {
	fmt.Fprintf(os.Stdout, "Hazard notification from %s: %s\n", serialNumber, message)
}

// Describe returns a one-line human-readable summary of a container,
// including any variant-specific attributes.
func Describe(c interfaces.CargoContainer) string {
	summary := fmt.Sprintf("%s: load %.2f/%.2f kg, tare %.2f kg, %gx%g cm",
		c.SerialNumber(), c.LoadMass(), c.MaxLoad(), c.TareWeight(), c.Height(), c.Depth())

	switch v := c.(type) {
	case interfaces.LiquidContainer:
		if v.Hazardous() {
			summary += ", hazardous liquid"
		} else {
			summary += ", liquid"
		}
	case interfaces.GasContainer:
		summary += fmt.Sprintf(", gas at %.1f atm", v.Pressure())
	case interfaces.RefrigeratedContainer:
		summary += fmt.Sprintf(", %s at %.1f°C", v.ProductType(), v.Temperature())
	}
	return summary
}
