package fleet

import (
	"fmt"
	"strings"

	"github.com/deploymenttheory/go-cargoship/internal/config"
	"github.com/deploymenttheory/go-cargoship/internal/interfaces"
	"github.com/deploymenttheory/go-cargoship/internal/ship"
)

// Fleet holds the ships and the container pool built from a manifest.
// Containers live in the pool independently of ship membership; boarding a
// ship never removes a container from the pool.
type Fleet struct {
	ships          map[string]*ship.Ship
	shipOrder      []string
	containers     map[string]interfaces.CargoContainer
	containerOrder []string
}

// Ship returns the ship with the given name.
func (f *Fleet) Ship(name string) (*ship.Ship, bool) {
	s, ok := f.ships[name]
	return s, ok
}

// Ships returns all ships in manifest order.
func (f *Fleet) Ships() []*ship.Ship {
	out := make([]*ship.Ship, 0, len(f.shipOrder))
	for _, name := range f.shipOrder {
		out = append(out, f.ships[name])
	}
	return out
}

// Container returns the container with the given serial number.
func (f *Fleet) Container(serialNumber string) (interfaces.CargoContainer, bool) {
	c, ok := f.containers[serialNumber]
	return c, ok
}

// Containers returns the container pool in manifest order.
func (f *Fleet) Containers() []interfaces.CargoContainer {
	out := make([]interfaces.CargoContainer, 0, len(f.containerOrder))
	for _, serial := range f.containerOrder {
		out = append(out, f.containers[serial])
	}
	return out
}

// StepResult records the outcome of a single plan step. Err is nil for
// accepted steps; rejected steps keep the typed domain error.
type StepResult struct {
	Index  int
	Step   config.Step
	Detail string
	Err    error
}

// OK reports whether the step was accepted.
func (r StepResult) OK() bool { return r.Err == nil }

// Report collects the outcome of every step of an executed plan, in order.
type Report struct {
	Results []StepResult
}

// Rejected returns the number of rejected steps.
func (r *Report) Rejected() int {
	n := 0
	for _, res := range r.Results {
		if !res.OK() {
			n++
		}
	}
	return n
}

// Summary returns a one-line accepted/rejected count.
func (r *Report) Summary() string {
	return fmt.Sprintf("%d steps: %d accepted, %d rejected", len(r.Results), len(r.Results)-r.Rejected(), r.Rejected())
}

// String renders the full per-step report.
func (r *Report) String() string {
	var b strings.Builder
	for _, res := range r.Results {
		if res.OK() {
			fmt.Fprintf(&b, "%3d  ok    %-13s %s\n", res.Index+1, res.Step.Action, res.Detail)
		} else {
			fmt.Fprintf(&b, "%3d  FAIL  %-13s %v\n", res.Index+1, res.Step.Action, res.Err)
		}
	}
	b.WriteString(r.Summary())
	return b.String()
}
