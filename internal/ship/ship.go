// Package ship implements the ship aggregate: an ordered membership of cargo
// containers bounded by a container count and a total weight limit.
//
// A ship owns the membership of its containers, not the containers
// themselves; containers are created externally, exist before boarding and
// keep existing after removal. Removing a container from a ship never
// touches the container's own cargo. A Ship is not safe for concurrent
// mutation without external synchronization.
package ship

import (
	"fmt"
	"strings"

	"github.com/deploymenttheory/go-cargoship/internal/interfaces"
	"github.com/deploymenttheory/go-cargoship/internal/types"
)

// Ship carries containers up to a maximum count and combined weight.
type Ship struct {
	name              string
	maxSpeed          float64
	maxWeightTonnes   float64
	maxContainerCount int
	containers        []interfaces.CargoContainer
}

// New creates a ship with the given limits. The maximum weight is expressed
// in tonnes; container masses are in kilograms.
func New(name string, maxSpeed, maxWeightTonnes float64, maxContainerCount int) (*Ship, error) {
	if name == "" {
		return nil, fmt.Errorf("ship name must not be empty")
	}
	if maxSpeed < 0 {
		return nil, fmt.Errorf("ship %s: max speed must be non-negative, got %.2f", name, maxSpeed)
	}
	if maxWeightTonnes < 0 {
		return nil, fmt.Errorf("ship %s: max weight must be non-negative, got %.2f", name, maxWeightTonnes)
	}
	if maxContainerCount < 0 {
		return nil, fmt.Errorf("ship %s: max container count must be non-negative, got %d", name, maxContainerCount)
	}
	return &Ship{
		name:              name,
		maxSpeed:          maxSpeed,
		maxWeightTonnes:   maxWeightTonnes,
		maxContainerCount: maxContainerCount,
	}, nil
}

// Name returns the ship's name.
func (s *Ship) Name() string { return s.name }

// MaxSpeed returns the ship's maximum speed in knots.
func (s *Ship) MaxSpeed() float64 { return s.maxSpeed }

// MaxWeight returns the ship's maximum combined weight in tonnes.
func (s *Ship) MaxWeight() float64 { return s.maxWeightTonnes }

// MaxContainerCount returns the maximum number of containers the ship
// may carry.
func (s *Ship) MaxContainerCount() int { return s.maxContainerCount }

// Count returns the number of containers currently aboard.
func (s *Ship) Count() int { return len(s.containers) }

// Containers returns the containers currently aboard, in boarding order.
// The returned slice is a copy; the containers are shared references.
func (s *Ship) Containers() []interfaces.CargoContainer {
	out := make([]interfaces.CargoContainer, len(s.containers))
	copy(out, s.containers)
	return out
}

// TotalCargoMass returns the combined tare and cargo mass of all containers
// aboard, in kilograms.
func (s *Ship) TotalCargoMass() float64 {
	var total float64
	for _, c := range s.containers {
		total += c.TareWeight() + c.LoadMass()
	}
	return total
}

func (s *Ship) maxWeightKg() float64 {
	return s.maxWeightTonnes * types.KilogramsPerTonne
}

// LoadContainer adds a container to the ship's membership. The container
// count is checked strictly before the weight limit, and the membership is
// only mutated once both checks pass.
func (s *Ship) LoadContainer(c interfaces.CargoContainer) error {
	if len(s.containers) == s.maxContainerCount {
		return &types.CapacityExceededError{Ship: s.name, Max: s.maxContainerCount}
	}

	prospective := s.TotalCargoMass() + c.TareWeight() + c.LoadMass()
	if prospective > s.maxWeightKg() {
		return &types.OverloadExceededError{Ship: s.name, TotalKg: prospective, MaxKg: s.maxWeightKg()}
	}

	s.containers = append(s.containers, c)
	return nil
}

// UnloadContainer removes the first container with the given serial number
// from the ship's membership and returns it. The container's own cargo is
// left untouched; disembarking and emptying are independent operations.
func (s *Ship) UnloadContainer(serialNumber string) (interfaces.CargoContainer, error) {
	i := s.find(serialNumber)
	if i < 0 {
		return nil, &types.ContainerNotFoundError{Ship: s.name, Serial: serialNumber}
	}

	c := s.containers[i]
	s.containers = append(s.containers[:i], s.containers[i+1:]...)
	return c, nil
}

// ReplaceContainer swaps the container with the given serial number for the
// replacement, keeping its position in the membership. The count is
// unchanged, so only the weight limit is re-checked; on failure the
// membership is left as it was.
func (s *Ship) ReplaceContainer(serialNumber string, replacement interfaces.CargoContainer) error {
	i := s.find(serialNumber)
	if i < 0 {
		return &types.ContainerNotFoundError{Ship: s.name, Serial: serialNumber}
	}

	outgoing := s.containers[i]
	prospective := s.TotalCargoMass() - outgoing.TareWeight() - outgoing.LoadMass() +
		replacement.TareWeight() + replacement.LoadMass()
	if prospective > s.maxWeightKg() {
		return &types.OverloadExceededError{Ship: s.name, TotalKg: prospective, MaxKg: s.maxWeightKg()}
	}

	s.containers[i] = replacement
	return nil
}

// Transfer moves the container with the given serial number from one ship to
// another. The destination's count and weight checks apply; when the
// destination rejects the container it stays aboard the source ship.
// Transferring a container to the ship it is already aboard is a no-op that
// keeps its membership position.
func Transfer(from, to *Ship, serialNumber string) error {
	i := from.find(serialNumber)
	if i < 0 {
		return &types.ContainerNotFoundError{Ship: from.name, Serial: serialNumber}
	}

	if from == to {
		return nil
	}

	if err := to.LoadContainer(from.containers[i]); err != nil {
		return err
	}

	from.containers = append(from.containers[:i], from.containers[i+1:]...)
	return nil
}

// find returns the index of the first container with the given serial
// number, or -1 when absent.
func (s *Ship) find(serialNumber string) int {
	for i, c := range s.containers {
		if c.SerialNumber() == serialNumber {
			return i
		}
	}
	return -1
}

// Describe returns a multi-line human-readable summary of the ship and its
// current membership.
func (s *Ship) Describe() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Ship %s: %d/%d containers, %.2f/%.2f kg, max speed %.1f kn\n",
		s.name, len(s.containers), s.maxContainerCount, s.TotalCargoMass(), s.maxWeightKg(), s.maxSpeed)
	for _, c := range s.containers {
		fmt.Fprintf(&b, "  %s (load %.2f kg)\n", c.SerialNumber(), c.LoadMass())
	}
	return b.String()
}
