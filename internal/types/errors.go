package types

import "fmt"

// OverfillError reports a container-level capacity violation on load.
// The container's load mass is unchanged when this error is returned.
type OverfillError struct {
	Serial string
	Mass   float64
	Limit  float64
	Reason string
}

func (e *OverfillError) Error() string {
	return fmt.Sprintf("container %s: cannot load %.2f kg: %s (limit %.2f kg)", e.Serial, e.Mass, e.Reason, e.Limit)
}

// UnknownProductError reports a product type missing from the storage
// temperature table.
type UnknownProductError struct {
	Product string
}

func (e *UnknownProductError) Error() string {
	return fmt.Sprintf("unknown product type %q", e.Product)
}

// TemperatureViolationError reports a refrigerated container whose set
// temperature is below the minimum required by its product type.
type TemperatureViolationError struct {
	Serial      string
	Product     string
	Temperature float64
	Required    float64
}

func (e *TemperatureViolationError) Error() string {
	return fmt.Sprintf("container %s: temperature %.1f°C is below the %.1f°C required for %s",
		e.Serial, e.Temperature, e.Required, e.Product)
}

// CapacityExceededError reports a ship that already carries its maximum
// number of containers.
type CapacityExceededError struct {
	Ship string
	Max  int
}

func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf("ship %s: container capacity of %d reached", e.Ship, e.Max)
}

// OverloadExceededError reports a ship load that would push the combined
// container and cargo weight past the ship's maximum.
type OverloadExceededError struct {
	Ship    string
	TotalKg float64
	MaxKg   float64
}

func (e *OverloadExceededError) Error() string {
	return fmt.Sprintf("ship %s: total weight %.2f kg would exceed the %.2f kg maximum", e.Ship, e.TotalKg, e.MaxKg)
}

// ContainerNotFoundError reports a serial number with no matching container
// aboard the ship.
type ContainerNotFoundError struct {
	Ship   string
	Serial string
}

func (e *ContainerNotFoundError) Error() string {
	return fmt.Sprintf("ship %s: no container with serial number %s", e.Ship, e.Serial)
}
