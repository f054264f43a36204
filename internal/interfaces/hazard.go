package interfaces

// HazardNotifier is the capability of emitting hazard warnings. It is
// implemented by the liquid and gas container variants only. Loading and
// unloading never invoke it; it exists for external hazard-monitoring logic
// to call when it detects a dangerous condition.
type HazardNotifier interface {
	// NotifyHazard emits the message, tagged with the container's serial
	// number, to the configured observer. It cannot fail.
	NotifyHazard(message string)
}

// HazardObserver receives hazard notifications emitted by containers.
type HazardObserver interface {
	// HazardDetected is called with the serial number of the notifying
	// container and the hazard message
	HazardDetected(serialNumber, message string)
}
