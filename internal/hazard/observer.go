// Package hazard provides observers that receive hazard notifications
// emitted by liquid and gas containers.
package hazard

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/deploymenttheory/go-cargoship/internal/interfaces"
)

// logObserver records hazard notifications on a structured logger.
type logObserver struct {
	logger *zap.Logger
}

// NewLogObserver creates a HazardObserver that logs notifications at warn
// level with the serial number attached as a field.
func NewLogObserver(logger *zap.Logger) interfaces.HazardObserver {
	return &logObserver{logger: logger}
}

func (o *logObserver) HazardDetected(serialNumber, message string) {
	o.logger.Warn("hazard notification",
		zap.String("serial_number", serialNumber),
		zap.String("message", message),
	)
}

// writerObserver prints hazard notifications to an io.Writer.
type writerObserver struct {
	w io.Writer
}

// NewWriterObserver creates a HazardObserver that writes plain-text
// notifications to w, one per line.
func NewWriterObserver(w io.Writer) interfaces.HazardObserver {
	return &writerObserver{w: w}
}

func (o *writerObserver) HazardDetected(serialNumber, message string) {
	fmt.Fprintf(o.w, "Hazard notification from %s: %s\n", serialNumber, message)
}
