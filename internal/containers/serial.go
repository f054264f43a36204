package containers

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/deploymenttheory/go-cargoship/internal/types"
)

// NewSerialNumber generates a serial number for a container of the given
// kind, in the form KON-<kind code>-<8 hex chars>, e.g. KON-L-9f86d081.
func NewSerialNumber(kind types.ContainerKind) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("KON-%s-%s", kind.Code(), suffix)
}
