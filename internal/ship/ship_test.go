package ship

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deploymenttheory/go-cargoship/internal/containers"
	"github.com/deploymenttheory/go-cargoship/internal/interfaces"
	"github.com/deploymenttheory/go-cargoship/internal/types"
)

// gasWith builds a gas container with the given serial, tare weight and
// initial load for membership tests.
func gasWith(t *testing.T, serial string, tare, load float64) interfaces.CargoContainer {
	t.Helper()
	c, err := containers.NewGasContainer(250, tare, 600, 10000, 10, containers.WithSerialNumber(serial))
	require.NoError(t, err, "failed to create test container")
	if load > 0 {
		require.NoError(t, c.Load(load), "failed to load test container")
	}
	return c
}

func TestShipLoadContainerWithinLimits(t *testing.T) {
	s, err := New("Evergreen", 20, 3, 2)
	require.NoError(t, err, "failed to create ship")

	// Two containers whose combined tare+load stays below 3 tonnes (3000 kg).
	require.NoError(t, s.LoadContainer(gasWith(t, "KON-G-00000001", 1000, 400)))
	require.NoError(t, s.LoadContainer(gasWith(t, "KON-G-00000002", 1000, 400)))

	assert.Equal(t, 2, s.Count())
	assert.Equal(t, 2800.0, s.TotalCargoMass())
}

func TestShipCapacityCheckPrecedesWeightCheck(t *testing.T) {
	s, err := New("Evergreen", 20, 3, 2)
	require.NoError(t, err)

	require.NoError(t, s.LoadContainer(gasWith(t, "KON-G-00000001", 500, 0)))
	require.NoError(t, s.LoadContainer(gasWith(t, "KON-G-00000002", 500, 0)))

	// The third container would also blow the weight limit, but the count
	// check runs first.
	err = s.LoadContainer(gasWith(t, "KON-G-00000003", 9000, 0))
	var capErr *types.CapacityExceededError
	require.ErrorAs(t, err, &capErr, "a full ship should reject on capacity, not weight")
	assert.Equal(t, 2, capErr.Max)
	assert.Equal(t, 2, s.Count(), "membership should be unchanged after a rejection")
}

func TestShipOverloadCheck(t *testing.T) {
	s, err := New("Evergreen", 20, 3, 5)
	require.NoError(t, err)

	require.NoError(t, s.LoadContainer(gasWith(t, "KON-G-00000001", 2000, 500)))

	// Count limit not reached, but 2500 + 600 kg exceeds 3 tonnes.
	err = s.LoadContainer(gasWith(t, "KON-G-00000002", 600, 0))
	var overloadErr *types.OverloadExceededError
	require.ErrorAs(t, err, &overloadErr, "overweight load should fail with OverloadExceededError")
	assert.Equal(t, 3000.0, overloadErr.MaxKg, "the tonne limit should be converted to kilograms")
	assert.Equal(t, 1, s.Count(), "membership should be unchanged after a rejection")
}

func TestShipUnloadContainer(t *testing.T) {
	s, err := New("Evergreen", 20, 10, 5)
	require.NoError(t, err)

	c := gasWith(t, "KON-G-00000001", 1000, 500)
	require.NoError(t, s.LoadContainer(c))
	require.NoError(t, s.LoadContainer(gasWith(t, "KON-G-00000002", 1000, 0)))

	removed, err := s.UnloadContainer("KON-G-00000001")
	require.NoError(t, err)
	assert.Equal(t, 1, s.Count(), "membership should shrink by exactly one")
	assert.Same(t, c, removed, "the removed container should be returned")

	// Disembarking is independent of the container's own cargo.
	assert.Equal(t, 500.0, c.LoadMass(), "ship unload must not touch the container's cargo")

	for _, member := range s.Containers() {
		assert.NotEqual(t, "KON-G-00000001", member.SerialNumber(), "removed container should be absent")
	}
}

func TestShipUnloadContainerNotFound(t *testing.T) {
	s, err := New("Evergreen", 20, 10, 5)
	require.NoError(t, err)
	require.NoError(t, s.LoadContainer(gasWith(t, "KON-G-00000001", 1000, 0)))

	_, err = s.UnloadContainer("KON-G-unknown1")
	var notFound *types.ContainerNotFoundError
	require.ErrorAs(t, err, &notFound, "unknown serial should fail with ContainerNotFoundError")
	assert.Equal(t, "KON-G-unknown1", notFound.Serial)
	assert.Equal(t, 1, s.Count(), "membership should be unchanged")
}

func TestShipReplaceContainerKeepsPosition(t *testing.T) {
	s, err := New("Evergreen", 20, 10, 5)
	require.NoError(t, err)

	require.NoError(t, s.LoadContainer(gasWith(t, "KON-G-00000001", 1000, 0)))
	require.NoError(t, s.LoadContainer(gasWith(t, "KON-G-00000002", 1000, 0)))
	require.NoError(t, s.LoadContainer(gasWith(t, "KON-G-00000003", 1000, 0)))

	replacement := gasWith(t, "KON-G-00000009", 1200, 0)
	require.NoError(t, s.ReplaceContainer("KON-G-00000002", replacement))

	members := s.Containers()
	require.Len(t, members, 3, "replace must not change the count")
	assert.Equal(t, "KON-G-00000009", members[1].SerialNumber(), "replacement should take the outgoing position")
}

func TestShipReplaceContainerOverload(t *testing.T) {
	s, err := New("Evergreen", 20, 3, 5)
	require.NoError(t, err)

	require.NoError(t, s.LoadContainer(gasWith(t, "KON-G-00000001", 1500, 0)))
	require.NoError(t, s.LoadContainer(gasWith(t, "KON-G-00000002", 1000, 0)))

	err = s.ReplaceContainer("KON-G-00000002", gasWith(t, "KON-G-00000009", 2000, 0))
	var overloadErr *types.OverloadExceededError
	require.ErrorAs(t, err, &overloadErr, "an overweight replacement should be rejected")

	members := s.Containers()
	assert.Equal(t, "KON-G-00000002", members[1].SerialNumber(), "membership should be unchanged after a rejection")
}

func TestShipReplaceContainerNotFound(t *testing.T) {
	s, err := New("Evergreen", 20, 10, 5)
	require.NoError(t, err)

	err = s.ReplaceContainer("KON-G-unknown1", gasWith(t, "KON-G-00000009", 1000, 0))
	var notFound *types.ContainerNotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestTransferMovesContainer(t *testing.T) {
	from, err := New("Evergreen", 20, 10, 5)
	require.NoError(t, err)
	to, err := New("Maersk", 18, 10, 5)
	require.NoError(t, err)

	require.NoError(t, from.LoadContainer(gasWith(t, "KON-G-00000001", 1000, 200)))

	require.NoError(t, Transfer(from, to, "KON-G-00000001"))
	assert.Equal(t, 0, from.Count(), "transferred container should leave the source ship")
	assert.Equal(t, 1, to.Count(), "transferred container should board the target ship")
}

func TestTransferIsAllOrNothing(t *testing.T) {
	from, err := New("Evergreen", 20, 10, 5)
	require.NoError(t, err)
	to, err := New("Maersk", 18, 10, 1)
	require.NoError(t, err)

	require.NoError(t, from.LoadContainer(gasWith(t, "KON-G-00000001", 1000, 0)))
	require.NoError(t, to.LoadContainer(gasWith(t, "KON-G-00000002", 1000, 0)))

	err = Transfer(from, to, "KON-G-00000001")
	var capErr *types.CapacityExceededError
	require.ErrorAs(t, err, &capErr, "a full target should reject the transfer")
	assert.Equal(t, 1, from.Count(), "rejected transfer must leave the container on the source ship")
	assert.Equal(t, 1, to.Count())
}

func TestTransferToSameShipIsNoOp(t *testing.T) {
	// The ship sits right at its weight limit: a double-counting prospective
	// check would spuriously reject the self-transfer.
	s, err := New("Evergreen", 20, 3, 5)
	require.NoError(t, err)

	require.NoError(t, s.LoadContainer(gasWith(t, "KON-G-00000001", 2000, 0)))
	require.NoError(t, s.LoadContainer(gasWith(t, "KON-G-00000002", 1000, 0)))

	require.NoError(t, Transfer(s, s, "KON-G-00000001"), "self-transfer must not be rejected")

	members := s.Containers()
	require.Len(t, members, 2, "self-transfer must not change the count")
	assert.Equal(t, "KON-G-00000001", members[0].SerialNumber(), "self-transfer must keep the membership position")
	assert.Equal(t, "KON-G-00000002", members[1].SerialNumber())
}

func TestTransferToSameShipUnknownSerial(t *testing.T) {
	s, err := New("Evergreen", 20, 10, 5)
	require.NoError(t, err)

	err = Transfer(s, s, "KON-G-unknown1")
	var notFound *types.ContainerNotFoundError
	require.ErrorAs(t, err, &notFound, "an absent serial is still not found on a self-transfer")
}

func TestTransferUnknownSerial(t *testing.T) {
	from, err := New("Evergreen", 20, 10, 5)
	require.NoError(t, err)
	to, err := New("Maersk", 18, 10, 5)
	require.NoError(t, err)

	err = Transfer(from, to, "KON-G-unknown1")
	var notFound *types.ContainerNotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestShipConstructionValidation(t *testing.T) {
	_, err := New("", 20, 10, 5)
	assert.Error(t, err, "empty name should be rejected")

	_, err = New("Evergreen", -1, 10, 5)
	assert.Error(t, err, "negative max speed should be rejected")

	_, err = New("Evergreen", 20, -1, 5)
	assert.Error(t, err, "negative max weight should be rejected")

	_, err = New("Evergreen", 20, 10, -1)
	assert.Error(t, err, "negative max container count should be rejected")
}
