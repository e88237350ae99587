package platform

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPortFromNameIsStableAndInRange(t *testing.T) {
	for _, name := range []string{"Pomodoro", "pomodoro", "", "a much longer application name"} {
		port := portFromName(name)
		assert.Equal(t, port, portFromName(name))
		assert.GreaterOrEqual(t, port, 20000)
		assert.LessOrEqual(t, port, 39999)
	}
	assert.NotEqual(t, portFromName("Pomodoro"), portFromName("pomodoro"))
}

func TestAcquireSingleInstanceRejectsSecondGuard(t *testing.T) {
	appName := fmt.Sprintf("pomodoro-test-%s", t.Name())

	guard, err := AcquireSingleInstance(appName)
	require.NoError(t, err)
	assert.Equal(t, instanceAddress(appName), guard.Address())

	second, err := AcquireSingleInstance(appName)
	assert.Nil(t, second)
	assert.ErrorIs(t, err, ErrAlreadyRunning)

	require.NoError(t, guard.Release())
	require.NoError(t, guard.Release())

	again, err := AcquireSingleInstance(appName)
	require.NoError(t, err)
	require.NoError(t, again.Release())
}

func TestNilGuardIsSafe(t *testing.T) {
	var guard *InstanceGuard

	assert.NoError(t, guard.Release())
	assert.Empty(t, guard.Address())
}
