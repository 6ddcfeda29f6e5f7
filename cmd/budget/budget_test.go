package budget_test

import (
	"errors"
	"testing"

	"ssshep/expensepro/cmd/add"
	"ssshep/expensepro/cmd/budget"
	"ssshep/expensepro/cmd/cmdtest"
	"ssshep/expensepro/internal/ledgererror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBudgetCommand(t *testing.T) {
	dir := cmdtest.Env(t)

	out, err := cmdtest.Run(t, dir, budget.NewCommand(), "show")
	require.NoError(t, err)
	assert.Contains(t, out, "₹30,000.00")

	out, err = cmdtest.Run(t, dir, budget.NewCommand(), "set", "50000")
	require.NoError(t, err)
	assert.Contains(t, out, "Budget set to ₹50,000.00")

	_, err = cmdtest.Run(t, dir, add.NewCommand(), "-c", "Ravi", "-p", "Tea", "-a", "1000")
	require.NoError(t, err)

	out, err = cmdtest.Run(t, dir, budget.NewCommand(), "show")
	require.NoError(t, err)
	assert.Contains(t, out, "Initial Budget:    ₹50,000.00")
	assert.Contains(t, out, "Remaining Balance: ₹49,000.00")
}

func TestBudgetCommand_Invalid(t *testing.T) {
	dir := cmdtest.Env(t)
	for _, value := range []string{"0", "-10", "-2.5", "-.5", "abc", "NaN", "Infinity", "-Infinity"} {
		t.Run(value, func(t *testing.T) {
			_, err := cmdtest.Run(t, dir, budget.NewCommand(), "set", value)
			var budgetErr *ledgererror.InvalidBudgetError
			assert.ErrorAs(t, err, &budgetErr)
		})
	}
}

func TestBudgetCommand_NegativeRejectedWithoutChange(t *testing.T) {
	dir := cmdtest.Env(t)
	_, err := cmdtest.Run(t, dir, budget.NewCommand(), "set", "-10")
	var budgetErr *ledgererror.InvalidBudgetError
	require.ErrorAs(t, err, &budgetErr)
	assert.Equal(t, "-10", budgetErr.Value)

	out, err := cmdtest.Run(t, dir, budget.NewCommand(), "show")
	require.NoError(t, err)
	assert.Contains(t, out, "Initial Budget:    ₹30,000.00")
}

func TestBudgetCommand_UnknownFlag(t *testing.T) {
	dir := cmdtest.Env(t)
	_, err := cmdtest.Run(t, dir, budget.NewCommand(), "set", "100", "-x")
	require.Error(t, err)
	var budgetErr *ledgererror.InvalidBudgetError
	assert.False(t, errors.As(err, &budgetErr))
	assert.Contains(t, err.Error(), "unknown shorthand flag")
}
