package commands_test

import (
	"testing"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewCreateOrderCommand("  Анна ", []int64{3, 1})
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, "Анна", cmd.CustomerName())
	assert.Equal(t, []kernel.ID{kernel.MustNewID(3), kernel.MustNewID(1)}, cmd.DishIDs())
}

func TestNewCreateOrderCommand_InvalidInput(t *testing.T) {
	tooMany := make([]int64, 51)
	for i := range tooMany {
		tooMany[i] = int64(i + 1)
	}

	testCases := []struct {
		name         string
		customerName string
		dishIDs      []int64
		expectedErr  error
	}{
		{"empty customer name", " ", []int64{1}, commands.ErrCustomerNameIsRequired},
		{"no dishes", "Анна", nil, errs.ErrValueIsOutOfRange},
		{"too many dishes", "Анна", tooMany, errs.ErrValueIsOutOfRange},
		{"duplicate dishes", "Анна", []int64{1, 2, 1}, errs.ErrInvalidReference},
		{"non-positive id", "Анна", []int64{1, -4}, errs.ErrValueIsInvalid},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := commands.NewCreateOrderCommand(tc.customerName, tc.dishIDs)
			require.ErrorIs(t, err, tc.expectedErr)
		})
	}
}

func TestNewCreateOrderCommand_MaxDishes(t *testing.T) {
	ids := make([]int64, 50)
	for i := range ids {
		ids[i] = int64(i + 1)
	}

	cmd, err := commands.NewCreateOrderCommand("Анна", ids)
	require.NoError(t, err)
	assert.Len(t, cmd.DishIDs(), 50)
}

func TestCreateOrderCommand_DishIDsReturnsCopy(t *testing.T) {
	cmd, err := commands.NewCreateOrderCommand("Анна", []int64{1})
	require.NoError(t, err)

	ids := cmd.DishIDs()
	ids[0] = kernel.MustNewID(99)

	assert.Equal(t, kernel.MustNewID(1), cmd.DishIDs()[0])
}

func TestNewCreateOrderCommand_DuplicateCause(t *testing.T) {
	_, err := commands.NewCreateOrderCommand("Анна", []int64{4, 2, 4, 9, 2, 4})

	var refErr *errs.InvalidReferenceError
	require.ErrorAs(t, err, &refErr)
	assert.Equal(t, "dish_ids", refErr.ParamName)
	assert.Equal(t, []any{int64(4), int64(2)}, refErr.Missing)
	require.ErrorIs(t, refErr.Cause, commands.ErrDishIDsMustBeUnique)
}
