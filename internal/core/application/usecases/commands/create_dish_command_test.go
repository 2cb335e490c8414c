package commands_test

import (
	"testing"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateDishCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewCreateDishCommand("Борщ", "со сметаной", 350, "супы")
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, "Борщ", cmd.Name())
	assert.Equal(t, "со сметаной", cmd.Description())
	assert.InDelta(t, 350.0, cmd.Price().Amount(), 1e-9)
	assert.Equal(t, "супы", cmd.Category())
}

func TestNewCreateDishCommand_InvalidPrice(t *testing.T) {
	_, err := commands.NewCreateDishCommand("Борщ", "", 0, "супы")
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestCreateDishCommand_NotConstructed(t *testing.T) {
	err := commands.CreateDishCommand{}.Validate()
	require.ErrorIs(t, err, commands.ErrCreateDishCommandIsNotConstructed)
}
