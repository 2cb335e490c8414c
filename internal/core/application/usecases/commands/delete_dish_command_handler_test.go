package commands_test

import (
	"testing"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewDeleteDishCommand_InvalidID(t *testing.T) {
	_, err := commands.NewDeleteDishCommand(0)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestDeleteDishCommandHandler_Handle(t *testing.T) {
	id := kernel.MustNewID(5)

	testCases := []struct {
		name        string
		referenced  bool
		deleted     bool
		expectedErr error
	}{
		{name: "deleted", deleted: true},
		{name: "referenced by orders", referenced: true, expectedErr: errs.ErrObjectIsReferenced},
		{name: "missing", deleted: false, expectedErr: errs.ErrObjectNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := t.Context()
			cmd, err := commands.NewDeleteDishCommand(5)
			require.NoError(t, err)

			repo := new(MockDishRepository)
			uow := new(MockUoW)
			menu := new(MockMenuInvalidator)
			uow.On("Begin", ctx).Return(nil).Once()
			uow.On("DishRepository").Return(repo).Once()
			repo.On("IsReferenced", ctx, id).Return(tc.referenced, nil).Once()
			if !tc.referenced {
				repo.On("Delete", ctx, id).Return(tc.deleted, nil).Once()
			}
			if tc.expectedErr == nil {
				uow.On("Commit", ctx).Return(nil).Once()
				menu.On("Invalidate", ctx).Return(nil).Once()
			}
			uow.On("Rollback", ctx).Return(nil).Once()

			factory := new(MockDishUoWFactory)
			factory.On("Create").Return(uow).Once()

			h := commands.NewDeleteDishCommandHandler(factory, menu, discardLogger())
			err = h.Handle(ctx, cmd)

			if tc.expectedErr != nil {
				require.ErrorIs(t, err, tc.expectedErr)
				uow.AssertNotCalled(t, "Commit", mock.Anything)
			} else {
				require.NoError(t, err)
			}
			repo.AssertExpectations(t)
			uow.AssertExpectations(t)
			menu.AssertExpectations(t)
		})
	}
}
