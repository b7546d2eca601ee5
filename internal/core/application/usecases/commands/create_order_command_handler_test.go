package commands_test

import (
	"errors"
	"testing"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := validCreateOrderCommand(t)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).
		Run(func(args mock.Arguments) {
			aggregate := args.Get(1).(*order.Order)
			require.NoError(t, aggregate.SetID(42))
		}).
		Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	orderNumber, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Equal(t, int64(42), orderNumber)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateOrderCommand{} // not constructed properly

	factory := new(MockOrderUoWFactory)
	h := commands.NewCreateOrderCommandHandler(factory)

	_, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateOrderCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd := validCreateOrderCommand(t)

	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(errors.New("begin error")).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)

	require.Error(t, err)
}

func TestCreateOrderCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd := validCreateOrderCommand(t)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	repo.On("Add", mock.Anything, mock.Anything).Return(errors.New("insert failed")).Once()
	uow.On("Rollback", ctx).Return(nil)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	uow.AssertNotCalled(t, "Commit", ctx)
}
