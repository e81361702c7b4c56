package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"grocery/internal/core/application/usecases/commands"
	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/order"
	"grocery/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCancelUoW struct{ mock.Mock }

func (m *MockCancelUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCancelUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCancelUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCancelUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockCancelUoW) PartnerRepository() ports.PartnerRepository {
	args := m.Called()
	return args.Get(0).(ports.PartnerRepository)
}

type MockCancelUoWFactory struct{ mock.Mock }

func (m *MockCancelUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockInventoryClient struct{ mock.Mock }

func (m *MockInventoryClient) RestockOnCancel(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func TestCancelOrderCommandHandler_Handle_PlacedOrder(t *testing.T) {
	ctx := t.Context()

	testOrder := placedTestOrder(t, "560001", 250)
	cmd, err := commands.NewCancelOrderCommand(testOrder.ID())
	require.NoError(t, err)

	orderRepo := new(MockAssignOrderRepository)
	uow := new(MockCancelUoW)
	registry := new(MockAvailabilityRegistry)
	inventory := new(MockInventoryClient)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo)
	orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once()
	orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	inventory.On("RestockOnCancel", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once()

	factory := new(MockCancelUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCancelOrderCommandHandler(factory, registry, inventory, discardLogger())
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Cancelled, testOrder.Status())
	require.NotNil(t, testOrder.CancelledAt())
	// An unassigned order has no partner to put back in the pool.
	registry.AssertNotCalled(t, "SetAvailable", mock.Anything, mock.Anything, mock.Anything)
	inventory.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_AssignedOrderFreesPartner(t *testing.T) {
	ctx := t.Context()

	testOrder, testPartner := assignedOrderWithPartner(t, order.PaymentMethodCOD, order.Assigned)
	cmd, err := commands.NewCancelOrderCommand(testOrder.ID())
	require.NoError(t, err)

	orderRepo := new(MockAssignOrderRepository)
	partnerRepo := new(MockAssignPartnerRepository)
	uow := new(MockCancelUoW)
	registry := new(MockAvailabilityRegistry)
	inventory := new(MockInventoryClient)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("PartnerRepository").Return(partnerRepo)
	orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once()
	orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	partnerRepo.On("Get", ctx, testPartner.ID()).Return(testPartner, nil).Once()
	orderRepo.On("CountActiveByPartner", ctx, testPartner.ID()).Return(0, nil).Once()
	registry.On("SetAvailable", testPartner.ID(), testPartner.ZoneCode(), true).Once()
	inventory.On("RestockOnCancel", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once()

	factory := new(MockCancelUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCancelOrderCommandHandler(factory, registry, inventory, discardLogger())
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Cancelled, testOrder.Status())
	// Cancellation keeps the partner binding for history.
	require.NotNil(t, testOrder.AssignedPartner())
	registry.AssertExpectations(t)
	inventory.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_TerminalOrder(t *testing.T) {
	ctx := t.Context()

	testOrder, testPartner := assignedOrderWithPartner(t, order.PaymentMethodOnline, order.OutForDelivery)
	require.NoError(t, testOrder.MarkDelivered(testPartner.ID(), time.Now().UTC()))
	cmd, err := commands.NewCancelOrderCommand(testOrder.ID())
	require.NoError(t, err)

	orderRepo := new(MockAssignOrderRepository)
	uow := new(MockCancelUoW)
	inventory := new(MockInventoryClient)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo)
	orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockCancelUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCancelOrderCommandHandler(
		factory, new(MockAvailabilityRegistry), inventory, discardLogger())
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, order.ErrInvalidTransition)
	assert.Equal(t, order.Delivered, testOrder.Status())
	inventory.AssertNotCalled(t, "RestockOnCancel", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestCancelOrderCommandHandler_Handle_RestockFailureDoesNotFail(t *testing.T) {
	ctx := t.Context()

	testOrder := placedTestOrder(t, "560001", 250)
	cmd, err := commands.NewCancelOrderCommand(testOrder.ID())
	require.NoError(t, err)

	orderRepo := new(MockAssignOrderRepository)
	uow := new(MockCancelUoW)
	inventory := new(MockInventoryClient)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo)
	orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once()
	orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	inventory.On("RestockOnCancel", ctx, mock.AnythingOfType("*order.Order")).
		Return(errors.New("broker unreachable")).
		Once()

	factory := new(MockCancelUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCancelOrderCommandHandler(
		factory, new(MockAvailabilityRegistry), inventory, discardLogger())
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Cancelled, testOrder.Status())
}

func TestCancelOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CancelOrderCommand{} // not constructed properly

	factory := new(MockCancelUoWFactory)
	handler := commands.NewCancelOrderCommandHandler(
		factory, new(MockAvailabilityRegistry), new(MockInventoryClient), discardLogger())
	err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrCancelOrderCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestCancelOrderCommand_RequiresOrderID(t *testing.T) {
	_, err := commands.NewCancelOrderCommand(kernel.UUID{})
	require.Error(t, err)
}
