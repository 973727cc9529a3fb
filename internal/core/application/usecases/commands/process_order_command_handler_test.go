package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/kashish2310/food-delivery-order-system/internal/core/application/usecases/commands"
	"github.com/kashish2310/food-delivery-order-system/internal/core/domain/model/order"
	"github.com/kashish2310/food-delivery-order-system/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastDelays() commands.ProcessingDelays {
	return commands.ProcessingDelays{
		WorkMin:  time.Millisecond,
		WorkMax:  3 * time.Millisecond,
		Finalize: time.Millisecond,
	}
}

func TestProcessingDelays_Validate(t *testing.T) {
	require.NoError(t, commands.DefaultProcessingDelays().Validate())
	require.NoError(t, commands.ProcessingDelays{}.Validate())

	err := commands.ProcessingDelays{WorkMin: 5 * time.Second, WorkMax: 2 * time.Second}.Validate()
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	err = commands.ProcessingDelays{Finalize: -time.Second}.Validate()
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestDefaultProcessingDelays(t *testing.T) {
	d := commands.DefaultProcessingDelays()

	assert.Equal(t, 2*time.Second, d.WorkMin)
	assert.Equal(t, 5*time.Second, d.WorkMax)
	assert.Equal(t, 2*time.Second, d.Finalize)
}

func TestNewProcessOrderCommand(t *testing.T) {
	cmd, err := commands.NewProcessOrderCommand(5)
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, int64(5), cmd.OrderID())

	_, err = commands.NewProcessOrderCommand(0)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	require.ErrorIs(t, commands.ProcessOrderCommand{}.Validate(), commands.ErrProcessOrderCommandIsNotConstructed)
}

func TestProcessOrderCommandHandler_Handle_PendingToProcessed(t *testing.T) {
	store := newMemoryStore()
	store.put(restoredOrder(1, order.Pending))

	cmd, err := commands.NewProcessOrderCommand(1)
	require.NoError(t, err)

	h := commands.NewProcessOrderCommandHandler(store, fastDelays())
	require.NoError(t, h.Handle(t.Context(), cmd))

	assert.Equal(t, []order.Status{order.Pending, order.Processing, order.Processed}, store.statuses(1))
}

func TestProcessOrderCommandHandler_Handle_WaitsForWorkPhases(t *testing.T) {
	store := newMemoryStore()
	store.put(restoredOrder(1, order.Pending))

	delays := commands.ProcessingDelays{
		WorkMin:  20 * time.Millisecond,
		WorkMax:  30 * time.Millisecond,
		Finalize: 20 * time.Millisecond,
	}
	cmd, err := commands.NewProcessOrderCommand(1)
	require.NoError(t, err)

	h := commands.NewProcessOrderCommandHandler(store, delays)
	started := time.Now()
	require.NoError(t, h.Handle(t.Context(), cmd))

	assert.GreaterOrEqual(t, time.Since(started), delays.WorkMin+delays.Finalize)
}

func TestProcessOrderCommandHandler_Handle_NotFound(t *testing.T) {
	store := newMemoryStore()
	cmd, err := commands.NewProcessOrderCommand(99)
	require.NoError(t, err)

	h := commands.NewProcessOrderCommandHandler(store, fastDelays())
	err = h.Handle(t.Context(), cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.Contains(t, err.Error(), "start processing order 99")
}

func TestProcessOrderCommandHandler_Handle_RejectsNonPending(t *testing.T) {
	for _, status := range []order.Status{order.Processing, order.Processed} {
		t.Run(status.String(), func(t *testing.T) {
			store := newMemoryStore()
			store.put(restoredOrder(1, status))

			cmd, err := commands.NewProcessOrderCommand(1)
			require.NoError(t, err)

			h := commands.NewProcessOrderCommandHandler(store, fastDelays())
			err = h.Handle(t.Context(), cmd)

			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
			assert.Equal(t, []order.Status{status}, store.statuses(1))
		})
	}
}

func TestProcessOrderCommandHandler_Handle_FailureLeavesLastCommittedStatus(t *testing.T) {
	store := newMemoryStore()
	store.put(restoredOrder(1, order.Pending))
	store.failOn[order.Processed] = errors.New("connection reset")

	cmd, err := commands.NewProcessOrderCommand(1)
	require.NoError(t, err)

	h := commands.NewProcessOrderCommandHandler(store, fastDelays())
	err = h.Handle(t.Context(), cmd)

	require.EqualError(t, err, "complete processing order 1: connection reset")
	assert.Equal(t, []order.Status{order.Pending, order.Processing}, store.statuses(1))
}

func TestProcessOrderCommandHandler_Handle_ContextCancelled(t *testing.T) {
	store := newMemoryStore()
	store.put(restoredOrder(1, order.Pending))

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	cmd, err := commands.NewProcessOrderCommand(1)
	require.NoError(t, err)

	h := commands.NewProcessOrderCommandHandler(store, commands.DefaultProcessingDelays())
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, []order.Status{order.Pending}, store.statuses(1))
}

func TestProcessOrderCommandHandler_Handle_NotConstructed(t *testing.T) {
	factory := new(MockOrderUoWFactory)
	h := commands.NewProcessOrderCommandHandler(factory, fastDelays())

	err := h.Handle(t.Context(), commands.ProcessOrderCommand{})

	require.ErrorIs(t, err, commands.ErrProcessOrderCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
