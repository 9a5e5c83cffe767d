package order

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrder(t *testing.T) {
	t.Run("creates pending order", func(t *testing.T) {
		o, err := NewOrder(7, 3, " Иван ", " +7 900 000-00-00 ")
		require.NoError(t, err)

		assert.Equal(t, int64(7), o.OrganizationID)
		assert.Equal(t, int64(3), o.LandingID)
		assert.Equal(t, "Иван", o.CustomerName)
		assert.Equal(t, "+7 900 000-00-00", o.CustomerPhone)
		assert.Equal(t, StatusPending, o.Status)
		assert.True(t, o.TotalAmount.IsZero())
		assert.Empty(t, o.Items)
	})

	t.Run("fails without customer name", func(t *testing.T) {
		_, err := NewOrder(7, 3, "  ", "+7 900 000-00-00")
		require.Error(t, err)
	})

	t.Run("fails without customer phone", func(t *testing.T) {
		_, err := NewOrder(7, 3, "Иван", "")
		require.Error(t, err)
	})
}

func TestOrder_AddItem(t *testing.T) {
	o, err := NewOrder(7, 3, "Иван", "+7 900 000-00-00")
	require.NoError(t, err)

	require.NoError(t, o.AddItem(11, "Замена масла", decimal.NewFromInt(1500), 2))
	require.NoError(t, o.AddItem(12, "Диагностика", decimal.NewFromInt(500), 1))

	require.Len(t, o.Items, 2)
	assert.True(t, o.Items[0].Subtotal.Equal(decimal.NewFromInt(3000)))
	assert.True(t, o.TotalAmount.Equal(decimal.NewFromInt(3500)))
}

func TestOrder_AddItem_RejectsNonPositiveQuantity(t *testing.T) {
	o, _ := NewOrder(7, 3, "Иван", "+7 900 000-00-00")

	require.Error(t, o.AddItem(11, "Замена масла", decimal.NewFromInt(1500), 0))
	require.Error(t, o.AddItem(11, "Замена масла", decimal.NewFromInt(1500), -1))
	assert.Empty(t, o.Items)
	assert.True(t, o.TotalAmount.IsZero())
}

func TestOrder_UpdateStatus(t *testing.T) {
	t.Run("walks the normal lifecycle", func(t *testing.T) {
		o, _ := NewOrder(7, 3, "Иван", "+7 900 000-00-00")

		for _, status := range []Status{StatusConfirmed, StatusShipped, StatusCompleted} {
			require.NoError(t, o.UpdateStatus(status))
			assert.Equal(t, status, o.Status)
		}
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		o, _ := NewOrder(7, 3, "Иван", "+7 900 000-00-00")
		require.Error(t, o.UpdateStatus(Status("LOST")))
		assert.Equal(t, StatusPending, o.Status)
	})

	t.Run("cancelled is terminal", func(t *testing.T) {
		o, _ := NewOrder(7, 3, "Иван", "+7 900 000-00-00")
		require.NoError(t, o.Cancel())
		assert.Equal(t, StatusCancelled, o.Status)

		err := o.UpdateStatus(StatusConfirmed)
		require.Error(t, err)
		assert.Equal(t, StatusCancelled, o.Status)
	})

	t.Run("completed order can still be cancelled", func(t *testing.T) {
		o, _ := NewOrder(7, 3, "Иван", "+7 900 000-00-00")
		require.NoError(t, o.UpdateStatus(StatusCompleted))
		require.NoError(t, o.Cancel())
	})
}
