package permissions

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/RenaRill/restaurant-order-system/helpers"
	"github.com/RenaRill/restaurant-order-system/models"
)

func TestResolve(t *testing.T) {
	testCases := []struct {
		name     string
		claims   *helpers.SignedDetails
		expected Role
	}{
		{"nil claims", nil, Anonymous},
		{"no flags", &helpers.SignedDetails{UserID: 1}, Anonymous},
		{"waiter", &helpers.SignedDetails{UserID: 1, IsWaiter: true}, Waiter},
		{"kitchen", &helpers.SignedDetails{UserID: 1, IsKitchen: true}, Kitchen},
		{"admin", &helpers.SignedDetails{UserID: 1, IsAdmin: true}, Admin},
		{
			"admin wins over other flags",
			&helpers.SignedDetails{UserID: 1, IsAdmin: true, IsWaiter: true, IsKitchen: true},
			Admin,
		},
		{
			"kitchen checked before waiter",
			&helpers.SignedDetails{UserID: 1, IsWaiter: true, IsKitchen: true},
			Kitchen,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Resolve(tc.claims))
		})
	}
}

func TestListScope(t *testing.T) {
	callerID := uint(7)

	t.Run("kitchen pinned to ACCEPTED, status param ignored", func(t *testing.T) {
		filters, err := ListScope(Kitchen, callerID, models.StatusPaid)
		assert.NoError(t, err)
		assert.Nil(t, filters.UserID)
		assert.Equal(t, models.StatusAccepted, filters.Status)
	})

	t.Run("waiter pinned to own orders", func(t *testing.T) {
		filters, err := ListScope(Waiter, callerID, "")
		assert.NoError(t, err)
		if assert.NotNil(t, filters.UserID) {
			assert.Equal(t, callerID, *filters.UserID)
		}
		assert.Empty(t, filters.Status)
	})

	t.Run("waiter may narrow by status", func(t *testing.T) {
		filters, err := ListScope(Waiter, callerID, models.StatusDelivered)
		assert.NoError(t, err)
		assert.Equal(t, models.StatusDelivered, filters.Status)
	})

	t.Run("admin sees all", func(t *testing.T) {
		filters, err := ListScope(Admin, callerID, "")
		assert.NoError(t, err)
		assert.Nil(t, filters.UserID)
		assert.Empty(t, filters.Status)
	})

	t.Run("anonymous refused", func(t *testing.T) {
		_, err := ListScope(Anonymous, 0, "")
		assert.ErrorIs(t, err, ErrUnauthenticated)
	})
}

func TestCanViewOrder(t *testing.T) {
	owned := &models.Order{ID: 1, UserID: 7, Status: models.StatusAccepted}
	foreign := &models.Order{ID: 2, UserID: 9, Status: models.StatusAccepted}
	delivered := &models.Order{ID: 3, UserID: 9, Status: models.StatusDelivered}

	testCases := []struct {
		name     string
		role     Role
		callerID uint
		order    *models.Order
		expected error
	}{
		{"admin sees anything", Admin, 7, delivered, nil},
		{"kitchen sees accepted", Kitchen, 7, foreign, nil},
		{"kitchen refused non-accepted", Kitchen, 7, delivered, ErrKitchenAcceptedOnly},
		{"waiter sees own", Waiter, 7, owned, nil},
		{"waiter refused foreign", Waiter, 7, foreign, ErrNotOrderOwner},
		{"anonymous refused", Anonymous, 0, owned, ErrUnauthenticated},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := CanViewOrder(tc.role, tc.callerID, tc.order)
			if tc.expected == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.expected)
			}
		})
	}
}

func TestCanCreateOrder(t *testing.T) {
	assert.NoError(t, CanCreateOrder(Waiter))
	assert.ErrorIs(t, CanCreateOrder(Admin), ErrWaiterOnlyCreate)
	assert.ErrorIs(t, CanCreateOrder(Kitchen), ErrWaiterOnlyCreate)
	assert.ErrorIs(t, CanCreateOrder(Anonymous), ErrUnauthenticated)
}

func TestCanUpdateOrder(t *testing.T) {
	owned := &models.Order{ID: 1, UserID: 7, Status: models.StatusAccepted}
	foreign := &models.Order{ID: 2, UserID: 9, Status: models.StatusAccepted}

	assert.NoError(t, CanUpdateOrder(Admin, 1, foreign))
	assert.NoError(t, CanUpdateOrder(Waiter, 7, owned))
	assert.ErrorIs(t, CanUpdateOrder(Waiter, 7, foreign), ErrNotOrderOwner)
	assert.ErrorIs(t, CanUpdateOrder(Kitchen, 7, owned), ErrKitchenReadOnly)
	assert.ErrorIs(t, CanUpdateOrder(Anonymous, 0, owned), ErrUnauthenticated)
}

func TestCanMarkOrder(t *testing.T) {
	owned := &models.Order{ID: 1, UserID: 7, Status: models.StatusAccepted}
	foreign := &models.Order{ID: 2, UserID: 9, Status: models.StatusAccepted}

	assert.NoError(t, CanMarkOrder(Waiter, 7, owned))
	assert.ErrorIs(t, CanMarkOrder(Waiter, 7, foreign), ErrNotOrderOwner)
	// The transition actions belong to the owning waiter alone; not even
	// admins may record delivery or payment on someone else's order.
	assert.ErrorIs(t, CanMarkOrder(Admin, 7, owned), ErrWaiterOnlyAction)
	assert.ErrorIs(t, CanMarkOrder(Kitchen, 7, owned), ErrWaiterOnlyAction)
	assert.ErrorIs(t, CanMarkOrder(Anonymous, 0, owned), ErrUnauthenticated)
}

func TestCanTransition(t *testing.T) {
	testCases := []struct {
		name string
		from string
		to   string
		ok   bool
	}{
		{"accepted to delivered", models.StatusAccepted, models.StatusDelivered, true},
		{"delivered to paid", models.StatusDelivered, models.StatusPaid, true},
		{"same status is a no-op", models.StatusDelivered, models.StatusDelivered, true},
		{"no skipping", models.StatusAccepted, models.StatusPaid, false},
		{"no reverse", models.StatusDelivered, models.StatusAccepted, false},
		{"paid is terminal", models.StatusPaid, models.StatusDelivered, false},
		{"paid cannot reopen", models.StatusPaid, models.StatusAccepted, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := CanTransition(tc.from, tc.to)
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidTransition)
			}
		})
	}
}
