package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeTotals(t *testing.T) {
	tests := []struct {
		name  string
		items []Item
		want  Totals
	}{
		{
			name:  "empty cart has no delivery",
			items: nil,
			want:  Totals{},
		},
		{
			name: "two lines",
			items: []Item{
				{UnitPrice: 100, Quantity: 2},
				{UnitPrice: 50, Quantity: 1},
			},
			want: Totals{Subtotal: 250, Tax: 12.5, Delivery: 50, Total: 312.5},
		},
		{
			name:  "single line",
			items: []Item{{UnitPrice: 20, Quantity: 5}},
			want:  Totals{Subtotal: 100, Tax: 5, Delivery: 50, Total: 155},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeTotals(tt.items)
			assert.InDelta(t, tt.want.Subtotal, got.Subtotal, 1e-9)
			assert.InDelta(t, tt.want.Tax, got.Tax, 1e-9)
			assert.InDelta(t, tt.want.Delivery, got.Delivery, 1e-9)
			assert.InDelta(t, tt.want.Total, got.Total, 1e-9)
		})
	}
}

func TestAppend_CreatesIndependentLines(t *testing.T) {
	p := Product{ID: "p-1", Name: "Tomatoes", Price: 40}

	items, first := Append(nil, p)
	items, second := Append(items, p)

	require.Len(t, items, 2)
	assert.NotEqual(t, first.LocalID, second.LocalID)
	assert.Equal(t, 1, items[0].Quantity)
	assert.Equal(t, 1, items[1].Quantity)
	assert.Equal(t, "p-1", items[1].ProductID)
}

func TestSetQuantity_RejectsNonPositive(t *testing.T) {
	items, item := Append(nil, Product{ID: "p-1", Price: 10})

	items, err := SetQuantity(items, item.LocalID, 3)
	require.NoError(t, err)

	for _, q := range []int{0, -1, -100} {
		got, err := SetQuantity(items, item.LocalID, q)
		assert.ErrorIs(t, err, ErrInvalidQuantity)
		assert.Equal(t, 3, got[0].Quantity)
	}
}

func TestSetQuantity_DoesNotMutateInput(t *testing.T) {
	items, item := Append(nil, Product{ID: "p-1", Price: 10})

	updated, err := SetQuantity(items, item.LocalID, 7)
	require.NoError(t, err)
	assert.Equal(t, 1, items[0].Quantity)
	assert.Equal(t, 7, updated[0].Quantity)
}

func TestRemove(t *testing.T) {
	items, a := Append(nil, Product{ID: "p-1"})
	items, b := Append(items, Product{ID: "p-2"})

	items, err := Remove(items, a.LocalID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, b.LocalID, items[0].LocalID)

	_, err = Remove(items, "missing")
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestCountUnits(t *testing.T) {
	assert.Equal(t, 0, CountUnits(nil))
	assert.Equal(t, 4, CountUnits([]Item{{Quantity: 1}, {Quantity: 3}}))
}
