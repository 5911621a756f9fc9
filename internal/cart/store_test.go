package cart

import (
	"context"
	"testing"

	"storefront-service/internal/model"
	"storefront-service/internal/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	silk   = model.Product{ID: "1", Name: "Imperial Crimson Silk", Price: 18500}
	lawn   = model.Product{ID: "3", Name: "Azure Luxe Lawn", Price: 3200}
	khadar = model.Product{ID: "2", Name: "Executive Slate Khaddar", Price: 4500}
)

func TestAddToCartEmpty(t *testing.T) {
	var snapshots [][]model.CartItem
	s := NewStore(nil, func(_ context.Context, items []model.CartItem) {
		snapshots = append(snapshots, items)
	})

	res := s.AddToCart(context.Background(), silk)

	assert.True(t, res.Open)
	assert.Equal(t, model.CartItem{Product: silk, Quantity: 1}, res.Item)
	assert.Equal(t, []model.CartItem{{Product: silk, Quantity: 1}}, s.Items())
	require.Len(t, snapshots, 1)
	assert.Equal(t, s.Items(), snapshots[0])
}

func TestAddToCartSameProductIncrements(t *testing.T) {
	for _, n := range []int{1, 2, 5, 17} {
		s := NewStore(nil, nil)
		for i := 0; i < n; i++ {
			s.AddToCart(context.Background(), lawn)
		}
		items := s.Items()
		require.Len(t, items, 1)
		assert.Equal(t, n, items[0].Quantity)
	}
}

func TestAddToCartKeepsInsertionOrder(t *testing.T) {
	s := NewStore(nil, nil)
	ctx := context.Background()
	s.AddToCart(ctx, lawn)
	s.AddToCart(ctx, silk)
	s.AddToCart(ctx, lawn)

	items := s.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "3", items[0].Product.ID)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, "1", items[1].Product.ID)
}

func TestSetQuantity(t *testing.T) {
	tests := []struct {
		name string
		q    int
		want int
	}{
		{"positive", 4, 4},
		{"one", 1, 1},
		{"zero clamps", 0, 1},
		{"negative clamps", -3, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStore(nil, nil)
			s.AddToCart(context.Background(), silk)

			item, err := s.SetQuantity(context.Background(), silk.ID, tt.q)
			require.NoError(t, err)
			assert.Equal(t, tt.want, item.Quantity)
			assert.Equal(t, tt.want, s.Items()[0].Quantity)
		})
	}

	t.Run("unknown id", func(t *testing.T) {
		s := NewStore(nil, nil)
		_, err := s.SetQuantity(context.Background(), "nope", 2)
		assert.ErrorIs(t, err, ErrItemNotFound)
	})
}

func TestRemove(t *testing.T) {
	calls := 0
	s := NewStore(nil, func(context.Context, []model.CartItem) { calls++ })
	ctx := context.Background()
	s.AddToCart(ctx, silk)
	s.AddToCart(ctx, lawn)

	assert.True(t, s.Remove(ctx, silk.ID))
	assert.False(t, s.Remove(ctx, silk.ID))
	assert.Equal(t, []model.CartItem{{Product: lawn, Quantity: 1}}, s.Items())
	assert.Equal(t, 3, calls)
}

func TestTotals(t *testing.T) {
	s := NewStore(nil, nil)
	ctx := context.Background()
	assert.Equal(t, 0, s.TotalCount())
	assert.Equal(t, 0, s.TotalPrice())

	s.AddToCart(ctx, silk)
	s.AddToCart(ctx, lawn)
	s.AddToCart(ctx, lawn)
	assert.Equal(t, 3, s.TotalCount())
	assert.Equal(t, 18500+2*3200, s.TotalPrice())

	before := s.TotalPrice()
	s.AddToCart(ctx, khadar)
	assert.Equal(t, before+khadar.Price, s.TotalPrice())

	before = s.TotalPrice()
	_, err := s.SetQuantity(ctx, lawn.ID, 5)
	require.NoError(t, err)
	assert.Equal(t, before+3*lawn.Price, s.TotalPrice())

	before = s.TotalPrice()
	s.Remove(ctx, silk.ID)
	assert.Equal(t, before-silk.Price, s.TotalPrice())
	assert.Equal(t, 6, s.TotalCount())
}

func TestNewStoreNormalizes(t *testing.T) {
	s := NewStore([]model.CartItem{
		{Product: silk, Quantity: 0},
		{Product: lawn, Quantity: 2},
		{Product: silk, Quantity: 3},
	}, nil)

	assert.Equal(t, []model.CartItem{
		{Product: silk, Quantity: 4},
		{Product: lawn, Quantity: 2},
	}, s.Items())
}

func TestRegistry(t *testing.T) {
	ctx := context.Background()
	mem := storage.NewMemory()

	r := NewRegistry(mem)
	id, c := r.Create(ctx)
	assert.NotEmpty(t, id)
	assert.Equal(t, 0, r.Len())

	c.AddToCart(ctx, silk)
	c.AddToCart(ctx, silk)
	c.AddToCart(ctx, lawn)
	assert.Same(t, c, r.Get(ctx, id))
	assert.Equal(t, 1, r.Len())

	t.Run("reload yields the same cart", func(t *testing.T) {
		reloaded := NewRegistry(mem).Get(ctx, id)
		assert.Equal(t, c.Items(), reloaded.Items())
		assert.Equal(t, c.TotalPrice(), reloaded.TotalPrice())
	})

	t.Run("stored cart is cached on load", func(t *testing.T) {
		fresh := NewRegistry(mem)
		loaded := fresh.Get(ctx, id)
		assert.Same(t, loaded, fresh.Get(ctx, id))
		assert.Equal(t, 1, fresh.Len())
	})

	t.Run("carts are independent", func(t *testing.T) {
		_, other := r.Create(ctx)
		assert.Empty(t, other.Items())
	})

	t.Run("corrupt document starts empty", func(t *testing.T) {
		require.NoError(t, mem.Set(ctx, storage.CartKey("broken"), []byte("{{")))
		assert.Empty(t, NewRegistry(mem).Get(ctx, "broken").Items())
	})
}

func TestRegistryUnknownIDsAreNotRetained(t *testing.T) {
	ctx := context.Background()
	mem := storage.NewMemory()
	r := NewRegistry(mem)

	for i := 0; i < 1000; i++ {
		c := r.Get(ctx, uuid.New().String())
		assert.Empty(t, c.Items())
		c.Remove(ctx, silk.ID)
	}
	assert.Equal(t, 0, r.Len())
	assert.Empty(t, mem.Keys())

	id := uuid.New().String()
	c := r.Get(ctx, id)
	c.AddToCart(ctx, silk)
	assert.Equal(t, 1, r.Len())
	assert.Same(t, c, r.Get(ctx, id))

	_, err := mem.Get(ctx, storage.CartKey(id))
	assert.NoError(t, err)
}
