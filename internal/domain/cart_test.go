package domain

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func product(id int, price float64) Product {
	return Product{ID: id, Title: "p", Price: price}
}

func TestCartAddCountsEveryCall(t *testing.T) {
	c := NewCart(0)
	adds := []int{1, 2, 1, 3, 1, 2}
	for _, id := range adds {
		c.Add(product(id, 1))
	}

	assert.Equal(t, len(adds), c.Count())

	items := c.Items()
	require.Len(t, items, 3, "one line per distinct product")
	assert.Equal(t, []int{1, 2, 3}, []int{items[0].ID, items[1].ID, items[2].ID})
	assert.Equal(t, 3, c.Quantity(1))
	assert.Equal(t, 2, c.Quantity(2))
	assert.Equal(t, 1, c.Quantity(3))
}

func TestCartRemoveThenAddStartsFresh(t *testing.T) {
	c := NewCart(0)
	p := product(7, 3.5)
	c.Add(p)
	c.Add(p)
	c.Add(p)

	c.Remove(7)
	assert.Zero(t, c.Quantity(7))
	assert.Empty(t, c.Items())

	c.Add(p)
	assert.Equal(t, 1, c.Quantity(7))
}

func TestCartRemoveUnknownIsNoop(t *testing.T) {
	c := NewCart(0)
	c.Add(product(1, 1))
	c.Remove(99)
	assert.Equal(t, 1, c.Count())
}

func TestCartUpdateQuantity(t *testing.T) {
	c := NewCart(0)
	c.Add(product(1, 1))

	c.UpdateQuantity(1, 4)
	assert.Equal(t, 4, c.Quantity(1))

	c.UpdateQuantity(1, 0)
	assert.Equal(t, 4, c.Quantity(1), "zero is ignored")

	c.UpdateQuantity(1, -2)
	assert.Equal(t, 4, c.Quantity(1), "negative is ignored")

	c.UpdateQuantity(42, 3)
	assert.Len(t, c.Items(), 1, "unknown id does not create a line")
}

func TestCartQuantityCap(t *testing.T) {
	c := NewCart(2)
	p := product(1, 1)
	c.Add(p)
	c.Add(p)
	c.Add(p)
	assert.Equal(t, 2, c.Quantity(1))

	c.UpdateQuantity(1, 50)
	assert.Equal(t, 2, c.Quantity(1))
}

func TestCartTotal(t *testing.T) {
	c := NewCart(0)
	a := product(1, 10)
	b := product(2, 5)
	c.Add(a)
	c.Add(a)
	c.Add(b)

	assert.Equal(t, "25.00", c.TotalString())
}

func TestCartTotalAvoidsFloatDrift(t *testing.T) {
	c := NewCart(0)
	c.Add(product(1, 0.1))
	c.Add(product(2, 0.2))

	assert.Equal(t, "0.30", c.TotalString())
	assert.True(t, c.Total().Equal(c.Total().Round(2)))
}

func TestEmptyCart(t *testing.T) {
	c := NewCart(0)
	assert.Zero(t, c.Count())
	assert.Equal(t, "0.00", c.TotalString())
	assert.Empty(t, c.Items())
}

func TestCartItemsIsACopy(t *testing.T) {
	c := NewCart(0)
	c.Add(product(1, 1))
	items := c.Items()
	items[0].Quantity = 99
	assert.Equal(t, 1, c.Quantity(1))
}

func TestCartConcurrentAdds(t *testing.T) {
	c := NewCart(0)
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			c.Add(product(id%5, 2))
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 100, c.Count())
	assert.Len(t, c.Items(), 5)
	assert.Equal(t, "200.00", c.TotalString())
}
