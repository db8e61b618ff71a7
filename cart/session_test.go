package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testProduct = Product{
	ID:         "p1",
	Name:       "Ashwagandha Capsules",
	Image:      "/uploads/products/ashwagandha.jpg",
	Category:   "Supplements",
	Price:      100,
	OfferPrice: 80,
}

func newTestSession(t *testing.T) *Session {
	t.Helper()
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	return Open("sess-1", store, NewBroker())
}

func TestAddSameProductKeepsSingleLine(t *testing.T) {
	s := newTestSession(t)

	for i := 0; i < 5; i++ {
		s.Add(testProduct)
	}

	lines := s.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "p1", lines[0].ProductID)
	assert.Equal(t, 5, lines[0].Quantity)
}

func TestAddSnapshotsDisplayFields(t *testing.T) {
	s := newTestSession(t)
	s.Add(testProduct)

	// Later catalog edits must not touch the line already in the cart.
	changed := testProduct
	changed.Name = "Renamed"
	changed.OfferPrice = 10
	s.Add(changed)

	lines := s.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "Ashwagandha Capsules", lines[0].Name)
	assert.Equal(t, 80.0, lines[0].OfferPrice)
	assert.Equal(t, 2, lines[0].Quantity)
}

func TestTotalsScenario(t *testing.T) {
	s := newTestSession(t)

	s.Add(testProduct)
	assert.Equal(t, Totals{TotalQuantity: 1, TotalAmount: 80, TotalSavings: 20}, s.Totals())

	s.Add(testProduct)
	assert.Equal(t, Totals{TotalQuantity: 2, TotalAmount: 160, TotalSavings: 40}, s.Totals())

	s.Decrease("p1")
	assert.Equal(t, Totals{TotalQuantity: 1, TotalAmount: 80, TotalSavings: 20}, s.Totals())

	s.Decrease("p1")
	assert.Empty(t, s.Lines())
	assert.Equal(t, Totals{}, s.Totals())
}

func TestDecreaseAtOneRemovesLine(t *testing.T) {
	s := newTestSession(t)
	s.Add(testProduct)

	s.Decrease("p1")

	assert.Empty(t, s.Lines(), "no zero-quantity line may survive a decrease")
}

func TestIncreaseMissingLineIsNoop(t *testing.T) {
	s := newTestSession(t)
	s.Add(testProduct)

	s.Increase("ghost")

	lines := s.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 1, lines[0].Quantity)
}

func TestRemoveDropsContribution(t *testing.T) {
	s := newTestSession(t)
	s.Add(testProduct)
	s.Add(Product{ID: "p2", Name: "Tulsi Drops", Price: 50, OfferPrice: 45})
	s.Increase("p2")

	s.Remove("p1")

	assert.Equal(t, Totals{TotalQuantity: 2, TotalAmount: 90, TotalSavings: 10}, s.Totals())
	for _, l := range s.Lines() {
		assert.NotEqual(t, "p1", l.ProductID)
	}
}

func TestSetQuantity(t *testing.T) {
	s := newTestSession(t)
	s.Add(testProduct)

	s.SetQuantity("p1", 7)
	lines := s.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 7, lines[0].Quantity)

	s.SetQuantity("p1", 0)
	assert.Empty(t, s.Lines(), "setting quantity to zero removes the line")

	s.Add(testProduct)
	s.SetQuantity("p1", -3)
	assert.Empty(t, s.Lines())
}

func TestClearEmptiesButSessionSurvives(t *testing.T) {
	s := newTestSession(t)
	s.Add(testProduct)

	s.Clear()

	assert.Empty(t, s.Lines())
	assert.Equal(t, Totals{}, s.Totals())

	// Empty -> NonEmpty again on the same session.
	s.Add(testProduct)
	assert.Equal(t, 1, s.Totals().TotalQuantity)
}

func TestLinesKeepInsertionOrder(t *testing.T) {
	s := newTestSession(t)
	s.Add(Product{ID: "a", OfferPrice: 1})
	s.Add(Product{ID: "b", OfferPrice: 1})
	s.Add(Product{ID: "c", OfferPrice: 1})
	s.Add(Product{ID: "b", OfferPrice: 1}) // bump, must not reorder

	lines := s.Lines()
	require.Len(t, lines, 3)
	assert.Equal(t, "a", lines[0].ProductID)
	assert.Equal(t, "b", lines[1].ProductID)
	assert.Equal(t, "c", lines[2].ProductID)
}
