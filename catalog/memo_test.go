package catalog

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ovs-innovation/farmcykart1-sub002/models"
)

func TestMemo_ReusesViewForSameInputs(t *testing.T) {
	memo := NewMemo(8)
	products := fixture()
	criteria := models.FilterCriteria{Search: "apple", Sort: models.SortPriceHigh}

	first := memo.View("", 1, products, criteria)
	second := memo.View("", 1, nil, criteria)

	require.Len(t, first, 2)
	assert.Equal(t, titles(first), titles(second))
	assert.Equal(t, 1, memo.Len())
}

func TestMemo_CriteriaOrderDoesNotMatter(t *testing.T) {
	memo := NewMemo(8)
	products := fixture()

	memo.View("", 1, products, models.FilterCriteria{Brands: []string{brandAcme.ID.String(), brandGlobex.ID.String()}})
	memo.View("", 1, products, models.FilterCriteria{Brands: []string{brandGlobex.ID.String(), brandAcme.ID.String()}})

	assert.Equal(t, 1, memo.Len())
}

func TestMemo_NewVersionDropsOldViews(t *testing.T) {
	memo := NewMemo(8)
	products := fixture()

	memo.View("", 1, products, models.FilterCriteria{})
	memo.View("", 1, products, models.FilterCriteria{MinRating: 4})
	require.Equal(t, 2, memo.Len())

	view := memo.View("", 2, products[:1], models.FilterCriteria{})

	assert.Len(t, view, 1)
	assert.Equal(t, 1, memo.Len())
}

func TestMemo_ScopesAreIndependent(t *testing.T) {
	memo := NewMemo(8)
	products := fixture()

	memo.View("fruit", 1, products[:1], models.FilterCriteria{})
	view := memo.View("dairy", 1, products[1:2], models.FilterCriteria{})

	assert.Equal(t, []string{"Whole Milk"}, titles(view))
	assert.Equal(t, 2, memo.Len())
}

func TestMemo_CapacityBound(t *testing.T) {
	memo := NewMemo(2)
	products := fixture()

	for rating := 1; rating <= 5; rating++ {
		memo.View("", 1, products, models.FilterCriteria{MinRating: rating})
	}

	assert.LessOrEqual(t, memo.Len(), 2)
}

func TestMemo_ConcurrentUse(t *testing.T) {
	memo := NewMemo(16)
	products := fixture()

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			view := memo.View("", 1, products, models.FilterCriteria{MinRating: i % 5})
			assert.NotNil(t, view)
		}(i)
	}
	wg.Wait()
}
