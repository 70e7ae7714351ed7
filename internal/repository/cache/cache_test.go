package cache_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"orderdesk/internal/models"
	"orderdesk/internal/repository/cache"
)

func TestOrderCache_PutGet_All(t *testing.T) {
	cch := cache.NewOrderCache(cache.New())

	_, err := cch.GetOrder("nope")
	require.Error(t, err)
	if eh, ok := err.(cache.ErrorHandler); ok {
		require.Equal(t, http.StatusNotFound, eh.StatusCode)
	}

	in := models.Order{OrderNumber: "ORD-AB12CD", RetailerID: "ret-1"}
	cch.PutOrder(in.OrderNumber, in)

	got, err := cch.GetOrder("ORD-AB12CD")
	require.NoError(t, err)
	require.Equal(t, "ORD-AB12CD", got.OrderNumber)

	all, err := cch.GetAllOrders()
	require.NoError(t, err)
	require.Len(t, all, 1)
	require.Equal(t, "ORD-AB12CD", all[0].OrderNumber)

	cch.DeleteOrder("ORD-AB12CD")
	_, err = cch.GetOrder("ORD-AB12CD")
	require.Error(t, err)
}

func TestCatalogCache_Snapshot(t *testing.T) {
	cch := cache.NewCatalogCache(cache.New())

	require.Empty(t, cch.Snapshot())

	cch.PutProduct(models.Product{ID: "p1", Name: "Olive Oil", UnitPrice: 10})
	cch.PutProduct(models.Product{ID: "p2", Name: "Sea Salt", UnitPrice: 5.5})

	p, err := cch.GetProduct("p1")
	require.NoError(t, err)
	require.Equal(t, "Olive Oil", p.Name)

	_, err = cch.GetProduct("p3")
	require.Error(t, err)

	snap := cch.Snapshot()
	require.Len(t, snap, 2)
	require.Equal(t, 5.5, snap["p2"].UnitPrice)

	// the snapshot is detached from later writes
	cch.PutProduct(models.Product{ID: "p3", Name: "Rye Flour", UnitPrice: 3})
	require.Len(t, snap, 2)
}
