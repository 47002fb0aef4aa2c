package dashboard

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func baseSnapshot() Snapshot {
	return Snapshot{
		Message: "baseline",
		Metrics: &Metrics{TotalSKUs: 10, LowStockCount: 2, PendingOrders: 1, TopSeller: "Gloves"},
		LowStockAlerts: []LowStockAlert{
			{Product: "Gloves", CurrentStock: 3, Threshold: 10, Priority: "high"},
		},
		InventoryItems: []InventoryItem{
			{Product: "Gloves", SKU: "GL-1", CurrentStock: 3},
		},
		SalesData: []SalesRecord{
			{Product: "Gloves", UnitsSold: 40, Revenue: 399.60},
		},
		Orders: []Order{
			{OrderID: "ORD-1", Status: "pending", Items: []OrderItem{{Name: "Gloves", Quantity: 20}}},
		},
	}
}

func TestMerge_NilIncoming(t *testing.T) {
	prev := baseSnapshot()
	got := Merge(prev, nil)
	if diff := cmp.Diff(prev, got); diff != "" {
		t.Fatalf("Merge(prev, nil) changed state (-want +got):\n%s", diff)
	}
}

func TestMerge_EmptyListsDoNotClear(t *testing.T) {
	prev := baseSnapshot()
	got := Merge(prev, &Snapshot{
		LowStockAlerts: []LowStockAlert{},
		InventoryItems: []InventoryItem{},
		SalesData:      []SalesRecord{},
		Orders:         []Order{},
	})
	if diff := cmp.Diff(prev, got); diff != "" {
		t.Fatalf("empty incoming lists clobbered state (-want +got):\n%s", diff)
	}
}

func TestMerge_NonEmptyListReplaces(t *testing.T) {
	prev := baseSnapshot()
	incoming := &Snapshot{
		LowStockAlerts: []LowStockAlert{
			{Product: "Tape", CurrentStock: 1, Threshold: 5, Priority: "critical"},
		},
	}

	got := Merge(prev, incoming)

	assert.Equal(t, incoming.LowStockAlerts, got.LowStockAlerts, "non-empty list replaces wholesale")
	assert.Equal(t, prev.InventoryItems, got.InventoryItems, "untouched list survives")
	assert.Equal(t, prev.SalesData, got.SalesData)
	assert.Equal(t, prev.Orders, got.Orders)
}

func TestMerge_MetricsReplacedWholesale(t *testing.T) {
	prev := baseSnapshot()
	// Incoming metrics has a zero TopSeller; there is no partial merge
	// inside metrics, so the zero wins.
	got := Merge(prev, &Snapshot{Metrics: &Metrics{TotalSKUs: 11}})

	assert.Equal(t, 11, got.Metrics.TotalSKUs)
	assert.Equal(t, "", got.Metrics.TopSeller)
	assert.Equal(t, "Gloves", prev.Metrics.TopSeller, "previous snapshot not mutated")
}

func TestMerge_MessageReplacedWhenPresent(t *testing.T) {
	prev := baseSnapshot()

	got := Merge(prev, &Snapshot{Message: "low stock on gloves"})
	assert.Equal(t, "low stock on gloves", got.Message)

	got = Merge(prev, &Snapshot{})
	assert.Equal(t, "baseline", got.Message, "absent message leaves banner alone")
}

func TestMerge_PartialTurnKeepsInventory(t *testing.T) {
	// A chat turn that mentions only metrics must not blank the tables.
	prev := baseSnapshot()
	incoming := &Snapshot{
		Message: "low stock on gloves",
		Metrics: &Metrics{TotalSKUs: 10, LowStockCount: 1, PendingOrders: 1, TopSeller: "Gloves"},
	}

	got := Merge(prev, incoming)

	assert.Equal(t, prev.InventoryItems, got.InventoryItems)
	assert.Equal(t, 1, got.Metrics.LowStockCount)
	assert.Equal(t, "low stock on gloves", got.Message)
}

func TestMerge_OrderTolerant(t *testing.T) {
	// Two overlapping calls resolve to a populated list and an empty one.
	// Whichever lands last, the populated value survives.
	withData := &Snapshot{SalesData: []SalesRecord{{Product: "Tape", UnitsSold: 5}}}
	empty := &Snapshot{SalesData: []SalesRecord{}}

	a := Merge(Merge(Snapshot{}, withData), empty)
	b := Merge(Merge(Snapshot{}, empty), withData)

	assert.Equal(t, withData.SalesData, a.SalesData)
	assert.Equal(t, withData.SalesData, b.SalesData)
}

func TestMerge_Pure(t *testing.T) {
	prev := baseSnapshot()
	in := &Snapshot{Metrics: &Metrics{TotalSKUs: 99}}

	first := Merge(prev, in)
	second := Merge(prev, in)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("Merge not deterministic (-first +second):\n%s", diff)
	}
}
