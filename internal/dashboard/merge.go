package dashboard

// Merge folds a newly resolved partial snapshot into the previous one.
// The policy is deliberately non-destructive: a follow-up chat turn that
// doesn't mention inventory must not blank the inventory table.
//
//   - nil incoming returns prev unchanged.
//   - metrics is replaced wholesale when present (no partial merge inside it).
//   - each list is replaced only when the incoming list is non-empty; an
//     empty or absent incoming list leaves the previous list untouched.
//   - message is replaced when non-empty (latest agent-summary banner); the
//     chat transcript is maintained separately and is not affected here.
//
// Merge is a pure function of its two inputs. It never errors; absence is
// always a valid input. Because empty never overwrites non-empty, two
// overlapping calls converge to the most recent non-empty value per field
// regardless of completion order.
func Merge(prev Snapshot, in *Snapshot) Snapshot {
	if in == nil {
		return prev
	}

	out := prev

	if in.Message != "" {
		out.Message = in.Message
	}
	if in.Metrics != nil {
		m := *in.Metrics
		out.Metrics = &m
	}
	if len(in.LowStockAlerts) > 0 {
		out.LowStockAlerts = in.LowStockAlerts
	}
	if len(in.InventoryItems) > 0 {
		out.InventoryItems = in.InventoryItems
	}
	if len(in.SalesData) > 0 {
		out.SalesData = in.SalesData
	}
	if len(in.Orders) > 0 {
		out.Orders = in.Orders
	}

	return out
}
