package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"stockdeck/internal/dashboard"
)

// placeholder stands in for record sub-fields the agent never supplied.
// Defaulting happens here at render time only; the snapshot itself keeps
// records exactly as they were extracted.
const placeholder = "--"

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return placeholder
	}
	return s
}

func itoa(n int) string {
	return strconv.Itoa(n)
}

func money(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}

// RenderDashboard renders the full dashboard pane from a snapshot copy.
// Absent sections render as nothing.
func RenderDashboard(snap dashboard.Snapshot, styles Styles) string {
	var sections []string

	if s := RenderMetrics(snap.Metrics, styles); s != "" {
		sections = append(sections, s)
	}
	if s := RenderLowStock(snap.LowStockAlerts, styles); s != "" {
		sections = append(sections, s)
	}
	if s := RenderInventory(snap.InventoryItems, styles); s != "" {
		sections = append(sections, s)
	}
	if s := RenderSales(snap.SalesData, styles); s != "" {
		sections = append(sections, s)
	}
	if s := RenderOrders(snap.Orders, styles); s != "" {
		sections = append(sections, s)
	}

	if len(sections) == 0 {
		return styles.Muted.Render("No dashboard data yet. Ask the agent about your inventory.")
	}
	return strings.Join(sections, "\n")
}

// RenderMetrics renders the headline counters strip.
func RenderMetrics(m *dashboard.Metrics, styles Styles) string {
	if m == nil {
		return ""
	}

	cell := func(label, value string) string {
		return lipgloss.JoinVertical(lipgloss.Left,
			styles.Muted.Render(label),
			styles.Bold.Render(value),
		)
	}

	strip := lipgloss.JoinHorizontal(lipgloss.Top,
		cell("Total SKUs", itoa(m.TotalSKUs)), "   ",
		cell("Low Stock", itoa(m.LowStockCount)), "   ",
		cell("Pending Orders", itoa(m.PendingOrders)), "   ",
		cell("Top Seller", orDash(m.TopSeller)),
	)
	return strip + "\n"
}

// RenderLowStock renders the low-stock alert table. Priority cells are
// colorized by severity.
func RenderLowStock(alerts []dashboard.LowStockAlert, styles Styles) string {
	table := NewSimpleTable("Low Stock Alerts", []string{"Product", "Stock", "Threshold", "Status", "Priority", "Reorder"})
	for _, a := range alerts {
		table.AddRow(
			orDash(a.Product),
			itoa(a.CurrentStock),
			itoa(a.Threshold),
			orDash(a.Status),
			priorityCell(a.Priority, styles),
			itoa(a.RecommendedOrder),
		)
	}
	return table.View(styles)
}

func priorityCell(priority string, styles Styles) string {
	switch strings.ToLower(priority) {
	case "critical", "high":
		return styles.Error.Render(priority)
	case "medium":
		return styles.Warning.Render(priority)
	case "":
		return placeholder
	default:
		return priority
	}
}

// RenderInventory renders the inventory table.
func RenderInventory(items []dashboard.InventoryItem, styles Styles) string {
	table := NewSimpleTable("Inventory", []string{"Product", "SKU", "Category", "Stock", "Reorder At", "Status", "Last Restocked"})
	for _, it := range items {
		table.AddRow(
			orDash(it.Product),
			orDash(it.SKU),
			orDash(it.Category),
			itoa(it.CurrentStock),
			itoa(it.ReorderThreshold),
			orDash(it.Status),
			orDash(it.LastRestocked),
		)
	}
	return table.View(styles)
}

// RenderSales renders the sales table.
func RenderSales(records []dashboard.SalesRecord, styles Styles) string {
	table := NewSimpleTable("Sales", []string{"Product", "Units", "Revenue", "Trend", "Category"})
	for _, r := range records {
		table.AddRow(
			orDash(r.Product),
			itoa(r.UnitsSold),
			money(r.Revenue),
			orDash(r.Trend),
			orDash(r.Category),
		)
	}
	return table.View(styles)
}

// RenderOrders renders the orders table. Each row summarizes its line items
// as "name xqty" pairs.
func RenderOrders(orders []dashboard.Order, styles Styles) string {
	table := NewSimpleTable("Orders", []string{"Order", "Date", "Items", "Status", "Supplier", "Contents"})
	for _, o := range orders {
		table.AddRow(
			orDash(o.OrderID),
			orDash(o.Date),
			itoa(o.ItemCount),
			orDash(o.Status),
			orDash(o.Supplier),
			orderContents(o.Items),
		)
	}
	return table.View(styles)
}

func orderContents(items []dashboard.OrderItem) string {
	if len(items) == 0 {
		return placeholder
	}
	parts := make([]string, 0, len(items))
	for _, it := range items {
		parts = append(parts, fmt.Sprintf("%s x%d", orDash(it.Name), it.Quantity))
	}
	return strings.Join(parts, ", ")
}
