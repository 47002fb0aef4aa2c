// Package dashboard defines the normalized dashboard state extracted from
// agent replies and the non-destructive merge policy that keeps it alive
// across chat turns.
package dashboard

import "time"

// Metrics is the headline counters strip.
type Metrics struct {
	TotalSKUs     int    `json:"totalSKUs"`
	LowStockCount int    `json:"lowStockCount"`
	PendingOrders int    `json:"pendingOrders"`
	TopSeller     string `json:"topSeller"`
}

// LowStockAlert is one row of the low-stock alert table.
type LowStockAlert struct {
	Product          string `json:"product"`
	CurrentStock     int    `json:"currentStock"`
	Threshold        int    `json:"threshold"`
	Status           string `json:"status"`
	Priority         string `json:"priority"`
	RecommendedOrder int    `json:"recommendedOrder"`
}

// InventoryItem is one row of the inventory table.
type InventoryItem struct {
	Product          string `json:"product"`
	SKU              string `json:"sku"`
	Category         string `json:"category"`
	CurrentStock     int    `json:"currentStock"`
	ReorderThreshold int    `json:"reorderThreshold"`
	Status           string `json:"status"`
	LastRestocked    string `json:"lastRestocked"`
}

// SalesRecord is one row of the sales table.
type SalesRecord struct {
	Product   string  `json:"product"`
	UnitsSold int     `json:"unitsSold"`
	Revenue   float64 `json:"revenue"`
	Trend     string  `json:"trend"`
	Category  string  `json:"category"`
}

// OrderItem is a line item inside an order.
type OrderItem struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// Order is one row of the orders table. OrderID is unique within the list.
type Order struct {
	OrderID   string      `json:"orderId"`
	Date      string      `json:"date"`
	ItemCount int         `json:"itemCount"`
	Status    string      `json:"status"`
	Supplier  string      `json:"supplier"`
	Items     []OrderItem `json:"items"`
}

// Snapshot is the typed dashboard state the UI renders. Every field is
// absent-by-default: nil pointer, nil slice, or empty string. Records
// inside the lists pass through normalization unmodified; the UI layer
// substitutes placeholders for missing sub-fields at render time.
type Snapshot struct {
	Message        string          `json:"message,omitempty"`
	Metrics        *Metrics        `json:"metrics,omitempty"`
	LowStockAlerts []LowStockAlert `json:"lowStockAlerts,omitempty"`
	InventoryItems []InventoryItem `json:"inventoryItems,omitempty"`
	SalesData      []SalesRecord   `json:"salesData,omitempty"`
	Orders         []Order         `json:"orders,omitempty"`
}

// Chat transcript roles.
const (
	RoleUser  = "user"
	RoleAgent = "agent"
)

// ChatMessage is one turn of the transcript. The transcript is append-only;
// messages are never mutated or removed after creation.
type ChatMessage struct {
	Role      string // RoleUser or RoleAgent
	Content   string
	Timestamp time.Time
}
