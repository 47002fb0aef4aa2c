package ui

import (
	"strings"
	"testing"
)

func TestSimpleTable(t *testing.T) {
	table := NewSimpleTable("Inventory", []string{"Product", "Stock"})
	table.AddRow("Gloves", "3")

	styles := NewStyles(LightTheme())
	view := table.View(styles)

	t.Logf("View:\n%q", view)

	if !strings.Contains(view, "Inventory") {
		t.Error("View missing title")
	}
	if !strings.Contains(view, "Gloves") {
		t.Error("View missing cell content")
	}
}

func TestSimpleTable_EmptyRendersNothing(t *testing.T) {
	table := NewSimpleTable("Inventory", []string{"Product", "Stock"})

	if view := table.View(NewStyles(LightTheme())); view != "" {
		t.Errorf("empty table rendered %q, want nothing", view)
	}
}
