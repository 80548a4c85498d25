package entity

import "testing"

func TestColumnMode_Toggled(t *testing.T) {
	if got := ModeSplit.Toggled(); got != ModeStacked {
		t.Errorf("ModeSplit.Toggled() = %q, want %q", got, ModeStacked)
	}
	if got := ModeStacked.Toggled(); got != ModeSplit {
		t.Errorf("ModeStacked.Toggled() = %q, want %q", got, ModeSplit)
	}
}

func TestColumn_ActiveClient(t *testing.T) {
	tests := []struct {
		name   string
		col    *Column
		want   ClientID
		wantOK bool
	}{
		{"empty column", NewColumn(FullWidth), "", false},
		{"first row", NewColumn(FullWidth, "a", "b"), "a", true},
		{"out of range", &Column{Rows: []ClientID{"a"}, Active: 3}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.col.ActiveClient()
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("ActiveClient() = (%q, %v), want (%q, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestColumn_RemoveAtEmptiesToZero(t *testing.T) {
	c := NewColumn(FullWidth, "a")
	c.removeAt(0)

	if !c.IsEmpty() {
		t.Fatalf("expected empty column, got %v", c.Rows)
	}
	if c.Active != 0 {
		t.Errorf("Active = %d, want 0", c.Active)
	}
}

func TestNewColumn_CopiesRows(t *testing.T) {
	rows := []ClientID{"a", "b"}
	c := NewColumn(50, rows...)
	rows[0] = "z"

	if c.Rows[0] != "a" {
		t.Errorf("column aliases caller slice: %v", c.Rows)
	}
	if c.Mode != ModeSplit || c.Width != 50 {
		t.Errorf("unexpected column %+v", c)
	}
}
