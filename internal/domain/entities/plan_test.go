package entities

import "testing"

func TestClassifyPlan(t *testing.T) {
	tests := []struct {
		name     string
		metadata string
		amount   int64
		want     string
	}{
		{"trial", "", 9700, "14-Day Trial"},
		{"starter", "", 49700, "Starter Plan"},
		{"growth", "", 99700, "Growth Plan"},
		{"unknown amount", "", 50000, "Unknown Plan"},
		{"near miss", "", 9701, "Unknown Plan"},
		{"metadata wins", "Custom Plan", 99700, "Custom Plan"},
		{"blank metadata ignored", "  ", 9700, "14-Day Trial"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyPlan(tt.metadata, tt.amount); got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
