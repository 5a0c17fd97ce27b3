package main

import "testing"

func TestFormatRadius(t *testing.T) {
	tests := []struct {
		radius float64
		want   string
	}{
		{2, "2.0"},
		{1.5, "1.5"},
		{1.25, "1.25"},
		{10, "10.0"},
	}
	for _, tt := range tests {
		if got := formatRadius(tt.radius); got != tt.want {
			t.Errorf("formatRadius(%v) = %q, want %q", tt.radius, got, tt.want)
		}
	}
}
