package report_test

import (
	"testing"

	"github.com/Noir-tsu/4Foods-admin/internal/report"
	"github.com/stretchr/testify/assert"
)

func TestPercentChange(t *testing.T) {
	tests := []struct {
		name     string
		current  float64
		previous float64
		want     float64
	}{
		{"flat at zero", 0, 0, 0},
		{"from zero to something is a full gain", 5, 0, 100},
		{"dropping to zero", 0, 5, -100},
		{"fifty percent up", 150, 100, 50},
		{"decrease yields negative sign", 80, 100, -20},
		{"rounded to one decimal", 1, 3, -66.7},
		{"small growth rounds up", 1003, 1000, 0.3},
		{"previous month revenue zero", 120, 0, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, report.PercentChange(tt.current, tt.previous))
		})
	}
}
