package pkg_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/assert"

	"github.com/pokt-network/pocketknife/pkg"
)

func TestFormatPOKT(t *testing.T) {
	tests := []struct {
		name       string
		microUnits int64
		expected   string
	}{
		{"zero", 0, "0.000000"},
		{"one micro unit", 1, "0.000001"},
		{"just below one", 999_999, "0.999999"},
		{"exactly one", 1_000_000, "1.000000"},
		{"mixed", 1_234_567, "1.234567"},
		{"large", 2_500_000_000_000, "2500000.000000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, pkg.FormatPOKT(math.NewInt(tt.microUnits)))
		})
	}
}
