package pkg

import (
	"fmt"

	"cosmossdk.io/math"
)

// MicroUnitsPerPOKT is the number of upokt micro-units in one POKT.
const MicroUnitsPerPOKT = 1_000_000

// FormatPOKT renders integer micro-units as a display-unit string with six
// decimal places. The fraction is truncated, never rounded, so aggregation
// stays exact until render time.
func FormatPOKT(microUnits math.Int) string {
	divisor := math.NewInt(MicroUnitsPerPOKT)
	whole := microUnits.Quo(divisor)
	frac := microUnits.Mod(divisor)

	return fmt.Sprintf("%s.%06d", whole.String(), frac.Int64())
}
