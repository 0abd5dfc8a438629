package order

import (
	"fmt"
	"strings"
	"time"
)

// carrierSuffixes maps carrier names onto the two-letter suffix used in
// tracking codes. Unknown carriers fall back to TR.
var carrierSuffixes = map[string]string{
	"correios": "CO",
	"jadlog":   "JD",
	"loggi":    "LB",
}

const defaultCarrierSuffix = "TR"

// TrackingCode builds a BR<timestamp><carrier-suffix> code. The millisecond
// timestamp keeps codes unique per order under the one-shipment-per-sub-order
// contract; the database enforces uniqueness as a backstop.
func TrackingCode(now time.Time, carrier string) string {
	suffix, ok := carrierSuffixes[strings.ToLower(strings.TrimSpace(carrier))]
	if !ok {
		suffix = defaultCarrierSuffix
	}
	return fmt.Sprintf("BR%d%s", now.UnixMilli(), suffix)
}
