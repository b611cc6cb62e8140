package utils

import (
	"fmt"
	"strings"
	"time"
)

// NewReference generates a unique, caller-visible correlation string of the
// form <PREFIX>_<unix-millis>_<random>. The random suffix keeps references
// unique even when two are generated in the same millisecond. Both legs of an
// internal transfer carry the same reference.
func NewReference(prefix string) string {
	suffix, err := GenerateSecureRandomString(4)
	if err != nil {
		// crypto/rand failing is effectively unrecoverable; fall back to
		// nanosecond time so the reference stays usable.
		suffix = fmt.Sprintf("%x", time.Now().UnixNano())
	}
	return fmt.Sprintf("%s_%d_%s", strings.ToUpper(prefix), time.Now().UnixMilli(), strings.ToUpper(suffix))
}

// BalanceAdjustmentReference generates the reference for an admin balance
// adjustment, e.g. BALANCE_CREDIT_1719856800000.
func BalanceAdjustmentReference(direction string) string {
	return fmt.Sprintf("BALANCE_%s_%d", strings.ToUpper(direction), time.Now().UnixMilli())
}
