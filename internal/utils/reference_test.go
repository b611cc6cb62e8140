package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/signordemola/belize-app/internal/utils"
)

func TestNewReference_Format(t *testing.T) {
	for _, prefix := range []string{"TRF", "USB", "INTL", "BILL"} {
		ref := utils.NewReference(prefix)
		assert.Regexp(t, `^`+prefix+`_\d{13}_[0-9A-F]{8}$`, ref)
	}
}

func TestNewReference_UppercasesPrefix(t *testing.T) {
	ref := utils.NewReference("trf")
	assert.Regexp(t, `^TRF_`, ref)
}

func TestNewReference_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		ref := utils.NewReference("TRF")
		assert.False(t, seen[ref], "duplicate reference %s", ref)
		seen[ref] = true
	}
}

func TestBalanceAdjustmentReference(t *testing.T) {
	assert.Regexp(t, `^BALANCE_CREDIT_\d{13}$`, utils.BalanceAdjustmentReference("CREDIT"))
	assert.Regexp(t, `^BALANCE_DEBIT_\d{13}$`, utils.BalanceAdjustmentReference("DEBIT"))
}
