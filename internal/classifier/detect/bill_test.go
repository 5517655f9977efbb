package detect_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"doctriage/internal/classifier/detect"
)

func TestBillStatement_BillingTermAlone(t *testing.T) {
	hit, details := detect.BillStatement("billing statement for march 2024")

	assert.True(t, hit)
	assert.Equal(t, detect.RuleBillingTerm, details["matched_rule"])
}

func TestBillStatement_InvoicePlusDue(t *testing.T) {
	hit, details := detect.BillStatement("invoice number 8841. amount due: $230.00")

	assert.True(t, hit)
	assert.Equal(t, detect.RuleInvoicePayment, details["matched_rule"])
}

func TestBillStatement_ServicePlusDue(t *testing.T) {
	hit, details := detect.BillStatement("usage this period: 420 kwh. total due $86.20")

	assert.True(t, hit)
	assert.Equal(t, detect.RuleServicePayment, details["matched_rule"])
}

func TestBillStatement_AccountPlusDue(t *testing.T) {
	hit, details := detect.BillStatement("account number 99-1203. previous balance $0.00. please pay $45.99")

	assert.True(t, hit)
	assert.Equal(t, detect.RuleAccountPayment, details["matched_rule"])
}

func TestBillStatement_PaymentDueAloneNoHit(t *testing.T) {
	// "amount due" on its own is too weak; receipts print it too.
	hit, details := detect.BillStatement("amount due $0.00 thank you")

	assert.False(t, hit)
	assert.Nil(t, details["matched_rule"])
	assert.Equal(t, true, details["has_payment_due"])
}

func TestBillStatement_NoSignals(t *testing.T) {
	hit, details := detect.BillStatement("hello there, lovely weather today")

	assert.False(t, hit)
	assert.Nil(t, details["matched_rule"])
}
