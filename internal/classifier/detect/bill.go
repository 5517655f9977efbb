package detect

var (
	billingTerms = []string{
		"billing statement", "statement of account", "billing period", "statement date",
	}
	paymentDueTerms = []string{
		"amount due", "total due", "balance due", "minimum payment", "please pay",
	}
	accountTerms = []string{
		"account number", "previous balance", "current charges", "new balance",
	}
	serviceTerms = []string{
		"utility bill", "service period", "usage", "kwh", "therms", "medical bill",
	}
	invoiceTerms = []string{"invoice number", "invoice date"}
)

// Bill rule identifiers, reported in the details map.
const (
	RuleBillingTerm    = "billing_term"
	RuleInvoicePayment = "invoice_payment"
	RuleServicePayment = "service_payment"
	RuleAccountPayment = "account_payment"
)

// BillStatement detects recurring service bills and statements. A lone
// "amount due" never qualifies: it must combine with billing, invoice,
// service, or account context. This keeps receipts showing "$0.00 amount due"
// out of the bill bucket.
func BillStatement(haystack string) (bool, map[string]interface{}) {
	hasBillingTerm := containsAny(haystack, billingTerms)
	hasPaymentDue := containsAny(haystack, paymentDueTerms)
	hasAccountTerm := containsAny(haystack, accountTerms)
	hasServiceTerm := containsAny(haystack, serviceTerms)
	hasInvoice := containsAny(haystack, invoiceTerms)

	isBill := false
	var matchedRule interface{}

	switch {
	case hasBillingTerm:
		isBill = true
		matchedRule = RuleBillingTerm
	case hasInvoice && hasPaymentDue:
		isBill = true
		matchedRule = RuleInvoicePayment
	case hasServiceTerm && hasPaymentDue:
		isBill = true
		matchedRule = RuleServicePayment
	case hasAccountTerm && hasPaymentDue:
		isBill = true
		matchedRule = RuleAccountPayment
	}

	details := map[string]interface{}{
		"has_billing_term": hasBillingTerm,
		"has_payment_due":  hasPaymentDue,
		"has_account_term": hasAccountTerm,
		"has_service_term": hasServiceTerm,
		"has_invoice":      hasInvoice,
		"matched_rule":     matchedRule,
	}
	return isBill, details
}
