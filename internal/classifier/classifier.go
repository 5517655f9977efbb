// Package classifier decides which document type a piece of recognized text
// belongs to. It runs the signal detectors in a fixed order, then resolves
// the final type by a fixed priority list with a banded confidence score.
package classifier

import (
	"fmt"
	"log"
	"strings"

	"doctriage/internal/classifier/detect"
	"doctriage/internal/domain"
)

// FallbackConfidence is reported when no detector fires and the default type
// is returned.
const FallbackConfidence = 0.3

// Result is the outcome of a single classification run.
type Result struct {
	DocumentType domain.DocumentType `json:"document_type"`
	Confidence   float64             `json:"confidence"`
	Signals      domain.Signals      `json:"signals"`
}

// Service classifies documents from recognized text and optional
// pre-extracted fields. It is stateless and safe for concurrent use.
type Service struct {
	defaultType domain.DocumentType
}

// New creates a classifier that falls back to the generic document type.
func New() *Service {
	return &Service{defaultType: domain.TypeGeneric}
}

// Classify runs every detector over the haystack and resolves the final type.
//
// Detector order is fixed: promotional runs first because the receipt and
// letter detectors consume its outcome as a veto. Priority resolution is
// promotional > insurance card > credit card > receipt > bill statement >
// letter > default. The hint is informational only; it never short-circuits
// or weights detection.
func (s *Service) Classify(text string, fields []domain.Field, hint domain.DocumentType) (*Result, error) {
	for i := range fields {
		if err := fields[i].Validate(); err != nil {
			return nil, fmt.Errorf("field %d: %w", i, err)
		}
	}

	haystack, fieldKeys := buildHaystack(text, fields)

	log.Printf("classifier.Service: starting classification text_length=%d fields=%d hint=%q",
		len(text), len(fields), hint)

	// Promotional first: receipt and letter read its outcome.
	promotionalHit, promoDetails := detect.Promotional(haystack)

	// High-specificity types.
	insuranceHit, insuranceDetails := detect.InsuranceCard(haystack)
	creditHit, creditDetails := detect.CreditCard(haystack, fieldKeys)

	// Transactional types.
	receiptHit, receiptDetails := detect.Receipt(haystack, promotionalHit)
	billHit, billDetails := detect.BillStatement(haystack)

	// Format-based types.
	letterHit, letterDetails := detect.Letter(haystack, promotionalHit)

	signals := domain.Signals{
		Promotional:   promotionalHit,
		Receipt:       receiptHit,
		Bill:          billHit,
		InsuranceCard: insuranceHit,
		CreditCard:    creditHit,
		Letter:        letterHit,
		Details: map[string]map[string]interface{}{
			"promotional":    promoDetails,
			"receipt":        receiptDetails,
			"insurance_card": insuranceDetails,
			"credit_card":    creditDetails,
			"bill":           billDetails,
			"letter":         letterDetails,
		},
	}

	var docType domain.DocumentType
	var confidence float64

	switch {
	case promotionalHit:
		docType = domain.TypePromotional
		confidence = bandedConfidence(intDetail(promoDetails, "signal_count"), detect.PromotionalMaxSignals)

	case insuranceHit:
		docType = domain.TypeInsuranceCard
		confidence = bandedConfidence(intDetail(insuranceDetails, "signal_count"), detect.InsuranceCardMaxSignals)
		// RX BIN is specific enough for maximal confidence on its own.
		if rxBin, _ := insuranceDetails["has_rx_bin"].(bool); rxBin {
			confidence = 0.95
		}

	case creditHit:
		docType = domain.TypeCreditCard
		confidence = 0.75
		if issuer, _ := creditDetails["has_issuer_name"].(bool); issuer {
			confidence = 0.90
		}

	case receiptHit:
		docType = domain.TypeReceipt
		switch receiptDetails["rule"] {
		case detect.RuleStrongTransaction:
			confidence = 0.95
		case detect.RuleMerchantPayment:
			confidence = 0.85
		default:
			confidence = 0.70
		}

	case billHit:
		docType = domain.TypeBillStatement
		confidence = 0.75
		if billing, _ := billDetails["has_billing_term"].(bool); billing {
			confidence = 0.90
		}

	case letterHit:
		docType = domain.TypeLetter
		confidence = 0.80

	default:
		docType = s.defaultType
		confidence = FallbackConfidence
	}

	log.Printf("classifier.Service: classified as %s confidence=%.2f promotional=%t receipt=%t bill=%t insurance=%t credit=%t letter=%t",
		docType, confidence, promotionalHit, receiptHit, billHit, insuranceHit, creditHit, letterHit)

	return &Result{DocumentType: docType, Confidence: confidence, Signals: signals}, nil
}

// buildHaystack lower-cases the text and appends every field value so keyword
// detectors see both. Field keys are kept separately because some detectors
// key on field names, not values. The haystack is ephemeral: recomputed per
// call, never stored.
func buildHaystack(text string, fields []domain.Field) (string, []string) {
	var b strings.Builder
	b.WriteString(strings.ToLower(text))
	fieldKeys := make([]string, 0, len(fields))
	for _, f := range fields {
		b.WriteString(" ")
		b.WriteString(strings.ToLower(f.Value))
		fieldKeys = append(fieldKeys, strings.ToLower(f.Key))
	}
	return b.String(), fieldKeys
}

// bandedConfidence maps a signal-category count to a confidence band:
// all categories 0.95, one short 0.85, at least two 0.75, otherwise 0.60.
func bandedConfidence(signalCount, maxSignals int) float64 {
	switch {
	case signalCount >= maxSignals:
		return 0.95
	case signalCount >= maxSignals-1:
		return 0.85
	case signalCount >= 2:
		return 0.75
	default:
		return 0.60
	}
}

func intDetail(details map[string]interface{}, key string) int {
	n, _ := details[key].(int)
	return n
}
