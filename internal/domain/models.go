package domain

import "fmt"

// Field is a single extracted key/value pair with a confidence score and the
// source that produced it. Fields are immutable once created; refinement
// produces new Field values rather than mutating in place.
type Field struct {
	Key        string      `json:"key"`
	Value      string      `json:"value"`
	Confidence float64     `json:"confidence"`
	Source     FieldSource `json:"source"`
}

// Validate checks a caller-supplied field for well-formedness.
func (f *Field) Validate() error {
	if f.Key == "" {
		return fmt.Errorf("%w: empty key", ErrInvalidField)
	}
	if f.Confidence < 0 || f.Confidence > 1 {
		return fmt.Errorf("%w: confidence %.2f out of range [0,1] for key %q", ErrInvalidField, f.Confidence, f.Key)
	}
	return nil
}

// Signals is the diagnostic report of every detector outcome from a single
// classification run. The booleans mirror what the orchestrator used for the
// priority decision; Details carries each detector's breakdown.
type Signals struct {
	Promotional   bool                              `json:"promotional"`
	Receipt       bool                              `json:"receipt"`
	Bill          bool                              `json:"bill"`
	InsuranceCard bool                              `json:"insurance_card"`
	CreditCard    bool                              `json:"credit_card"`
	Letter        bool                              `json:"letter"`
	Details       map[string]map[string]interface{} `json:"details,omitempty"`
}
