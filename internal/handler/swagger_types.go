package handler

import "doctriage/internal/domain"

// Swagger type definitions for API documentation.
// These types are used by swag to generate OpenAPI documentation.

// --- Request Types ---

// FieldInput is a caller-supplied pre-extracted field.
type FieldInput struct {
	Key        string  `json:"key" binding:"required" example:"member_id"`
	Value      string  `json:"value" example:"XYZ123456789"`
	Confidence float64 `json:"confidence" example:"0.92"`
	Source     string  `json:"source" example:"ocr"`
}

// ClassifyRequest represents the classify and analyze request body.
type ClassifyRequest struct {
	Text   string       `json:"text" binding:"required" example:"CVS Pharmacy Store #2904 ... Total $27.32"`
	Fields []FieldInput `json:"fields"`
	Hint   string       `json:"hint" example:"receipt"`
}

// ExtractRequest represents the extract request body.
type ExtractRequest struct {
	Text         string `json:"text" binding:"required" example:"Your total of $45.99 is due by 03/15/2024"`
	DocumentType string `json:"document_type" binding:"required" example:"billStatement"`
}

// --- Response Types ---

// ClassificationData represents a classification verdict.
type ClassificationData struct {
	DocumentType string         `json:"document_type" example:"receipt"`
	Confidence   float64        `json:"confidence" example:"0.95"`
	Signals      domain.Signals `json:"signals"`
}

// FieldsData represents an extraction result.
type FieldsData struct {
	Fields []domain.Field `json:"fields"`
}

// AnalysisData represents a combined classification and extraction result.
type AnalysisData struct {
	Classification ClassificationData `json:"classification"`
	Fields         []domain.Field     `json:"fields"`
}

// DocumentTypeEntry describes one entry in the document type catalog.
type DocumentTypeEntry struct {
	Type        string `json:"type" example:"receipt"`
	Description string `json:"description" example:"Proof of purchase with transaction ID and payment method"`
}

// TypesData represents the document type catalog.
type TypesData struct {
	Types []DocumentTypeEntry `json:"types"`
}

// UploadData represents the outcome of analyzing an uploaded media file.
type UploadData struct {
	Text            string       `json:"text" example:"CVS Pharmacy Store #2904 ... Total $27.32"`
	Analysis        AnalysisData `json:"analysis"`
	ArchiveLocation string       `json:"archive_location,omitempty" example:"https://s3.amazonaws.com/doctriage-archive/images/..."`
	ProcessingMS    int64        `json:"processing_ms" example:"1240"`
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}

// --- Generic Response Wrappers ---

// Response wraps a successful response with data.
type Response struct {
	Success bool        `json:"success" example:"true"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorResponseBody wraps an error response.
type ErrorResponseBody struct {
	Success bool      `json:"success" example:"false"`
	Error   *APIError `json:"error"`
}
