package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"doctriage/internal/domain"
	"doctriage/internal/service"
)

// AnalysisHandler handles text classification and field extraction endpoints.
type AnalysisHandler struct {
	analysisService service.AnalysisService
}

// NewAnalysisHandler creates a new AnalysisHandler.
func NewAnalysisHandler(analysisService service.AnalysisService) *AnalysisHandler {
	return &AnalysisHandler{analysisService: analysisService}
}

// Classify handles POST /api/v1/classify
// @Summary Classify document text
// @Description Classify recognized text into a document type with a confidence score and detector signals
// @Tags analysis
// @Accept json
// @Produce json
// @Param request body ClassifyRequest true "Text and optional pre-extracted fields"
// @Success 200 {object} Response{data=ClassificationData} "Classification verdict"
// @Failure 400 {object} ErrorResponseBody "Empty text, invalid field, or unknown hint"
// @Router /classify [post]
func (h *AnalysisHandler) Classify(c *gin.Context) {
	var req ClassifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "text is required")
		return
	}

	hint, ok := parseHint(c, req.Hint)
	if !ok {
		return
	}

	result, err := h.analysisService.Classify(c.Request.Context(), req.Text, toDomainFields(req.Fields), hint)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, result)
}

// Extract handles POST /api/v1/extract
// @Summary Extract fields from document text
// @Description Extract typed key/value fields from recognized text for a known document type
// @Tags analysis
// @Accept json
// @Produce json
// @Param request body ExtractRequest true "Text and document type"
// @Success 200 {object} Response{data=FieldsData} "Extracted fields"
// @Failure 400 {object} ErrorResponseBody "Unknown document type"
// @Router /extract [post]
func (h *AnalysisHandler) Extract(c *gin.Context) {
	var req ExtractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "text and document_type are required")
		return
	}

	fields, err := h.analysisService.Extract(c.Request.Context(), req.Text, domain.DocumentType(req.DocumentType))
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"fields": fields})
}

// Analyze handles POST /api/v1/analyze
// @Summary Classify and extract in one pass
// @Description Classify recognized text, then extract fields for the resolved document type
// @Tags analysis
// @Accept json
// @Produce json
// @Param request body ClassifyRequest true "Text and optional pre-extracted fields"
// @Success 200 {object} Response{data=AnalysisData} "Classification and extracted fields"
// @Failure 400 {object} ErrorResponseBody "Empty text, invalid field, or unknown hint"
// @Router /analyze [post]
func (h *AnalysisHandler) Analyze(c *gin.Context) {
	var req ClassifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "text is required")
		return
	}

	hint, ok := parseHint(c, req.Hint)
	if !ok {
		return
	}

	result, err := h.analysisService.Analyze(c.Request.Context(), req.Text, toDomainFields(req.Fields), hint)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, result)
}

// Types handles GET /api/v1/types
// @Summary List document types
// @Description List every document type the classifier can resolve, in priority order
// @Tags analysis
// @Produce json
// @Success 200 {object} Response{data=TypesData} "Document type catalog"
// @Router /types [get]
func (h *AnalysisHandler) Types(c *gin.Context) {
	types := make([]DocumentTypeEntry, 0, len(domain.AllDocumentTypes))
	for _, t := range domain.AllDocumentTypes {
		types = append(types, DocumentTypeEntry{
			Type:        string(t),
			Description: domain.DocumentTypeDescriptions[t],
		})
	}
	RespondOK(c, gin.H{"types": types})
}

// parseHint validates an optional document type hint. Returns false if the
// hint is unknown (error response already written).
func parseHint(c *gin.Context, raw string) (domain.DocumentType, bool) {
	if raw == "" {
		return "", true
	}
	hint := domain.DocumentType(raw)
	if !hint.Valid() {
		RespondError(c, http.StatusBadRequest, "UNKNOWN_DOCUMENT_TYPE", "unknown document type hint: "+raw)
		return "", false
	}
	return hint, true
}

func toDomainFields(inputs []FieldInput) []domain.Field {
	if len(inputs) == 0 {
		return nil
	}
	fields := make([]domain.Field, 0, len(inputs))
	for _, in := range inputs {
		source := domain.FieldSource(in.Source)
		if source == "" {
			source = domain.SourceOCR
		}
		fields = append(fields, domain.Field{
			Key:        in.Key,
			Value:      in.Value,
			Confidence: in.Confidence,
			Source:     source,
		})
	}
	return fields
}
