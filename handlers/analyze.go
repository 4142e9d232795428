package handlers

import (
	"database/sql"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"resumeinsight/models"
	"resumeinsight/parsers"
	"resumeinsight/services"
	"resumeinsight/utils"
)

// AnalyzeHandler wires the analysis pipeline to the HTTP surface and
// persists each completed run.
type AnalyzeHandler struct {
	service       *services.AnalysisService
	analyses      *models.AnalysisModel
	maxUploadSize int64
}

func NewAnalyzeHandler(service *services.AnalysisService, analyses *models.AnalysisModel, maxUploadSize int64) *AnalyzeHandler {
	return &AnalyzeHandler{
		service:       service,
		analyses:      analyses,
		maxUploadSize: maxUploadSize,
	}
}

// formatFromFilename maps a file extension to a supported document format.
func formatFromFilename(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return parsers.FormatPDF
	case ".docx":
		return parsers.FormatDOCX
	case ".txt":
		return parsers.FormatTXT
	default:
		return strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
	}
}

// Analyze accepts a multipart resume upload plus an optional job
// description, runs the full pipeline, and stores the result.
func (h *AnalyzeHandler) Analyze(c *gin.Context) {
	file, header, err := c.Request.FormFile("resume")
	if err != nil {
		utils.BadRequestError(c, "No resume file provided", err)
		return
	}
	defer file.Close()

	if h.maxUploadSize > 0 && header.Size > h.maxUploadSize {
		utils.ErrorResponseWithCode(c, http.StatusRequestEntityTooLarge, "Resume file is too large", nil)
		return
	}

	reader := io.Reader(file)
	if h.maxUploadSize > 0 {
		reader = io.LimitReader(file, h.maxUploadSize+1)
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		utils.InternalServerError(c, "Failed to read uploaded file", err)
		return
	}
	if h.maxUploadSize > 0 && int64(len(data)) > h.maxUploadSize {
		utils.ErrorResponseWithCode(c, http.StatusRequestEntityTooLarge, "Resume file is too large", nil)
		return
	}

	doc := services.RawDocument{
		Data:           data,
		Format:         formatFromFilename(header.Filename),
		JobDescription: c.PostForm("job_description"),
	}

	bundle, err := h.service.Analyze(doc)
	if err != nil {
		var unsupported *parsers.UnsupportedFormatError
		if errors.As(err, &unsupported) {
			utils.BadRequestError(c, "Unsupported file format. Please upload a PDF, DOCX, or TXT file", err)
			return
		}
		var extraction *parsers.ExtractionError
		if errors.As(err, &extraction) {
			utils.ErrorResponseWithCode(c, http.StatusUnprocessableEntity, "Could not read the uploaded document", err)
			return
		}
		utils.InternalServerError(c, "Analysis failed", err)
		return
	}

	response := gin.H{
		"success": true,
		"result":  bundle,
	}
	if id, err := h.persist(c, header.Filename, doc.JobDescription, bundle); err != nil {
		// The analysis itself succeeded; log the storage failure and
		// still return the result, without an id that points nowhere.
		utils.LogError("failed to store analysis", err, gin.H{"filename": header.Filename})
	} else {
		response["analysis_id"] = id
	}

	c.JSON(http.StatusOK, response)
}

func (h *AnalyzeHandler) persist(c *gin.Context, filename, jobDescription string, bundle *services.AnalysisBundle) (int, error) {
	skillsJSON, err := json.Marshal(bundle.Skills)
	if err != nil {
		return 0, err
	}
	analysisJSON, err := json.Marshal(bundle.Analysis)
	if err != nil {
		return 0, err
	}
	suggestionsJSON, err := json.Marshal(bundle.Suggestions)
	if err != nil {
		return 0, err
	}

	record := &models.Analysis{
		Filename:       filename,
		Name:           bundle.Resume.Name,
		Email:          bundle.Resume.Email,
		Phone:          bundle.Resume.Phone,
		RawText:        bundle.Resume.RawText,
		JobDescription: jobDescription,
		Skills:         skillsJSON,
		AnalysisData:   analysisJSON,
		Suggestions:    suggestionsJSON,
		SectionsScore:  bundle.Scores.Sections,
		KeywordsScore:  bundle.Scores.Keywords,
		ActionVerbs:    bundle.Scores.ActionVerbs,
		WordCountScore: bundle.Scores.WordCount,
		IssuesScore:    bundle.Scores.Issues,
		OverallScore:   bundle.Scores.Overall,
		Grade:          bundle.Scores.Grade,
	}
	if userID, exists := c.Get("user_id"); exists {
		record.UserID = sql.NullInt64{Int64: int64(userID.(int)), Valid: true}
	}

	return h.analyses.Create(record)
}

// canViewAnalysis reports whether the requester may read a stored row.
// Rows saved anonymously are readable by id; rows saved under an account
// are only readable by that account.
func canViewAnalysis(c *gin.Context, analysis *models.Analysis) bool {
	if !analysis.UserID.Valid {
		return true
	}
	userID, exists := c.Get("user_id")
	if !exists {
		return false
	}
	id, ok := userID.(int)
	return ok && int64(id) == analysis.UserID.Int64
}

// GetAnalysis returns one stored analysis by id.
func (h *AnalyzeHandler) GetAnalysis(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequestError(c, "Invalid analysis id", err)
		return
	}

	analysis, err := h.analyses.GetByID(id)
	if err != nil {
		if err == sql.ErrNoRows {
			utils.NotFoundError(c, "Analysis not found")
			return
		}
		utils.InternalServerError(c, "Failed to load analysis", err)
		return
	}
	if !canViewAnalysis(c, analysis) {
		// Respond as if the row does not exist rather than confirming it.
		utils.NotFoundError(c, "Analysis not found")
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Analysis loaded", analysis)
}

// ListAnalyses returns the authenticated user's recent analyses.
func (h *AnalyzeHandler) ListAnalyses(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.UnauthorizedError(c, "User not authenticated")
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	analyses, err := h.analyses.ListByUserID(userID.(int), limit)
	if err != nil {
		utils.InternalServerError(c, "Failed to load analyses", err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Analyses loaded", analyses)
}
