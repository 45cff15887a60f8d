package prompts

import (
	"errors"
	"net/http"

	"bullprompt-backend/internal/models"
	"bullprompt-backend/internal/search"
	"bullprompt-backend/internal/services"
	"bullprompt-backend/internal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	svc *services.PromptService
	log *zap.Logger
}

func NewHandler(svc *services.PromptService, log *zap.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

// statusFor maps an operation error to its HTTP status.
func statusFor(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case services.IsValidation(err):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func reply[T any](c *gin.Context, log *zap.Logger, failure string, data T, err error) {
	c.JSON(statusFor(err), services.Respond(log, failure, data, err))
}

// ListPrompts godoc
// @Summary List prompts
// @Description List prompts in insertion order, optionally filtered by a text query and tags
// @Tags prompts
// @Produce json
// @Param q query string false "Case-insensitive text query"
// @Param tag query []string false "Selected tags (any match)" collectionFormat(multi)
// @Success 200 {object} PromptListResponse
// @Failure 500 {object} EmptyResponse
// @Router /prompts [get]
func (h *Handler) ListPrompts(c *gin.Context) {
	prompts, err := h.svc.List(c.Request.Context())
	if err != nil {
		reply[[]models.Prompt](c, h.log, "Failed to retrieve prompts", nil, err)
		return
	}

	filtered := search.Filter(prompts, models.SearchFilters{
		Query:        c.Query("q"),
		SelectedTags: c.QueryArray("tag"),
	})
	c.JSON(http.StatusOK, utils.Ok(filtered))
}

// ListTags godoc
// @Summary List tags
// @Description Sorted, distinct tags across all prompts
// @Tags prompts
// @Produce json
// @Success 200 {object} TagListResponse
// @Failure 500 {object} EmptyResponse
// @Router /prompts/tags [get]
func (h *Handler) ListTags(c *gin.Context) {
	prompts, err := h.svc.List(c.Request.Context())
	reply(c, h.log, "Failed to retrieve prompts", search.AllTags(prompts), err)
}

// GetPrompt godoc
// @Summary Get a prompt
// @Tags prompts
// @Produce json
// @Param id path string true "Prompt ID"
// @Success 200 {object} PromptResponse
// @Failure 404 {object} EmptyResponse
// @Failure 500 {object} EmptyResponse
// @Router /prompts/{id} [get]
func (h *Handler) GetPrompt(c *gin.Context) {
	p, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	reply(c, h.log, "Failed to retrieve prompts", deref(p), err)
}

// CreatePrompt godoc
// @Summary Create a prompt
// @Description Validates and sanitizes the input, then appends the prompt
// @Tags prompts
// @Accept json
// @Produce json
// @Param request body PromptRequest true "Prompt"
// @Success 200 {object} PromptResponse
// @Failure 400 {object} EmptyResponse
// @Failure 500 {object} EmptyResponse
// @Router /prompts [post]
func (h *Handler) CreatePrompt(c *gin.Context) {
	var req PromptRequest
	if !utils.BindJSON(c, &req) {
		return
	}

	p, err := h.svc.Create(c.Request.Context(), req.ToInput())
	reply(c, h.log, "Failed to save prompt", deref(p), err)
}

// UpdatePrompt godoc
// @Summary Update a prompt
// @Description Replaces name, text and tags; the id is kept and the timestamp refreshed
// @Tags prompts
// @Accept json
// @Produce json
// @Param id path string true "Prompt ID"
// @Param request body PromptRequest true "Prompt"
// @Success 200 {object} PromptResponse
// @Failure 400 {object} EmptyResponse
// @Failure 404 {object} EmptyResponse
// @Failure 500 {object} EmptyResponse
// @Router /prompts/{id} [put]
func (h *Handler) UpdatePrompt(c *gin.Context) {
	var req PromptRequest
	if !utils.BindJSON(c, &req) {
		return
	}

	p, err := h.svc.Update(c.Request.Context(), c.Param("id"), req.ToInput())
	reply(c, h.log, "Failed to update prompt", deref(p), err)
}

// DeletePrompt godoc
// @Summary Delete a prompt
// @Tags prompts
// @Produce json
// @Param id path string true "Prompt ID"
// @Success 200 {object} EmptyResponse
// @Failure 404 {object} EmptyResponse
// @Failure 500 {object} EmptyResponse
// @Router /prompts/{id} [delete]
func (h *Handler) DeletePrompt(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		reply(c, h.log, "Failed to delete prompt", struct{}{}, err)
		return
	}
	c.JSON(http.StatusOK, utils.Done())
}

func deref(p *models.Prompt) models.Prompt {
	if p == nil {
		return models.Prompt{}
	}
	return *p
}
