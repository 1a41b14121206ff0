package interviews

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"interview-backend/internal/evaluation"
	"interview-backend/internal/shared/server/respond"
	"interview-backend/internal/shared/telemetry"
)

// Handler wires HTTP handlers to the service and the evaluator client.
type Handler struct {
	Svc       *Service
	Evaluator *evaluation.Client
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service, evaluator *evaluation.Client) *Handler {
	return &Handler{Svc: svc, Evaluator: evaluator}
}

// RegisterRoutes attaches interview routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/interviews/create", h.create)
	rg.GET("/interviews/:id/questions", h.questions)
	rg.PUT("/interviews/:id/complete", h.complete)
	rg.GET("/interviews/:id", h.dashboard)
}

type createRequest struct {
	CandidateID int64  `json:"candidate_id" form:"candidate_id"`
	Skill       string `json:"skill" form:"skill"`
}

func (h *Handler) create(c *gin.Context) {
	var req createRequest
	if err := c.ShouldBind(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	iv, err := h.Svc.Create(c.Request.Context(), req.CandidateID, req.Skill)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to create interview", nil)
		}
		return
	}

	c.Set("interviewId", iv.ID)
	respond.OK(c, gin.H{
		"id":           iv.ID,
		"candidate_id": iv.CandidateID,
		"skill":        iv.Skill,
	})
}

func (h *Handler) questions(c *gin.Context) {
	interviewID, ok := idParam(c)
	if !ok {
		return
	}

	qs, err := h.Svc.QuestionsFor(c.Request.Context(), interviewID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "Interview not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list questions", nil)
		}
		return
	}

	out := make([]gin.H, 0, len(qs))
	for _, q := range qs {
		out = append(out, gin.H{"id": q.ID, "text": q.Text})
	}
	respond.OK(c, gin.H{"interview_id": interviewID, "questions": out})
}

// complete marks the interview completed, then synchronously triggers the
// evaluator. The completion write survives an evaluation failure; the caller
// must re-trigger evaluation manually in that case.
func (h *Handler) complete(c *gin.Context) {
	interviewID, ok := idParam(c)
	if !ok {
		return
	}

	iv, err := h.Svc.Complete(c.Request.Context(), interviewID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "Interview not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to complete interview", nil)
		}
		return
	}

	if _, err := h.Evaluator.EvaluateInterview(c.Request.Context(), iv.ID); err != nil {
		telemetry.Error("interview.evaluation_failed", map[string]any{
			"interview_id": iv.ID,
			"error":        err.Error(),
		})
		respond.JSON(c, http.StatusInternalServerError, gin.H{
			"status":     StatusCompleted,
			"evaluation": "failed",
			"error":      err.Error(),
		})
		return
	}

	respond.OK(c, gin.H{"status": StatusCompleted, "evaluation": "started"})
}

func (h *Handler) dashboard(c *gin.Context) {
	interviewID, ok := idParam(c)
	if !ok {
		return
	}

	dash, err := h.Svc.GetDashboard(c.Request.Context(), interviewID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "Interview not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load dashboard", nil)
		}
		return
	}

	respond.OK(c, toDashboardResponse(dash))
}

func idParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid interview id", nil)
		return 0, false
	}
	c.Set("interviewId", id)
	return id, true
}
