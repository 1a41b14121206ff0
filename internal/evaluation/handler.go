package evaluation

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"interview-backend/internal/answers"
	"interview-backend/internal/shared/server/respond"
)

// Handler wires the evaluator's HTTP endpoints to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches evaluation routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/evaluate/answer", h.evaluateAnswer)
	rg.POST("/evaluate/interview/:id", h.evaluateInterview)
	rg.GET("/results/:id", h.getResult)
}

func (h *Handler) evaluateAnswer(c *gin.Context) {
	answerID, err := strconv.ParseInt(c.Query("answer_id"), 10, 64)
	if err != nil || answerID <= 0 {
		respond.Error(c, http.StatusBadRequest, "validation_error", "answer_id is required", nil)
		return
	}
	c.Set("answerId", answerID)

	detail, err := h.Svc.EvaluateAnswer(c.Request.Context(), answerID)
	if err != nil {
		switch {
		case errors.Is(err, answers.ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "Answer not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to evaluate answer", nil)
		}
		return
	}

	respond.OK(c, gin.H{
		"answer_id": detail.AnswerID,
		"score":     detail.Score,
		"notes":     detail.Notes,
	})
}

func (h *Handler) evaluateInterview(c *gin.Context) {
	interviewID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || interviewID <= 0 {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid interview id", nil)
		return
	}
	c.Set("interviewId", interviewID)

	res, details, err := h.Svc.EvaluateInterview(c.Request.Context(), interviewID)
	if err != nil {
		switch {
		case errors.Is(err, ErrInterviewNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "Interview not found", nil)
		case errors.Is(err, ErrNoAnswers):
			respond.Error(c, http.StatusBadRequest, "validation_error", ErrNoAnswers.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to evaluate interview", nil)
		}
		return
	}

	respond.OK(c, gin.H{
		"interview_id": res.InterviewID,
		"total_score":  res.TotalScore,
		"verdict":      res.Verdict,
		"details":      details,
	})
}

func (h *Handler) getResult(c *gin.Context) {
	interviewID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || interviewID <= 0 {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid interview id", nil)
		return
	}

	res, details, err := h.Svc.GetResult(c.Request.Context(), interviewID)
	if err != nil {
		switch {
		case errors.Is(err, ErrResultNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "Result not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch result", nil)
		}
		return
	}

	respond.OK(c, gin.H{
		"interview_id": res.InterviewID,
		"total_score":  res.TotalScore,
		"verdict":      res.Verdict,
		"details":      details,
		"created_at":   res.CreatedAt,
	})
}
