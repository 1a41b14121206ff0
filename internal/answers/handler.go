package answers

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"interview-backend/internal/shared/server/respond"
)

const maxUploadSize = 10 << 20 // 10MB

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches answer routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/answers/create", h.create)
}

type createRequest struct {
	InterviewID int64  `json:"interview_id"`
	QuestionID  int64  `json:"question_id"`
	AnswerText  string `json:"answer_text"`
}

// create accepts multipart form (with optional file) or plain JSON.
func (h *Handler) create(c *gin.Context) {
	var req createRequest
	var fileName string
	var file io.Reader

	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)
		req.InterviewID, _ = strconv.ParseInt(c.PostForm("interview_id"), 10, 64)
		req.QuestionID, _ = strconv.ParseInt(c.PostForm("question_id"), 10, 64)
		req.AnswerText = c.PostForm("answer_text")
		if fileHeader, err := c.FormFile("file"); err == nil {
			f, err := fileHeader.Open()
			if err != nil {
				respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
				return
			}
			defer f.Close()
			file = f
			fileName = fileHeader.Filename
		}
	} else if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	ans, err := h.Svc.Create(c.Request.Context(), req.InterviewID, req.QuestionID, req.AnswerText, fileName, file)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to record answer", nil)
		}
		return
	}

	c.Set("answerId", ans.ID)
	respond.OK(c, gin.H{"id": ans.ID})
}
