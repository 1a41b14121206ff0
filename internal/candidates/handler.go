package candidates

import (
	"errors"
	"io"
	"net/http"
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

// RegisterRoutes attaches candidate routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/candidates/create", h.create)
}

type createRequest struct {
	Name  string `json:"name" form:"name"`
	Email string `json:"email" form:"email"`
}

// create accepts multipart form (with optional resume file) or plain JSON.
func (h *Handler) create(c *gin.Context) {
	var req createRequest
	var resumeName string
	var resume io.Reader

	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)
		req.Name = c.PostForm("name")
		req.Email = c.PostForm("email")
		if fileHeader, err := c.FormFile("resume"); err == nil {
			file, err := fileHeader.Open()
			if err != nil {
				respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read resume", nil)
				return
			}
			defer file.Close()
			resume = file
			resumeName = fileHeader.Filename
		}
	} else if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	cand, err := h.Svc.Create(c.Request.Context(), req.Name, req.Email, resumeName, resume)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to create candidate", nil)
		}
		return
	}

	respond.OK(c, gin.H{
		"id":    cand.ID,
		"name":  cand.Name,
		"email": cand.Email,
	})
}
