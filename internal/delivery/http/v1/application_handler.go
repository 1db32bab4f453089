package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"opportunity-match-backend/internal/delivery/http/response"
	"opportunity-match-backend/internal/domain"
	"opportunity-match-backend/pkg/apperror"
)

type ApplicationHandler struct {
	applicationUC domain.ApplicationUsecase
}

func NewApplicationHandler(public *gin.RouterGroup, applicationUC domain.ApplicationUsecase) {
	handler := &ApplicationHandler{applicationUC: applicationUC}

	public.POST("/apply", handler.Apply)

	jobs := public.Group("/jobs/:id/applicants")
	{
		jobs.GET("", handler.ListApplicants)
		jobs.POST("/:userId", handler.SetStatus)
		jobs.GET("/:userId/status", handler.GetStatus)
	}
}

type ApplyRequest struct {
	UserID string `json:"user_id" binding:"required"`
	JobID  string `json:"job_id" binding:"required"`
}

func (h *ApplicationHandler) Apply(c *gin.Context) {
	var req ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	receipt, err := h.applicationUC.Apply(c, req.UserID, req.JobID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, receipt.Message, receipt)
}

// ListApplicants returns each applicant's account joined with their status,
// defaulting to "applied" for ids without a status entry.
func (h *ApplicationHandler) ListApplicants(c *gin.Context) {
	applicants, err := h.applicationUC.ListApplicantsWithStatus(c, c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Applicant list", applicants)
}

type SetStatusRequest struct {
	Action string `json:"action" binding:"required"`
}

func (h *ApplicationHandler) SetStatus(c *gin.Context) {
	var req SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	status, err := h.applicationUC.SetStatus(c, c.Param("id"), c.Param("userId"), req.Action)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Applicant "+req.Action+"ed", gin.H{"status": status})
}

func (h *ApplicationHandler) GetStatus(c *gin.Context) {
	status, err := h.applicationUC.GetStatus(c, c.Param("id"), c.Param("userId"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Application status", gin.H{"status": status})
}
