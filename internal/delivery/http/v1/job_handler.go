package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"opportunity-match-backend/internal/delivery/http/response"
	"opportunity-match-backend/internal/domain"
	"opportunity-match-backend/pkg/apperror"
)

type JobHandler struct {
	jobUC domain.JobUsecase
}

func NewJobHandler(public *gin.RouterGroup, jobUC domain.JobUsecase) {
	handler := &JobHandler{jobUC: jobUC}

	jobs := public.Group("/jobs")
	{
		jobs.GET("", handler.List)
		jobs.POST("", handler.Create)
		jobs.PUT("/:id", handler.Update)
		jobs.DELETE("/:id", handler.Delete)
	}

	public.GET("/recruiter/:id/jobs", handler.ListByOwner)
	// Per-user alias for the catalog list, kept for contract compatibility.
	public.GET("/user/:id/jobs", handler.List)
}

type CreateJobRequest struct {
	RecruiterID  string `json:"recruiter_id"`
	Title        string `json:"title" binding:"required"`
	Company      string `json:"company"`
	Location     string `json:"location"`
	Salary       string `json:"salary"`
	Type         string `json:"type"`
	Posted       string `json:"posted"`
	Description  string `json:"description"`
	Requirements string `json:"requirements"`
	Status       string `json:"status"`
}

// Create stores a posting owned by the recruiter id supplied in the payload.
// The id is not validated against the recruiter store; unknown owners are
// permitted.
func (h *JobHandler) Create(c *gin.Context) {
	var req CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	job := &domain.JobPosting{
		Title:        req.Title,
		Company:      req.Company,
		Location:     req.Location,
		Salary:       req.Salary,
		Type:         req.Type,
		Posted:       req.Posted,
		Description:  req.Description,
		Requirements: req.Requirements,
		Status:       req.Status,
	}

	if err := h.jobUC.CreateJob(c, req.RecruiterID, job); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Job created", job)
}

func (h *JobHandler) List(c *gin.Context) {
	jobs, err := h.jobUC.ListJobs(c)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job list", jobs)
}

func (h *JobHandler) ListByOwner(c *gin.Context) {
	jobs, err := h.jobUC.ListJobsByOwner(c, c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Recruiter job list", jobs)
}

type UpdateJobRequest struct {
	RecruiterID string `json:"recruiter_id"`
	domain.JobPatch
}

// Update applies a partial edit: absent fields keep their stored values.
// Only the posting's owner may edit it.
func (h *JobHandler) Update(c *gin.Context) {
	var req UpdateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	job, err := h.jobUC.EditJob(c, c.Param("id"), req.RecruiterID, req.JobPatch)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job updated", job)
}

type DeleteJobRequest struct {
	RecruiterID string `json:"recruiter_id"`
}

// Delete removes the posting permanently with no cascade cleanup. A missing
// or empty body just means an empty acting id, which the ownership guard
// rejects.
func (h *JobHandler) Delete(c *gin.Context) {
	var req DeleteJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		req.RecruiterID = ""
	}

	if err := h.jobUC.DeleteJob(c, c.Param("id"), req.RecruiterID); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job deleted", nil)
}
