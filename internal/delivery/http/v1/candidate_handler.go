package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"opportunity-match-backend/internal/delivery/http/response"
	"opportunity-match-backend/internal/domain"
	"opportunity-match-backend/pkg/apperror"
)

type CandidateHandler struct {
	candidateUC domain.CandidateUsecase
}

func NewCandidateHandler(public *gin.RouterGroup, candidateUC domain.CandidateUsecase) {
	handler := &CandidateHandler{candidateUC: candidateUC}

	candidates := public.Group("/candidates")
	{
		candidates.GET("", handler.List)
		candidates.PUT("/:id", handler.Update)
	}
}

func (h *CandidateHandler) List(c *gin.Context) {
	candidates, err := h.candidateUC.ListCandidates(c)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Candidate list", candidates)
}

// Update merges the supplied fields into the profile; absent fields keep
// their stored values.
func (h *CandidateHandler) Update(c *gin.Context) {
	var patch domain.CandidateProfilePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	profile, err := h.candidateUC.UpdateProfile(c, c.Param("id"), patch)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Profile updated", profile)
}
