package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"opportunity-match-backend/internal/delivery/http/response"
	"opportunity-match-backend/internal/domain"
	"opportunity-match-backend/pkg/apperror"
	"opportunity-match-backend/pkg/auth"
)

// AccountHandler serves registration, login and account-level reads. The
// marketplace endpoints identify actors through request payloads; the token
// returned at login only backs the /me lookup.
type AccountHandler struct {
	accountUC domain.AccountUsecase
	tokens    *auth.TokenManager
}

func NewAccountHandler(public *gin.RouterGroup, protected *gin.RouterGroup, accountUC domain.AccountUsecase, tokens *auth.TokenManager) {
	handler := &AccountHandler{accountUC: accountUC, tokens: tokens}

	public.POST("/register", handler.Register)
	public.POST("/login", handler.Login)

	users := public.Group("/users")
	{
		users.GET("", handler.List)
		users.GET("/:id/applications", handler.ListApplications)
		users.PUT("/:id/skills", handler.UpdateSkills)
	}

	protected.GET("/me", handler.Me)
}

// Register creates the account plus its role-matched shadow profile and
// returns both ids; the id for the other role is null.
func (h *AccountHandler) Register(c *gin.Context) {
	var req domain.RegisterInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	out, err := h.accountUC.Register(c, req)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "User registered", out)
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AccountHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	out, err := h.accountUC.Authenticate(c, req.Email, req.Password)
	if err != nil {
		c.Error(err)
		return
	}

	token, err := h.tokens.Issue(out.Account.ID, out.Account.Email, out.Account.Role)
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}

	response.Success(c, http.StatusOK, "Login successful", gin.H{
		"account":      out.Account,
		"candidate_id": out.CandidateID,
		"recruiter_id": out.RecruiterID,
		"token":        token,
	})
}

func (h *AccountHandler) Me(c *gin.Context) {
	accountID := c.GetString(string(domain.KeyAccountID))
	account, err := h.accountUC.GetAccount(c, accountID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Current account", account)
}

func (h *AccountHandler) List(c *gin.Context) {
	accounts, err := h.accountUC.ListAccounts(c)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "User list", accounts)
}

// ListApplications returns the postings the account has applied to, with
// ids of deleted postings filtered out.
func (h *AccountHandler) ListApplications(c *gin.Context) {
	jobs, err := h.accountUC.ListApplications(c, c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Application history", jobs)
}

type UpdateSkillsRequest struct {
	Skills []string `json:"skills"`
}

func (h *AccountHandler) UpdateSkills(c *gin.Context) {
	var req UpdateSkillsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	account, err := h.accountUC.UpdateSkills(c, c.Param("id"), req.Skills)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Skills updated", account)
}
