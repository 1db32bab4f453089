package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"opportunity-match-backend/config"
	"opportunity-match-backend/internal/delivery/http/middleware"
	"opportunity-match-backend/internal/delivery/http/response"
	"opportunity-match-backend/internal/domain"
	"opportunity-match-backend/pkg/auth"
)

type RouterDeps struct {
	AccountUC     domain.AccountUsecase
	JobUC         domain.JobUsecase
	ApplicationUC domain.ApplicationUsecase
	CandidateUC   domain.CandidateUsecase
	Tokens        *auth.TokenManager
	Config        *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL))
	r.Use(middleware.SecurityHeaders())
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())

	api := r.Group("/api")

	api.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(deps.Tokens))

	NewAccountHandler(api, protected, deps.AccountUC, deps.Tokens)
	NewJobHandler(api, deps.JobUC)
	NewApplicationHandler(api, deps.ApplicationUC)
	NewCandidateHandler(api, deps.CandidateUC)

	return r
}
