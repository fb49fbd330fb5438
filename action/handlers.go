package action

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	// TransferPath - metadata and build endpoint for the SOL transfer action
	TransferPath = "/api/actions/transfer"
	// IconPath - static icon the derived metadata icon URL points at
	IconPath = "/icon.svg"

	healthPath = "/healthz"
)

const iconSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 128 128">
<rect width="128" height="128" rx="24" fill="#1b1b2f"/>
<path d="M34 44h52l8-10H42l-8 10zm0 24h52l8-10H42l-8 10zm0 24h52l8-10H42l-8 10z" fill="#14f195"/>
</svg>`

// NewRouter wires the action routes onto a gin engine with the cross-origin
// headers blink clients require. Preflight requests are answered by the cors
// middleware with an empty body.
func NewRouter(s *Service) *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:    []string{"Content-Type", "Authorization", "Content-Encoding", "Accept-Encoding"},
	}))

	engine.GET(TransferPath, s.GetAction)
	engine.POST(TransferPath, s.PostTransfer)
	engine.GET(IconPath, s.GetIcon)
	engine.GET(healthPath, s.GetHealth)

	return engine
}

// GetAction - GET /api/actions/transfer
// Serves the action descriptor. The icon URL follows the request's own
// scheme and host unless an absolute override is configured.
func (s *Service) GetAction(c *gin.Context) {
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	c.JSON(http.StatusOK, s.Metadata(scheme+"://"+c.Request.Host))
}

// PostTransfer - POST /api/actions/transfer?receiver=xxx&amount=yyy
// Validates the caller-supplied fields and returns the unsigned transfer
// transaction, base64 encoded.
func (s *Service) PostTransfer(c *gin.Context) {
	var req PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, APIError{Message: "invalid request body"})
		return
	}

	params, err := ValidateTransfer(c.Query("receiver"), c.Query("amount"), req.Account)
	if err != nil {
		c.JSON(http.StatusBadRequest, APIError{Message: err.Error()})
		return
	}

	resp, err := s.BuildTransfer(c.Request.Context(), params)
	if err != nil {
		s.logger.Error("transfer build failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, APIError{Message: "internal server error"})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetIcon - GET /icon.svg
func (s *Service) GetIcon(c *gin.Context) {
	c.Data(http.StatusOK, "image/svg+xml", []byte(iconSVG))
}

// GetHealth - GET /healthz
func (s *Service) GetHealth(c *gin.Context) {
	if err := s.HealthCheck(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, APIError{Message: "rpc node unavailable"})
		return
	}
	c.String(http.StatusOK, "OK")
}
