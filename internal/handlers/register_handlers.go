package handlers

import (
	"regexp"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	portssvc "github.com/quocbank/qbank_backend/internal/core/ports/services"
	"github.com/quocbank/qbank_backend/internal/middleware"
	"github.com/quocbank/qbank_backend/internal/platform/config"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

var accountNumberPattern = regexp.MustCompile(`^\d{10}$`)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	registerCustomValidators()

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	setupAPIV1Routes(r, cfg, services)
}

// registerCustomValidators adds the accountnumber binding rule so requests
// carrying a destination account number fail fast on malformed input.
func registerCustomValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("accountnumber", func(fl validator.FieldLevel) bool {
		return accountNumberPattern.MatchString(fl.Field().String())
	})
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Apply AuthMiddleware to the entire v1 group
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret, cfg.JWTIssuer))

	// Money-moving routes get an IP rate limit on top of auth; reads are
	// not limited.
	rate, err := limiter.NewRateFromFormatted(cfg.TransferRateLimit)
	if err != nil {
		rate, _ = limiter.NewRateFromFormatted("20-M")
	}
	limitMW := middleware.RateLimit(limiter.New(memory.NewStore(), rate))

	registerAccountRoutes(v1, services.Account)
	registerTransferRoutes(v1, services.Transfer, services.Account, limitMW)
	registerBillRoutes(v1, services.Bill, limitMW)
	registerSavingsRoutes(v1, services.Savings, limitMW)
	registerScheduledTransferRoutes(v1, services.Scheduled)
	registerNotificationRoutes(v1, services.Notification)
}
