package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/surveykit/questionnaire/docs"
	"github.com/surveykit/questionnaire/internal/api/handler"
	"github.com/surveykit/questionnaire/internal/api/middleware"
	"github.com/surveykit/questionnaire/internal/core/ports"
)

// Dependencies are the services and probes the router wires into handlers.
type Dependencies struct {
	Users     ports.UserService
	Questions ports.QuestionService
	Answers   ports.AnswerService
	Reports   ports.ReportService
	// Health maps dependency names to readiness pings.
	Health    map[string]handler.PingFunc
	// Metrics receives the HTTP metrics and backs /metrics. Nil uses the
	// default Prometheus registry.
	Metrics   *prometheus.Registry
	JWTSecret string
	Log       zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	var (
		registerer prometheus.Registerer = prometheus.DefaultRegisterer
		gatherer   prometheus.Gatherer   = prometheus.DefaultGatherer
	)
	if deps.Metrics != nil {
		registerer, gatherer = deps.Metrics, deps.Metrics
	}

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(deps.Log))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "questionnaire",
		Registerer: registerer,
	}))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.Users)
	userHandler := handler.NewUserHandler(deps.Users)
	questionHandler := handler.NewQuestionHandler(deps.Questions)
	answerHandler := handler.NewAnswerHandler(deps.Answers)
	reportHandler := handler.NewReportHandler(deps.Reports, deps.Answers)

	auth := middleware.Auth(deps.JWTSecret)
	staffOnly := middleware.StaffOnly()
	superuserOnly := middleware.SuperuserOnly()

	// --- Open routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.Health)
	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Authenticated routes ---
	v1 := e.Group("/v1", auth)

	v1.GET("/users/me", userHandler.Me)

	admin := v1.Group("/admin", superuserOnly)
	admin.POST("/superusers", userHandler.CreateSuperuser)
	admin.DELETE("/users/:id", userHandler.Delete)

	v1.GET("/questions", questionHandler.List)
	v1.GET("/questions/:id", questionHandler.Get)
	v1.POST("/questions", questionHandler.Create, staffOnly)
	v1.DELETE("/questions/:id", questionHandler.Delete, staffOnly)

	v1.POST("/answers", answerHandler.Create)
	v1.GET("/answers", answerHandler.List)
	v1.GET("/answers/:id", answerHandler.Get)
	v1.DELETE("/answers/:id", answerHandler.Delete)

	v1.POST("/reports", reportHandler.Create)
	v1.GET("/reports", reportHandler.List)
	v1.GET("/reports/:id", reportHandler.Get)
	v1.POST("/reports/:id/answers", reportHandler.AddAnswer)
	v1.DELETE("/reports/:id", reportHandler.Delete)

	return e
}

// requestLogger writes one structured line per request.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogURI:       true,
		LogMethod:    true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Error != nil {
				ev = log.Warn().Err(v.Error)
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
