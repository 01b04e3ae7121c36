package api

import (
	"context"
	"net/http"
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/uber-go/tally"

	"github.com/sabi-health/sabi-api/dispatch"
	"github.com/sabi-health/sabi-api/logmodule"
	"github.com/sabi-health/sabi-api/store"
	"github.com/sabi-health/sabi-api/weather"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "gin")
}

// Server to run a http server instance
type Server struct {
	// Server instance
	server *http.Server

	// Stores
	store      store.SabiCore
	mongoStore store.MongoStore

	// Core pipeline
	dispatcher *dispatch.Dispatcher
	gauge      *weather.Gauge
	mockRain   *weather.MockRainSwitch

	// metrics
	metrics tally.Scope
}

// NewServer new instance of server
func NewServer(
	sabiStore store.SabiCore,
	mongoStore store.MongoStore,
	dispatcher *dispatch.Dispatcher,
	gauge *weather.Gauge,
	mockRain *weather.MockRainSwitch,
	metrics tally.Scope,
) *Server {
	if metrics == nil {
		metrics = tally.NoopScope
	}

	return &Server{
		store:      sabiStore,
		mongoStore: mongoStore,
		dispatcher: dispatcher,
		gauge:      gauge,
		mockRain:   mockRain,
		metrics:    metrics,
	}
}

// Run to run the server
func (s *Server) Run(addr string) error {
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.setupRouter(),
	}

	return s.server.ListenAndServe()
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(sentrygin.New(sentrygin.Options{
		Repanic:         true,
		WaitForDelivery: false,
		Timeout:         10 * time.Second,
	}))
	r.Use(cors.New(cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		AllowAllOrigins:  true,
		MaxAge:           12 * time.Hour,
	}))

	apiRoute := r.Group("/")
	apiRoute.Use(logmodule.Ginrus("API"))
	{
		apiRoute.POST("/register", s.register)
		apiRoute.GET("/users", s.listUsers)
		apiRoute.GET("/me/:userID", s.me)
		apiRoute.PATCH("/me/:userID", s.updatePersonality)

		apiRoute.GET("/risk-check/:userID", s.riskCheck)
		apiRoute.PUT("/call-user/:userID", s.callUser)

		apiRoute.GET("/logs", s.listLogs)
		apiRoute.GET("/logs/user/:userID", s.listUserLogs)

		apiRoute.POST("/symptoms", s.reportSymptoms)

		apiRoute.GET("/messages/:userID", s.listMessages)
		apiRoute.POST("/messages/:messageID/read", s.markMessageRead)

		apiRoute.POST("/predict-weekly/:userID", s.predictWeekly)
		apiRoute.POST("/tips/:userID", s.generateTip)
	}

	webhookRoute := r.Group("/")
	webhookRoute.Use(logmodule.Ginrus("Webhook"))
	{
		webhookRoute.POST("/respond/:logID", s.recordResponse)
		webhookRoute.POST("/call-status/:logID", s.callStatus)
	}

	secretRoute := r.Group("/secret")
	secretRoute.Use(logmodule.Ginrus("Secret"))
	secretRoute.Use(s.apikeyAuthentication(viper.GetString("server.apikey.admin")))
	{
		secretRoute.GET("/mock-rain", s.mockRainStatus)
		secretRoute.POST("/mock-rain", s.toggleMockRain)
	}

	if dir := viper.GetString("audio.dir"); dir != "" {
		r.Static("/audio", dir)
	}

	r.GET("/healthz", s.healthz)
	r.GET("/information", s.information)

	return r
}

// Shutdown to shutdown the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// shouldInterupt sends error message and determine if it should interupt the current flow
func shouldInterupt(err error, c *gin.Context) bool {
	if err == nil {
		return false
	}

	log.Error(err)
	abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
	return true
}

func (s *Server) apikeyAuthentication(key string) gin.HandlerFunc {
	return func(c *gin.Context) {
		apiToken := c.GetHeader("Api-Token")
		if apiToken == "" || apiToken != key {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}
		c.Next()
	}
}

func (s *Server) healthz(c *gin.Context) {
	// Ping db
	if shouldInterupt(s.store.Ping(), c) {
		return
	}
	if shouldInterupt(s.mongoStore.Ping(), c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"version": viper.GetString("server.version"),
	})
}

func (s *Server) information(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"information": map[string]interface{}{
			"server": map[string]interface{}{
				"version": viper.GetString("server.version"),
			},
			"system_version": "Sabi Health 0.1",
		},
	})
}

func responseWithEncoding(c *gin.Context, code int, obj ErrorResponse) {
	acceptEncoding := c.GetHeader("Accept-Encoding")
	switch acceptEncoding {
	default:
		c.JSON(code, obj)
	}
}

func abortWithEncoding(c *gin.Context, code int, obj ErrorResponse, errors ...error) {
	for _, err := range errors {
		c.Error(err)
	}
	responseWithEncoding(c, code, obj)
	c.Abort()
}
