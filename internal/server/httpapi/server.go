// Package httpapi exposes the vault over HTTP JSON: registration, login,
// refresh-token rotation, and the credential-record endpoints. It owns the
// two authorization gates (access and refresh) and maps service sentinel
// errors to status codes.
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/dmitrijs2005/passvault/internal/logging"
	"github.com/dmitrijs2005/passvault/internal/server/services"
	"github.com/gin-gonic/gin"
)

// Server is the HTTP front of the vault.
type Server struct {
	address   string
	logger    logging.Logger
	users     *services.UserService
	records   *services.RecordService
	jwtSecret []byte
}

// NewServer constructs the HTTP server. secretKey must match the key the
// token issuer signs with.
func NewServer(address string, l logging.Logger, us *services.UserService, rs *services.RecordService, secretKey string) *Server {
	return &Server{
		address:   address,
		logger:    l.With("module", "http_server"),
		users:     us,
		records:   rs,
		jwtSecret: []byte(secretKey),
	}
}

// Router builds the gin engine with all routes and gates attached.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	api := r.Group("/api")

	api.GET("/ping", s.ping)
	api.POST("/register", s.register)
	api.POST("/login", s.login)
	api.GET("/refresh", s.refreshGate(), s.refresh)

	authorized := api.Group("", s.accessGate())
	authorized.GET("/profile", s.profile)
	authorized.POST("/records", s.createRecord)
	authorized.GET("/records/:id", s.getRecord)
	authorized.PUT("/records/:id", s.updateRecord)
	authorized.DELETE("/records/:id", s.deleteRecord)
	authorized.DELETE("/session", s.logout)

	return r
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Router(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
