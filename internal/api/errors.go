package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pageza/recettes/backend/internal/middleware"
	"github.com/pageza/recettes/backend/internal/repository"
	"github.com/pageza/recettes/backend/internal/service"
)

const internalErrorMessage = "internal server error"

// ErrorPolicy maps service errors onto the {"error": message} envelope
type ErrorPolicy struct {
	// ExposeStoreErrors sends the store's own message to the client
	ExposeStoreErrors bool
	Log               *zap.Logger
}

// Respond writes the status and envelope for err
func (p *ErrorPolicy) Respond(c *gin.Context, err error) {
	if errors.Is(err, service.ErrRecipeNotFound) {
		abortWithError(c, http.StatusNotFound, "recipe not found")
		return
	}

	_ = c.Error(err)
	if p.Log != nil {
		p.Log.Error("request failed",
			zap.String("path", c.Request.URL.Path),
			zap.String("request_id", c.GetString(middleware.RequestIDKey)),
			zap.Error(err),
		)
	}

	msg := internalErrorMessage
	if p.ExposeStoreErrors {
		msg = errorMessage(err)
	}
	abortWithError(c, http.StatusInternalServerError, msg)
}

// errorMessage drops the repository operation prefix from store failures
func errorMessage(err error) string {
	var se *repository.StoreError
	if errors.As(err, &se) {
		return se.Err.Error()
	}
	return err.Error()
}

func abortWithError(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, middleware.ErrorResponse{Error: msg})
}

// RouteNotFound answers unmatched API routes
func RouteNotFound(c *gin.Context) {
	abortWithError(c, http.StatusNotFound, "route not found")
}

// MethodNotAllowed answers unsupported methods on a known path
func MethodNotAllowed(c *gin.Context) {
	abortWithError(c, http.StatusMethodNotAllowed, "method not allowed")
}
