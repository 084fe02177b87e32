package handler

import (
	"errors"
	"net/http"

	"github.com/commercekit/checkout/internal/domain/checkout"
	"github.com/commercekit/checkout/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// RequestIDKey is the context key for request ID
const RequestIDKey = "request_id"

// BaseHandler provides common handler utilities
type BaseHandler struct{}

// getRequestID extracts the request ID from the context
func getRequestID(c *gin.Context) string {
	if id := c.GetString(RequestIDKey); id != "" {
		return id
	}
	return c.GetHeader("X-Request-ID")
}

// Success sends a success response
func (h *BaseHandler) Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, dto.NewSuccessResponse(data))
}

// Error sends an error response with the appropriate status code
func (h *BaseHandler) Error(c *gin.Context, statusCode int, code, message string) {
	requestID := getRequestID(c)
	c.JSON(statusCode, dto.NewErrorResponseWithRequestID(code, message, requestID))
}

// BadRequest sends a 400 bad request response
func (h *BaseHandler) BadRequest(c *gin.Context, message string) {
	h.Error(c, http.StatusBadRequest, dto.ErrCodeBadRequest, message)
}

// NotFound sends a 404 not found response
func (h *BaseHandler) NotFound(c *gin.Context, message string) {
	h.Error(c, http.StatusNotFound, dto.ErrCodeNotFound, message)
}

// InternalError sends a 500 internal server error response
func (h *BaseHandler) InternalError(c *gin.Context, message string) {
	h.Error(c, http.StatusInternalServerError, dto.ErrCodeInternal, message)
}

// HandleError converts domain and platform errors to HTTP responses
func (h *BaseHandler) HandleError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	switch {
	case errors.Is(err, checkout.ErrOrderNotFound):
		h.Error(c, http.StatusNotFound, dto.ErrCodeNotFound, "Order not found")
	case errors.Is(err, checkout.ErrShipmentNotFound):
		h.Error(c, http.StatusNotFound, dto.ErrCodeNotFound, "Shipment not found")
	case errors.Is(err, checkout.ErrPlatformUnavailable):
		h.Error(c, dto.GetHTTPStatus(dto.ErrCodePlatformUnavailable), dto.ErrCodePlatformUnavailable, "Commerce platform is unreachable")
	case errors.Is(err, checkout.ErrPlatformRequestFailed),
		errors.Is(err, checkout.ErrPlatformInvalidResponse):
		h.Error(c, dto.GetHTTPStatus(dto.ErrCodePlatformRequest), dto.ErrCodePlatformRequest, "Commerce platform request failed")
	default:
		h.InternalError(c, "An unexpected error occurred")
	}
}
