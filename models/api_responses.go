package models

import (
	"time"

	"github.com/gin-gonic/gin"
)

type ApiResponse struct {
	Message         string      `json:"message"`
	Data            any         `json:"data,omitempty"`
	Error           bool        `json:"error,omitempty"`
	Meta            *Pagination `json:"meta"`
	Rate            *RateLimit  `json:"rate_limit,omitempty"`
	RequestedEntity string      `json:"requested_entity,omitempty"`
}

type Pagination struct {
	Page       int `json:"page" example:"1"`
	Limit      int `json:"limit" example:"12"`
	Total      int `json:"total" example:"42"`
	TotalPages int `json:"total_pages" example:"4"`
}

// NewPagination clamps page into range and computes the page count.
func NewPagination(page, limit, total int) *Pagination {
	if limit < 1 {
		limit = 1
	}
	return &Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: (total + limit - 1) / limit,
	}
}

type RateLimit struct {
	Limit          int       `json:"limit"`
	Remaining      int       `json:"remaining"`
	ResetAt        time.Time `json:"reset_at"`
	ResetInSeconds int       `json:"reset_in_seconds"`
}

// RateLimitContextKey is where the rate limiter middleware leaves its snapshot.
const RateLimitContextKey = "rateLimit"

func rateFromContext(c *gin.Context) *RateLimit {
	if c == nil {
		return nil
	}
	if rate, exists := c.Get(RateLimitContextKey); exists {
		if rl, ok := rate.(*RateLimit); ok {
			return rl
		}
	}
	return nil
}

func requestedEntity(c *gin.Context) string {
	if c == nil || c.Request == nil {
		return ""
	}
	return c.Request.Method + " " + c.FullPath()
}

func SuccessResponse(c *gin.Context, message string, data any) ApiResponse {
	return ApiResponse{
		Message:         message,
		Data:            data,
		Rate:            rateFromContext(c),
		RequestedEntity: requestedEntity(c),
	}
}

func PaginatedResponse(c *gin.Context, message string, data any, meta *Pagination) ApiResponse {
	return ApiResponse{
		Message:         message,
		Data:            data,
		Meta:            meta,
		Rate:            rateFromContext(c),
		RequestedEntity: requestedEntity(c),
	}
}

func ErrorResponse(c *gin.Context, message string) ApiResponse {
	return ApiResponse{
		Message:         message,
		Error:           true,
		Rate:            rateFromContext(c),
		RequestedEntity: requestedEntity(c),
	}
}
