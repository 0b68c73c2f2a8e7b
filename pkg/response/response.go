// Package response is the JSON envelope every API endpoint answers with.
package response

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error codes carried in Response.Code. Zero is success.
const (
	CodeOK           = 0
	CodeBadRequest   = -1
	CodeInternal     = -2
	CodeUnauthorized = -1001
	CodeNotFound     = -1003
)

// Response is the standard API response structure
type Response struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// body is what handlers write; Data is encoded as-is.
type body struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// Success sends a successful response
func Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, body{Code: CodeOK, Message: "success", Data: data})
}

// Created sends a 201 created response
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, body{Code: CodeOK, Message: "created", Data: data})
}

// Error sends an error response
func Error(c *gin.Context, statusCode int, code int, message string) {
	c.JSON(statusCode, body{Code: code, Message: message})
}

func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, CodeBadRequest, message)
}

func Unauthorized(c *gin.Context, message string) {
	Error(c, http.StatusUnauthorized, CodeUnauthorized, message)
}

func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, CodeNotFound, message)
}

func InternalError(c *gin.Context, message string) {
	Error(c, http.StatusInternalServerError, CodeInternal, message)
}

// Decode unmarshals the Data of a successful envelope into v.
func (r Response) Decode(v any) error {
	if len(r.Data) == 0 || v == nil {
		return nil
	}
	return json.Unmarshal(r.Data, v)
}
