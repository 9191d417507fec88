package responses

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10" // For handling validation errors
)

// --- Structs for Standardized JSON Response Bodies ---

// jsonSuccessResponse is the structure for successful responses.
type jsonSuccessResponse struct {
	Status  string      `json:"status"`            // Typically "success"
	Message string      `json:"message,omitempty"` // Optional descriptive message
	Data    interface{} `json:"data,omitempty"`    // The actual data payload
}

// jsonErrorResponse is the structure for error responses.
type jsonErrorResponse struct {
	Status  string      `json:"status"`           // "error" or "fail"
	Message string      `json:"message"`          // Error message
	Code    int         `json:"code"`             // HTTP status code
	Errors  interface{} `json:"errors,omitempty"` // Detailed errors, e.g., for validation
}

// --- Public Response Helper Functions ---

// ErrorResponse sends a standardized error JSON response.
// It's used for general errors.
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	statusText := "error"
	if statusCode >= http.StatusInternalServerError {
		statusText = "fail" // Differentiate client errors from server failures
	}
	c.AbortWithStatusJSON(statusCode, jsonErrorResponse{
		Status:  statusText,
		Message: message,
		Code:    statusCode,
	})
}

// formatValidationErrors converts validator.ValidationErrors into a map.
func formatValidationErrors(errs validator.ValidationErrors) map[string]string {
	formattedErrors := make(map[string]string)
	for _, err := range errs {
		fieldKey := strings.ToLower(err.Field())
		var errMsg string
		switch err.Tag() {
		case "required":
			errMsg = fmt.Sprintf("The %s field is required.", err.Field())
		case "min":
			errMsg = fmt.Sprintf("The %s field must be at least %s.", err.Field(), err.Param())
		case "max":
			errMsg = fmt.Sprintf("The %s field must not exceed %s.", err.Field(), err.Param())
		case "oneof":
			errMsg = fmt.Sprintf("The %s field must be one of the following: %s.", err.Field(), strings.ReplaceAll(err.Param(), " ", ", "))
		default:
			errMsg = fmt.Sprintf("Field validation for '%s' failed on the '%s' tag.", err.Field(), err.Tag())
		}
		formattedErrors[fieldKey] = errMsg
	}
	return formattedErrors
}

// ValidationErrorResponse sends a structured JSON response for validation
// errors originating from `c.ShouldBindJSON()` or similar.
func ValidationErrorResponse(c *gin.Context, err error) {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		c.AbortWithStatusJSON(http.StatusBadRequest, jsonErrorResponse{
			Status:  "error",
			Message: "Validation failed. Please check your input.",
			Code:    http.StatusBadRequest,
			Errors:  formatValidationErrors(ve),
		})
		return
	}
	// For other binding errors (e.g., malformed JSON)
	ErrorResponse(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
}

// SuccessResponse sends a standardized success JSON response.
// The `data` argument provided by the controller is wrapped in the response
// structure. If `data` is `gin.H` and contains a "message" key (string),
// it's used as the top-level message, and the rest of `gin.H` becomes the
// `data` payload. Otherwise, the whole `data` argument becomes the payload.
func SuccessResponse(c *gin.Context, statusCode int, responseData interface{}) {
	payload := jsonSuccessResponse{
		Status: "success",
	}

	if gh, ok := responseData.(gin.H); ok {
		if msgVal, exists := gh["message"]; exists {
			if msgStr, isStr := msgVal.(string); isStr {
				payload.Message = msgStr
				dataMap := make(gin.H)
				hasOtherData := false
				for k, v := range gh {
					if k != "message" {
						dataMap[k] = v
						hasOtherData = true
					}
				}
				if hasOtherData {
					payload.Data = dataMap
				}
			} else {
				payload.Data = responseData
			}
		} else {
			payload.Data = responseData
		}
	} else if responseData != nil {
		payload.Data = responseData
	}

	c.JSON(statusCode, payload)
}
