package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// BindJSON binds the request body to obj. When the body cannot be decoded it
// answers 400 with a failed Result and returns false.
func BindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		c.JSON(http.StatusBadRequest, Fail[struct{}](bindErrorMessage(err)))
		return false
	}
	return true
}

func bindErrorMessage(err error) string {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return fmt.Sprintf("Field '%s' has invalid type, expected %s", typeErr.Field, typeErr.Type.String())
	}
	return "Malformed JSON or invalid request body"
}
