package validation

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	validatorv10 "github.com/go-playground/validator/v10"
)

// BindAndValidate decodes the JSON body into `out` and validates it. On
// failure it writes the 400 response itself, in the same detail shape the
// API uses for 404s and 500s, and returns the error so the handler can
// short-circuit.
func BindAndValidate(c *gin.Context, out interface{}, v *validatorv10.Validate) error {
	if err := c.ShouldBindJSON(out); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"detail": fmt.Sprintf("invalid request body: %v", err),
		})
		return err
	}

	if err := v.Struct(out); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"detail": "validation failed",
			"fields": fieldErrors(err),
		})
		return err
	}
	return nil
}

// fieldErrors flattens validator errors into field -> failed rule.
func fieldErrors(err error) map[string]string {
	out := map[string]string{}
	var ve validatorv10.ValidationErrors
	if !errors.As(err, &ve) {
		out["error"] = err.Error()
		return out
	}
	for _, fe := range ve {
		out[fe.StructNamespace()] = fe.Tag()
	}
	return out
}
