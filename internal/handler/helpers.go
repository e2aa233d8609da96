package handler

import (
	"errors"
	"net/http"
	"reflect"

	"stockbook/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

func init() {
	// Register decimal.Decimal as a numeric type so that validator tags like
	// min=0, gt=0, required work without panicking ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
}

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails —
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid JSON body: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"msg":     "validation failed",
			"fields":  fields,
		})
		return false
	}
	return true
}

// respond writes the success envelope: {"success": true, "data": ...}.
func respond(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{"success": true, "data": data})
}

// fail maps a service error to its HTTP status and envelope. Internal
// causes are logged with the request id and never shown to clients.
func fail(c *gin.Context, err error) {
	var ae *apierror.Error
	if errors.As(err, &ae) {
		if ae.Kind == apierror.KindInternal {
			log.Error().
				Str("request_id", c.GetString("request_id")).
				Str("path", c.FullPath()).
				Err(ae.Err).
				Msg("internal error")
		}
		c.JSON(ae.Status(), apierror.New(ae.Msg))
		return
	}
	log.Error().
		Str("request_id", c.GetString("request_id")).
		Str("path", c.FullPath()).
		Err(err).
		Msg("unclassified error")
	c.JSON(http.StatusInternalServerError, apierror.New("internal server error"))
}
