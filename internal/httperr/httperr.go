package httperr

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

var messages = map[string]string{
	"appointment_not_found": "Cita no encontrada.",
	"client_not_found":      "Cliente no encontrado.",
	"employee_not_found":    "Empleado no encontrado.",
	"service_not_found":     "Servicio no encontrado.",
	"invalid_status":        "Estado inválido.",
	"invalid_time":          "Hora inválida.",
	"invalid_date":          "Fecha inválida.",
	"invalid_image":         "Imagen inválida.",
	"photos_disabled":       "El almacenamiento de fotos no está configurado.",
}

// FromError writes the response matching err. Business codes ending in
// "_not_found" map to 404, other business codes to 400 and anything else to 500.
func FromError(c *gin.Context, err error) {
	code := Code(err)
	if code == "" {
		log.Printf("internal error on %s %s: %v", c.Request.Method, c.FullPath(), err)
		Internal(c, "internal_error", "Error interno.")
		return
	}

	msg, ok := messages[code]
	if !ok {
		msg = code
	}

	if strings.HasSuffix(code, "_not_found") {
		NotFound(c, code, msg)
		return
	}
	BadRequest(c, code, msg)
}
