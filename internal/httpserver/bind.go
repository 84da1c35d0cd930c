package httpserver

import (
	"github.com/gin-gonic/gin"

	"github.com/rmatsuoka744/vc-system/pkg/helpers"
)

// bindRequest decodes and validates a JSON request body into v,
// trimmed from the teacher's internal/ui/httpserver.bindRequest (which
// also binds query and URI parameters this service's routes never
// use — every endpoint here is a plain JSON-body POST or a bodyless
// GET).
func bindRequest(c *gin.Context, v any) error {
	if err := c.ShouldBindJSON(v); err != nil {
		return helpers.NewErrorFromError(err)
	}
	return nil
}
