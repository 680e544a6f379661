package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-admin/internal/audit"
	"github.com/BruksfildServices01/salon-admin/internal/middleware"
)

// actor is the authenticated admin, or "" when auth is disabled.
func actor(c *gin.Context) string {
	return c.GetString(middleware.ContextUserEmail)
}

func writeAudit(
	d *audit.Dispatcher,
	c *gin.Context,
	action string,
	entity string,
	entityID string,
	meta any,
) {
	d.Dispatch(audit.Event{
		Actor:    actor(c),
		Action:   action,
		Entity:   entity,
		EntityID: entityID,
		Metadata: meta,
	})
}
