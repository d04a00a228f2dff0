// Package middleware provides audit logging utilities.
package middleware

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/fulfillment-service/internal/domain/model"
	"github.com/guttosm/fulfillment-service/internal/service"
)

// auditEntry builds a log entry from the request, tagged with the action.
func auditEntry(c *gin.Context, actionType, level, message string, fields map[string]interface{}) *model.LogEntry {
	return &model.LogEntry{
		Timestamp:  time.Now(),
		Level:      level,
		Message:    message,
		RequestID:  GetRequestID(c),
		Method:     c.Request.Method,
		Path:       c.Request.URL.Path,
		IP:         c.ClientIP(),
		UserAgent:  c.Request.UserAgent(),
		OrderID:    c.Param("order_id"),
		ActionType: actionType,
		Fields:     fields,
	}
}

// storeAsync persists the entry off the request path.
func storeAsync(loggingService service.LoggingService, entry *model.LogEntry) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = loggingService.CreateLog(ctx, entry)
	}()
}

// AuditLog records a fulfillment action, such as a parcel submission, in
// the audit trail.
func AuditLog(loggingService service.LoggingService, c *gin.Context, actionType string, message string, fields map[string]interface{}) {
	if loggingService == nil {
		return
	}
	storeAsync(loggingService, auditEntry(c, actionType, "info", message, fields))
}

// AuditLogError records a failed fulfillment action in the audit trail.
func AuditLogError(loggingService service.LoggingService, c *gin.Context, actionType string, message string, err error, fields map[string]interface{}) {
	if loggingService == nil {
		return
	}
	entry := auditEntry(c, actionType, "error", message, fields)
	entry.Error = err.Error()
	storeAsync(loggingService, entry)
}
