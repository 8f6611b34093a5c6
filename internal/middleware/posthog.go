package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// EventTracker is the sink analytics events are reported to. It is satisfied
// by utils.PosthogClientWrapper.
type EventTracker interface {
	IsInitialized() bool
	Enqueue(distinctID, event string, properties map[string]any)
}

// untrackedPaths are never reported as events.
var untrackedPaths = map[string]bool{
	"/health": true,
}

// PosthogMiddleware reports each successful authenticated request as an
// analytics event named after its route, e.g. GET /api/categories/:id becomes
// "api_categories_:id". Requests that fail, hit untracked paths, or carry no
// user identity are skipped.
func PosthogMiddleware(tracker EventTracker) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tracker == nil || !tracker.IsInitialized() || untrackedPaths[c.Request.URL.Path] {
			c.Next()
			return
		}

		c.Next()

		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}

		userID, ok := GetUserIDFromCtx(c.Request.Context())
		if !ok {
			return
		}

		eventName := strings.ReplaceAll(strings.TrimPrefix(c.FullPath(), "/"), "/", "_")
		if eventName == "" {
			return
		}

		properties := map[string]any{
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"status_code": c.Writer.Status(),
		}
		if len(c.Params) > 0 {
			params := make(map[string]string, len(c.Params))
			for _, p := range c.Params {
				params[p.Key] = p.Value
			}
			properties["params"] = params
		}

		tracker.Enqueue(userID, eventName, properties)
	}
}
