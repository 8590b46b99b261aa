package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kalejaiyeoluwadara/push-notification-setup/internal/config"
)

// WebConfigHandler serves the public provider configuration to the browser.
// The service worker runs in an isolated context with no access to page
// state, so it pulls the same config through a script endpoint instead of
// carrying hardcoded literals.
type WebConfigHandler struct {
	web      config.WebConfig
	vapidKey string
}

func NewWebConfigHandler(web config.WebConfig, vapidKey string) *WebConfigHandler {
	return &WebConfigHandler{web: web, vapidKey: vapidKey}
}

// Config handles GET /api/config for the page-side setup flow.
func (h *WebConfigHandler) Config(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"firebase": h.web,
		"vapidKey": h.vapidKey,
	})
}

// ConfigScript handles GET /firebase-config.js for the service worker,
// which loads it via importScripts before initializing the provider SDK.
func (h *WebConfigHandler) ConfigScript(c *gin.Context) {
	blob, err := json.Marshal(h.web)
	if err != nil {
		c.String(http.StatusInternalServerError, "// failed to render firebase config")
		return
	}
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, "application/javascript", []byte("self.firebaseConfig = "+string(blob)+";\n"))
}
