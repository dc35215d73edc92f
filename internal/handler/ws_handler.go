package handler

import (
	"log"
	"net/http"

	"NutritionAssistant/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// Upgrade HTTP connection to WebSocket
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// coachEvent is one progress message on the websocket stream.
type coachEvent struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data,omitempty"`
}

// HandleCoachConnection godoc
// @Summary      Plan generation with live progress (WebSocket)
// @Description  **Note: this is not a standard HTTP API.**
// @Description  Connect with the `ws://` or `wss://` scheme, send one JSON profile message,
// @Description  and receive stage events (computing-metrics, requesting-plan, validating-plan)
// @Description  followed by a final `plan` or `error` event.
// @Tags         WebSocket (Coach)
// @Success      101 {string} string "101 Switching Protocols"
// @Failure      500 {object} handler.ErrorResponse "WebSocket upgrade failed"
// @Router       /ws/coach [get]
func HandleCoachConnection(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("[ERROR] Failed to upgrade to WebSocket: %v", err)
		return
	}
	defer conn.Close()
	log.Printf("Coach WebSocket connection established from %s", c.ClientIP())

	var profile models.Profile
	if err := conn.ReadJSON(&profile); err != nil {
		conn.WriteJSON(coachEvent{Event: "error", Data: "Invalid profile message"})
		return
	}
	if msg, ok := validateProfile(profile); !ok {
		conn.WriteJSON(coachEvent{Event: "error", Data: msg})
		return
	}

	if err := sess.BeginGeneration(); err != nil {
		conn.WriteJSON(coachEvent{Event: "error", Data: "A plan generation is already in progress"})
		return
	}
	defer sess.EndGeneration()

	outcome, err := pipe.Run(c.Request.Context(), profile, func(stage string) {
		if err := conn.WriteJSON(coachEvent{Event: "stage", Data: stage}); err != nil {
			log.Printf("[WARN] Failed to push stage event: %v", err)
		}
	})
	if err != nil {
		_, msg := planFailureStatus(err)
		conn.WriteJSON(coachEvent{Event: "error", Data: msg})
		return
	}

	if err := applyOutcome(outcome); err != nil {
		log.Printf("[ERROR] Failed to apply plan to session: %v", err)
		conn.WriteJSON(coachEvent{Event: "error", Data: genericPlanFailure})
		return
	}

	if err := conn.WriteJSON(coachEvent{Event: "plan", Data: outcome}); err != nil {
		log.Printf("[WARN] Failed to send final plan event: %v", err)
	}
	log.Printf("Coach session completed for %s", profile.Name)
}
