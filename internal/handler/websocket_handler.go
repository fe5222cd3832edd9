package handler

import (
	"encoding/json"
	"log"
	"net/http"

	"RapidCapture_SecurityTrainer/internal/auth"
	"RapidCapture_SecurityTrainer/internal/scenario"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// Upgrade HTTP connection to WebSocket
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// message pushed for every round of a live drill
type drillPush struct {
	Event    string             `json:"event"`
	Scenario *scenario.Scenario `json:"scenario,omitempty"`
	Error    string             `json:"error,omitempty"`
}

// answer frame read from the client
type drillAnswer struct {
	Action           string `json:"action"`
	TimeTakenSeconds int    `json:"timeTakenSeconds"`
}

// HandleDrillConnection godoc
// @Summary      Live drill WebSocket connection
// @Description  Runs a continuous training drill over a WebSocket: the server pushes a scenario, the client answers with an action frame, the server replies with the graded result and pushes the next scenario.
// @Description  <br>
// @Description  **Note: this is not a standard HTTP API.**
// @Description  Clients must connect with the `ws://` or `wss://` scheme.
// @Description  Authentication uses the **query parameter `token`**, not an HTTP header.
// @Tags         WebSocket (Drill)
// @Param        token      query     string  true   "JWT token issued at login"
// @Param        difficulty query     string  false  "Difficulty filter (easy, medium, hard)"
// @Success      101        {string}  string  "101 Switching Protocols"
// @Failure      400        {object}  handler.ErrorResponse "Unknown difficulty"
// @Failure      401        {object}  handler.ErrorResponse "Missing or invalid token"
// @Failure      500        {object}  handler.ErrorResponse "WebSocket upgrade failed"
// @Router       /ws/drill [get]
func HandleDrillConnection(c *gin.Context) {
	tokenString := c.Query("token")

	claims, err := auth.ValidateToken(tokenString)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
		return
	}
	username := claims.Username

	var filter scenario.Difficulty
	if raw := c.Query("difficulty"); raw != "" {
		parsed, ok := scenario.ParseDifficulty(raw)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown difficulty: " + raw})
			return
		}
		filter = parsed
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("error: Failed to upgrade to WebSocket : User %s with %v", username, err)
		return
	}
	defer conn.Close()
	log.Printf("WebSocket drill established for user: %s", username)

	manageDrillSession(conn, username, filter)
}

// manageDrillSession runs the push-answer-result loop until the client
// disconnects or a scenario cannot be picked.
func manageDrillSession(conn *websocket.Conn, username string, filter scenario.Difficulty) {
	log.Printf("Drill session started for user: %s", username)

ReadLoop:
	for {
		sc, err := drillService.Next(username, filter)
		if err != nil {
			log.Printf("manageDrillSession(): failed to pick scenario for %s: %v", username, err)
			_ = conn.WriteJSON(drillPush{Event: "error", Error: "Failed to pick scenario"})
			break ReadLoop
		}
		if err := conn.WriteJSON(drillPush{Event: "scenario", Scenario: sc}); err != nil {
			log.Printf("Error sending scenario to user %s: %v", username, err)
			break ReadLoop
		}

		messageType, message, err := conn.ReadMessage()
		if err != nil {
			log.Printf("Error reading message from user %s: %v", username, err)
			break ReadLoop
		}
		if messageType != websocket.TextMessage {
			log.Printf("Unsupported message type from user %s: %d", username, messageType)
			continue
		}

		var answer drillAnswer
		if err := json.Unmarshal(message, &answer); err != nil {
			_ = conn.WriteJSON(drillPush{Event: "error", Error: "Invalid answer frame"})
			continue
		}
		if answer.Action == "quit" {
			break ReadLoop
		}

		result, err := drillService.Submit(username, sc.ID, answer.Action, answer.TimeTakenSeconds)
		if err != nil {
			log.Printf("manageDrillSession(): submit failed for %s: %v", username, err)
			_ = conn.WriteJSON(drillPush{Event: "error", Error: "Failed to grade answer"})
			continue
		}
		if err := conn.WriteJSON(gin.H{"event": "result", "result": result}); err != nil {
			log.Printf("Error sending result to user %s: %v", username, err)
			break ReadLoop
		}
	}
	log.Printf("Drill session ended for user: %s", username)
}
