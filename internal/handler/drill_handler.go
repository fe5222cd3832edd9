/**
* Name: 			drill_handler.go
* Description: 		Gin HTTP handlers for the training drill
* Workflow: 		next scenario, answer submit, session stats/reset, feedback poll
 */
package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"RapidCapture_SecurityTrainer/internal/drill"
	"RapidCapture_SecurityTrainer/internal/scenario"
	"RapidCapture_SecurityTrainer/internal/selector"

	"github.com/gin-gonic/gin"
)

var drillService *drill.Service

// InitDrillHandlers wires the shared drill service into this package.
// Call once from main before registering routes.
func InitDrillHandlers(svc *drill.Service) {
	drillService = svc
}

// /api/scenario/answer request body
type AnswerRequest struct {
	ScenarioID       string `json:"scenarioId" example:"easy-phish-1"`
	Action           string `json:"action" example:"report"`
	TimeTakenSeconds int    `json:"timeTakenSeconds" example:"21"`
}

// NextScenario godoc
// @Summary      Next scenario
// @Description  Picks the next training scenario for the session. Pass ?difficulty=easy|medium|hard to filter; omit it for a random difficulty.
// @Tags         API (Protected)
// @Produce      json
// @Security     BearerAuth
// @Param        difficulty query string false "Difficulty filter (easy, medium, hard)"
// @Success      200 {object} scenario.Scenario
// @Failure      400 {object} handler.ErrorResponse "Unknown difficulty"
// @Failure      401 {object} handler.ErrorResponse "Auth failure"
// @Failure      500 {object} handler.ErrorResponse "Session load/save failure"
// @Router       /api/scenario/next [get]
func NextScenario(c *gin.Context) {
	username := c.GetString("username")

	var filter scenario.Difficulty
	if raw := c.Query("difficulty"); raw != "" {
		parsed, ok := scenario.ParseDifficulty(raw)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown difficulty: " + raw})
			return
		}
		filter = parsed
	}

	sc, err := drillService.Next(username, filter)
	if err != nil {
		var exhausted *selector.CorpusExhaustedError
		if errors.As(err, &exhausted) {
			// only reachable when a difficulty bucket is empty; the
			// seen-list reset handles normal exhaustion
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		log.Printf("NextScenario(): %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to pick scenario"})
		return
	}
	c.JSON(http.StatusOK, sc)
}

// SubmitAnswer godoc
// @Summary      Submit answer
// @Description  Grades the chosen action against the scenario, updates session stats, and queues detailed feedback.
// @Tags         API (Protected)
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body handler.AnswerRequest true "Chosen action"
// @Success      200 {object} drill.Result
// @Failure      400 {object} handler.ErrorResponse "Bad request body"
// @Failure      401 {object} handler.ErrorResponse "Auth failure"
// @Failure      404 {object} handler.ErrorResponse "Unknown scenario id"
// @Router       /api/scenario/answer [post]
func SubmitAnswer(c *gin.Context) {
	username := c.GetString("username")

	var req AnswerRequest
	rawData, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if err := json.Unmarshal(rawData, &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if req.ScenarioID == "" || req.Action == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "scenarioId and action are required"})
		return
	}

	result, err := drillService.Submit(username, req.ScenarioID, req.Action, req.TimeTakenSeconds)
	if err != nil {
		if errors.Is(err, drill.ErrUnknownScenario) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Unknown scenario id"})
			return
		}
		log.Printf("SubmitAnswer(): %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to grade answer"})
		return
	}
	c.JSON(http.StatusOK, result)
}

// SessionStats godoc
// @Summary      Session stats
// @Description  Returns the running correct/total/accuracy counters for the current session.
// @Tags         API (Protected)
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} session.Stats
// @Failure      401 {object} handler.ErrorResponse "Auth failure"
// @Router       /api/session/stats [get]
func SessionStats(c *gin.Context) {
	username := c.GetString("username")

	stats, err := drillService.Stats(username)
	if err != nil {
		log.Printf("SessionStats(): %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load stats"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

// ResetSession godoc
// @Summary      Reset session
// @Description  Clears the seen-scenario list, the anti-repetition memory and the session counters.
// @Tags         API (Protected)
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} handler.SuccessResponse
// @Failure      401 {object} handler.ErrorResponse "Auth failure"
// @Router       /api/session/reset [post]
func ResetSession(c *gin.Context) {
	username := c.GetString("username")

	if err := drillService.Reset(username); err != nil {
		log.Printf("ResetSession(): %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reset session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Session reset"})
}

// ScenarioFeedback godoc
// @Summary      Detailed feedback
// @Description  Polls for the analysis of the last answered scenario. Returns 202 while the analysis is still running.
// @Tags         API (Protected)
// @Produce      json
// @Security     BearerAuth
// @Param        scenario query string true "Scenario id the answer was submitted for"
// @Success      200 {object} feedback.Analysis
// @Success      202 {object} handler.SuccessResponse "Analysis not ready yet"
// @Failure      401 {object} handler.ErrorResponse "Auth failure"
// @Router       /api/feedback [get]
func ScenarioFeedback(c *gin.Context) {
	username := c.GetString("username")
	scenarioID := c.Query("scenario")
	if scenarioID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "scenario query parameter is required"})
		return
	}

	analysis, ready := drillService.Feedback(username, scenarioID)
	if !ready {
		c.JSON(http.StatusAccepted, gin.H{"message": "Analysis not ready"})
		return
	}
	c.JSON(http.StatusOK, analysis)
}

// CorpusSummary godoc
// @Summary      Scenario corpus summary
// @Description  Returns counts of available scenarios per difficulty and label.
// @Tags         API (Protected)
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} scenario.Summary
// @Failure      401 {object} handler.ErrorResponse "Auth failure"
// @Router       /api/scenarios/summary [get]
func CorpusSummary(c *gin.Context) {
	c.JSON(http.StatusOK, drillService.Summary())
}
