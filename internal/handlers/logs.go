package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"DF-DSGNR/internal/models"
	"DF-DSGNR/internal/services"

	"github.com/gin-gonic/gin"
)

type LogsHandler struct {
	activityLogService *services.ActivityLogService
}

func NewLogsHandler(activityLogService *services.ActivityLogService) *LogsHandler {
	return &LogsHandler{
		activityLogService: activityLogService,
	}
}

type LogsResponse struct {
	Logs       interface{} `json:"logs"`
	Total      int64       `json:"total"`
	Page       int         `json:"page"`
	Limit      int         `json:"limit"`
	TotalPages int         `json:"total_pages"`
}

// GetAllLogs returns all activity logs with pagination
func (h *LogsHandler) GetAllLogs(c *gin.Context) {
	limitStr := c.DefaultQuery("limit", "50")
	pageStr := c.DefaultQuery("page", "1")
	method := c.Query("method")
	path := c.Query("path")

	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit <= 0 {
		limit = 50
	}
	if limit > 1000 { // Prevent too large requests
		limit = 1000
	}

	page, err := strconv.Atoi(pageStr)
	if err != nil || page <= 0 {
		page = 1
	}

	offset := (page - 1) * limit

	var logs []models.ActivityLog
	var total int64

	// Filter by method if provided
	if method != "" {
		logs, total, err = h.activityLogService.GetLogsByMethod(method, limit, offset)
	} else if path != "" {
		// Filter by path if provided
		logs, total, err = h.activityLogService.GetLogsByPath(path, limit, offset)
	} else {
		// Get all logs
		logs, total, err = h.activityLogService.GetAllLogs(limit, offset)
	}

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch logs"})
		return
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))

	response := LogsResponse{
		Logs:       logs,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}

	c.JSON(http.StatusOK, response)
}

// GetLogStats returns statistics about the logs
func (h *LogsHandler) GetLogStats(c *gin.Context) {
	logs, total, err := h.activityLogService.GetAllLogs(0, 0) // Get all logs
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch log stats"})
		return
	}

	// Count by method
	methodCounts := make(map[string]int)
	pathCounts := make(map[string]int)
	statusCounts := make(map[int]int)

	for _, log := range logs {
		methodCounts[log.Method]++
		pathCounts[log.Path]++
		statusCounts[log.StatusCode]++
	}

	stats := gin.H{
		"total_requests": total,
		"methods":        methodCounts,
		"paths":          pathCounts,
		"status_codes":   statusCounts,
	}

	c.JSON(http.StatusOK, stats)
}

// GetSaveHistory returns template save operations with the payloads users sent
func (h *LogsHandler) GetSaveHistory(c *gin.Context) {
	limitStr := c.DefaultQuery("limit", "50")
	pageStr := c.DefaultQuery("page", "1")

	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit <= 0 {
		limit = 50
	}
	if limit > 1000 {
		limit = 1000
	}

	page, err := strconv.Atoi(pageStr)
	if err != nil || page <= 0 {
		page = 1
	}

	offset := (page - 1) * limit

	logs, total, err := h.activityLogService.GetLogsByPath("/save", limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch save history"})
		return
	}

	saves := make([]gin.H, 0)
	for _, log := range logs {
		if log.Method != "POST" || len(log.RequestBody) == 0 {
			continue
		}

		entry := gin.H{
			"timestamp":     log.CreatedAt,
			"session_id":    extractSessionID(log.Path),
			"ip_address":    log.IPAddress,
			"user_agent":    log.UserAgent,
			"response_time": log.ResponseTime,
		}

		// Show the parsed payload when the body is JSON, raw otherwise
		var payload map[string]interface{}
		if err := json.Unmarshal([]byte(log.RequestBody), &payload); err == nil {
			entry["payload"] = payload
		} else {
			entry["raw_body"] = log.RequestBody
		}

		saves = append(saves, entry)
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))

	c.JSON(http.StatusOK, gin.H{
		"saves":       saves,
		"total":       total,
		"page":        page,
		"limit":       limit,
		"total_pages": totalPages,
	})
}

// Helper function to extract the session id from paths like
// "/api/v1/sessions/123/save"
func extractSessionID(path string) string {
	parts := strings.Split(path, "/")
	for i, part := range parts {
		if part == "sessions" && i+1 < len(parts) {
			return parts[i+1]
		}
	}
	return "unknown"
}
