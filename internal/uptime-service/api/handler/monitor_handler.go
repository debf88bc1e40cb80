package handler

import (
	"GSM_Uptime_Microservice/internal/uptime-service/api/dto/response"
	apperrors "GSM_Uptime_Microservice/internal/uptime-service/errors"
	"GSM_Uptime_Microservice/internal/uptime-service/repository"
	"GSM_Uptime_Microservice/internal/uptime-service/service"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type MonitorHandler interface {
	RunCheck() gin.HandlerFunc
	GetServerUptimePercentage() gin.HandlerFunc
}

type monitorHandler struct {
	logger      Logger
	scanService service.ScanService
	stats       repository.UptimeStatsRepository // nil when statistics are not configured
}

// RunCheck is the trigger endpoint an external scheduler hits once per
// interval. The response always reports what was checked, even when
// escalation delivery partially failed, persistence failures are the only
// thing that turns the cycle into a 500.
func (m *monitorHandler) RunCheck() gin.HandlerFunc {
	return func(c *gin.Context) {
		summary, err := m.scanService.RunCycle(c.Request.Context())
		if err != nil {
			if errors.Is(err, apperrors.ErrScanInProgress) {
				c.JSON(http.StatusConflict, response.Response{
					Message: "A scan cycle is already running",
				})
				return
			}
			err = fmt.Errorf("MonitorHandler.RunCheck: %w", err)
			m.logger.LoggingError(c, err, "scan cycle failed", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal Server Error",
			})
			return
		}
		c.JSON(http.StatusOK, toCheckSummaryResponse(summary))
	}
}

func (m *monitorHandler) GetServerUptimePercentage() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.stats == nil {
			c.JSON(http.StatusServiceUnavailable, response.Response{
				Message: "Uptime statistics are not configured",
			})
			return
		}
		id := c.Param("id")
		startTime, err := time.Parse("2006-01-02", c.Query("start_date"))
		if err != nil {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "Invalid start date",
			})
			return
		}
		endTime, err := time.Parse("2006-01-02", c.Query("end_date"))
		if err != nil || endTime.Before(startTime) {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "Invalid end date",
			})
			return
		}
		res, err := m.stats.GetServerUptimePercentage(c, id, startTime, endTime.AddDate(0, 0, 1))
		if err != nil {
			err = fmt.Errorf("MonitorHandler.GetServerUptimePercentage: %w", err)
			m.logger.LoggingError(c, err, fmt.Sprintf("failed to get uptime percentage of server %s", id), zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal Server Error",
			})
			return
		}
		c.JSON(http.StatusOK, response.UptimeResponse{
			UptimePercentage: res,
		})
	}
}

func toCheckSummaryResponse(summary service.Summary) response.CheckSummaryResponse {
	res := response.CheckSummaryResponse{
		CycleID:   summary.CycleID,
		Checked:   summary.Checked,
		Online:    summary.Online,
		Offline:   summary.Offline,
		Skipped:   summary.Skipped,
		Threshold: summary.Threshold,
		Servers:   make([]response.ServerCheckResponse, 0, len(summary.Results)),
	}
	for _, r := range summary.Results {
		res.Servers = append(res.Servers, response.ServerCheckResponse{
			Name:        r.ServerName,
			Online:      r.Online,
			PlayerCount: r.PlayersOnline,
			MethodUsed:  string(r.Method),
		})
	}
	return res
}

func NewMonitorHandler(logger *zap.Logger, scanService service.ScanService, stats repository.UptimeStatsRepository) MonitorHandler {
	return &monitorHandler{
		logger:      NewLogger(logger),
		scanService: scanService,
		stats:       stats,
	}
}
