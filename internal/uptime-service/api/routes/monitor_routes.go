package routes

import (
	"GSM_Uptime_Microservice/internal/uptime-service/api/handler"
	"GSM_Uptime_Microservice/internal/uptime-service/api/middleware"

	"github.com/gin-gonic/gin"
)

func AddMonitorRoutes(r *gin.Engine, h handler.MonitorHandler, m middleware.CronAuthMiddleware) {
	// schedulers differ on the verb they can send
	trigger := r.Group("/internal/uptime")
	trigger.GET("/check", m.VerifyCronSecret(), h.RunCheck())
	trigger.POST("/check", m.VerifyCronSecret(), h.RunCheck())

	r.GET("/servers/:id/uptime", h.GetServerUptimePercentage())
}
