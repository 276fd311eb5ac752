package server

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes wires the API endpoints on the provided Echo
// instance.
func RegisterRoutes(e *echo.Echo, h *Handler) {
	e.GET("/", h.Welcome)
	e.GET("/healthz", Health)

	e.GET("/api/rooms", h.GetRooms)
	e.GET("/api/rooms/:id", h.GetRoom)

	e.POST("/api/reservations/upload", h.UploadReservations)
	e.GET("/api/data", h.GetData)
	e.POST("/api/yaml-to-csv", h.YAMLToCSV)
	e.POST("/api/yaml-to-html", h.YAMLToHTML)
}
