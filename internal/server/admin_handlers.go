package server

import (
	"github.com/gofiber/fiber/v2"
)

// GetDashboard handles GET /api/admin/dashboard
func (s *Server) GetDashboard(c *fiber.Ctx) error {
	stats, err := s.dashboardService.Stats(c.Context())
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(stats)
}
