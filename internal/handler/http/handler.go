package http

import (
	"github.com/MKhiriev/storefront-api/internal/csrf"
	"github.com/MKhiriev/storefront-api/internal/logger"
	"github.com/MKhiriev/storefront-api/internal/schema"
	"github.com/MKhiriev/storefront-api/internal/service"
)

type Handler struct {
	services *service.Services
	schema   *schema.Validator
	csrf     *csrf.Guard

	logger *logger.Logger
}

func NewHandler(services *service.Services, schema *schema.Validator, csrf *csrf.Guard, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		schema:   schema,
		csrf:     csrf,
		logger:   logger,
	}
}
