package http

import (
	"net/http"

	"proofparcel/internal/core/application/usecases/queries"
	"proofparcel/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// GetNft handles GET /api/v1/nfts/:id.
func (s *Server) GetNft(c echo.Context) error {
	id, err := kernel.NewID(c.Param("id"))
	if err != nil {
		return s.fail(c, err)
	}

	query, err := queries.NewGetNftQuery(id)
	if err != nil {
		return s.fail(c, err)
	}

	response, err := s.handlers.GetNft.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, response)
}

// GetNftsByOwner handles GET /api/v1/nfts?owner=.
func (s *Server) GetNftsByOwner(c echo.Context) error {
	owner, err := kernel.NewIdentity(c.QueryParam("owner"))
	if err != nil {
		return s.fail(c, err)
	}

	query, err := queries.NewGetNftsByOwnerQuery(owner)
	if err != nil {
		return s.fail(c, err)
	}

	response, err := s.handlers.GetNftsByOwner.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, response)
}

// GetEscrowBalance handles GET /api/v1/escrow/balance.
func (s *Server) GetEscrowBalance(c echo.Context) error {
	response, err := s.handlers.GetEscrowBalance.Handle(c.Request().Context(), queries.NewGetEscrowBalanceQuery())
	if err != nil {
		return s.fail(c, err)
	}
	s.metrics.SetEscrowBalance(response.Balance)

	return c.JSON(http.StatusOK, response)
}

// GetNotifications handles GET /api/v1/notifications/:identity.
func (s *Server) GetNotifications(c echo.Context) error {
	recipient, err := kernel.NewIdentity(c.Param("identity"))
	if err != nil {
		return s.fail(c, err)
	}

	query, err := queries.NewGetNotificationsQuery(recipient)
	if err != nil {
		return s.fail(c, err)
	}

	response, err := s.handlers.GetNotifications.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, response)
}
