package http

import (
	"net/http"

	"proofparcel/internal/core/application/usecases/commands"
	"proofparcel/internal/core/application/usecases/queries"
	"proofparcel/internal/core/domain/model/kernel"
	"proofparcel/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

type NewDelivery struct {
	Buyer       string `json:"buyer"`
	Amount      uint64 `json:"amount"`
	Description string `json:"description"`
}

type CreatedDelivery struct {
	ID string `json:"id"`
}

type IssuedOtp struct {
	Otp string `json:"otp"`
}

type Confirmation struct {
	Otp string `json:"otp"`
}

type MintedNft struct {
	NftID string `json:"nft_id"`
}

// CreateDelivery handles POST /api/v1/deliveries. The caller becomes the seller.
func (s *Server) CreateDelivery(c echo.Context) error {
	var body NewDelivery
	if err := c.Bind(&body); err != nil {
		return s.fail(c, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	buyer, err := kernel.NewIdentity(body.Buyer)
	if err != nil {
		return s.fail(c, errs.NewValueIsRequiredErrorWithCause("buyer", err))
	}

	cmd, err := commands.NewCreateDeliveryCommand(callerOf(c), buyer, body.Amount, body.Description)
	if err != nil {
		return s.fail(c, err)
	}

	id, err := s.handlers.CreateDelivery.Handle(c.Request().Context(), cmd)
	s.metrics.ObserveTransition("create", err)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusCreated, CreatedDelivery{ID: id.String()})
}

// StartDelivery handles POST /api/v1/deliveries/:id/start.
func (s *Server) StartDelivery(c echo.Context) error {
	id, err := kernel.NewID(c.Param("id"))
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewStartDeliveryCommand(callerOf(c), id)
	if err != nil {
		return s.fail(c, err)
	}

	err = s.handlers.StartDelivery.Handle(c.Request().Context(), cmd)
	s.metrics.ObserveTransition("start", err)
	if err != nil {
		return s.fail(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// GenerateOtp handles POST /api/v1/deliveries/:id/otp. Only the seller gets the
// code back; handing it to the buyer is up to them.
func (s *Server) GenerateOtp(c echo.Context) error {
	id, err := kernel.NewID(c.Param("id"))
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewGenerateOtpCommand(callerOf(c), id)
	if err != nil {
		return s.fail(c, err)
	}

	code, err := s.handlers.GenerateOtp.Handle(c.Request().Context(), cmd)
	s.metrics.ObserveTransition("generate_otp", err)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, IssuedOtp{Otp: code})
}

// ConfirmDelivery handles POST /api/v1/deliveries/:id/confirm.
func (s *Server) ConfirmDelivery(c echo.Context) error {
	id, err := kernel.NewID(c.Param("id"))
	if err != nil {
		return s.fail(c, err)
	}

	var body Confirmation
	if err = c.Bind(&body); err != nil {
		return s.fail(c, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	cmd, err := commands.NewConfirmDeliveryCommand(callerOf(c), id, body.Otp)
	if err != nil {
		return s.fail(c, err)
	}

	nftID, err := s.handlers.ConfirmDelivery.Handle(c.Request().Context(), cmd)
	s.metrics.ObserveTransition("confirm", err)
	if err != nil {
		return s.fail(c, err)
	}
	s.metrics.NFTMinted()

	return c.JSON(http.StatusOK, MintedNft{NftID: nftID.String()})
}

// ReleaseEscrow handles POST /api/v1/deliveries/:id/release.
func (s *Server) ReleaseEscrow(c echo.Context) error {
	id, err := kernel.NewID(c.Param("id"))
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewReleaseEscrowCommand(callerOf(c), id)
	if err != nil {
		return s.fail(c, err)
	}

	err = s.handlers.ReleaseEscrow.Handle(c.Request().Context(), cmd)
	s.metrics.ObserveTransition("release_escrow", err)
	if err != nil {
		return s.fail(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// GetDelivery handles GET /api/v1/deliveries/:id.
func (s *Server) GetDelivery(c echo.Context) error {
	id, err := kernel.NewID(c.Param("id"))
	if err != nil {
		return s.fail(c, err)
	}

	query, err := queries.NewGetDeliveryQuery(id)
	if err != nil {
		return s.fail(c, err)
	}

	response, err := s.handlers.GetDelivery.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, response)
}

// ListDeliveries handles GET /api/v1/deliveries with an optional seller or
// buyer filter. Giving both is rejected.
func (s *Server) ListDeliveries(c echo.Context) error {
	seller, buyer := c.QueryParam("seller"), c.QueryParam("buyer")

	var (
		query queries.ListDeliveriesQuery
		err   error
	)
	switch {
	case seller != "" && buyer != "":
		return s.fail(c, errs.NewValueIsInvalidError("filter by seller or by buyer, not both"))
	case seller != "":
		query, err = partyQuery(seller, queries.NewGetDeliveriesBySellerQuery)
	case buyer != "":
		query, err = partyQuery(buyer, queries.NewGetDeliveriesByBuyerQuery)
	default:
		query = queries.NewGetAllDeliveriesQuery()
	}
	if err != nil {
		return s.fail(c, err)
	}

	response, err := s.handlers.ListDeliveries.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, response)
}

func partyQuery(
	value string,
	build func(kernel.Identity) (queries.ListDeliveriesQuery, error),
) (queries.ListDeliveriesQuery, error) {
	identity, err := kernel.NewIdentity(value)
	if err != nil {
		return queries.ListDeliveriesQuery{}, err
	}
	return build(identity)
}
