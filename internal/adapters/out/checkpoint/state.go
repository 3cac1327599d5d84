package checkpoint

// stateV1 is the version 1 payload. Timestamps are unix seconds.
type stateV1 struct {
	Deliveries    []deliveryV1 `json:"deliveries"`
	NFTs          []nftV1      `json:"nfts"`
	EscrowBalance uint64       `json:"escrow_balance"`
}

type deliveryV1 struct {
	ID               string      `json:"id"`
	Seller           string      `json:"seller"`
	Buyer            string      `json:"buyer"`
	Amount           uint64      `json:"amount"`
	Description      string      `json:"description"`
	Status           string      `json:"status"`
	CreatedAt        int64       `json:"created_at"`
	InTransitAt      *int64      `json:"in_transit_at,omitempty"`
	DeliveredAt      *int64      `json:"delivered_at,omitempty"`
	ConfirmedAt      *int64      `json:"confirmed_at,omitempty"`
	EscrowReleasedAt *int64      `json:"escrow_released_at,omitempty"`
	CancelledAt      *int64      `json:"cancelled_at,omitempty"`
	Otp              *string     `json:"otp,omitempty"`
	OtpExpiresAt     *int64      `json:"otp_expires_at,omitempty"`
	StatusHistory    []historyV1 `json:"status_history"`
}

type historyV1 struct {
	Status string `json:"status"`
	At     int64  `json:"at"`
}

type nftV1 struct {
	ID         string `json:"id"`
	DeliveryID string `json:"delivery_id"`
	Owner      string `json:"owner"`
	Metadata   string `json:"metadata"`
	MintedAt   int64  `json:"minted_at"`
}
