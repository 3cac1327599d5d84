package notification

import (
	"fmt"

	"proofparcel/internal/core/domain/model/kernel"
)

// Message texts for each lifecycle event.

func InTransitMessage(id kernel.ID) string {
	return fmt.Sprintf("Your delivery %s is now in transit!", id)
}

func DeliveredMessage(id kernel.ID) string {
	return fmt.Sprintf("Your delivery %s is now delivered! OTP generated.", id)
}

func ConfirmedSellerMessage(id kernel.ID) string {
	return fmt.Sprintf("Delivery %s has been confirmed by the buyer!", id)
}

func ConfirmedBuyerMessage(id kernel.ID) string {
	return fmt.Sprintf("You have confirmed delivery %s!", id)
}

func MintedMessage(id kernel.ID) string {
	return fmt.Sprintf("NFT minted for delivery %s!", id)
}

func EscrowReleasedMessage(id kernel.ID) string {
	return fmt.Sprintf("Escrow released for delivery %s!", id)
}
