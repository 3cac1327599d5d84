// Package nft holds the receipt artifact issued to the buyer once a delivery is
// confirmed.
//
// A DeliveryNFT is immutable: it is created once per successful confirmation
// and never updated or deleted.
package nft
