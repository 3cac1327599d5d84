// Package services holds domain services that do not belong to a single
// aggregate.
//
// The package includes:
//   - OtpService: draws one-time codes and identifiers from a random source
//   - NftMinter: builds the receipt artifact for a confirmed delivery
package services
