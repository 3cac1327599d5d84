// Package kernel provides the shared value objects of the escrow delivery domain.
//
// The package includes:
//   - Identity: the opaque caller reference used for seller/buyer authorization
//   - ID: the opaque identifier of deliveries and receipt artifacts
//
// Both are immutable and invalid as zero values; build them through their
// constructors so every identifier that reaches an aggregate has been validated.
package kernel
