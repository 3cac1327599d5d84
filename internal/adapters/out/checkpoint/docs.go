// Package checkpoint encodes the durable service state into a versioned blob
// and keeps blobs on the local filesystem.
//
// A blob is a JSON envelope:
//
//	{"schema":"proofparcel.checkpoint","version":1,"state":{...}}
//
// Decode upgrades older versions by running the registered migrations in order
// and rejects unknown schemas and versions newer than CurrentVersion. Blobs
// written before the envelope existed are a bare JSON array
// [deliveries, nfts, escrow] and are read as version 0.
package checkpoint
