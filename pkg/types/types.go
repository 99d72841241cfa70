// Package types provides the shared request and result types for kaspa-vanity.
// These types are used across the search, artifact and CLI packages.
package types

// AddressScheme is the human-readable part that prefixes every mainnet address.
const AddressScheme = "kaspa:"
