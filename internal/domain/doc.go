// Package domain contains the core model for the EcoCyc gene resolver.
//
// The domain is transport-agnostic: it does not depend on XML decoding, net/http,
// or the filesystem. Infra adapters map remote responses into these types.
package domain
