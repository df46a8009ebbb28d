// Package domain contains the core model for formdraft: the Draft being edited,
// its validation state, the theme preference and the notices raised by a session.
//
// The domain is transport- and persistence-agnostic: it does not depend on YAML parsing,
// net/http, or the storage backends. Infra/adapters map into/from these types.
package domain
