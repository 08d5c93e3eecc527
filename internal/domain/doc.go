// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/hours, domain/event,
// domain/menu, ...), and civil-zone time handling lives in domain/civiltime.
// This root package holds sentinel errors, validation types, the stored
// record metadata, and the list/page types every entity store speaks.
package domain
