// Package store holds the persistence adapters behind ports.Store.
//
// Entities are stored as JSON documents keyed by their stored field names
// (the json tags on the domain types). Both adapters apply filters and
// ordering to those documents, so a listing behaves the same whether it is
// served from memory or from PostgreSQL.
package store
