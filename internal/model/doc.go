// Package model defines the data structures used throughout fragmenta.
//
// These models are shared by the store, the remote client and the
// submission pipeline. Persisted types carry snake_case JSON tags; the
// credential in [RepositoryConfig] is tagged "-" so it can never be written
// next to the non-secret fields.
//
// # RepositoryConfig
//
// Where notes are committed:
//
//	type RepositoryConfig struct {
//	    Token      string // secret tier only
//	    Owner      string
//	    Repo       string
//	    FolderPath string // empty = repository root
//	    Branch     string
//	}
//
// # HistoryEntry
//
// One successful submission. History is kept newest first and capped at
// [MaxHistory] entries.
//
// # Tag
//
// Catalog entry with a type (primary or secondary) and a dense, zero-based
// order within that type.
package model
