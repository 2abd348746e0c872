// Package store provides local persistence for fragmenta.
//
// [Store] keeps every entity under one logical key, split across two tiers:
//
//   - the secret tier ([tokenstore.Store]) holds the GitHub token only
//   - the general tier ([Backend]) holds everything else as JSON
//
// The general tier is BoltDB by default, SQLite when selected with
// FRAGMENTA_STORE=sqlite. Both implement the same [Backend] interface.
//
// # Keys
//
//	github_token        secret tier, the credential
//	github_config       owner, repo, folder, branch
//	draft_content       the single draft slot
//	submission_history  newest-first list, at most model.MaxHistory entries
//	tag_catalog         ordered list of primary and secondary tags
//	app_settings        retry and auto-save preferences
//
// Lists are read, modified and written back whole on every mutation. A
// missing key reads as "not present" (nil or empty), never as an error;
// backend errors are returned wrapped but otherwise untouched.
package store
