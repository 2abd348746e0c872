// Package core provides the business logic layer for fragmenta.
//
// This package contains the submission pipeline and repository configuration,
// separated from UI concerns. Functions return errors instead of printing,
// and UI-specific logic belongs in the cli and cmd packages.
//
// # Submission
//
// [Submitter.Submit] turns raw text and a tag selection into a committed file:
//
//  1. Refuse when the remote client has no configuration
//  2. Refuse empty input and content that carries secrets
//  3. Prepend the frontmatter block and create the file, retrying 5xx failures
//  4. Record the submission in history and clear the draft
//
// # Configuration
//
// [ConfigService] validates a repository configuration against GitHub before
// persisting it, and [ResolveToken] finds a credential from flags, the
// environment or the gh CLI.
package core
