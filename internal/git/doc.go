// Package git wraps the git CLI.
//
// Every operation shells out to the git binary; no structural parsing
// of git output happens here beyond line splitting. Queries that feed
// the push dispatcher (Remotes, CurrentBranch) are always answered
// fresh from git so remote additions and removals are reflected
// immediately.
package git
