package git

import (
	"fmt"
	"strings"
	"unicode"
)

// invalidBranchChars are characters git refuses in ref names.
const invalidBranchChars = "~^:?*[\\"

// ValidateBranchName checks a branch name against git's ref naming
// rules. Invalid names are rejected here, before any subprocess is
// spawned, to avoid pushes left in ambiguous partial state.
func ValidateBranchName(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("branch name must not be empty")
	case strings.ContainsFunc(name, unicode.IsSpace):
		return fmt.Errorf("branch name %q must not contain whitespace", name)
	case strings.ContainsAny(name, invalidBranchChars):
		return fmt.Errorf("branch name %q must not contain any of %q", name, invalidBranchChars)
	case strings.HasPrefix(name, "-"):
		return fmt.Errorf("branch name %q must not start with '-'", name)
	case strings.HasSuffix(name, "."):
		return fmt.Errorf("branch name %q must not end with '.'", name)
	case strings.HasSuffix(name, ".lock"):
		return fmt.Errorf("branch name %q must not end with '.lock'", name)
	case strings.Contains(name, ".."):
		return fmt.Errorf("branch name %q must not contain '..'", name)
	}
	return nil
}

// remoteURLPrefixes are the URL forms git accepts for remotes.
var remoteURLPrefixes = []string{
	"http://",
	"https://",
	"git@",
	"ssh://",
	"file://",
	"/",
	"..",
}

// ValidateRemoteURL checks that a remote URL matches one of the
// accepted git URL forms.
func ValidateRemoteURL(url string) error {
	if url == "" {
		return fmt.Errorf("remote URL must not be empty")
	}
	for _, prefix := range remoteURLPrefixes {
		if strings.HasPrefix(url, prefix) {
			return nil
		}
	}
	return fmt.Errorf("invalid remote URL %q: expected http(s)://, ssh://, file://, git@ or a local path", url)
}
