package git

import "testing"

func TestValidateBranchName_Valid(t *testing.T) {
	t.Parallel()

	valid := []string{
		"main",
		"feature/login",
		"release-1.2",
		"fix_123",
		"hotfix.v2",
	}
	for _, name := range valid {
		if err := ValidateBranchName(name); err != nil {
			t.Errorf("ValidateBranchName(%q) = %v, want nil", name, err)
		}
	}
}

func TestValidateBranchName_Invalid(t *testing.T) {
	t.Parallel()

	invalid := []string{
		"",
		"my branch",
		"tab\tname",
		"bad~name",
		"bad^name",
		"bad:name",
		"bad?name",
		"bad*name",
		"bad[name",
		"bad\\name",
		"-leading-dash",
		"trailing-dot.",
		"branch.lock",
		"double..dot",
	}
	for _, name := range invalid {
		if err := ValidateBranchName(name); err == nil {
			t.Errorf("ValidateBranchName(%q) = nil, want error", name)
		}
	}
}

func TestValidateRemoteURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		url     string
		wantErr bool
	}{
		{"https://github.com/org/repo.git", false},
		{"http://internal.host/repo", false},
		{"git@github.com:org/repo.git", false},
		{"ssh://git@host/repo", false},
		{"file:///srv/git/repo", false},
		{"/srv/git/repo", false},
		{"../sibling-repo", false},
		{"", true},
		{"ftp://host/repo", true},
		{"repo", true},
	}
	for _, tt := range tests {
		err := ValidateRemoteURL(tt.url)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateRemoteURL(%q) = %v, wantErr %v", tt.url, err, tt.wantErr)
		}
	}
}
