package core

import (
	"testing"

	"github.com/mlcortez/footprint/internal/contract"
	"github.com/stretchr/testify/assert"
)

func newTestMatcher(emails, names []string) *IdentityMatcher {
	cfg := contract.IdentityConfig{
		Emails: make(map[string]struct{}),
		Names:  make(map[string]struct{}),
	}
	for _, e := range emails {
		cfg.Emails[e] = struct{}{}
	}
	for _, n := range names {
		cfg.Names[n] = struct{}{}
	}
	return NewIdentityMatcher(cfg)
}

func TestIdentityMatcher_EmailExact(t *testing.T) {
	m := newTestMatcher([]string{"a@x.com"}, nil)

	assert.True(t, m.Matches("A", "a@x.com"))
	assert.True(t, m.Matches("Anyone", "A@X.COM"), "emails compare case-insensitively")
	assert.False(t, m.Matches("B", "b@y.com"))
}

func TestIdentityMatcher_NameExact(t *testing.T) {
	m := newTestMatcher([]string{"a@x.com"}, []string{"Jane Doe"})

	assert.True(t, m.Matches("Jane Doe", "other@nowhere.com"))
	assert.False(t, m.Matches("jane doe", "other@nowhere.com"), "names compare exactly")
}

func TestIdentityMatcher_EmailSubstring(t *testing.T) {
	m := newTestMatcher([]string{"a@x.com"}, nil)

	// The substring rule tolerates plus-tags and wrapped addresses, at the
	// cost of false positives on longer domains.
	assert.True(t, m.Matches("B", "a@x.com.test"))
	assert.False(t, m.Matches("B", "prefix-a@x.co"))
}

func TestIdentityMatcher_NoIdentity(t *testing.T) {
	m := newTestMatcher(nil, nil)

	assert.False(t, m.Matches("Jane Doe", "a@x.com"))
}
