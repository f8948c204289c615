package core

import (
	"strings"

	"github.com/mlcortez/footprint/internal/contract"
)

// IdentityMatcher decides whether a commit's recorded author corresponds
// to the operator being profiled. Its configuration is immutable after
// construction.
type IdentityMatcher struct {
	emails map[string]struct{} // lower-cased
	names  map[string]struct{}
}

// NewIdentityMatcher builds a matcher from the configured identity sets.
func NewIdentityMatcher(cfg contract.IdentityConfig) *IdentityMatcher {
	return &IdentityMatcher{emails: cfg.Emails, names: cfg.Names}
}

// Matches reports whether the author identity belongs to the operator.
// Emails compare case-insensitively, names compare exactly. A configured
// email occurring anywhere inside the commit email also matches: this
// tolerates plus-tags and old/new domains sharing a local part, at the
// cost of false positives such as "a@x.com" matching "a@x.com.test".
// The rule is intentionally loose and documented rather than tightened.
func (m *IdentityMatcher) Matches(name, email string) bool {
	email = strings.ToLower(email)
	if _, ok := m.emails[email]; ok {
		return true
	}
	if _, ok := m.names[name]; ok {
		return true
	}
	for target := range m.emails {
		if strings.Contains(email, target) {
			return true
		}
	}
	return false
}
