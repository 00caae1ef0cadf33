package step

import (
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	fragmentPolicyOnce sync.Once
	fragmentPolicy     *bluemonday.Policy
)

// FragmentPolicy returns the shared sanitizer applied to fragments fetched
// from remote URLs when a view opts in via WithRemoteSanitizer. The policy
// starts from bluemonday's UGC baseline and re-admits the form controls step
// fragments legitimately carry.
func FragmentPolicy() *bluemonday.Policy {
	fragmentPolicyOnce.Do(func() {
		policy := bluemonday.UGCPolicy()

		policy.AllowElements("form", "fieldset", "legend", "label", "button", "select", "option", "optgroup", "input", "textarea")
		policy.AllowAttrs("action", "method", "name").OnElements("form")
		policy.AllowAttrs("type", "name", "value", "placeholder", "checked", "disabled", "readonly", "min", "max", "step").OnElements("input")
		policy.AllowAttrs("type", "name", "value", "disabled").OnElements("button")
		policy.AllowAttrs("name", "multiple", "disabled").OnElements("select")
		policy.AllowAttrs("value", "selected", "disabled").OnElements("option")
		policy.AllowAttrs("label", "disabled").OnElements("optgroup")
		policy.AllowAttrs("name", "rows", "cols", "placeholder", "disabled", "readonly").OnElements("textarea")
		policy.AllowAttrs("for").OnElements("label")
		policy.AllowAttrs("class").Globally()
		policy.AllowDataAttributes()

		fragmentPolicy = policy
	})
	return fragmentPolicy
}
