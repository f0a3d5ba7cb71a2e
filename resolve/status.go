package resolve

import (
	"github.com/logbob0401/libyang/schema"
	"github.com/logbob0401/libyang/yerr"
)

// CheckStatus enforces that, within the same module, a referent's status
// is no more lenient than the referrer's: current code must not
// reference deprecated or obsolete definitions, and deprecated code must
// not reference obsolete ones. Cross-module references are unconstrained.
func CheckStatus(status1 schema.Status, mod1 *schema.Module, name1 string, status2 schema.Status, mod2 *schema.Module, name2 string) error {
	if mod1 != mod2 {
		return nil
	}
	if status1 < status2 {
		return yerr.Deniedf(yerr.WithMessagef(
			"%s definition %q must not reference %s definition %q", status1, name1, status2, name2))
	}
	return nil
}
