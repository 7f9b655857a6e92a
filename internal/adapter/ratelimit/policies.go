package ratelimit

import (
	"adsync/internal/config/configs"
	"sort"
)

// PoliciesFromConfig builds the policy list from configuration, in name
// order. Names match the port.Policy* constants.
func PoliciesFromConfig(cfg configs.RateLimit) []Policy {
	windows := cfg.Windows()
	policies := make([]Policy, 0, len(windows))
	for name, w := range windows {
		policies = append(policies, Policy{Name: name, Limit: w.Limit, Window: w.Length})
	}
	sort.Slice(policies, func(i, j int) bool { return policies[i].Name < policies[j].Name })
	return policies
}
