package prompt

import "vocabstream-backend/internal/types"

// LookupComponent returns the timing entry at idx. Out-of-range indices,
// negative ones included, report absence rather than an error; the template
// engine falls back to defaults in that case.
func LookupComponent(list []types.ComponentTiming, idx int) (types.ComponentTiming, bool) {
	if idx < 0 || idx >= len(list) {
		return types.ComponentTiming{}, false
	}
	return list[idx], true
}
