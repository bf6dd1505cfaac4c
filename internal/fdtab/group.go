package fdtab

import "github.com/oblaser/fdmonitor/pkg/model"

// skipCount drops the leading entries of the record sequence. Enumerating
// /proc/<pid>/fd opens the fd directory itself, so the first entry is a
// descriptor of the enumeration, not of the inspected process. A provider
// that does not introduce that artifact would use 0 here.
const skipCount = 1

// Group folds a descriptor table into groups of equivalent targets.
//
// Records are scanned in enumeration order after the skipped prefix. Each
// record joins the first existing group whose representative it is equivalent
// to; scanning stops at that group even if a later one would also match, so
// grouping is deterministic and never re-merges. A record matching no group
// starts a new one. The result preserves first-seen group order and, within
// each group, the observed descriptor order.
func (m Matcher) Group(records []model.Descriptor) []model.Group {
	if len(records) <= skipCount {
		return nil
	}

	var groups []model.Group
	for _, rec := range records[skipCount:] {
		idx := -1
		for i := range groups {
			if m.Equivalent(rec.Target, groups[i].Target) {
				idx = i
				break
			}
		}
		if idx >= 0 {
			groups[idx].FDs = append(groups[idx].FDs, rec.FD)
		} else {
			groups = append(groups, model.Group{Target: rec.Target, FDs: []int32{rec.FD}})
		}
	}
	return groups
}
