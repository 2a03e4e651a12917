package catalog

import (
	"log"
	"sort"
)

// dropInfo holds aggregated information about one drop reason
type dropInfo struct {
	count    int
	examples []string
}

// DropAggregator collects drop records during a run and outputs consolidated
// summaries instead of one log line per dropped file.
type DropAggregator struct {
	drops map[string]*dropInfo
}

// NewDropAggregator creates a new drop aggregator
func NewDropAggregator() *DropAggregator {
	return &DropAggregator{
		drops: make(map[string]*dropInfo),
	}
}

// Add records one drop occurrence
func (a *DropAggregator) Add(rec DropRecord) {
	if a.drops[rec.Reason] == nil {
		a.drops[rec.Reason] = &dropInfo{
			examples: make([]string, 0, 3),
		}
	}

	info := a.drops[rec.Reason]
	info.count++

	// Store up to 3 examples
	if len(info.examples) < 3 {
		info.examples = append(info.examples, rec.SourceFile)
	}
}

// LogAll outputs all collected drops in consolidated format
func (a *DropAggregator) LogAll() {
	if len(a.drops) == 0 {
		return
	}

	reasons := make([]string, 0, len(a.drops))
	for reason := range a.drops {
		reasons = append(reasons, reason)
	}
	sort.Strings(reasons)

	for _, reason := range reasons {
		info := a.drops[reason]
		log.Printf("[%s] %d dropped. %s. Examples: %v", reason, info.count, describeReason(reason), info.examples)
	}
}

func describeReason(reason string) string {
	switch reason {
	case DropArchiveError:
		return "Container could not be opened or read; remaining files processed"
	case DropParseError:
		return "Route file unreadable, not well-formed XML, or no recognizable waypoint elements"
	case DropCoordinateError:
		return "Waypoint position could not be sanitized to an in-range value"
	case DropValidationError:
		return "Route held fewer than 2 valid waypoints after sanitization"
	case DropDuplicateRoute:
		return "Identity key collided with an already-kept route"
	default:
		return "Unclassified drop"
	}
}
