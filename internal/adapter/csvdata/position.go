package csvdata

import (
	"strings"

	"paper-insights/internal/domain/model"
)

// CleanAuthorPosition normalises a raw author_position value. Numeric values
// are returned as is; "middle"/"mid" map to model.PositionMiddle and
// "last"/"corresponding"/"corr" to model.PositionCorresponding. Anything else
// reports false.
func CleanAuthorPosition(raw string) (int, bool) {
	value := strings.ToLower(strings.TrimSpace(raw))
	if value == "" {
		return 0, false
	}
	if n, ok := parseInt(value); ok {
		return n, true
	}

	switch value {
	case "middle", "mid":
		return model.PositionMiddle, true
	case "last", "corresponding", "corr":
		return model.PositionCorresponding, true
	default:
		return 0, false
	}
}
