package output

import (
	"encoding/json"

	"github.com/oblaser/fdmonitor/pkg/model"
)

// ToJSON renders a report for machine consumption. Paths are emitted as-is;
// JSON string escaping already neutralizes control bytes.
func ToJSON(r model.Report) (string, error) {
	b, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", err
	}
	return string(b), nil
}
