package render

import (
	"encoding/json"
	"io"
)

// WriteJSON writes the machine-readable surface for any result value.
// The value is marshaled as-is; per-entry fields such as status_code come
// from the model's struct tags, so the JSON surface never diverges from the
// canonical in-memory result.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
