package surface

import (
	"encoding/json"
	"io"

	"github.com/farmsecure/farmsecure/pkg/scoring"
)

// JSONRenderer marshals an Assessment to indented JSON.
type JSONRenderer struct{}

func (r *JSONRenderer) Render(w io.Writer, a *scoring.Assessment) error {
	return WriteJSON(w, a)
}

// WriteJSON writes v to w as indented JSON. Used for the dashboard views
// and batch output, which have no dedicated renderer.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
