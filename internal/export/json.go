package export

import (
	"encoding/json"
	"io"

	"github.com/san-kum/labfx/internal/scene"
)

// JSON writes the scene descriptor tree, indented.
func JSON(w io.Writer, s scene.Scene) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(s)
}
