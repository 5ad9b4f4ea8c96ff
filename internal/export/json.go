package export

import (
	"encoding/json"

	"github.com/markmind/markmind/internal/layout"
)

// JSON renders the positioned tree as indented JSON.
func JSON(root *layout.LayoutNode) ([]byte, error) {
	return json.MarshalIndent(root, "", "  ")
}
