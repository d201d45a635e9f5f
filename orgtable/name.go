package orgtable

import (
	"fmt"

	"github.com/google/uuid"
)

// GenerateName returns a fresh table name such as "tbl-1a2b3c4d" for #+NAME: lines
func GenerateName() string {
	return fmt.Sprintf("tbl-%s", uuid.New().String()[:8])
}
