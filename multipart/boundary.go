package multipart

import (
	"strings"

	"github.com/google/uuid"
)

// NewBoundary returns a boundary token suitable for NewEncoder, derived
// from a random UUID. An accidental collision with part content is
// vanishingly unlikely, but the encoder never checks: callers embedding
// attacker-controlled content are responsible for ensuring the boundary
// does not occur inside it.
func NewBoundary() string {
	return "pmhttpFormBoundary" + strings.ReplaceAll(uuid.NewString(), "-", "")
}
