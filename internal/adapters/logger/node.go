package logger

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/imagetool/internal/core/ports"
)

// NodeID is the unique identifier for the logger Graft node.
const NodeID graft.ID = "adapter.logger"

// JSONEnv switches the process logger to JSON records when set to a non-empty value.
const JSONEnv = "IMAGETOOL_LOG_JSON"

func init() {
	graft.Register(graft.Node[ports.Logger]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Logger, error) {
			l := New()
			if os.Getenv(JSONEnv) != "" {
				l.SetJSON(true)
			}
			return l, nil
		},
	})
}
