// Package ids generates unique, time-ordered message IDs.
package ids

import (
	"fmt"

	"github.com/bwmarrin/snowflake"
)

// Generator produces snowflake IDs. Snowflakes are 64-bit and sort by
// generation time, which keeps message logs globally ordered without a
// per-conversation counter.
type Generator struct {
	node *snowflake.Node
}

// NewGenerator constructs a Generator for the given machine ID (0–1023).
func NewGenerator(machineID int64) (*Generator, error) {
	node, err := snowflake.NewNode(machineID)
	if err != nil {
		return nil, fmt.Errorf("ids.NewGenerator: %w", err)
	}
	return &Generator{node: node}, nil
}

// NextID returns the next unique ID.
func (g *Generator) NextID() int64 {
	return g.node.Generate().Int64()
}
