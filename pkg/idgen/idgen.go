// Package idgen issues record identifiers from a snowflake node.
package idgen

import (
	"fmt"

	"github.com/bwmarrin/snowflake"
)

// Generator hands out unique, time-ordered int64 ids. Safe for concurrent use.
type Generator struct {
	node *snowflake.Node
}

// New returns a Generator for the given node number (0-1023).
func New(node int64) (*Generator, error) {
	n, err := snowflake.NewNode(node)
	if err != nil {
		return nil, fmt.Errorf("idgen: node %d: %w", node, err)
	}
	return &Generator{node: n}, nil
}

// Next returns a fresh id.
func (g *Generator) Next() int64 {
	return g.node.Generate().Int64()
}
