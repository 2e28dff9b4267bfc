// Package id generates unique, time-ordered identifiers for all entities.
package id

import (
	"os"
	"strconv"

	"github.com/bwmarrin/snowflake"
)

var node *snowflake.Node

func init() {
	nodeID := int64(1)
	if v := os.Getenv("SNOWFLAKE_NODE_ID"); v != "" {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			nodeID = parsed
		}
	}

	var err error
	node, err = snowflake.NewNode(nodeID)
	if err != nil {
		panic(err)
	}
}

// New returns the next identifier.
func New() int64 {
	return node.Generate().Int64()
}
