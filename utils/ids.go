package utils

import (
	"log"
	"sync"

	"github.com/bwmarrin/snowflake"
)

var (
	idNode *snowflake.Node
	idOnce sync.Once
)

// NewID returns a process-unique id with the given prefix, e.g. "inv_1849301284937729".
// Snowflake ids are monotonic within the process, so rapid sequential creation
// never collides the way timestamp-suffixed ids can.
func NewID(prefix string) string {
	idOnce.Do(func() {
		var err error
		idNode, err = snowflake.NewNode(1)
		if err != nil {
			log.Fatalf("Failed to initialize id node: %v", err)
		}
	})
	return prefix + "_" + idNode.Generate().String()
}
