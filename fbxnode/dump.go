package fbxnode

import "github.com/davecgh/go-spew/spew"

var dumpConfig *spew.ConfigState

func init() {
	dumpConfig = spew.NewDefaultConfig()
	dumpConfig.DisableCapacities = true
}

// Dump renders a node tree for test-failure diagnostics, the same way
// utils/spewdump.go's SDump backs the teacher's mismatch logging.
func Dump(n *Node) string {
	return dumpConfig.Sdump(n)
}
