package fsops

import (
	"os"
	"sync"

	"github.com/fahimudin15/mcp-client/internal/safety"
)

var (
	rootOnce    sync.Once
	absRoot     string
	initRootErr error
)

func initRoot() {
	absRoot, initRootErr = safety.InitSandboxRoot(os.Getenv("MCPC_TOOLS_ROOT"))
}

// getRoot returns the cached absolute sandbox root, initialising it once on first use.
func getRoot() (string, error) {
	rootOnce.Do(initRoot)
	return absRoot, initRootErr
}
