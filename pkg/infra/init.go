package infra

import (
	"sync"

	"github.com/msp-tools/tenant-console/internal/configs"
)

var mut sync.Mutex

// InitDBConnectors sets up the shared SQL connection pool once.
func InitDBConnectors(config configs.Configs) {
	mut.Lock()
	defer mut.Unlock()
	if SQL == nil {
		initSQLConns(config)
	}
}
