// Command app is the ledger core's entrypoint: it loads configuration from
// the environment, wires every adapter via bootstrap.InitServers, and runs
// the resulting Service.
package main

import (
	"fmt"
	"os"

	"github.com/ledgercore/ledger-core/common"
	"github.com/ledgercore/ledger-core/common/mzap"
	"github.com/ledgercore/ledger-core/internal/bootstrap"
)

const applicationName = "ledger-core"

func main() {
	common.InitLocalEnvConfig()

	logger := mzap.InitializeLogger()

	cfg := bootstrap.NewConfig()
	if cfg.EnvName == "" {
		cfg.EnvName = applicationName
	}

	service, err := bootstrap.InitServers(cfg, logger)
	if err != nil {
		logger.Errorf("failed to initialize %s service: %v", applicationName, err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	service.Run()
}
