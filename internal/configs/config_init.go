package configs

import (
	"log"

	"github.com/spf13/viper"

	"github.com/msp-tools/tenant-console/pkg/config"
)

// InitConfig loads the static configuration from environment variables.
// Env keys map to mapstructure tags the usual viper way, e.g.
// APP_NAME -> app_name, TENANT_UPDATE_MODE -> tenant_update_mode.
func InitConfig(cfg *Configs) {
	config.InitEnv()

	if err := viper.Unmarshal(cfg); err != nil {
		log.Fatalf("Failed to unmarshal config from environment: %v", err)
	}

	log.Println("Configuration loaded from environment variables")
}
