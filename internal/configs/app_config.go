package configs

// Configs holds every static setting the console reads at boot.
// Values come from the environment via viper (see InitConfig).
type Configs struct {
	// App configuration
	AppName               string  `mapstructure:"app_name"`
	AppEnv                string  `mapstructure:"app_env"`
	AppLogLevel           string  `mapstructure:"app_log_level"`
	AppMetricSamplingRate float64 `mapstructure:"app_metric_sampling_rate"`
	AppPort               int     `mapstructure:"app_port"`

	// MySQL configuration (operator accounts + call log)
	MysqlDbName            string `mapstructure:"mysql_db_name"`
	MysqlMasterHost        string `mapstructure:"mysql_master_host"`
	MysqlMasterPassword    string `mapstructure:"mysql_master_password"`
	MysqlMasterPort        int    `mapstructure:"mysql_master_port"`
	MysqlMasterUsername    string `mapstructure:"mysql_master_username"`
	MysqlSlaveHost         string `mapstructure:"mysql_slave_host"`
	MysqlSlavePassword     string `mapstructure:"mysql_slave_password"`
	MysqlSlavePort         int    `mapstructure:"mysql_slave_port"`
	MysqlSlaveUsername     string `mapstructure:"mysql_slave_username"`

	// Console session configuration
	JwtSigningKey string `mapstructure:"jwt_signing_key"`

	// Upstream tenant API configuration
	// TenantUpdateMode selects which upstream endpoint PUT /tenants/:tenantId
	// forwards to: "tenant" (per-tenant PUT) or "msp_customers" (bulk POST).
	TenantUpdateMode        string `mapstructure:"tenant_update_mode"`
	GatewayTimeoutSeconds   int    `mapstructure:"gateway_timeout_seconds"`
	ConsoleFrontendOrigin   string `mapstructure:"console_frontend_origin"`
	CallLogRetentionEntries int    `mapstructure:"call_log_retention_entries"`
}
