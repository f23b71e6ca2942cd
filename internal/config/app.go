package config

type AppConfig struct {
	Gateway GatewayConfig
	Log     LogConfig
}

func LoadApp() (AppConfig, error) {
	logCfg, err := LoadLog()
	if err != nil {
		return AppConfig{}, err
	}
	gatewayCfg, err := LoadGateway()
	if err != nil {
		return AppConfig{}, err
	}
	return AppConfig{
		Gateway: gatewayCfg,
		Log:     logCfg,
	}, nil
}
