package config

// NewAppConfigForTest creates an AppConfig for testing purposes
func NewAppConfigForTest(configPath string) *AppConfig {
	return &AppConfig{
		configPath: configPath,
	}
}
