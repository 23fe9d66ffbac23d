package cmd

// Config carries all runtime settings. Values come from the environment;
// see cmd/app/main.go for the variable names.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// KafkaHost is the broker address. Empty disables event publishing.
	KafkaHost string

	// PushGatewayURL is the push gateway endpoint. Empty disables push
	// delivery; notifications are still persisted.
	PushGatewayURL    string
	PushGatewayAPIKey string
}
