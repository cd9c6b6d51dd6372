package config

// LocalConfig represents the local per-checkout configuration stored in
// .agora/config.local.json. It holds operator conveniences that should
// not be committed with the project.
type LocalConfig struct {
	Sender string `json:"sender,omitempty"`
}

// ConfigKey represents a configuration key
type ConfigKey string

const (
	ConfigKeySender ConfigKey = "sender"
)

// ValidConfigKeys returns all valid configuration keys
func ValidConfigKeys() []ConfigKey {
	return []ConfigKey{
		ConfigKeySender,
	}
}

// IsValidConfigKey checks if a key is valid
func IsValidConfigKey(key string) bool {
	for _, validKey := range ValidConfigKeys() {
		if string(validKey) == key {
			return true
		}
	}
	return false
}
