package kv

// Config holds the configuration for the state store connection.
type Config struct {
	NATSURL        string `json:"nats_url"`
	Bucket         string `json:"bucket,omitempty"`           // KV bucket name
	Table          string `json:"table,omitempty"`            // key prefix scoping this daemon's records
	BucketMaxBytes int64  `json:"bucket_max_bytes,omitempty"` // Hard cap for bucket size (bytes)
	BucketHistory  uint32 `json:"bucket_history,omitempty"`   // History depth per key
}

// Validate ensures the configuration is valid and applies defaults.
func (c *Config) Validate() error {
	if c.NATSURL == "" {
		return errNatsURLRequired
	}

	c.setDefaults()

	return nil
}

func (c *Config) setDefaults() {
	if c.Bucket == "" {
		c.Bucket = "hwinv"
	}

	if c.Table == "" {
		c.Table = "chassis"
	}

	if c.BucketHistory == 0 {
		c.BucketHistory = 1
	}

	if c.BucketMaxBytes < 0 {
		c.BucketMaxBytes = 0
	}
}
