package module

import "sensutv/internal/platform/config"

// Options holds configuration settings for the catalog module
type Options struct {
	Backend string
	Bucket  string
	Region  string
}

// FromConfig reads configuration settings from the config.Conf
func FromConfig(cfg config.Conf) Options {
	sf := cfg.Prefix("STORAGE_")
	return Options{
		Backend: sf.MayEnum("BACKEND", "file", "file", "s3"),
		Bucket:  sf.MayString("BUCKET", "sensutv-media"),
		Region:  sf.MayString("REGION", "eu-central-2"),
	}
}
