package module

import (
	"strconv"

	"sensutv/internal/platform/config"
)

// Options holds configuration settings for the bot module
type Options struct {
	Token      string
	PayLink    string
	AllowedIDs []int64
}

// FromConfig reads configuration settings from the config.Conf.
// The token is mandatory; a bot without credentials cannot start.
func FromConfig(cfg config.Conf) Options {
	bf := cfg.Prefix("BOT_")

	var ids []int64
	for _, raw := range bf.MayCSV("ALLOWED_IDS", nil) {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}

	return Options{
		Token:      bf.MustString("TOKEN"),
		PayLink:    bf.MayString("PAY_LINK", ""),
		AllowedIDs: ids,
	}
}
