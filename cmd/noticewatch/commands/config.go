package commands

import (
	"os"

	"noticewatch/lib/configutil"
	"noticewatch/lib/serviceutil"
)

type Config struct {
	BaseUrl     string `json:"base_url"`
	ListingPath string `json:"listing_path"`
	StorePath   string `json:"store_path"`
}

// the config file is optional, missing fields fall back to the
// college site the tool was written for
func readConfig() Config {
	cfg, err := configutil.ReadConfig[Config]("config.json5")
	if err != nil && !os.IsNotExist(err) {
		serviceutil.Fatal("failed to read config", err)
	}

	if cfg.BaseUrl == "" {
		cfg.BaseUrl = "https://siliguricollege.org.in/"
	}
	if cfg.ListingPath == "" {
		cfg.ListingPath = "news.php"
	}
	if cfg.StorePath == "" {
		cfg.StorePath = "notices.json"
	}
	return cfg
}
