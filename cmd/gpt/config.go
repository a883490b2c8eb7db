package main

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config carries the operational knobs that are environment concerns
// rather than per-run arguments: GPT_HOST, GPT_CONCURRENCY, GPT_TIMEOUT,
// GPT_USER_AGENT.
type Config struct {
	// pricing site base url
	Host string `default:"https://www.pricecharting.com"`
	// maximum in-flight fetches
	Concurrency int `default:"16"`
	// per-request timeout; a stalled fetch degrades to a missing price
	// instead of hanging the batch join
	Timeout time.Duration `default:"30s"`
	// empty picks the client's builtin browser user agent
	UserAgent string `split_words:"true"`
}

func loadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("gpt", &cfg)
	return cfg, err
}
