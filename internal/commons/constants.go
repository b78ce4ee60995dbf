package commons

import "time"

const (
	DefaultExchangeServiceName = "currency-exchange"
	DefaultUpstreamTimeout     = 5 * time.Second
	MechanismRestTemplate      = "rest template"
	MechanismFeign             = "feign"
	LogSource                  = "currency-conversion"
	AllowedRPS                 = 10
	AllowedBurst               = 10
	ServerIdleTimeout          = time.Minute
	ServerReadTimeout          = 10 * time.Second
	ServerWriteTimeout         = 30 * time.Second
	ServerShutdownTimeout      = 10 * time.Second
	LoggerShutdownTimeout      = 5 * time.Second
	RateLimiterIdleTTL         = 3 * time.Minute
)
