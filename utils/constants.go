package utils

import "time"

// HoldKeyPrefix is the prefix used for Redis hold keys.
const HoldKeyPrefix = "hold:"

// DefaultHoldTTL applies when no TTL is configured.
const DefaultHoldTTL = 10 * time.Minute
