// File: utils/constants.go
package utils

import "time"

// TherapistCacheKey holds the serialized therapist directory.
const TherapistCacheKey = "therapists:all"

// SessionContextPrefix is the prefix for per-session chat context keys.
const SessionContextPrefix = "chat:ctx:"

// GeoIPCachePrefix is the prefix for cached IP geolocation lookups.
const GeoIPCachePrefix = "geo:ip:"

// RedisPingTimeout bounds startup connectivity checks.
const RedisPingTimeout = 2 * time.Second
