// File: middleware/geo_location.go
package middleware

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net"
	"net/http"
	"strconv"
	"time"

	"soulsync/models"
	"soulsync/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// OriginKey is the gin context key holding the caller's *models.Coordinates.
const OriginKey = "geoOrigin"

// GeoLocation represents the geolocation information for an IP.
type GeoLocation struct {
	IP          string  `json:"ip"`
	City        string  `json:"city"`
	Region      string  `json:"region"`
	Country     string  `json:"country_name"`
	CountryCode string  `json:"country_code"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Timezone    string  `json:"timezone"`
}

// IPLocator resolves an IP address to a location. A nil result means unknown.
type IPLocator func(ip string, logger *zap.Logger) (*GeoLocation, error)

// DefaultIPAPIBaseURL is the public ipapi.co endpoint.
const DefaultIPAPIBaseURL = "https://ipapi.co"

// IPAPILocator resolves client IPs with ipapi.co. Results are cached in Redis
// under utils.GeoIPCachePrefix for TTL; a nil Cache disables caching.
type IPAPILocator struct {
	Cache   *redis.Client
	TTL     time.Duration
	BaseURL string
	Client  *http.Client
}

func NewIPAPILocator(cache *redis.Client, ttl time.Duration) *IPAPILocator {
	return &IPAPILocator{
		Cache:   cache,
		TTL:     ttl,
		BaseURL: DefaultIPAPIBaseURL,
		Client:  &http.Client{Timeout: 5 * time.Second},
	}
}

// isPrivateIP checks if an IP is private or loopback.
func isPrivateIP(ip string) bool {
	parsedIP := net.ParseIP(ip)
	if parsedIP == nil {
		return false
	}
	if parsedIP.IsLoopback() || parsedIP.IsPrivate() || parsedIP.IsLinkLocalUnicast() {
		return true
	}
	return false
}

// Locate implements IPLocator. Private addresses resolve to nil without a lookup.
func (l *IPAPILocator) Locate(ip string, logger *zap.Logger) (*GeoLocation, error) {
	if isPrivateIP(ip) {
		logger.Debug("Client IP is private; skipping geolocation", zap.String("ip", ip))
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if geo, ok := l.cached(ctx, ip, logger); ok {
		return geo, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/%s/json/", l.BaseURL, ip), nil)
	if err != nil {
		return nil, fmt.Errorf("build geolocation request: %w", err)
	}
	resp, err := l.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("query geolocation API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geolocation API returned status %d", resp.StatusCode)
	}

	var geo GeoLocation
	if err := json.NewDecoder(resp.Body).Decode(&geo); err != nil {
		return nil, fmt.Errorf("decode geolocation response: %w", err)
	}
	l.store(ctx, ip, &geo, logger)

	logger.Info("Geolocation retrieved from external API", zap.String("ip", ip), zap.String("city", geo.City))
	return &geo, nil
}

func (l *IPAPILocator) cached(ctx context.Context, ip string, logger *zap.Logger) (*GeoLocation, bool) {
	if l.Cache == nil {
		return nil, false
	}
	raw, err := l.Cache.Get(ctx, utils.GeoIPCachePrefix+ip).Bytes()
	if err != nil {
		if err != redis.Nil {
			logger.Warn("geolocation cache read failed", zap.Error(err))
		}
		return nil, false
	}
	var geo GeoLocation
	if err := json.Unmarshal(raw, &geo); err != nil {
		return nil, false
	}
	return &geo, true
}

func (l *IPAPILocator) store(ctx context.Context, ip string, geo *GeoLocation, logger *zap.Logger) {
	if l.Cache == nil {
		return
	}
	b, err := json.Marshal(geo)
	if err != nil {
		return
	}
	if err := l.Cache.Set(ctx, utils.GeoIPCachePrefix+ip, b, l.TTL).Err(); err != nil {
		logger.Warn("geolocation cache write failed", zap.Error(err))
	}
}

// GeolocationMiddleware determines the caller's coordinates and stores them
// under OriginKey. Explicit lat/lng query parameters win. Otherwise, when
// locate is non-nil, the client IP is resolved. When neither yields a usable
// point nothing is stored and distance filtering stays off.
func GeolocationMiddleware(locate IPLocator) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := zap.L()

		if origin, ok, err := originFromQuery(c); err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "Invalid coordinates", "details": err.Error()})
			return
		} else if ok {
			c.Set(OriginKey, origin)
			c.Next()
			return
		}

		if locate == nil {
			c.Next()
			return
		}

		clientIP := getClientIP(c)
		if clientIP == "" {
			c.Next()
			return
		}
		geo, err := locate(clientIP, logger)
		if err != nil {
			logger.Warn("Failed to get geolocation", zap.String("ip", clientIP), zap.Error(err))
		}
		if geo != nil && validCoordinates(geo.Latitude, geo.Longitude) && !(geo.Latitude == 0 && geo.Longitude == 0) {
			c.Set(OriginKey, &models.Coordinates{Lat: geo.Latitude, Lng: geo.Longitude})
		}
		c.Next()
	}
}

// OriginFrom returns the coordinates resolved for this request, if any.
func OriginFrom(c *gin.Context) *models.Coordinates {
	if v, ok := c.Get(OriginKey); ok {
		if origin, ok := v.(*models.Coordinates); ok {
			return origin
		}
	}
	return nil
}

func originFromQuery(c *gin.Context) (*models.Coordinates, bool, error) {
	latStr, lngStr := c.Query("lat"), c.Query("lng")
	if latStr == "" && lngStr == "" {
		return nil, false, nil
	}
	if latStr == "" || lngStr == "" {
		return nil, false, fmt.Errorf("lat and lng must be supplied together")
	}
	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return nil, false, fmt.Errorf("lat: %w", err)
	}
	lng, err := strconv.ParseFloat(lngStr, 64)
	if err != nil {
		return nil, false, fmt.Errorf("lng: %w", err)
	}
	if !validCoordinates(lat, lng) {
		return nil, false, fmt.Errorf("coordinates out of range")
	}
	return &models.Coordinates{Lat: lat, Lng: lng}, true, nil
}

func validCoordinates(lat, lng float64) bool {
	if math.IsNaN(lat) || math.IsNaN(lng) || math.IsInf(lat, 0) || math.IsInf(lng, 0) {
		return false
	}
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}
