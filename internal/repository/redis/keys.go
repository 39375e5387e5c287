package redis

import (
	"fmt"
	"time"

	"github.com/kirinyoku/adslot-go/internal/domain"
)

const ns = "adslot:v1"

// KeyZoneVersion holds a counter bumped on every committed change to the zone's occupancy.
func KeyZoneVersion(zone domain.Zone) string {
	return fmt.Sprintf("%s:zone:%s:ver", ns, zone)
}

func KeyZoneAvailability(zone domain.Zone, version int64, from, to time.Time) string {
	return fmt.Sprintf("%s:zone:%s:v%d:avail:%s:%s",
		ns, zone, version, domain.FormatDate(from), domain.FormatDate(to))
}

func KeyIdemCheckout(idemKey string) string {
	return fmt.Sprintf("%s:idem:checkout:%s", ns, idemKey)
}

// KeyRateLimit holds the recent hits of one client against one endpoint family.
func KeyRateLimit(scope, client string) string {
	return fmt.Sprintf("%s:hits:%s:%s", ns, scope, client)
}

func ChannelZonesChanged() string {
	return ns + ":zones:changed"
}
