package keys

import (
	"strings"
)

const (
	// PfxSnapshot prefixes mirrored view snapshots
	PfxSnapshot = "snapshot"
	// PfxGift prefixes gift detail lookups
	PfxGift = "gift"
	// PfxMarketplace prefixes admin and analytics reads
	PfxMarketplace = "marketplace"
	// PfxHealthCheck prefixes the ledger ping
	PfxHealthCheck = "healthcheck"
)

// CustomKey is used to join the customized key by componets with specified delimiter
func CustomKey(delimiter string, components ...string) string {
	return strings.Join(components, delimiter)
}

// CacheKey joins cache key components with ":"
func CacheKey(components ...string) string {
	return CustomKey(":", components...)
}
