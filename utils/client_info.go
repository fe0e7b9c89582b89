package utils

import (
	"strings"

	ua "github.com/mileusna/useragent"
)

// ParseClientInfo extracts the client's platform and device class from
// the User-Agent header, logged on auth so support can tell which app
// build a user signed in from.
func ParseClientInfo(userAgent string) (platform, device string) {
	if userAgent == "" {
		return "Unknown", "Unknown"
	}

	parsed := ua.Parse(userAgent)

	platform = parsed.OS
	if platform == "" {
		platform = "Unknown"
	}

	device = "Desktop"
	if parsed.Mobile {
		if strings.Contains(userAgent, "iPhone") {
			device = "iPhone"
		} else {
			device = "Mobile"
		}
	} else if parsed.Tablet {
		device = "Tablet"
	}

	return platform, device
}
