package model

import "strings"

// Platform is a third-party source the dashboard aggregates.
type Platform string

const (
	PlatformTelegram  Platform = "telegram"
	PlatformWhatsApp  Platform = "whatsapp"
	PlatformYouTube   Platform = "youtube"
	PlatformInstagram Platform = "instagram"
)

// Platforms lists every supported platform in display order.
var Platforms = []Platform{PlatformTelegram, PlatformWhatsApp, PlatformYouTube, PlatformInstagram}

// ParsePlatform returns the platform for s (case-insensitive) and whether it is supported.
func ParsePlatform(s string) (Platform, bool) {
	p := Platform(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Platforms {
		if p == known {
			return p, true
		}
	}
	return "", false
}

func (p Platform) String() string {
	return string(p)
}
