package service

import (
	"fmt"
	"strconv"

	"saheli/internal/domain"
)

const mapLinkPrefix = "https://www.google.com/maps?q="

const alertTemplate = "🚨 EMERGENCY! %s needs help!\n\nLocation: %s\n\nPlease respond immediately. This is an automated SOS."

// ComposeAlert builds the alert message for one activation. Pure: any name
// and finite-valued location is acceptable input.
func ComposeAlert(name string, loc domain.Location) domain.SOSMessage {
	link := MapLink(loc)
	return domain.SOSMessage{
		Body:    fmt.Sprintf(alertTemplate, name, link),
		MapLink: link,
	}
}

// MapLink renders coordinates verbatim, no rounding.
func MapLink(loc domain.Location) string {
	return mapLinkPrefix +
		strconv.FormatFloat(loc.Lat, 'f', -1, 64) + "," +
		strconv.FormatFloat(loc.Lng, 'f', -1, 64)
}
