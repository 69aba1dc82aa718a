// Package imagemeta décrit le contrat du dictionnaire de métadonnées image
// dans lequel la chaîne XML des canaux est embarquée.
//
// The metadata dictionary of an image carries the following keys:
//   - "unit": physical units of the image origin and spacing.
//   - "times": acquisition timestamp of the image.
//   - "imaris_channels_information": XML string with the per-channel
//     display information, see the imarisxml package.
package imagemeta

import (
	"fmt"
	"strings"
	"time"
)

// Metadata dictionary keys.
const (
	KeyUnit                = "unit"
	KeyTimes               = "times"
	KeyChannelsInformation = "imaris_channels_information"
)

// TimeLayout est le format du champ "times" :
// année-mois-jour heure:minute:seconde.microseconde.
const TimeLayout = "2006-01-02 15:04:05.000000"

// ParseTime analyse la valeur du champ "times". La partie fractionnaire des
// secondes est tolérée absente ou tronquée.
func ParseTime(value string) (time.Time, error) {
	layouts := []string{
		TimeLayout,
		"2006-01-02 15:04:05.999999", // fraction partielle
		"2006-01-02 15:04:05",        // pas de fraction
	}

	value = strings.TrimSpace(value)
	for _, layout := range layouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("cannot parse acquisition time: %q", value)
}

// FormatTime formate un instant pour le champ "times", toujours avec six
// chiffres de fraction.
func FormatTime(t time.Time) string {
	return t.Format(TimeLayout)
}
