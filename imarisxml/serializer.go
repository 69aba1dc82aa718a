package imarisxml

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/beevik/etree"
	log "github.com/sirupsen/logrus"
)

// ChannelListToXML convertit une liste de ChannelInfo en chaîne XML prête à
// être embarquée dans les métadonnées d'une image.
//
// Each record must carry exactly one of Color/ColorTable, otherwise the
// call aborts with an InvalidRecordError. Channels are written in input
// order; the optional gamma element is only emitted for records that
// define one.
func ChannelListToXML(channels []ChannelInfo) (string, error) {
	doc := etree.NewDocument()
	root := doc.CreateElement("imaris_channels_information")
	root.CreateComment("generated by imarismeta")

	for i, info := range channels {
		if info.HasColor() == info.HasColorTable() {
			reason := "neither color nor color_table is set"
			if info.HasColor() {
				reason = "both color and color_table are set"
			}
			return "", &InvalidRecordError{Index: i, Reason: reason}
		}

		channel := root.CreateElement("channel")
		channel.CreateElement("name").SetText(info.Name)
		channel.CreateElement("description").SetText(info.Description)

		if info.HasColor() {
			channel.CreateElement("color").SetText(formatComponents(info.Color))
		} else {
			channel.CreateElement("color_table").SetText(formatComponents(info.ColorTable))
		}

		channel.CreateElement("range").SetText(formatFloat(info.Range[0]) + ", " + formatFloat(info.Range[1]))
		channel.CreateElement("alpha").SetText(formatFloat(info.Alpha))
		if info.HasGamma() {
			channel.CreateElement("gamma").SetText(formatFloat(*info.Gamma))
		}
	}

	doc.Indent(2)

	xmlStr, err := doc.WriteToString()
	if err != nil {
		return "", fmt.Errorf("failed to serialize channels information: %v", err)
	}

	log.Debugf("🐞 Serialized %d channels to XML", len(channels))
	return xmlStr, nil
}

// formatComponents ramène des composantes normalisées [0,1] vers la forme
// entière 0-255 du XML, arrondie au plus proche (demi vers le haut).
func formatComponents(components []float64) string {
	parts := make([]string, len(components))
	for i, c := range components {
		parts[i] = strconv.Itoa(int(c*255 + 0.5))
	}
	return strings.Join(parts, ", ")
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
