package imarisxml

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/beevik/etree"
	log "github.com/sirupsen/logrus"

	"gargoton.petite-maison-orange.fr/eric/imarismeta/imarislog"
)

// XMLToChannelList convertit la représentation XML des informations de
// canaux en une liste de ChannelInfo, dans l'ordre du document.
//
// The root element is expected to hold zero or more <channel> children.
// A channel missing one of its required children (<name>, <description>,
// <range>, <alpha>) aborts the whole call with a MissingFieldError; numeric
// text that does not parse aborts with a MalformedValueError. There is no
// partial-result mode.
func XMLToChannelList(xmlStr string) ([]ChannelInfo, error) {
	if log.IsLevelEnabled(log.DebugLevel) {
		log.Debugf("🐞 Parsing channels information XML:\n%s", imarislog.PrettyPrintXML(xmlStr))
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromString(xmlStr); err != nil {
		return nil, fmt.Errorf("failed to parse channels information XML: %v", err)
	}

	root := doc.Root()
	if root == nil {
		return nil, fmt.Errorf("channels information XML has no root element")
	}

	var channels []ChannelInfo
	for i, channelElem := range root.SelectElements("channel") {
		var info ChannelInfo

		name := channelElem.SelectElement("name")
		if name == nil {
			return nil, &MissingFieldError{Field: "name", Channel: i}
		}
		info.Name = name.Text()

		description := channelElem.SelectElement("description")
		if description == nil {
			return nil, &MissingFieldError{Field: "description", Channel: i}
		}
		info.Description = description.Text()

		// Certains fichiers n'ont ni color ni color_table : ce n'est pas
		// une erreur, le canal reste simplement sans couleur.
		if color := channelElem.SelectElement("color"); color != nil {
			values, err := parseNumberList("color", color.Text())
			if err != nil {
				return nil, err
			}
			info.Color = normalizeComponents(values)
		} else if table := channelElem.SelectElement("color_table"); table != nil {
			values, err := parseNumberList("color_table", table.Text())
			if err != nil {
				return nil, err
			}
			info.ColorTable = normalizeComponents(values)
		}

		rangeElem := channelElem.SelectElement("range")
		if rangeElem == nil {
			return nil, &MissingFieldError{Field: "range", Channel: i}
		}
		bounds, err := parseNumberList("range", rangeElem.Text())
		if err != nil {
			return nil, err
		}
		if len(bounds) != 2 {
			return nil, &MalformedValueError{Field: "range", Raw: rangeElem.Text()}
		}
		info.Range = [2]float64{bounds[0], bounds[1]}

		// Gamma est optionnel. Un élément <gamma> vide compte comme absent.
		if gamma := channelElem.SelectElement("gamma"); gamma != nil {
			if text := strings.TrimSpace(gamma.Text()); text != "" {
				value, err := strconv.ParseFloat(text, 64)
				if err != nil {
					return nil, &MalformedValueError{Field: "gamma", Raw: gamma.Text()}
				}
				info.Gamma = &value
			}
		}

		alpha := channelElem.SelectElement("alpha")
		if alpha == nil {
			return nil, &MissingFieldError{Field: "alpha", Channel: i}
		}
		value, err := strconv.ParseFloat(strings.TrimSpace(alpha.Text()), 64)
		if err != nil {
			return nil, &MalformedValueError{Field: "alpha", Raw: alpha.Text()}
		}
		info.Alpha = value

		channels = append(channels, info)
	}

	log.Debugf("🐞 Parsed %d channels from XML", len(channels))
	return channels, nil
}

// parseNumberList analyse une liste de nombres séparés par des virgules
// et/ou des espaces, dans n'importe quelle combinaison.
func parseNumberList(field, text string) ([]float64, error) {
	parts := strings.Fields(strings.ReplaceAll(text, ",", " "))
	values := make([]float64, 0, len(parts))
	for _, part := range parts {
		v, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, &MalformedValueError{Field: field, Raw: text}
		}
		values = append(values, v)
	}
	return values, nil
}

// normalizeComponents ramène des composantes 0-255 dans [0,1].
func normalizeComponents(values []float64) []float64 {
	normalized := make([]float64, len(values))
	for i, v := range values {
		normalized[i] = v / 255
	}
	return normalized
}
