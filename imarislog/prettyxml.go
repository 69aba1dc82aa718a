package imarislog

import (
	"strings"

	"github.com/beevik/etree"
)

// PrettyPrintXML ré-indente un document XML pour l'affichage dans les logs.
// Si le document ne s'analyse pas, la chaîne d'origine est renvoyée telle
// quelle.
func PrettyPrintXML(raw string) string {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(raw); err != nil {
		return raw
	}
	doc.Indent(2)
	out, err := doc.WriteToString()
	if err != nil {
		return raw
	}
	return strings.TrimRight(out, "\n")
}
