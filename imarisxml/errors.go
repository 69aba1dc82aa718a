package imarisxml

import "fmt"

// MissingFieldError signale qu'un élément enfant obligatoire est absent d'un
// élément <channel> lors de la désérialisation.
type MissingFieldError struct {
	Field   string // name of the missing child element
	Channel int    // zero-based index of the channel in document order
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("channel %d: missing required field <%s>", e.Channel, e.Field)
}

// MalformedValueError signale qu'un texte numérique n'a pas pu être analysé.
type MalformedValueError struct {
	Field string // field whose text failed to parse
	Raw   string // offending raw text
}

func (e *MalformedValueError) Error() string {
	return fmt.Sprintf("field <%s>: malformed numeric value %q", e.Field, e.Raw)
}

// InvalidRecordError signale qu'un ChannelInfo ne peut pas être sérialisé,
// typiquement parce que Color et ColorTable sont tous deux présents ou tous
// deux absents.
type InvalidRecordError struct {
	Index  int // zero-based index of the record in the input list
	Reason string
}

func (e *InvalidRecordError) Error() string {
	return fmt.Sprintf("channel record %d: %s", e.Index, e.Reason)
}
