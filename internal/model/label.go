package model

import "strings"

// Label is the moderation category stored on a message.
type Label string

const (
	LabelSafe      Label = "safe"
	LabelFraud     Label = "fraud"
	LabelSensitive Label = "sensitive"
	LabelSpam      Label = "spam"
	LabelOther     Label = "other"
)

// Labels lists every label, LabelOther last.
var Labels = []Label{LabelSafe, LabelFraud, LabelSensitive, LabelSpam, LabelOther}

// ParseLabel maps any stored value to a Label. Unknown, empty or differently
// cased values that do not match exactly become LabelOther.
func ParseLabel(s string) Label {
	switch Label(s) {
	case LabelFraud:
		return LabelFraud
	case LabelSensitive:
		return LabelSensitive
	case LabelSpam:
		return LabelSpam
	case LabelSafe:
		return LabelSafe
	default:
		return LabelOther
	}
}

// ParseLabelFilter is the lenient variant used for query filters.
func ParseLabelFilter(s string) (Label, bool) {
	l := Label(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Labels {
		if l == known {
			return l, true
		}
	}
	return "", false
}

func (l Label) String() string {
	return string(l)
}
