package domain

import "strings"

// GeneName is one line of the input gene list. It is opaque: no case folding,
// no uniqueness.
type GeneName string

// Accession identifies a record in the remote database (gene, unit or promoter).
// It may be bare ("EG11345") or organism-qualified ("ECOLI:EG11345").
type Accession string

// Qualified prefixes a bare accession with the organism id.
func (a Accession) Qualified(org string) Accession {
	if org == "" || strings.Contains(string(a), ":") {
		return a
	}
	return Accession(org + ":" + string(a))
}

// UnitLabel is the "unit genes" label of a transcription unit.
// When the unit carries no common name, the input gene name stands in for it.
type UnitLabel struct {
	Text    string
	Present bool
}

// LabelOf builds a UnitLabel from an optional common-name value.
func LabelOf(commonName *string) UnitLabel {
	if commonName == nil {
		return UnitLabel{}
	}
	text := strings.TrimSpace(*commonName)
	if text == "" {
		return UnitLabel{}
	}
	return UnitLabel{Text: text, Present: true}
}

// Or returns the label text, or the fallback gene name when absent.
func (l UnitLabel) Or(fallback GeneName) string {
	if l.Present {
		return l.Text
	}
	return string(fallback)
}

// NameState says how a promoter's common name can be obtained.
type NameState int

const (
	// NameAbsent: no inline name and nothing to dereference.
	NameAbsent NameState = iota
	// NamePresent: the common name is inline.
	NamePresent
	// NameDereference: the promoter is a reference to another object.
	NameDereference
)

func (s NameState) String() string {
	switch s {
	case NamePresent:
		return "present"
	case NameDereference:
		return "dereference"
	default:
		return "absent"
	}
}

// PromoterName is Present(text) | AbsentDereference(ref) | Absent.
type PromoterName struct {
	State NameState
	Text  string
	Ref   Accession
}

// RefAttrs are the attributes that tell a reference element from a full one.
// Full elements carry their own frameid too, so frameid alone is not a reference.
type RefAttrs struct {
	FrameID  string
	Resource string
	Class    string
	Detail   string
}

// IsReference reports whether the element points at another object: it has a
// resource attribute, or is class="true" without a detail level.
func (a RefAttrs) IsReference() bool {
	if strings.TrimSpace(a.Resource) != "" {
		return true
	}
	return strings.EqualFold(strings.TrimSpace(a.Class), "true") && strings.TrimSpace(a.Detail) == ""
}

// Target is the object a reference points at. frameid wins because it needs no parsing.
func (a RefAttrs) Target() Accession {
	if id := strings.TrimSpace(a.FrameID); id != "" {
		return Accession(id)
	}
	return RefFromResource(a.Resource)
}

// PromoterNameOf decides the name state from the fields a promoter element carries.
func PromoterNameOf(commonName *string, attrs RefAttrs) PromoterName {
	if commonName != nil {
		if text := strings.TrimSpace(*commonName); text != "" {
			return PromoterName{State: NamePresent, Text: text}
		}
	}
	if attrs.IsReference() {
		if ref := attrs.Target(); ref != "" {
			return PromoterName{State: NameDereference, Ref: ref}
		}
	}
	return PromoterName{State: NameAbsent}
}

// RefFromResource extracts the secondary identifier from a resource attribute.
// Accepted shapes: "#PM00123", "getxml?ECOLI:PM00123", "ECOLI:PM00123", "PM00123".
// The organism prefix is kept; callers qualify bare ids themselves.
func RefFromResource(resource string) Accession {
	r := strings.TrimSpace(resource)
	if i := strings.LastIndex(r, "#"); i >= 0 {
		r = r[i+1:]
	}
	if i := strings.LastIndex(r, "?"); i >= 0 {
		r = r[i+1:]
	}
	return Accession(strings.TrimSpace(r))
}

// Promoter is a promoter element as returned by the remote service.
type Promoter struct {
	ID   Accession
	Name PromoterName
}

// TranscriptionUnit is a group of genes transcribed together.
// Promoters holds promoter elements embedded in the unit itself, if any.
type TranscriptionUnit struct {
	ID        Accession
	Label     UnitLabel
	Promoters []Promoter
}

// GeneHit is the result of a gene search.
type GeneHit struct {
	Accession Accession
	Found     bool
}
