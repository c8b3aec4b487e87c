package biocyc

// ptoolsXML is the envelope returned by xmlquery, apixml and getxml.
// Only direct children of the root are considered; the root name is not checked.
type ptoolsXML struct {
	Genes     []xmlGene     `xml:"Gene"`
	Units     []xmlUnit     `xml:"Transcription-Unit"`
	Promoters []xmlPromoter `xml:"Promoter"`
}

type xmlGene struct {
	ID      string `xml:"ID,attr"`
	FrameID string `xml:"frameid,attr"`
	OrgID   string `xml:"orgid,attr"`
}

type xmlUnit struct {
	ID         string  `xml:"ID,attr"`
	FrameID    string  `xml:"frameid,attr"`
	CommonName *string `xml:"common-name"`

	// Promoters appear either as direct children or wrapped in component.
	Promoters          []xmlPromoter `xml:"Promoter"`
	ComponentPromoters []xmlPromoter `xml:"component>Promoter"`
}

// xmlPromoter is either a full element (detail set) or a reference to one
// (resource set, or class="true").
type xmlPromoter struct {
	ID         string  `xml:"ID,attr"`
	FrameID    string  `xml:"frameid,attr"`
	Resource   string  `xml:"resource,attr"`
	Class      string  `xml:"class,attr"`
	Detail     string  `xml:"detail,attr"`
	CommonName *string `xml:"common-name"`
}
