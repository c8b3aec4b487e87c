package biocyc

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"

	"golang.org/x/text/encoding/ianaindex"
)

// decode parses a ptools-xml document. An empty body decodes to an empty document.
func decode(body []byte) (ptoolsXML, error) {
	var doc ptoolsXML
	if len(bytes.TrimSpace(body)) == 0 {
		return doc, nil
	}

	dec := xml.NewDecoder(bytes.NewReader(body))
	dec.CharsetReader = charsetReader
	if err := dec.Decode(&doc); err != nil {
		return ptoolsXML{}, err
	}
	return doc, nil
}

// charsetReader handles non-UTF-8 declarations such as ISO-8859-1.
func charsetReader(label string, input io.Reader) (io.Reader, error) {
	enc, err := ianaindex.IANA.Encoding(label)
	if err != nil {
		return nil, fmt.Errorf("unsupported charset %q: %w", label, err)
	}
	if enc == nil {
		return nil, fmt.Errorf("unsupported charset %q", label)
	}
	return enc.NewDecoder().Reader(input), nil
}
