// SPDX-License-Identifier: EPL-2.0

package adm

import (
	"bytes"
	"encoding/xml"
	"fmt"
)

// Marshal serializes the document as the UTF-8 XML payload of an axml
// chunk.
func Marshal(doc *Document) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(xml.Header)

	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("encoding adm document: %w", err)
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// Unmarshal parses an axml payload back into a document. Used to
// verify written files round-trip.
func Unmarshal(data []byte) (*Document, error) {
	var doc Document
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding adm document: %w", err)
	}
	return &doc, nil
}
