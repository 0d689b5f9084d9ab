package typeset

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// archive holds the parts of a Word archive the pipeline consumes.
type archive struct {
	document      []byte
	relationships map[string]string
	media         map[string][]byte
}

// relationshipsXML mirrors the document relationship part.
type relationshipsXML struct {
	Relationships []struct {
		ID     string `xml:"Id,attr"`
		Target string `xml:"Target,attr"`
	} `xml:"Relationship"`
}

// openArchive unwraps a .docx file: the main document markup, its
// relationship table, and all embedded media parts. Media keys match the
// relationship targets, relative to the word/ directory.
func openArchive(path string) (*archive, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("read archive: %w", err)
	}
	defer zr.Close()

	arch := &archive{
		relationships: make(map[string]string),
		media:         make(map[string][]byte),
	}

	for _, f := range zr.File {
		switch {
		case f.Name == "word/document.xml":
			arch.document, err = readPart(f)
			if err != nil {
				return nil, err
			}

		case f.Name == "word/_rels/document.xml.rels":
			data, err := readPart(f)
			if err != nil {
				return nil, err
			}
			var rels relationshipsXML
			if err := xml.Unmarshal(data, &rels); err != nil {
				return nil, fmt.Errorf("parse relationships: %w", err)
			}
			for _, r := range rels.Relationships {
				arch.relationships[r.ID] = r.Target
			}

		case strings.HasPrefix(f.Name, "word/media/"):
			data, err := readPart(f)
			if err != nil {
				return nil, err
			}
			arch.media[strings.TrimPrefix(f.Name, "word/")] = data
		}
	}

	if len(arch.document) == 0 {
		return nil, fmt.Errorf("archive has no word/document.xml part")
	}
	return arch, nil
}

func readPart(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("open part %s: %w", f.Name, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("read part %s: %w", f.Name, err)
	}
	return data, nil
}
