package provisioning

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"
)

// SupportedLanguages are the languages Spartoo ships a provisioning file for.
var SupportedLanguages = []string{"AT", "BE", "CZ", "DE", "DK", "EN", "ES", "FI", "FR", "GR", "IT", "NL", "PL", "PT", "SE"}

// CatalogLoadError reports a provisioning file that is missing or unreadable.
type CatalogLoadError struct {
	Lang    string
	Path    string
	Missing bool
	Err     error
}

func (e *CatalogLoadError) Error() string {
	if e.Missing {
		return fmt.Sprintf("no provisionning file found for the language %s, use one of: %s",
			e.Lang, strings.Join(SupportedLanguages, ", "))
	}
	if e.Err != nil {
		return fmt.Sprintf("unable to read the provisionning file [%s]: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("unable to read the provisionning file [%s]", e.Path)
}

func (e *CatalogLoadError) Unwrap() error { return e.Err }

// ArchiveName is the file name of the packaged reference file of lang.
func ArchiveName(lang string) string {
	return strings.ToLower(lang) + "_xml_provisionning.zip"
}

func entryName(lang string) string {
	return strings.ToLower(lang) + "_xml_provisionning.xml"
}

// Load reads <lang>_xml_provisionning.zip from fsys and decodes the XML
// document packed inside it.
func Load(fsys fs.FS, lang string) (*Catalog, error) {
	path := ArchiveName(lang)

	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &CatalogLoadError{Lang: lang, Path: path, Missing: true, Err: err}
		}
		return nil, &CatalogLoadError{Lang: lang, Path: path, Err: err}
	}

	archive, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, &CatalogLoadError{Lang: lang, Path: path, Err: err}
	}

	entry, err := archive.Open(entryName(lang))
	if err != nil {
		return nil, &CatalogLoadError{Lang: lang, Path: path, Err: err}
	}
	defer entry.Close()

	catalog, err := Parse(entry, lang)
	if err != nil {
		var loadErr *CatalogLoadError
		if errors.As(err, &loadErr) {
			loadErr.Path = path
		}
		return nil, err
	}
	return catalog, nil
}

// Parse decodes a plain (unzipped) provisioning document.
func Parse(r io.Reader, lang string) (*Catalog, error) {
	var t Tables
	dec := xml.NewDecoder(r)
	if err := dec.Decode(&t); err != nil {
		return nil, &CatalogLoadError{Lang: lang, Path: entryName(lang), Err: err}
	}
	return New(lang, t), nil
}
