// Package fileio reads and writes record collections as delimited text,
// msgpack binary, XML and JSON files.
//
// Every entity is stored under a fixed file name, <entityPlural>.<ext>, in a
// directory chosen by the caller. Only the text reader validates fields,
// through the records' own setters; the other formats are trusted and restore
// records directly. Any failure is returned as a *FileError and no partial
// collection is ever returned.
package fileio

import (
	"fmt"
	"path/filepath"
)

// Format identifies a file format by its extension.
type Format string

const (
	FormatText       Format = "csv"
	FormatSerialized Format = "ser"
	FormatXML        Format = "xml"
	FormatJSON       Format = "json"
)

// Formats lists the file formats in the order Save Data writes them.
var Formats = []Format{FormatSerialized, FormatText, FormatXML, FormatJSON}

// ParseFormat maps an extension to a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatText, FormatSerialized, FormatXML, FormatJSON:
		return f, nil
	}
	return "", fmt.Errorf("unknown file format %q", s)
}

// Base file names per entity.
const (
	StockQuotesFile         = "stockquotes"
	BrokersFile             = "brokers"
	InvestorsFile           = "investors"
	InvestmentCompaniesFile = "investmentcompanies"
)

// DateFormat is the layout of date fields in text files.
const DateFormat = "2006-01-02"

// Path returns the location of an entity file inside dir.
func Path(dir, base string, format Format) string {
	return filepath.Join(dir, base+"."+string(format))
}
