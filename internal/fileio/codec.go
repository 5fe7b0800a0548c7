package fileio

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/vmihailenco/msgpack/v5"
)

// writeFile writes through a temp file in the target directory and renames it
// into place, so a failed write leaves any previous file intact.
func writeFile(op, path string, encode func(w io.Writer) error) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return fileError(op, path, err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if err = tmp.Chmod(0o644); err != nil {
		return fileError(op, path, err)
	}

	buf := bufio.NewWriter(tmp)
	if err = encode(buf); err != nil {
		return fileError(op, path, err)
	}
	if err = buf.Flush(); err != nil {
		return fileError(op, path, err)
	}
	if err = tmp.Close(); err != nil {
		return fileError(op, path, err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fileError(op, path, err)
	}
	return nil
}

func readFile(op, path string, decode func(r io.Reader) error) error {
	f, err := os.Open(path)
	if err != nil {
		return fileError(op, path, err)
	}
	defer f.Close()

	if err := decode(bufio.NewReader(f)); err != nil {
		return fileError(op, path, err)
	}
	return nil
}

// Delimited text

func writeText[T any](path string, items []T, fields func(T) []string) error {
	return writeFile("write text", path, func(w io.Writer) error {
		cw := csv.NewWriter(w)
		for _, item := range items {
			if err := cw.Write(fields(item)); err != nil {
				return err
			}
		}
		cw.Flush()
		return cw.Error()
	})
}

// readText parses every line with parse. The first failing line aborts the
// whole read.
func readText[T any](path string, minFields int, parse func(fields []string) (T, error)) ([]T, error) {
	var out []T
	err := readFile("read text", path, func(r io.Reader) error {
		cr := csv.NewReader(r)
		cr.FieldsPerRecord = -1
		for {
			fields, err := cr.Read()
			if err == io.EOF {
				return nil
			}
			if err != nil {
				return err
			}
			line, _ := cr.FieldPos(0)
			if len(fields) < minFields {
				return fmt.Errorf("line %d: expected %d fields, got %d", line, minFields, len(fields))
			}
			item, err := parse(fields)
			if err != nil {
				return fmt.Errorf("line %d: %w", line, err)
			}
			out = append(out, item)
		}
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func parseFloat(field, s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%s %q is not a number", field, s)
	}
	return v, nil
}

func formatDate(t time.Time) string {
	return t.Format(DateFormat)
}

// parseDate treats an empty field as an absent date, which the record setters
// turn into the current time.
func parseDate(field, s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s %q is not a %s date", field, s, DateFormat)
	}
	return t, nil
}

// Opaque binary

func writeSerialized[S any](path string, snapshots []S) error {
	return writeFile("write serialized", path, func(w io.Writer) error {
		return msgpack.NewEncoder(w).Encode(snapshots)
	})
}

func readSerialized[S any](path string) ([]S, error) {
	var out []S
	err := readFile("read serialized", path, func(r io.Reader) error {
		return msgpack.NewDecoder(r).Decode(&out)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// XML

func writeXML(path string, doc interface{}) error {
	return writeFile("write xml", path, func(w io.Writer) error {
		if _, err := io.WriteString(w, xml.Header); err != nil {
			return err
		}
		enc := xml.NewEncoder(w)
		enc.Indent("", "    ")
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	})
}

func readXML(path string, doc interface{}) error {
	return readFile("read xml", path, func(r io.Reader) error {
		return xml.NewDecoder(r).Decode(doc)
	})
}

// JSON

func writeJSON[S any](path string, snapshots []S) error {
	if snapshots == nil {
		snapshots = []S{}
	}
	return writeFile("write json", path, func(w io.Writer) error {
		return json.NewEncoder(w).Encode(snapshots)
	})
}

func readJSON[S any](path string) ([]S, error) {
	var out []S
	err := readFile("read json", path, func(r io.Reader) error {
		return json.NewDecoder(r).Decode(&out)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
