package dump

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fxamacker/cbor/v2"
)

// Format selects a record encoding
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatCBOR Format = "cbor"
)

// Formats lists the supported formats
func Formats() []Format {
	return []Format{FormatText, FormatJSON, FormatCBOR}
}

// ParseFormat resolves a format name, case-insensitively
func ParseFormat(name string) (Format, error) {
	for _, f := range Formats() {
		if strings.EqualFold(name, string(f)) {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown format %q (want text, json or cbor)", name)
}

// Encode writes records to w in the given format
func Encode(w io.Writer, records []Record, format Format) error {
	switch format {
	case FormatText:
		return encodeText(w, records)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if records == nil {
			records = []Record{}
		}
		if err := enc.Encode(records); err != nil {
			return fmt.Errorf("JSON encoding failed: %w", err)
		}
		return nil
	case FormatCBOR:
		data, err := MarshalCBOR(records)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

// MarshalCBOR produces the canonical CBOR encoding of records.
// Equal record streams always encode to identical bytes.
func MarshalCBOR(records []Record) ([]byte, error) {
	encMode, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		return nil, fmt.Errorf("failed to create CBOR encoder: %w", err)
	}

	if records == nil {
		records = []Record{}
	}
	data, err := encMode.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("CBOR encoding failed: %w", err)
	}
	return data, nil
}

// UnmarshalCBOR decodes records written by MarshalCBOR
func UnmarshalCBOR(data []byte) ([]Record, error) {
	var records []Record
	if err := cbor.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("CBOR decoding failed: %w", err)
	}
	return records, nil
}

// encodeText writes one line per record:
//
//	Int [8..14) "0x1fUL" = 31
//	Char [20..24) "'\q'" !
func encodeText(w io.Writer, records []Record) error {
	for _, r := range records {
		line := fmt.Sprintf("%s [%d..%d) %s", r.Kind, r.Start, r.End, strconv.Quote(r.Text))
		switch {
		case r.Failed:
			line += " !"
		case r.Value != "":
			line += " = " + strconv.Quote(r.Value)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
