// Package sizex provides a byte-size value type with human-friendly parsing
// and formatting ("64MB", "4 GiB"), usable directly in config structs.
package sizex

import (
	"github.com/Abraxas-365/corekit/pkg/errx"
	"github.com/dustin/go-humanize"
	"gopkg.in/yaml.v3"
)

// Size is a number of bytes.
type Size uint64

// Common sizes.
const (
	KB Size = 1000
	MB      = 1000 * KB
	GB      = 1000 * MB
	TB      = 1000 * GB

	KiB Size = 1024
	MiB      = 1024 * KiB
	GiB      = 1024 * MiB
	TiB      = 1024 * GiB
)

// Parse parses a human-readable byte size. Both SI ("64MB") and binary
// ("4 GiB") prefixes are accepted; a bare number means bytes.
func Parse(s string) (Size, error) {
	n, err := humanize.ParseBytes(s)
	if err != nil {
		return 0, errx.Wrapf(err, errx.TypeValidation, "sizex: cannot parse %q", s)
	}
	return Size(n), nil
}

// MustParse is Parse for sizes known at compile time; a bad literal panics.
func MustParse(s string) Size {
	return errx.MustCall(func() (Size, error) { return Parse(s) })
}

// Bytes returns the size as a plain uint64.
func (s Size) Bytes() uint64 { return uint64(s) }

// Int64 returns the size as an int64, saturating at the maximum.
func (s Size) Int64() int64 {
	if uint64(s) > uint64(1<<63-1) {
		return 1<<63 - 1
	}
	return int64(s)
}

// String renders the size with binary prefixes ("4 GiB").
func (s Size) String() string {
	return humanize.IBytes(uint64(s))
}

// SI renders the size with SI prefixes ("4.3 GB").
func (s Size) SI() string {
	return humanize.Bytes(uint64(s))
}

// MarshalText implements encoding.TextMarshaler.
func (s Size) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Size) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler; yaml.v3 does not consult
// TextUnmarshaler on its own.
func (s *Size) UnmarshalYAML(node *yaml.Node) error {
	return s.UnmarshalText([]byte(node.Value))
}

// MarshalYAML implements yaml.Marshaler.
func (s Size) MarshalYAML() (interface{}, error) {
	return s.String(), nil
}
