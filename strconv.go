package f32

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"unicode"

	mu "github.com/avdva/f32/internal/mathutil"
)

const (
	fieldDelim = '|'
)

var (
	errEmptyInput = errors.New("empty input")
)

type posError struct {
	pos int
	err string
}

func newPosError(err string, pos int) *posError {
	return &posError{err: err, pos: pos}
}

func (pe posError) Error() string {
	return pe.err + fmt.Sprintf(" at pos %d", pe.pos)
}

func addPosErrorOffset(err error, offset int) error {
	var pe *posError
	if !errors.As(err, &pe) { // try to locate error position.
		return err
	}
	pe.pos += offset
	return pe
}

// prepareString cleans the string from " symbols and spaces.
func prepareString(s string) (prepared string, offset int) {
	if len(s) > 0 && s[0] == '"' {
		s = s[1:]
		offset++
	}
	if len(s) > 0 && s[len(s)-1] == '"' {
		s = s[:len(s)-1]
	}
	if trimmed := strings.TrimLeftFunc(s, unicode.IsSpace); len(trimmed) != len(s) {
		offset += len(s) - len(trimmed)
		s = trimmed
	}
	return strings.TrimRightFunc(s, unicode.IsSpace), offset
}

// ParseFields parses the binary form produced by Fields.String,
// like "0|10000101|01011111011110101110001".
// The '|' delimiters are optional, but if present, they must separate the fields.
func ParseFields(s string) (Fields, error) {
	s, offset := prepareString(s)
	if len(s) == 0 {
		return Fields{}, errEmptyInput
	}
	fields, err := parseFields(s)
	if err != nil {
		// add what we've trimmed before and add +1 to the offset to start indices from 1.
		return Fields{}, fmt.Errorf("parsing failed: %w", addPosErrorOffset(err, offset+1))
	}
	return fields, nil
}

// MustParseFields is like ParseFields, but panics on error.
func MustParseFields(s string) Fields {
	f, err := ParseFields(s)
	if err != nil {
		panic(err)
	}
	return f
}

func parseFields(s string) (Fields, error) {
	const totalBits = signBits + expBits + mantBits
	// delimiters may only follow the sign and the exponent.
	delimAt := [...]int{signBits, signBits + expBits}
	var (
		bits   Bits
		digits int
		delims int
	)
	for i, r := range s {
		switch {
		case r == '0' || r == '1':
			if digits == totalBits {
				return Fields{}, newPosError("too many digits", i)
			}
			bits = bits<<1 | Bits(r-'0')
			digits++
		case r == fieldDelim:
			if delims == len(delimAt) || digits != delimAt[delims] {
				return Fields{}, newPosError("unexpected delimiter", i)
			}
			delims++
		default:
			return Fields{}, newPosError(fmt.Sprintf("unexpected symbol %q", r), i)
		}
	}
	if digits != totalBits {
		return Fields{}, fmt.Errorf("expected %d binary digits, got %d", totalBits, digits)
	}
	if delims != 0 && delims != len(delimAt) {
		return Fields{}, fmt.Errorf("expected %d delimiters, got %d", len(delimAt), delims)
	}
	return Extract(bits), nil
}

// ParseBits parses a raw bit pattern using Go integer literal syntax:
// 0x42afbd71, 0b0100..., 1118813553, with optional underscores.
func ParseBits(s string) (Bits, error) {
	s, _ = prepareString(s)
	if len(s) == 0 {
		return 0, errEmptyInput
	}
	u, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return 0, fmt.Errorf("parsing failed: %w", err)
	}
	return Bits(u), nil
}

// ParseFloat32 parses s as a float32 the same way strconv does.
func ParseFloat32(s string) (float32, error) {
	s, _ = prepareString(s)
	if len(s) == 0 {
		return 0, errEmptyInput
	}
	f, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return 0, fmt.Errorf("parsing failed: %w", err)
	}
	return float32(f), nil
}

func (b Bits) String() string {
	return fmt.Sprintf("%#08x", uint32(b))
}

// String returns the fields as zero-padded binary digits separated by '|'.
func (f Fields) String() string {
	var builder strings.Builder
	f.writeBinary(&builder)
	return builder.String()
}

func (f Fields) writeBinary(w io.StringWriter) {
	w.WriteString(mu.PadBinary(f.Sign, signBits))
	w.WriteString(string(fieldDelim))
	w.WriteString(mu.PadBinary(f.Exponent, expBits))
	w.WriteString(string(fieldDelim))
	w.WriteString(mu.PadBinary(f.Mantissa, mantBits))
}

// Format implements fmt.Formatter.
//   %s, %v, %b - binary fields, like 0|10000101|01011111011110101110001
//   %d         - decimal fields, like {0 133 3128689}
//   %x, %X     - packed bits, like 0x42afbd71
func (f Fields) Format(fs fmt.State, c rune) {
	switch c {
	case 'd':
		fmt.Fprintf(fs, "{%d %d %d}", f.Sign, f.Exponent, f.Mantissa)
	case 'x':
		fmt.Fprintf(fs, "%#08x", uint32(f.Bits()))
	case 'X':
		fmt.Fprintf(fs, "%#08X", uint32(f.Bits()))
	default:
		io.WriteString(fs, f.String())
	}
}

// UnmarshalJSON accepts either an object with numeric fields or a binary string.
func (f *Fields) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("empty json")
	}
	if string(data) == "null" {
		return nil
	}
	switch data[0] {
	case '{':
		type plain Fields
		var p plain
		if err := json.Unmarshal(data, &p); err != nil {
			return err
		}
		if !Fields(p).Valid() {
			return fmt.Errorf("field out of range: %d", Fields(p))
		}
		*f = Fields(p)
	default:
		fields, err := ParseFields(string(data))
		if err != nil {
			return err
		}
		*f = fields
	}
	return nil
}

// jsonFloat is a float32 that marshals +Inf, -Inf and NaN as strings,
// which encoding/json refuses to write as numbers.
type jsonFloat float32

func (f jsonFloat) MarshalJSON() ([]byte, error) {
	v := float64(f)
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return []byte(`"` + formatFloat32(float32(f)) + `"`), nil
	}
	return []byte(formatFloat32(float32(f))), nil
}

// UnmarshalJSON accepts a number or a string, like "+Inf" or "NaN".
func (f *jsonFloat) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	v, err := ParseFloat32(string(data))
	if err != nil {
		return err
	}
	*f = jsonFloat(v)
	return nil
}

type decodedJSON struct {
	Sign     jsonFloat `json:"sign"`
	Exponent jsonFloat `json:"exponent"`
	Mantissa jsonFloat `json:"mantissa"`
}

// MarshalJSON marshals the components as numbers, or as strings if they are not finite.
func (d Decoded) MarshalJSON() ([]byte, error) {
	return json.Marshal(decodedJSON{jsonFloat(d.Sign), jsonFloat(d.Exponent), jsonFloat(d.Mantissa)})
}

// UnmarshalJSON is the inverse of MarshalJSON.
func (d *Decoded) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var dj decodedJSON
	if err := json.Unmarshal(data, &dj); err != nil {
		return err
	}
	*d = Decoded{Sign: float32(dj.Sign), Exponent: float32(dj.Exponent), Mantissa: float32(dj.Mantissa)}
	return nil
}

type resultJSON struct {
	Original jsonFloat `json:"original"`
	Fields   Fields    `json:"fields"`
	Decoded  Decoded   `json:"decoded"`
	Value    jsonFloat `json:"value"`
}

// MarshalJSON marshals the result, writing non-finite values as strings.
// NaN payloads are not preserved.
func (r Result) MarshalJSON() ([]byte, error) {
	return json.Marshal(resultJSON{
		Original: jsonFloat(r.Original),
		Fields:   r.Fields,
		Decoded:  r.Decoded,
		Value:    jsonFloat(r.Value),
	})
}

// UnmarshalJSON is the inverse of MarshalJSON.
func (r *Result) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var rj resultJSON
	if err := json.Unmarshal(data, &rj); err != nil {
		return err
	}
	*r = Result{
		Original: float32(rj.Original),
		Fields:   rj.Fields,
		Decoded:  rj.Decoded,
		Value:    float32(rj.Value),
	}
	return nil
}

// formatFloat32 writes the shortest decimal that parses back to f, never in exponent form.
func formatFloat32(f float32) string {
	return strconv.FormatFloat(float64(f), 'f', -1, 32)
}

// exactText expands normal numbers exactly and falls back to the shortest form for the others.
func exactText(f float32) string {
	fields := ExtractFloat32(f)
	if !fields.IsNormal() {
		return formatFloat32(f)
	}
	return fields.Decimal().String()
}

// String returns the components as decimal numbers.
func (d Decoded) String() string {
	return fmt.Sprintf("{%s %s %s}", formatFloat32(d.Sign), formatFloat32(d.Exponent), formatFloat32(d.Mantissa))
}

// WriteReport writes a table with each field as bits and as a real number.
// If exact is set, real numbers are written as exact decimal expansions.
func WriteReport(w io.Writer, r Result, exact bool) error {
	sign, exponent, mantissa := formatFloat32(r.Decoded.Sign), formatFloat32(r.Decoded.Exponent), formatFloat32(r.Decoded.Mantissa)
	original, final := formatFloat32(r.Original), formatFloat32(r.Value)
	if exact {
		ds, de, dm := r.Fields.DecodeExact()
		sign, exponent, mantissa = ds.String(), de.String(), dm.String()
		original, final = exactText(r.Original), exactText(r.Value)
	}
	var builder strings.Builder
	fmt.Fprintf(&builder, "original: %s -> final: %s\n", original, final)
	fmt.Fprintf(&builder, "field    | %*s | as real number\n", mantBits, "as bits")
	fmt.Fprintf(&builder, "sign     | %*s | %s\n", mantBits, mu.PadBinary(r.Fields.Sign, signBits), sign)
	fmt.Fprintf(&builder, "exponent | %*s | %s\n", mantBits, mu.PadBinary(r.Fields.Exponent, expBits), exponent)
	fmt.Fprintf(&builder, "mantissa | %*s | %s\n", mantBits, mu.PadBinary(r.Fields.Mantissa, mantBits), mantissa)
	_, err := io.WriteString(w, builder.String())
	return err
}
