package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/avdva/f32"
)

var (
	valueStr  = flag.String("value", "87.87", "Float value to decompose")
	bitsStr   = flag.String("bits", "", "Raw bit pattern to decompose (e.g. 0x42afbd71), overrides -value")
	fieldsStr = flag.String("fields", "", "Binary fields to decompose (e.g. 0|10000101|01011111011110101110001), overrides -bits and -value")
	exact     = flag.Bool("exact", false, "Print exact decimal expansions instead of the shortest float text")
	jsonOut   = flag.Bool("json", false, "Print the result as json")
	verbose   = flag.Bool("v", false, "Enable debug logging")
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	input, err := readInput()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to parse input")
	}

	r := f32.RoundTrip(input)
	log.Debug().
		Str("bits", f32.BitsOf(input).String()).
		Uint32("sign", r.Fields.Sign).
		Uint32("exponent", r.Fields.Exponent).
		Uint32("mantissa", r.Fields.Mantissa).
		Msg("Extracted fields")
	verifyErr := verify(r)

	if err := write(os.Stdout, r); err != nil {
		log.Fatal().Err(err).Msg("Failed to write result")
	}

	if verifyErr != nil {
		log.Fatal().Err(verifyErr).Msg("Round trip failed")
	}
}

// verify warns about inputs outside the normal range and returns
// an error if the reconstructed value differs from the original.
func verify(r f32.Result) error {
	if class := r.Fields.Class(); class != f32.Normal {
		log.Warn().Stringer("class", class).Msg("Input is not a normal number, reconstruction is not guaranteed")
	}
	return r.Err()
}

func readInput() (float32, error) {
	switch {
	case *fieldsStr != "":
		fields, err := f32.ParseFields(*fieldsStr)
		if err != nil {
			return 0, fmt.Errorf("bad -fields: %w", err)
		}
		return fields.Float32(), nil
	case *bitsStr != "":
		bits, err := f32.ParseBits(*bitsStr)
		if err != nil {
			return 0, fmt.Errorf("bad -bits: %w", err)
		}
		return bits.Float32(), nil
	default:
		f, err := f32.ParseFloat32(*valueStr)
		if err != nil {
			return 0, fmt.Errorf("bad -value: %w", err)
		}
		return f, nil
	}
}

func write(w io.Writer, r f32.Result) error {
	if *jsonOut {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	}
	return f32.WriteReport(w, r, *exact)
}
