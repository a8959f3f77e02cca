package commands

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/syxpack/syx-go/pkg/log"
	"github.com/syxpack/syx-go/pkg/manufacturer"
	"github.com/syxpack/syx-go/pkg/syxerr"
	"github.com/syxpack/syx-go/pkg/sysex"
)

// MakeOptions configures RunMake.
type MakeOptions struct {
	// Manufacturer is a hex identifier ("42", "002109") or a name prefix.
	Manufacturer string
	// Payload is hex, optionally separated by spaces.
	Payload string
	Output  string
}

// ResolveManufacturer interprets arg as a hex identifier when it starts
// with a digit 0-7, and as a registry name or name prefix otherwise. A hex
// identifier starting with "00" must have six digits, any other two.
// Codes 7E and 7F are refused since they mark universal messages.
func ResolveManufacturer(reg *manufacturer.Registry, arg string) (manufacturer.Manufacturer, error) {
	m, err := resolveManufacturer(reg, arg)
	if err != nil {
		return manufacturer.Manufacturer{}, err
	}
	if err := sysex.CheckManufacturer(m); err != nil {
		return manufacturer.Manufacturer{}, err
	}
	return m, nil
}

func resolveManufacturer(reg *manufacturer.Registry, arg string) (manufacturer.Manufacturer, error) {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		return manufacturer.Manufacturer{}, syxerr.New(syxerr.KindManufacturerNotFound, "empty manufacturer")
	}

	if arg[0] < '0' || arg[0] > '7' {
		return reg.LookupByName(arg)
	}

	if strings.HasPrefix(arg, "00") {
		if len(arg) != 2*manufacturer.ExtendedLength {
			return manufacturer.Manufacturer{}, syxerr.New(syxerr.KindInvalidManufacturerLength,
				"extended manufacturer ID must have six digits, like '002109'")
		}
	} else if len(arg) != 2*manufacturer.StandardLength {
		return manufacturer.Manufacturer{}, syxerr.New(syxerr.KindInvalidManufacturerLength,
			"standard manufacturer ID must have two digits, like '42'")
	}
	return manufacturer.ParseHex(arg)
}

// ParsePayload decodes hex text. Whitespace between bytes is ignored.
// Every byte must be a 7-bit data byte.
func ParsePayload(text string) ([]byte, error) {
	payload, err := hex.DecodeString(strings.Join(strings.Fields(text), ""))
	if err != nil {
		return nil, syxerr.Wrap(syxerr.KindDecode, err, "payload")
	}
	for i, b := range payload {
		if b > 0x7F {
			return nil, syxerr.At(syxerr.KindDecode, i, "payload byte 0x%02X is not a 7-bit data byte", b)
		}
	}
	return payload, nil
}

// RunMake builds a manufacturer-specific message and writes it to opts.Output.
func RunMake(env *Env, opts MakeOptions, w io.Writer) ([]byte, error) {
	s := env.session("make")
	s.Start()

	m, err := ResolveManufacturer(env.registry(), opts.Manufacturer)
	if err != nil {
		s.Error("", "manufacturer", err)
		s.End(0)
		return nil, err
	}
	payload, err := ParsePayload(opts.Payload)
	if err != nil {
		s.Error("", "payload", err)
		s.End(0)
		return nil, err
	}

	msg, err := sysex.NewManufacturerMessage(m.Bytes(), payload)
	if err != nil {
		s.Error("", "manufacturer", err)
		s.End(0)
		return nil, err
	}
	data := sysex.Encode(msg)

	if err := os.WriteFile(opts.Output, data, 0644); err != nil {
		s.Error(opts.Output, "write", err)
		s.End(0)
		return nil, fmt.Errorf("failed to write %s: %w", opts.Output, err)
	}
	s.Message(log.DirectionOut, opts.Output, 1, data)
	env.logger().Debug("made message", "manufacturer", m.String(), "size", len(data))
	fmt.Fprintf(w, "Wrote %d bytes (%s) to %s\n", len(data), env.registry().Name(m), opts.Output)

	s.End(1)
	return data, nil
}
