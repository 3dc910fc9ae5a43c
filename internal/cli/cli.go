// Package cli implements the fnq command: it decodes a document, applies
// one of the arr helpers to it and writes the result as JSON.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/hasbyte1/go-fn-utils/internal/config"
	"github.com/hasbyte1/go-fn-utils/internal/document"
	"github.com/hasbyte1/go-fn-utils/internal/logger"
)

// Exit codes.
const (
	ExitOK       = 0
	ExitNotFound = 1
	ExitError    = 2
)

// Run executes fnq with os-style args and returns the process exit code.
func Run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := config.Parse(args)
	if err != nil {
		if errors.Is(err, config.ErrHelp) {
			fmt.Fprintln(stdout, config.Usage())
			return ExitOK
		}
		fmt.Fprintf(stderr, "Error: %v\n\n%s\n", err, config.Usage())
		return ExitError
	}

	log := logger.New(cfg.Log, stderr).With().
		Str(logger.FieldComponent, "fnq").
		Str(logger.FieldOperation, cfg.Op).
		Logger()

	result, err := execute(cfg, stdin, log)
	if errors.Is(err, errNotFound) {
		log.Warn().Msg(err.Error())
		return ExitNotFound
	}
	if err != nil {
		log.Error().Err(err).Msg("operation failed")
		return ExitError
	}

	if err := writeJSON(stdout, result, cfg.Pretty); err != nil {
		log.Error().Err(err).Msg("write output")
		return ExitError
	}
	return ExitOK
}

func execute(cfg *config.Config, stdin io.Reader, log zerolog.Logger) (any, error) {
	// find reports the first matching member in document order.
	ordered := cfg.Op == config.OpFind
	doc, err := load(cfg.Input, cfg.Format, stdin, ordered)
	if err != nil {
		return nil, err
	}
	log.Debug().Str(logger.FieldInput, inputName(cfg.Input)).Msg("decoded document")

	e, err := newExecutor(cfg)
	if err != nil {
		return nil, err
	}
	return e.run(doc, func() (any, error) {
		other, err := load(cfg.Other, cfg.Format, nil, false)
		if err == nil {
			log.Debug().Str(logger.FieldInput, cfg.Other).Msg("decoded second document")
		}
		return other, err
	})
}

// load decodes name, or stdin when name is empty or "-". With ordered set,
// objects decode as *document.Object.
func load(name, format string, stdin io.Reader, ordered bool) (any, error) {
	f, err := document.ParseFormat(format)
	if err != nil {
		return nil, err
	}
	if name == "" || name == "-" {
		if stdin == nil {
			return nil, errors.New("stdin is not available for this input")
		}
		return decode(stdin, f, ordered)
	}
	if f == document.FormatAuto {
		f = document.DetectFormat(name)
	}
	file, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer file.Close()
	return decode(file, f, ordered)
}

func decode(r io.Reader, f document.Format, ordered bool) (any, error) {
	if ordered {
		return document.DecodeOrdered(r, f)
	}
	return document.Decode(r, f)
}

func inputName(name string) string {
	if name == "" || name == "-" {
		return "stdin"
	}
	return name
}

func writeJSON(w io.Writer, v any, pretty bool) error {
	var (
		b   []byte
		err error
	)
	if pretty {
		b, err = json.MarshalIndent(v, "", "  ")
	} else {
		b, err = json.Marshal(v)
	}
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	b = append(b, '\n')
	_, err = w.Write(b)
	return err
}
