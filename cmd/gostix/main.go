package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/Sqooba/gostix"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	sub := os.Args[1]
	switch sub {
	case "validate":
		validateCmd(os.Args[2:])
	case "convert":
		convertCmd(os.Args[2:])
	case "bundle":
		bundleCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "gostix CLI\n\nUsage:\n  gostix validate FILE...\n  gostix convert [-o OUT] [--pretty] FILE\n  gostix bundle [-o OUT] FILE...\n\nNotes:\n  - Inputs may be .json, .jsonc, .yaml/.yml, or any of those compressed as .gz.\n  - An OUT ending in .gz is written gzip-compressed.")
}

func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
}

func validateCmd(args []string) {
	fs := pflag.NewFlagSet("validate", pflag.ExitOnError)
	verbose := fs.BoolP("verbose", "v", false, "enable debug logs")
	_ = fs.Parse(args)
	files := fs.Args()
	if len(files) == 0 {
		fs.Usage()
		os.Exit(2)
	}
	log := newLogger(*verbose)
	reg := gostix.NewRegistry()

	bad := 0
	for _, path := range files {
		v, err := readDocument(path)
		if err != nil {
			log.Error().Str("file", path).Err(err).Msg("read failed")
			bad++
			continue
		}
		iss := validateValue(reg, v)
		if len(iss) == 0 {
			log.Info().Str("file", path).Msg("ok")
			continue
		}
		bad++
		for _, it := range iss {
			log.Warn().Str("file", path).Str("path", it.Path).Str("code", it.Code).Msg(it.Message)
		}
	}
	if bad > 0 {
		fatalf("%d of %d file(s) failed validation", bad, len(files))
	}
}

// validateValue decodes one top-level value. Bundle members are decoded
// individually with issue paths rooted at /objects/<i>.
func validateValue(reg *gostix.Registry, v any) gostix.Issues {
	obj, err := reg.ObjectValue(v)
	if err != nil {
		iss, ok := gostix.AsIssues(err)
		if !ok {
			iss = gostix.Issues{{Path: "/", Code: gostix.CodeParseError, Message: err.Error()}}
		}
		return iss
	}
	b, ok := obj.(gostix.Bundle)
	if !ok {
		return nil
	}
	var all gostix.Issues
	for i, member := range b.Objects {
		_, err := reg.ObjectValue(member)
		if err == nil {
			continue
		}
		iss, _ := gostix.AsIssues(err)
		for _, it := range iss {
			p := it.Path
			if p == "/" {
				p = ""
			}
			it.Path = fmt.Sprintf("/objects/%d%s", i, p)
			all = append(all, it)
		}
	}
	return all
}

func convertCmd(args []string) {
	fs := pflag.NewFlagSet("convert", pflag.ExitOnError)
	out := fs.StringP("out", "o", "", "output file (default stdout)")
	pretty := fs.Bool("pretty", false, "indent output")
	verbose := fs.BoolP("verbose", "v", false, "enable debug logs")
	_ = fs.Parse(args)
	if fs.NArg() != 1 {
		fs.Usage()
		os.Exit(2)
	}
	log := newLogger(*verbose)
	path := fs.Arg(0)

	v, err := readDocument(path)
	if err != nil {
		fatalf("reading %s: %v", path, err)
	}
	obj, err := gostix.NewRegistry().ObjectValue(v)
	if err != nil {
		reportIssues(log, path, err)
		fatalf("decoding %s failed", path)
	}
	var data []byte
	if *pretty {
		data, err = gostix.MarshalIndent(obj, "", "  ")
	} else {
		data, err = gostix.Marshal(obj)
	}
	if err != nil {
		fatalf("encoding %s: %v", path, err)
	}
	data = append(data, '\n')
	if err := writeDocument(*out, data); err != nil {
		fatalf("writing output: %v", err)
	}
	log.Debug().Str("file", path).Int("bytes", len(data)).Msg("converted")
}

func bundleCmd(args []string) {
	fs := pflag.NewFlagSet("bundle", pflag.ExitOnError)
	out := fs.StringP("out", "o", "", "output file (default stdout)")
	verbose := fs.BoolP("verbose", "v", false, "enable debug logs")
	_ = fs.Parse(args)
	files := fs.Args()
	if len(files) == 0 {
		fs.Usage()
		os.Exit(2)
	}
	log := newLogger(*verbose)
	reg := gostix.NewRegistry()

	b := gostix.NewBundle()
	for _, path := range files {
		v, err := readDocument(path)
		if err != nil {
			fatalf("reading %s: %v", path, err)
		}
		members, err := memberValues(reg, v)
		if err != nil {
			reportIssues(log, path, err)
			fatalf("decoding %s failed", path)
		}
		for _, m := range members {
			b = b.AddRaw(m)
		}
		log.Debug().Str("file", path).Int("objects", len(members)).Msg("added")
	}
	data, err := gostix.Marshal(b)
	if err != nil {
		fatalf("encoding bundle: %v", err)
	}
	data = append(data, '\n')
	if err := writeDocument(*out, data); err != nil {
		fatalf("writing output: %v", err)
	}
	log.Info().Int("objects", len(b.Objects)).Str("id", b.ID.String()).Msg("bundle written")
}

// memberValues validates v and returns the raw values to add to a fresh
// bundle. Bundles are flattened: their members join the new bundle
// directly instead of nesting.
func memberValues(reg *gostix.Registry, v any) ([]any, error) {
	obj, err := reg.ObjectValue(v)
	if err != nil {
		return nil, err
	}
	if b, ok := obj.(gostix.Bundle); ok {
		for _, member := range b.Objects {
			if _, err := reg.ObjectValue(member); err != nil {
				return nil, err
			}
		}
		return b.Objects, nil
	}
	return []any{v}, nil
}

func reportIssues(log zerolog.Logger, path string, err error) {
	iss, ok := gostix.AsIssues(err)
	if !ok {
		log.Error().Str("file", path).Err(err).Msg("decode failed")
		return
	}
	for _, it := range iss {
		log.Warn().Str("file", path).Str("path", it.Path).Str("code", it.Code).Msg(it.Message)
	}
}

func fatalf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}
