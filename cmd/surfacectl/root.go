package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/reoring/surface"
	"github.com/reoring/surface/i18n"
)

// errInvalid signals that a document was read but failed validation. The
// issues were already printed.
var errInvalid = errors.New("document is invalid")

type options struct {
	lang    string
	verbose bool
	format  string // input format: auto, json, yaml, msgpack
}

func (o *options) logf(cmd *cobra.Command, format string, a ...any) {
	if o.verbose {
		fmt.Fprintf(cmd.ErrOrStderr(), format+"\n", a...)
	}
}

func newRootCmd() *cobra.Command {
	o := &options{}
	root := &cobra.Command{
		Use:           "surfacectl",
		Short:         "Inspect, validate and convert Surface UI documents",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if o.lang != "" {
				i18n.SetLanguage(o.lang)
			}
			switch o.format {
			case "auto", "json", "yaml", "msgpack":
			default:
				return fmt.Errorf("unknown --format %q (want auto, json, yaml or msgpack)", o.format)
			}
			return nil
		},
	}
	root.PersistentFlags().StringVar(&o.lang, "lang", "", "message language ("+strings.Join(i18n.Languages(), ", ")+")")
	root.PersistentFlags().BoolVarP(&o.verbose, "verbose", "v", false, "enable verbose logs")
	root.PersistentFlags().StringVarP(&o.format, "format", "f", "auto", "input format: auto, json, yaml or msgpack")

	root.AddCommand(
		newComponentsCmd(o),
		newSchemaCmd(o),
		newValidateCmd(o),
		newEnsureCmd(o),
		newFmtCmd(o),
		newQueryCmd(o),
	)
	return root
}

// readSurface loads a document from path ("-" or "" for stdin).
func (o *options) readSurface(cmd *cobra.Command, path string) (surface.Surface, error) {
	var (
		data []byte
		err  error
	)
	if path == "" || path == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
		path = "<stdin>"
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return surface.Surface{}, fmt.Errorf("read %s: %w", path, err)
	}
	format := o.format
	if format == "auto" {
		format = detectFormat(path, data)
	}
	o.logf(cmd, "read %s: %d bytes, format=%s", path, len(data), format)

	var s surface.Surface
	switch format {
	case "yaml":
		s, err = surface.DecodeYAML(data)
	case "msgpack":
		s, err = surface.DecodeMsgpack(data)
	default:
		s, err = surface.Decode(data)
	}
	if err != nil {
		if iss, ok := surface.AsIssues(err); ok {
			printIssues(cmd.ErrOrStderr(), iss)
			return surface.Surface{}, errInvalid
		}
		return surface.Surface{}, err
	}
	return s, nil
}

func detectFormat(path string, data []byte) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml"
	case ".msgpack", ".mpk":
		return "msgpack"
	case ".json":
		return "json"
	}
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		return "json"
	}
	return "yaml"
}

func printIssues(w io.Writer, iss surface.Issues) {
	for _, it := range iss {
		fmt.Fprintf(w, "%s\t%s\t%s\n", it.Path, it.Code, it.Message)
	}
}

func writeJSON(w io.Writer, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}
