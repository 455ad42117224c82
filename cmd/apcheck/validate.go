package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"

	"github.com/c360studio/apcheck/config"
	"github.com/c360studio/apcheck/fault"
	"github.com/c360studio/apcheck/fetch"
	"github.com/c360studio/apcheck/narrative"
	"github.com/c360studio/apcheck/output"
	"github.com/c360studio/apcheck/validate"
)

func validateCmd() *cobra.Command {
	var (
		configPath string
		format     string
		profile    string
		lang       string
		severity   string
		reify      bool
	)

	cmd := &cobra.Command{
		Use:   "validate [file|glob|url|-]...",
		Short: "Validate documents and report faults",
		Long: `Validate reads ActivityStreams documents from files, doublestar
globs, http(s) URLs or standard input ("-") and reports every fault
found. The exit status is non-zero when any document carries a fault at
or above the rejection severity.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("format") {
				cfg.Output.Format = format
			}
			if cmd.Flags().Changed("language") {
				cfg.Narrative.Language = lang
			}
			if cmd.Flags().Changed("severity") {
				cfg.Validation.RejectSeverity = severity
			}
			if cmd.Flags().Changed("reify") {
				cfg.Validation.ReifyRefs = reify
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			return runValidate(cmd.Context(), cfg, profile, args)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Config file path (YAML)")
	cmd.Flags().StringVarP(&format, "format", "f", "table", "Output format (table, json, ndjson, html)")
	cmd.Flags().StringVarP(&profile, "profile", "p", "object", "Validation profile (object, persistent, actor, activity, link, collection)")
	cmd.Flags().StringVarP(&lang, "language", "l", "", "Narrative language tag (e.g. en, es)")
	cmd.Flags().StringVarP(&severity, "severity", "s", "", "Rejection severity (info, minor, should, must, critical)")
	cmd.Flags().BoolVar(&reify, "reify", false, "Fetch and recursively validate references")

	return cmd
}

func runValidate(ctx context.Context, cfg *config.Config, profile string, args []string) error {
	engine, err := buildEngine(cfg)
	if err != nil {
		return err
	}

	var reports []output.Report
	for _, arg := range args {
		docs, err := readInputs(ctx, engine, arg)
		if err != nil {
			return err
		}
		for _, in := range docs {
			faults, err := profileFaults(ctx, engine.validator, profile, in.doc)
			if err != nil {
				return err
			}
			reports = append(reports, output.NewReport(in.source, faults))
		}
	}

	renderer, err := output.New(cfg.Output.Format)
	if err != nil {
		return err
	}
	if err := renderer.Render(os.Stdout, reports); err != nil {
		return err
	}

	threshold := cfg.RejectSeverity()
	rejected := 0
	for _, report := range reports {
		if len(fault.FilterBySeverity(report.Faults, threshold)) > 0 {
			rejected++
		}
	}
	if rejected > 0 {
		return fmt.Errorf("%d of %d documents failed validation", rejected, len(reports))
	}
	return nil
}

// engine bundles the pieces a validation run needs.
type engine struct {
	validator *validate.Validator
	fetcher   *fetch.Client
	catalog   *narrative.Catalog
}

func buildEngine(cfg *config.Config) (*engine, error) {
	catalog, err := narrative.Load()
	if err != nil {
		return nil, err
	}
	if cfg.Narrative.OverrideDir != "" {
		if err := catalog.ApplyOverrides(cfg.Narrative.OverrideDir); err != nil {
			return nil, err
		}
	}

	client := fetch.NewClient(fetch.Options{
		Timeout:   cfg.Fetch.Timeout,
		UserAgent: cfg.Fetch.UserAgent,
		Logger:    slog.Default(),
	})

	v := validate.New(validate.Config{
		ReifyRefs:      cfg.Validation.ReifyRefs,
		RejectSeverity: cfg.RejectSeverity(),
		MaxDepth:       cfg.Validation.MaxDepth,
		Narrative:      catalog.LookupLanguage(cfg.Narrative.Language),
		Fetcher:        client,
		Logger:         slog.Default(),
	})

	return &engine{validator: v, fetcher: client, catalog: catalog}, nil
}

// input is one document resolved from a command-line argument.
type input struct {
	source string
	doc    any
}

// readInputs resolves one argument into documents: standard input,
// a remote object, or one or more local files via doublestar globs.
func readInputs(ctx context.Context, e *engine, arg string) ([]input, error) {
	switch {
	case arg == "-":
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		doc, err := parseDocument(data)
		if err != nil {
			return nil, fmt.Errorf("stdin: %w", err)
		}
		return []input{{source: "-", doc: doc}}, nil

	case strings.HasPrefix(arg, "http://") || strings.HasPrefix(arg, "https://"):
		doc, err := e.fetcher.Object(ctx, arg)
		if err != nil {
			return nil, fmt.Errorf("fetch %s: %w", arg, err)
		}
		return []input{{source: arg, doc: map[string]any(doc)}}, nil

	default:
		paths := []string{arg}
		if strings.ContainsAny(arg, "*?[{") {
			matches, err := doublestar.FilepathGlob(arg)
			if err != nil {
				return nil, fmt.Errorf("bad glob %q: %w", arg, err)
			}
			if len(matches) == 0 {
				return nil, fmt.Errorf("no files match %q", arg)
			}
			paths = matches
		}

		inputs := make([]input, 0, len(paths))
		for _, path := range paths {
			data, err := os.ReadFile(path)
			if err != nil {
				return nil, fmt.Errorf("read %s: %w", path, err)
			}
			doc, err := parseDocument(data)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", path, err)
			}
			inputs = append(inputs, input{source: path, doc: doc})
		}
		return inputs, nil
	}
}

func parseDocument(data []byte) (any, error) {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("not valid JSON: %w", err)
	}
	return doc, nil
}

// profileFaults dispatches to the validator named by profile.
func profileFaults(ctx context.Context, v *validate.Validator, profile string, doc any) ([]fault.Fault, error) {
	switch profile {
	case "object":
		return v.ObjectFaults(doc), nil
	case "persistent":
		return v.PersistentObjectFaults(doc), nil
	case "actor":
		return v.ActorFaults(doc), nil
	case "activity":
		return v.ActivityFaults(ctx, doc), nil
	case "link":
		return v.LinkFaults(doc), nil
	case "collection":
		return v.CollectionFaults(ctx, doc), nil
	default:
		return nil, fmt.Errorf("unknown validation profile: %q", profile)
	}
}
