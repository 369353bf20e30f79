package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-nodegen"
	"github.com/goliatone/go-nodegen/internal/config"
	"github.com/goliatone/go-nodegen/internal/logger"
	"github.com/goliatone/go-nodegen/pkg/inputschema"
	"github.com/goliatone/go-nodegen/pkg/model"
	"github.com/goliatone/go-nodegen/pkg/orchestrator"
)

func newConvertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert [source]",
		Short: "Convert an input schema file, URL or actor:<id> reference",
		Example: `  nodegen convert schema.json
  nodegen convert actor:apify/web-scraper --format yaml
  nodegen convert https://example.com/INPUT_SCHEMA.json -o props.json`,
		Args: cobra.MaximumNArgs(1),
		RunE: runConvert,
	}

	flags := cmd.Flags()
	flags.StringP("source", "s", "", "input schema path, URL or actor:<id>")
	flags.StringP("format", "f", "", "output renderer (json, yaml, text)")
	flags.StringP("output", "o", "", "output file (stdout if empty)")
	flags.String("preset", "", "JSON or YAML file patching titles, descriptions and defaults before conversion")
	flags.Bool("strip-html", false, "strip HTML markup from descriptions")
	flags.Bool("humanize-labels", false, "derive labels from keys when a field has no title")
	flags.String("token", "", "actor API token (defaults to APIFY_TOKEN)")
	flags.String("api-url", "", "actor API base URL")
	return cmd
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg, log, err := loadConfig(cmd, map[string]string{
		"format":          "output.format",
		"strip-html":      "output.strip_html",
		"humanize-labels": "output.humanize_labels",
		"token":           "apify.token",
		"api-url":         "apify.base_url",
	})
	if err != nil {
		return err
	}

	raw, _ := cmd.Flags().GetString("source")
	if len(args) > 0 {
		if raw != "" {
			return fmt.Errorf("convert: pass the source as an argument or with --source, not both")
		}
		raw = args[0]
	}
	source := inputschema.ParseSource(raw)
	if source == nil {
		return fmt.Errorf("convert: invalid source %q", raw)
	}

	options, err := orchestratorOptions(cmd, cfg, log)
	if err != nil {
		return err
	}

	gen := nodegen.NewOrchestrator(options...)
	output, err := gen.Generate(cmd.Context(), orchestrator.Request{
		Source:   source,
		Renderer: cfg.Output.Format,
	})
	if err != nil {
		return err
	}

	path, _ := cmd.Flags().GetString("output")
	if path == "" {
		_, err := cmd.OutOrStdout().Write(ensureNewline(output))
		return err
	}
	if err := os.WriteFile(path, output, 0o644); err != nil {
		return fmt.Errorf("convert: write output: %w", err)
	}
	log.Info("properties written", "path", path, "format", cfg.Output.Format)
	return nil
}

func orchestratorOptions(cmd *cobra.Command, cfg *config.Config, log logger.Logger) ([]orchestrator.Option, error) {
	loader := nodegen.NewLoader(
		inputschema.WithHTTPFallback(cfg.Apify.Timeout),
		inputschema.WithActorAPI(cfg.Apify.BaseURL, cfg.Apify.Token),
		inputschema.WithRetries(cfg.Apify.RetryCount, cfg.Apify.RetryWait),
	)

	converterOptions := []model.ConverterOption{model.WithLogger(log)}
	if cfg.Output.StripHTML {
		converterOptions = append(converterOptions, model.WithStrippedHTML())
	}
	if cfg.Output.HumanizeLabels {
		converterOptions = append(converterOptions, model.WithHumanizedLabels())
	}

	options := []orchestrator.Option{
		orchestrator.WithLoader(loader),
		orchestrator.WithConverter(nodegen.NewConverter(converterOptions...)),
		orchestrator.WithLogger(log),
	}

	preset, _ := cmd.Flags().GetString("preset")
	if preset != "" {
		data, err := os.ReadFile(preset)
		if err != nil {
			return nil, fmt.Errorf("convert: read preset: %w", err)
		}
		transformer, err := orchestrator.NewPresetTransformer(data)
		if err != nil {
			return nil, err
		}
		options = append(options, orchestrator.WithSchemaTransformer(transformer))
	}
	return options, nil
}

func ensureNewline(b []byte) []byte {
	if len(b) == 0 || b[len(b)-1] == '\n' {
		return b
	}
	return append(b, '\n')
}
