package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"unicode/utf8"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/vit0-9/namegen_api/models"
	"github.com/vit0-9/namegen_api/pkg/config"
	"github.com/vit0-9/namegen_api/pkg/naming"
	"github.com/vit0-9/namegen_api/pkg/suggestions"
	"github.com/vit0-9/namegen_api/pkg/utils/domain"
)

// Version is overridden at build time via -ldflags.
var Version = "dev"

var (
	configPath string

	suggestTone  string
	suggestStyle string
	suggestModel string

	checkDescription string
	checkModel       string
)

var rootCmd = &cobra.Command{
	Use:          "namegen",
	Short:        "Domain name suggestion API",
	Long:         "namegen generates brandable domain names from a product description and checks their availability.",
	Version:      Version,
	SilenceUsage: true,
	RunE:         runServe,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE:  runServe,
}

var suggestCmd = &cobra.Command{
	Use:   "suggest <product description>",
	Short: "Generate domain name suggestions once and print them as JSON",
	Args:  cobra.ExactArgs(1),
	RunE:  runSuggest,
}

var checkCmd = &cobra.Command{
	Use:   "check <domain>",
	Short: "Check a domain and print availability and alternatives as JSON",
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to a YAML config file")

	suggestCmd.Flags().StringVar(&suggestTone, "tone", "", "Tone preference (Funny, Trendy, Minimalist, Straightforward, Edgy)")
	suggestCmd.Flags().StringVar(&suggestStyle, "style", "", "Style preference (Open to All, One word, Phrase, Two Word Combo)")
	suggestCmd.Flags().StringVar(&suggestModel, "model", "", "AI provider (gemini, deepseek)")

	checkCmd.Flags().StringVar(&checkDescription, "description", "", "Product description used to generate AI alternatives")
	checkCmd.Flags().StringVar(&checkModel, "model", "", "AI provider used for AI alternatives")

	rootCmd.AddCommand(serveCmd, suggestCmd, checkCmd)
}

func loadApp() (*App, *config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}
	setupLogger(cfg.Log)

	app, err := NewApp(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize application: %w", err)
	}
	return app, cfg, nil
}

func runServe(cmd *cobra.Command, args []string) error {
	app, cfg, err := loadApp()
	if err != nil {
		return err
	}
	defer func() {
		if err := app.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to close clients")
		}
	}()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return app.Start(ctx, cfg.Addr())
}

// validateDescription applies the same bounds as the HTTP API.
func validateDescription(description string) error {
	n := utf8.RuneCountInString(description)
	switch {
	case n < 10:
		return errors.New("product description must be at least 10 characters")
	case n > 1000:
		return errors.New("product description too long")
	}
	return nil
}

func runSuggest(cmd *cobra.Command, args []string) error {
	if err := validateDescription(args[0]); err != nil {
		return err
	}
	if !naming.ValidTone(suggestTone) {
		return fmt.Errorf("unknown tone %q", suggestTone)
	}
	if !naming.ValidStyle(suggestStyle) {
		return fmt.Errorf("unknown style %q", suggestStyle)
	}

	app, _, err := loadApp()
	if err != nil {
		return err
	}
	defer app.Close()

	result, err := app.Suggestions.Generate(commandContext(cmd), suggestions.Request{
		Description: args[0],
		Tone:        suggestTone,
		Style:       suggestStyle,
		Provider:    suggestModel,
	})
	if err != nil {
		return err
	}
	return printJSON(models.NewGenerateDomainsResponse(result))
}

func runCheck(cmd *cobra.Command, args []string) error {
	app, _, err := loadApp()
	if err != nil {
		return err
	}
	defer app.Close()

	result := app.Availability.Check(commandContext(cmd), domain.CheckRequest{
		Domain:      args[0],
		Description: checkDescription,
		Provider:    checkModel,
	})
	return printJSON(models.CheckDomainResponse{
		IsAvailable:  result.IsAvailable,
		Alternatives: result.Alternatives,
	})
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
