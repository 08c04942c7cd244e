package cmd

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/mewisme/wtf/internal/ai"
	"github.com/mewisme/wtf/internal/config"
	"github.com/mewisme/wtf/internal/db"
	"github.com/mewisme/wtf/internal/executor"
	"github.com/mewisme/wtf/internal/history"
	"github.com/mewisme/wtf/internal/logger"
	"github.com/mewisme/wtf/internal/match"
	"github.com/mewisme/wtf/internal/metrics"
	"github.com/mewisme/wtf/internal/suggest"
	"github.com/mewisme/wtf/internal/typos"
	"github.com/mewisme/wtf/internal/ui"
)

// fixLastCommand fixes the most recent command from shell history.
func fixLastCommand(ctx context.Context) error {
	reader := history.NewReader()
	entry, err := reader.LastCommand(ctx)
	if err != nil {
		return fmt.Errorf("could not read your last command: %w", err)
	}
	return fixCommand(ctx, entry.Command)
}

// fixCommand runs the full correction flow for one input line.
func fixCommand(ctx context.Context, input string) error {
	input = strings.TrimSpace(input)
	if input == "" {
		return fmt.Errorf("nothing to fix")
	}

	cfg := config.Get()
	suggestions := gatherSuggestions(ctx, input, cfg, useAI || cfg.AI.Enabled)

	if len(suggestions) == 0 {
		ui.PrintNoSuggestions(input)
		return nil
	}

	metrics.RecordSuggestions(len(suggestions))
	return applySuggestion(ctx, input, suggestions, cfg)
}

// gatherSuggestions runs the correction passes in order. The AI path,
// when requested, bypasses the match engine entirely; the engine and
// the history fallback only run when it fails or was not asked for.
func gatherSuggestions(ctx context.Context, input string, cfg *config.Config, aiFirst bool) []match.Suggestion {
	log := logger.With("fix")

	if aiFirst {
		if suggestions := aiFallback(ctx, input, cfg); len(suggestions) > 0 {
			return suggestions
		}
	}

	engine := buildEngine(cfg)
	start := time.Now()
	suggestions := engine.FindFromSources(input,
		match.NewExactSource(cfg.Typos.Custom),
		match.NewExactSource(typos.Builtin()),
		match.NewCanonicalSource(typos.Canonical()))
	metrics.RecordMatchDuration(time.Since(start))
	log.Debug("match pass done", "input", input, "suggestions", len(suggestions))

	if len(suggestions) > 0 {
		if suggestions[0].Confidence == match.ConfidenceFuzzy {
			metrics.RecordFuzzyHit()
		} else {
			metrics.RecordTableHit()
		}
		return suggestions
	}

	return historyFallback(ctx, input, cfg)
}

func buildEngine(cfg *config.Config) *match.Engine {
	var opts []match.Option
	if cfg.Match.Threshold > 0 {
		opts = append(opts, match.WithThreshold(cfg.Match.Threshold))
	}
	if cfg.Match.MaxSuggestions > 0 {
		opts = append(opts, match.WithLimit(cfg.Match.MaxSuggestions))
	}
	opts = append(opts, match.WithParallel(cfg.Match.Parallel))
	return match.NewEngine(opts...)
}

// historyFallback pulls similar commands from past activity when the
// tables and canonical list had nothing.
func historyFallback(ctx context.Context, input string, cfg *config.Config) []match.Suggestion {
	log := logger.With("fix")

	storage, err := db.NewStorage(storagePath(cfg))
	if err != nil {
		log.Debug("correction store unavailable", "error", err)
		storage = nil
	}
	if storage != nil {
		defer storage.Close()
	}

	sg := suggest.New(storage, history.NewReader())
	results, err := sg.Suggest(ctx, input, cfg.Match.MaxSuggestions)
	if err != nil {
		log.Debug("history fallback failed", "error", err)
		return nil
	}

	suggestions := make([]match.Suggestion, 0, len(results))
	for _, r := range results {
		explanation := "from your history"
		if r.Source == "corrections" {
			explanation = "you applied this before"
		}
		suggestions = append(suggestions, match.Suggestion{
			Command:     r.Command,
			Confidence:  match.ConfidenceFuzzy,
			Score:       r.Score,
			Explanation: explanation,
		})
	}
	return suggestions
}

// aiFallback asks the model for a fix. AI output is shown like any
// other suggestion; on failure the caller falls through to the engine.
func aiFallback(ctx context.Context, input string, cfg *config.Config) []match.Suggestion {
	log := logger.With("fix")

	client, err := ai.NewClient(cfg.APIKey(),
		ai.WithModel(cfg.AI.Model),
		ai.WithEndpoint(cfg.AI.Endpoint),
		ai.WithTimeout(time.Duration(cfg.AI.TimeoutSeconds)*time.Second),
	)
	if err != nil {
		ui.Note("%v", err)
		return nil
	}

	var fixed string
	run := func() error {
		var err error
		fixed, err = client.FixCommand(ctx, input)
		return err
	}

	if ui.IsInteractive() {
		err = ui.RunWithSpinner("Asking AI...", run)
	} else {
		err = run()
	}
	metrics.RecordAIRequest(err)

	if err != nil {
		log.Debug("AI fallback failed", "error", err)
		ui.Note("AI could not fix this: %v", err)
		return nil
	}

	return []match.Suggestion{{
		Command:     fixed,
		Confidence:  match.ConfidenceFuzzy,
		Score:       0.5,
		Explanation: "AI suggestion",
	}}
}

// applySuggestion presents suggestions and runs (or copies) the choice.
func applySuggestion(ctx context.Context, input string, suggestions []match.Suggestion, cfg *config.Config) error {
	choice := -1

	switch {
	case autoYes || cfg.App.AutoMode:
		choice = 0
	case ui.IsInteractive() && cfg.UI.Interactive:
		var err error
		choice, err = ui.Pick(suggestions)
		if err != nil {
			return fmt.Errorf("picker failed: %w", err)
		}
	default:
		if ui.IsInteractive() {
			ui.PrintSuggestions(input, suggestions, cfg.UI.ShowExplanations)
		} else {
			fmt.Print(ui.SimpleOutput(suggestions, cfg.UI.ShowExplanations))
		}
		return nil
	}

	if choice < 0 || choice >= len(suggestions) {
		// User cancelled.
		return nil
	}

	chosen := suggestions[choice]
	recordFix(ctx, input, chosen, cfg)

	if copyOut {
		if err := ui.CopyToClipboard(chosen.Command); err != nil {
			return fmt.Errorf("failed to copy to clipboard: %w", err)
		}
		ui.Success("copied %q to clipboard", chosen.Command)
		return nil
	}

	ui.PrintRunning(chosen.Command)
	if err := executor.New().Run(ctx, chosen.Command); err != nil {
		return err
	}
	metrics.RecordFixApplied()
	return nil
}

func recordFix(ctx context.Context, input string, chosen match.Suggestion, cfg *config.Config) {
	storage, err := db.NewStorage(storagePath(cfg))
	if err != nil {
		logger.Debug("could not record fix", "error", err)
		return
	}
	defer storage.Close()

	if err := storage.RecordFix(ctx, input, chosen.Command, chosen.Confidence.String()); err != nil {
		logger.Debug("could not record fix", "error", err)
	}
}

func storagePath(cfg *config.Config) string {
	path := cfg.Database.Path
	if path == "" {
		path = "~/.wtf/data"
	}
	if !strings.HasSuffix(path, ".db") {
		path = filepath.Join(path, "corrections.db")
	}
	return path
}
