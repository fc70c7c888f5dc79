package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"bpetok/internal/pkg/bpetok/config"
	"bpetok/internal/pkg/bpetok/corpus"
	"bpetok/internal/pkg/bpetok/tokenizer"
)

func main() {
	fmt.Fprintf(os.Stderr, "bpetok %s\n", Version)

	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.LoadAndParse()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to parse configuration")
	}

	if err := setupLogging(cfg); err != nil {
		log.Fatal().Err(err).Msg("Failed to setup logging")
	}

	log.Debug().
		Str("command", cfg.Command).
		Str("table", cfg.TablePath).
		Int("merges", cfg.NumMerges).
		Bool("per_line", cfg.PerLine).
		Bool("normalize", cfg.Normalize).
		Msg("Configuration loaded")

	text, err := loadInput(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load input text")
	}
	if cfg.Normalize {
		text = corpus.Normalize(text)
	}

	switch cfg.Command {
	case config.CommandTrain:
		runTrain(cfg, text)
	case config.CommandEncode:
		runEncode(cfg, text)
	}
}

func loadInput(cfg *config.Config) (string, error) {
	if cfg.InputFile != "" {
		return corpus.Load(cfg.InputFile)
	}
	if cfg.Text == "-" {
		return corpus.Load("-")
	}
	return cfg.Text, nil
}

func runTrain(cfg *config.Config, text string) {
	log.Info().Int("corpus_bytes", len(text)).Int("budget", cfg.NumMerges).Msg("Training merge table...")
	startTime := time.Now()

	table := tokenizer.Train(text, cfg.NumMerges)

	elapsed := time.Since(startTime)
	log.Info().
		Dur("elapsed", elapsed).
		Int("rules", table.Len()).
		Msg("Merge table trained")
	if table.Len() < cfg.NumMerges {
		log.Warn().
			Int("rules", table.Len()).
			Int("budget", cfg.NumMerges).
			Msg("Corpus exhausted before merge budget")
	}

	if err := table.Save(cfg.Output); err != nil {
		log.Fatal().Err(err).Msg("Failed to save merge table")
	}

	log.Info().Str("output", cfg.Output).Msg("Merge table saved successfully")
}

func runEncode(cfg *config.Config, text string) {
	table, err := tokenizer.LoadMergeTable(cfg.TablePath)
	if err != nil {
		log.Fatal().Err(err).Str("table", cfg.TablePath).Msg("Failed to load merge table")
	}
	log.Debug().Int("rules", table.Len()).Msg("Merge table loaded")

	texts := []string{text}
	if cfg.PerLine {
		texts = corpus.Lines(text)
	}

	log.Info().Int("texts", len(texts)).Msg("Encoding...")
	startTime := time.Now()

	results, err := tokenizer.EncodeBatch(context.Background(), table, texts)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to encode")
	}

	elapsed := time.Since(startTime)
	total := 0
	for _, tokens := range results {
		total += len(tokens)
	}
	log.Info().
		Dur("elapsed", elapsed).
		Int("tokens", total).
		Msg("Encoding finished")

	if err := writeTokens(cfg.Output, results); err != nil {
		log.Fatal().Err(err).Msg("Failed to write token ids")
	}
}

func writeTokens(path string, results [][]tokenizer.Token) error {
	var sb strings.Builder
	for _, tokens := range results {
		for i, tok := range tokens {
			if i > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strconv.FormatUint(uint64(tok), 10))
		}
		sb.WriteByte('\n')
	}

	if path == "" {
		_, err := os.Stdout.WriteString(sb.String())
		return err
	}
	if err := os.WriteFile(path, []byte(sb.String()), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	log.Info().Str("output", path).Msg("Token ids saved successfully")
	return nil
}

func setupLogging(cfg *config.Config) error {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.LogLevel))
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		log.Logger = zerolog.New(f).With().Timestamp().Logger()
	}

	return nil
}
