package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func TestParseTrainCommand(t *testing.T) {
	viper.Reset()
	cfg, err := loadAndParse([]string{"train", "-t", "hello world", "--merges", "10", "-o", "out.txt"})
	require.NoError(t, err)
	require.Equal(t, CommandTrain, cfg.Command)
	require.Equal(t, "hello world", cfg.Text)
	require.Equal(t, 10, cfg.NumMerges)
	require.Equal(t, "out.txt", cfg.Output)
}

func TestParsePositionalText(t *testing.T) {
	viper.Reset()
	cfg, err := loadAndParse([]string{"encode", "--table", "merges.txt", "some", "words"})
	require.NoError(t, err)
	require.Equal(t, CommandEncode, cfg.Command)
	require.Equal(t, "some words", cfg.Text)
	require.Equal(t, "merges.txt", cfg.TablePath)
}

func TestParseTrainDefaultsOutputToTablePath(t *testing.T) {
	viper.Reset()
	cfg, err := loadAndParse([]string{"train", "-t", "abc"})
	require.NoError(t, err)
	require.Equal(t, "merges.txt", cfg.Output)
}

func TestParseRequiresCommand(t *testing.T) {
	viper.Reset()
	_, err := loadAndParse([]string{"-t", "hello"})
	require.Error(t, err)
}

func TestParseRejectsUnknownCommand(t *testing.T) {
	viper.Reset()
	_, err := loadAndParse([]string{"decode", "-t", "hello"})
	require.Error(t, err)
}

func TestParseRequiresText(t *testing.T) {
	viper.Reset()
	_, err := loadAndParse([]string{"train"})
	require.Error(t, err)
}

func TestParseRejectsNegativeMerges(t *testing.T) {
	viper.Reset()
	_, err := loadAndParse([]string{"train", "-t", "abc", "--merges", "-3"})
	require.Error(t, err)
}
