// Command desambiguar is a thin demo front-end over the disambiguation
// library: it loads a lexicon and semantic-DB pair, disambiguates one
// target token in a sentence, and prints the resulting Decision as JSON.
// It is the "executable demo front-end" explicitly out of scope for the
// library's tested core contract — its flags and exit codes carry no
// invariants of their own.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Yatrogenesis/NL-SRE-Semantico/internal/assets"
	"github.com/Yatrogenesis/NL-SRE-Semantico/internal/config"
	"github.com/Yatrogenesis/NL-SRE-Semantico/internal/disambiguator"
	"github.com/Yatrogenesis/NL-SRE-Semantico/pkg/model"
)

var (
	lexiconPath    string
	semanticDBPath string
	sentenceFlag   string
	targetFlag     string
	verbose        bool

	logger *zap.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "desambiguar",
	Short: "Corrects a misspelled or ambiguous Spanish token in a sentence",
	Long: `desambiguar demonstrates the Spanish semantic disambiguation engine:
given a sentence and a target token, it proposes the most plausible
correction with a confidence score and per-factor rationale.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		_ = godotenv.Load()

		zapConfig := zap.NewProductionConfig()
		if verbose {
			zapConfig.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
		}
		var err error
		logger, err = zapConfig.Build()
		if err != nil {
			return fmt.Errorf("desambiguar: initializing logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Disambiguate one target token within a sentence",
	RunE:  runDisambiguate,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug-level logging")

	runCmd.Flags().StringVar(&lexiconPath, "lexicon", "", "path to the lexicon asset file (required)")
	runCmd.Flags().StringVar(&semanticDBPath, "semantic-db", "", "path to the semantic-DB asset file (required)")
	runCmd.Flags().StringVar(&sentenceFlag, "sentence", "", "whitespace-separated sentence (required)")
	runCmd.Flags().StringVar(&targetFlag, "target", "", "the target token within --sentence to correct (required)")
	for _, name := range []string{"lexicon", "semantic-db", "sentence", "target"} {
		_ = runCmd.MarkFlagRequired(name)
	}

	rootCmd.AddCommand(runCmd)
}

func runDisambiguate(cmd *cobra.Command, args []string) error {
	lx, err := assets.LoadLexiconFile(lexiconPath, logger)
	if err != nil {
		return err
	}
	db, err := assets.LoadSemanticDBFile(semanticDBPath, logger)
	if err != nil {
		return err
	}

	cfg, err := config.New(config.Default())
	if err != nil {
		return fmt.Errorf("desambiguar: %w", err)
	}

	words := strings.Fields(sentenceFlag)
	if len(words) == 0 {
		return fmt.Errorf("desambiguar: --sentence must contain at least one token")
	}

	sentence := make(model.Sentence, len(words))
	targetIndex := -1
	for i, w := range words {
		entry, ok := lx.Lookup(w)
		if ok {
			sentence[i] = model.NewWord(w, entry.Lemma, entry.Tags...)
		} else {
			sentence[i] = model.NewWord(w, w)
		}
		if w == targetFlag {
			targetIndex = i
		}
	}
	if targetIndex == -1 {
		return fmt.Errorf("desambiguar: target %q not found in --sentence", targetFlag)
	}

	d := disambiguator.New(lx, db, cfg.DisambiguatorConfig())
	decision, err := d.Disambiguate(sentence, targetIndex, cfg.Weights())
	if err != nil {
		return fmt.Errorf("desambiguar: %w", err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(decision)
}
