package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	spell "speller/pkg"
	"speller/pkg/options"
	"speller/pkg/verbosity"
)

var (
	corpusPath string
	alphabet   string

	rootCmd = &cobra.Command{
		Use:   "spellcheck",
		Short: "Statistical spelling correction over a plain-text corpus",
		Long: `spellcheck trains a word-frequency model from a corpus file and
corrects words to their most frequent close spelling.`,
	}

	correctCmd = &cobra.Command{
		Use:   "correct [words...]",
		Short: "Print the best correction for each word",
		Args:  cobra.MinimumNArgs(1),
		Run:   runCorrect,
	}

	suggestLimit int
	suggestAll   bool
	suggestCmd   = &cobra.Command{
		Use:   "suggest [word]",
		Short: "List ranked suggestions for a word",
		Args:  cobra.ExactArgs(1),
		Run:   runSuggest,
	}

	wordsLimit int
	wordsCmd   = &cobra.Command{
		Use:   "words",
		Short: "Print the most common corpus words",
		Args:  cobra.NoArgs,
		Run:   runWords,
	}
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	_ = godotenv.Load()

	rootCmd.PersistentFlags().StringVar(&corpusPath, "corpus", defaultCorpus(), "corpus text file to train on")
	rootCmd.PersistentFlags().StringVar(&alphabet, "alphabet", "", "candidate letters (default a-z)")

	rootCmd.AddCommand(correctCmd)

	rootCmd.AddCommand(suggestCmd)
	suggestCmd.Flags().IntVarP(&suggestLimit, "limit", "n", 10, "maximum suggestions to print")
	suggestCmd.Flags().BoolVar(&suggestAll, "all", false, "include candidates beyond the closest tier")

	rootCmd.AddCommand(wordsCmd)
	wordsCmd.Flags().IntVarP(&wordsLimit, "limit", "n", 20, "how many words to print")
}

func defaultCorpus() string {
	if v := os.Getenv("CORPUS_PATH"); v != "" {
		return v
	}
	return "big.txt"
}

func loadCorrector() *spell.Corrector {
	f, err := os.Open(corpusPath)
	if err != nil {
		log.Fatalf("open corpus: %v", err)
	}
	defer f.Close()

	var opts []options.Options
	if alphabet != "" {
		opts = append(opts, options.WithAlphabet(alphabet))
	}
	c, err := spell.NewFromReader(f, opts...)
	if err != nil {
		log.Fatalf("train: %v", err)
	}
	return c
}

func runCorrect(cmd *cobra.Command, args []string) {
	c := loadCorrector()

	corrections := make([]string, len(args))
	var g errgroup.Group
	for i, word := range args {
		i, word := i, word
		g.Go(func() error {
			corrections[i] = c.Correction(word)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatal(err)
	}

	for i, word := range args {
		fmt.Printf("%s -> %s\n", word, corrections[i])
	}
}

func runSuggest(cmd *cobra.Command, args []string) {
	c := loadCorrector()

	v := verbosity.Closest
	if suggestAll {
		v = verbosity.All
	}
	suggestions := c.Suggest(args[0], v, suggestLimit)
	if len(suggestions) == 0 {
		fmt.Printf("no suggestions for %q\n", args[0])
		return
	}
	for _, s := range suggestions {
		fmt.Printf("%-20s count %-10d distance %d\n", s.Term, s.Count, s.Distance)
	}
}

func runWords(cmd *cobra.Command, args []string) {
	c := loadCorrector()

	for _, wc := range c.Model().MostCommon(wordsLimit) {
		fmt.Printf("%8d  %s\n", wc.Count, wc.Word)
	}
}
