package drills

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/shelldrill/shelldrill/core/sandbox"
)

func countWords(counts map[string]int, r io.Reader) error {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		word := strings.ToLower(strings.Trim(scanner.Text(), `.,;:!?"'()`))
		if word != "" {
			counts[word]++
		}
	}
	return scanner.Err()
}

// Wordfreq counts word occurrences in files or stdin, the associative-array
// exercise. Output is sorted by count descending, then by word, so it is
// stable.
func Wordfreq(p sandbox.Proc) int {
	cmd := &SimpleCommand{
		Use:   "wordfreq [-n TOP] [FILE]...",
		Short: "Print the most frequent words in the input.",
	}

	top := cmd.Flags().IntLong("top", 'n', 10, "number of words to print, 0 for all")

	return cmd.RunE(p, func() error {
		counts := make(map[string]int)

		args := cmd.Flags().Args()
		if len(args) == 0 {
			if err := countWords(counts, p.Stdin()); err != nil {
				return err
			}
		}
		for _, name := range args {
			fd, err := p.Open(name)
			if err != nil {
				return err
			}
			err = countWords(counts, fd)
			fd.Close()
			if err != nil {
				return err
			}
		}

		words := make([]string, 0, len(counts))
		for word := range counts {
			words = append(words, word)
		}
		sort.Slice(words, func(i, j int) bool {
			if counts[words[i]] != counts[words[j]] {
				return counts[words[i]] > counts[words[j]]
			}
			return words[i] < words[j]
		})

		if *top > 0 && len(words) > *top {
			words = words[:*top]
		}

		w := p.Stdout()
		for _, word := range words {
			fmt.Fprintf(w, "%7d %s\n", counts[word], word)
		}
		return nil
	})
}

var _ sandbox.ProcessFunc = Wordfreq

func init() {
	mustRegister(Drill{
		Name:  "wordfreq",
		Topic: "arrays",
		Short: "Word frequency via an associative array.",
		Day:   7,
		Proc:  Wordfreq,
	})
}
