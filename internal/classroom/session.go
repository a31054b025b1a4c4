package classroom

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/gcbaptista/go-fuzzy-search/internal/search"
)

// Searcher runs one query and prints its results.
type Searcher struct {
	kind  Kind
	index *search.Index
}

// NewSearcher builds the index for kind over records.
func NewSearcher(kind Kind, threshold float64, data []byte, courseID string) (*Searcher, error) {
	records, err := LoadRecords(data, kind, courseID)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("no %s found", kind)
	}

	idx, err := search.BuildIndex(records, Settings(kind, threshold))
	if err != nil {
		return nil, err
	}
	return &Searcher{kind: kind, index: idx}, nil
}

// Len returns the number of searchable entities.
func (s *Searcher) Len() int {
	return s.index.Len()
}

// Search prints every match of query, best first.
func (s *Searcher) Search(w io.Writer, query string) error {
	return WriteResults(w, s.kind, query, s.index.Search(query))
}

// Interactive prompts for queries on in until EOF or "exit".
func (s *Searcher) Interactive(in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	for {
		if _, err := fmt.Fprintf(out, "Enter search query for %s: ", s.kind); err != nil {
			return err
		}
		if !scanner.Scan() {
			_, _ = fmt.Fprintln(out)
			return scanner.Err()
		}

		query := strings.TrimSpace(scanner.Text())
		if query == "exit" {
			_, err := fmt.Fprintln(out, "Exiting.")
			return err
		}
		if err := s.Search(out, query); err != nil {
			return err
		}
	}
}
