package corpus

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

// LoadComments parses the tab-separated annotated comments file.
// Columns are resolved by header name, so column order in the source
// file does not matter.
func LoadComments(path string) ([]Comment, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("corpus: open comments file: %w", err)
	}
	defer file.Close()

	r := newTSVReader(file)
	cols, err := headerIndex(r, "rev_id", "comment", "year", "logged_in", "ns", "sample", "split")
	if err != nil {
		return nil, fmt.Errorf("corpus: comments file %s: %w", path, err)
	}

	var comments []Comment
	line := 1
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("corpus: comments file line %d: %w", line+1, err)
		}
		line++

		revID, err := parseRevID(record[cols["rev_id"]])
		if err != nil {
			return nil, fmt.Errorf("corpus: comments file line %d: rev_id: %w", line, err)
		}
		year, err := strconv.Atoi(record[cols["year"]])
		if err != nil {
			return nil, fmt.Errorf("corpus: comments file line %d: year: %w", line, err)
		}
		loggedIn, err := strconv.ParseBool(record[cols["logged_in"]])
		if err != nil {
			return nil, fmt.Errorf("corpus: comments file line %d: logged_in: %w", line, err)
		}

		comments = append(comments, Comment{
			RevID:    revID,
			Text:     record[cols["comment"]],
			Year:     year,
			LoggedIn: loggedIn,
			NS:       record[cols["ns"]],
			Sample:   record[cols["sample"]],
			Split:    record[cols["split"]],
		})
	}
	return comments, nil
}

// LoadAnnotations parses the tab-separated per-worker annotations file.
// Only the rev_id and attack columns are consumed; the per-category
// judgment columns are ignored.
func LoadAnnotations(path string) ([]Annotation, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("corpus: open annotations file: %w", err)
	}
	defer file.Close()

	r := newTSVReader(file)
	cols, err := headerIndex(r, "rev_id", "attack")
	if err != nil {
		return nil, fmt.Errorf("corpus: annotations file %s: %w", path, err)
	}

	var annotations []Annotation
	line := 1
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("corpus: annotations file line %d: %w", line+1, err)
		}
		line++

		revID, err := parseRevID(record[cols["rev_id"]])
		if err != nil {
			return nil, fmt.Errorf("corpus: annotations file line %d: rev_id: %w", line, err)
		}
		attack, err := strconv.ParseFloat(record[cols["attack"]], 64)
		if err != nil {
			return nil, fmt.Errorf("corpus: annotations file line %d: attack: %w", line, err)
		}
		annotations = append(annotations, Annotation{RevID: revID, Attack: attack})
	}
	return annotations, nil
}

func newTSVReader(file *os.File) *csv.Reader {
	r := csv.NewReader(file)
	r.Comma = '\t'
	// Comment text contains unescaped quote characters.
	r.LazyQuotes = true
	return r
}

// headerIndex reads the header row and maps each required column name
// to its position. A missing column is a data-validation fault.
func headerIndex(r *csv.Reader, required ...string) (map[string]int, error) {
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[name] = i
	}
	for _, name := range required {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("missing required column %q", name)
		}
	}
	return cols, nil
}

// parseRevID accepts both integer and float-formatted revision ids;
// the source files are inconsistent about trailing ".0".
func parseRevID(s string) (int64, error) {
	if id, err := strconv.ParseInt(s, 10, 64); err == nil {
		return id, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	return int64(f), nil
}
