package catalog

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/jonathan/resume-screener/internal/types"
	"golang.org/x/text/encoding/charmap"
)

const (
	titleColumn       = "Job Title"
	descriptionColumn = "Job Description"

	// MaxKeywords caps the number of required skills derived from one description.
	MaxKeywords = 20

	minKeywordRunes = 4
	keywordCutset   = ".,()"
)

// markupPattern matches the opening of a tag, closing tag or comment.
var markupPattern = regexp.MustCompile(`<[A-Za-z/!]`)

// LoadFile loads a catalog from path, choosing the format from the file extension.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Message: fmt.Sprintf("failed to open %s", path), Cause: err}
	}
	defer func() {
		_ = f.Close()
	}()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return LoadCSV(f)
	case ".json":
		return LoadJSON(f)
	default:
		return nil, &LoadError{Message: fmt.Sprintf("unsupported catalog format %q", filepath.Ext(path))}
	}
}

// LoadCSV reads an ISO-8859-1 encoded table with "Job Title" and "Job Description" columns.
// Rows missing either value are skipped. A repeated title keeps its first position and takes
// the keywords of the later row.
func LoadCSV(r io.Reader) (*Catalog, error) {
	reader := csv.NewReader(charmap.ISO8859_1.NewDecoder().Reader(r))
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &LoadError{Message: "catalog is empty"}
		}
		return nil, &LoadError{Message: "failed to read header", Cause: err}
	}

	titleIdx, descIdx := -1, -1
	for i, name := range header {
		switch strings.TrimSpace(name) {
		case titleColumn:
			titleIdx = i
		case descriptionColumn:
			descIdx = i
		}
	}
	if titleIdx < 0 || descIdx < 0 {
		return nil, &LoadError{Message: fmt.Sprintf("missing %q or %q column", titleColumn, descriptionColumn)}
	}

	var order []string
	skills := make(map[string][]string)
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &LoadError{Message: "failed to read row", Cause: err}
		}

		title := strings.TrimSpace(field(record, titleIdx))
		description := strings.TrimSpace(field(record, descIdx))
		if title == "" || description == "" {
			continue
		}

		if _, seen := skills[title]; !seen {
			order = append(order, title)
		}
		skills[title] = ExtractKeywords(stripHTML(description))
	}

	roles := make([]types.JobRole, 0, len(order))
	for _, title := range order {
		roles = append(roles, types.JobRole{Title: title, RequiredSkills: skills[title]})
	}
	return New(roles)
}

// LoadJSON reads an array of {"title", "required_skills"} objects.
func LoadJSON(r io.Reader) (*Catalog, error) {
	var roles []types.JobRole
	if err := json.NewDecoder(r).Decode(&roles); err != nil {
		return nil, &LoadError{Message: "failed to decode roles", Cause: err}
	}
	return New(roles)
}

// ExtractKeywords derives required skills from a free-text job description.
// Words longer than three characters are lower-cased and stripped of surrounding
// punctuation, deduplicated in order of first appearance, and capped at MaxKeywords.
func ExtractKeywords(description string) []string {
	keywords := make([]string, 0, MaxKeywords)
	seen := make(map[string]bool)
	for _, word := range strings.Fields(description) {
		if utf8.RuneCountInString(word) < minKeywordRunes {
			continue
		}
		keyword := strings.Trim(strings.ToLower(word), keywordCutset)
		if keyword == "" || seen[keyword] {
			continue
		}
		seen[keyword] = true
		keywords = append(keywords, keyword)
		if len(keywords) == MaxKeywords {
			break
		}
	}
	return keywords
}

// stripHTML returns the text content of descriptions scraped with markup.
func stripHTML(s string) string {
	if !markupPattern.MatchString(s) {
		return s
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return s
	}
	doc.Find("br, p, li, div").AppendHtml(" ")
	return doc.Text()
}

func field(record []string, idx int) string {
	if idx >= len(record) {
		return ""
	}
	return record[idx]
}
