// Package export dumps the Kronodex collection to portable files, either
// YAML for human inspection or Parquet for analysis tooling.
package export

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/parquet-go/parquet-go"
	"gopkg.in/yaml.v3"

	"github.com/zyarat-mobile/zyarat/internal/kronodex"
)

// Record is one exported collection row. Flat, with the scan date as
// RFC 3339 text so both formats round-trip it identically.
type Record struct {
	ID           string `yaml:"id" parquet:"id"`
	Title        string `yaml:"title" parquet:"title"`
	Period       string `yaml:"period" parquet:"period"`
	Description  string `yaml:"description" parquet:"description"`
	Significance string `yaml:"significance" parquet:"significance"`
	Location     string `yaml:"location" parquet:"location"`
	ImageURL     string `yaml:"image_url,omitempty" parquet:"image_url,optional"`
	ScanDate     string `yaml:"scan_date" parquet:"scan_date"`
}

// Document is the top-level YAML export shape.
type Document struct {
	ExportedAt string   `yaml:"exported_at"`
	Count      int      `yaml:"count"`
	Records    []Record `yaml:"records"`
}

func toRecords(entries []kronodex.Entry) []Record {
	records := make([]Record, 0, len(entries))
	for _, e := range entries {
		records = append(records, Record{
			ID:           e.ID,
			Title:        e.Title,
			Period:       e.Period,
			Description:  e.Description,
			Significance: e.Significance,
			Location:     e.Location,
			ImageURL:     e.ImageURL,
			ScanDate:     e.ScanDate.Format(time.RFC3339),
		})
	}
	return records
}

// Write exports entries to path, picking the format from the extension:
// .yaml/.yml or .parquet.
func Write(entries []kronodex.Entry, path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return WriteYAML(entries, path)
	case ".parquet":
		return WriteParquet(entries, path)
	default:
		return fmt.Errorf("unsupported export format %q (supported: .yaml, .parquet)", filepath.Ext(path))
	}
}

// WriteYAML exports entries as a YAML document.
func WriteYAML(entries []kronodex.Entry, path string) error {
	doc := Document{
		ExportedAt: time.Now().Format(time.RFC3339),
		Count:      len(entries),
		Records:    toRecords(entries),
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal export: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write export file: %w", err)
	}

	slog.Info("Kronodex exported", "format", "yaml", "path", path, "records", len(entries))
	return nil
}

// WriteParquet exports entries as a Parquet file.
func WriteParquet(entries []kronodex.Entry, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}

	writer := parquet.NewGenericWriter[Record](f)
	if _, err := writer.Write(toRecords(entries)); err != nil {
		f.Close()
		return fmt.Errorf("failed to write parquet rows: %w", err)
	}
	if err := writer.Close(); err != nil {
		f.Close()
		return fmt.Errorf("failed to finalize parquet file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close export file: %w", err)
	}

	slog.Info("Kronodex exported", "format", "parquet", "path", path, "records", len(entries))
	return nil
}
