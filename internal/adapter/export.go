package adapter

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	m "github.com/aryanadla/twinTrim/internal/model"
)

// ReportExporter writes a duplicate report to a file for later inspection.
type ReportExporter interface {
	Export(report m.DuplicateReport, path m.Path) error
}

// NewExporter returns the exporter for the given format name ("text" or
// "yaml").
func NewExporter(format string) (ReportExporter, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "text":
		return &TextExporter{}, nil
	case "yaml", "yml":
		return &YAMLExporter{}, nil
	default:
		return nil, fmt.Errorf("unknown export format %q", format)
	}
}

// TextExporter writes the report in the classic twinTrim plain-text layout.
type TextExporter struct{}

// Export renders one "Original file" block per duplicate set followed by the
// total-savings footer.
func (e *TextExporter) Export(report m.DuplicateReport, path m.Path) error {
	var b strings.Builder

	for _, set := range report.Sets {
		fmt.Fprintf(&b, "Original file: %s\n", set.Original.Path)
		for _, dup := range set.Duplicates {
			fmt.Fprintf(&b, "  Duplicate: %s (Size: %d bytes)\n", dup.Path, dup.Size)
		}
	}

	fmt.Fprintf(&b, "\nTotal potential space saved: %.2f MB\n",
		float64(report.ReclaimableBytes())/(1024*1024))

	return os.WriteFile(string(path), []byte(b.String()), 0o644)
}

// YAMLExporter writes the report as a structured YAML document.
type YAMLExporter struct{}

type yamlFile struct {
	Path string `yaml:"path"`
	Size uint64 `yaml:"size"`
}

type yamlSet struct {
	Original   yamlFile   `yaml:"original"`
	Duplicates []yamlFile `yaml:"duplicates"`
}

type yamlReport struct {
	Sets              []yamlSet `yaml:"sets"`
	ReclaimableBytes  uint64    `yaml:"reclaimable_bytes"`
	DuplicateSetCount int       `yaml:"duplicate_set_count"`
}

// Export marshals the report into YAML and writes it to path.
func (e *YAMLExporter) Export(report m.DuplicateReport, path m.Path) error {
	doc := yamlReport{
		Sets:              make([]yamlSet, 0, len(report.Sets)),
		ReclaimableBytes:  report.ReclaimableBytes(),
		DuplicateSetCount: len(report.Sets),
	}

	for _, set := range report.Sets {
		ys := yamlSet{
			Original: yamlFile{Path: string(set.Original.Path), Size: set.Original.Size},
		}
		for _, dup := range set.Duplicates {
			ys.Duplicates = append(ys.Duplicates, yamlFile{Path: string(dup.Path), Size: dup.Size})
		}

		doc.Sets = append(doc.Sets, ys)
	}

	out, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	return os.WriteFile(string(path), out, 0o644)
}
