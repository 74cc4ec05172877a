package printcheck

import (
	"fmt"
	"path"

	"go.uber.org/zap"
)

// Buckets partitions the full exported file set into five disjoint outcome
// lists. Main and accent hold raw file identifiers; the two diagnostic
// buckets hold annotated "<file> <verdict>" strings.
type Buckets struct {
	Main        []string `json:"main"`
	Accent      []string `json:"accent"`
	Missing     []string `json:"missing"`
	Unknown     []string `json:"unknown"`
	Conflicting []string `json:"conflicting"`
}

func newBuckets() Buckets {
	return Buckets{
		Main:        []string{},
		Accent:      []string{},
		Missing:     []string{},
		Unknown:     []string{},
		Conflicting: []string{},
	}
}

func (b Buckets) total() int {
	return len(b.Main) + len(b.Accent) + len(b.Missing) + len(b.Unknown) + len(b.Conflicting)
}

// Summary returns the per-bucket counts.
func (b Buckets) Summary() Summary {
	return Summary{
		Files:       b.total(),
		Main:        len(b.Main),
		Accent:      len(b.Accent),
		Missing:     len(b.Missing),
		Unknown:     len(b.Unknown),
		Conflicting: len(b.Conflicting),
	}
}

// BuildReport resolves every file against the catalog and buckets the
// verdicts. Resolution sees the base name only; buckets keep the full file
// identifier. The five bucket sizes must sum to the number of input files;
// a mismatch is a logic defect and fails the run.
func BuildReport(files []string, resolver *Resolver) (Buckets, error) {
	b := newBuckets()
	for _, file := range files {
		verdict, err := resolver.Resolve(path.Base(file))
		if err != nil {
			return Buckets{}, fmt.Errorf("failed to resolve %s: %w", file, err)
		}
		switch verdict.Code {
		case VerdictMain:
			b.Main = append(b.Main, file)
		case VerdictAccent:
			b.Accent = append(b.Accent, file)
		case VerdictMissing:
			b.Missing = append(b.Missing, file)
		case VerdictUnknown:
			b.Unknown = append(b.Unknown, file+" "+verdict.String())
		case VerdictConflicting:
			b.Conflicting = append(b.Conflicting, file+" "+verdict.String())
		default:
			return Buckets{}, fmt.Errorf("unhandled verdict %q for %s", verdict.Code, file)
		}
	}

	if got := b.total(); got != len(files) {
		return Buckets{}, fmt.Errorf("bucket sizes sum to %d, expected %d", got, len(files))
	}
	return b, nil
}

// Summary holds the per-bucket counts of one reconciliation run.
type Summary struct {
	Files       int `json:"files"`
	Main        int `json:"main"`
	Accent      int `json:"accent"`
	Missing     int `json:"missing"`
	Unknown     int `json:"unknown"`
	Conflicting int `json:"conflicting"`
}

// Text renders the overview block written to color-results-overview.txt.
// The line format is consumed by the documentation build; keep it stable.
func (s Summary) Text() string {
	return fmt.Sprintf(`# Total STL files: %d
# Total main parts: %d
# Total accent parts: %d
# Total missing parts: %d
# Total unknown colored parts: %d
# Total conflicting parts: %d`,
		s.Files, s.Main, s.Accent, s.Missing, s.Unknown, s.Conflicting)
}

// Log emits the summary as a single structured entry.
func (s Summary) Log(logger *zap.Logger) {
	logger.Info("Print check summary",
		zap.Int("files", s.Files),
		zap.Int("main", s.Main),
		zap.Int("accent", s.Accent),
		zap.Int("missing", s.Missing),
		zap.Int("unknown", s.Unknown),
		zap.Int("conflicting", s.Conflicting),
	)
}
