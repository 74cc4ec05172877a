package printcheck

import (
	"fmt"
	"strings"

	"bom-manager/feature/catalog"
	"bom-manager/feature/catalog/models"

	"github.com/pmezard/go-difflib/difflib"
	"go.uber.org/zap"
)

// DefaultThreshold is the fuzzy-match cutoff ratio. 0.8 is the
// general-purpose default; 0.9 for a stricter run.
const DefaultThreshold = 0.8

// VerdictCode is the outcome class of matching one file name.
type VerdictCode string

const (
	VerdictMain        VerdictCode = "main"
	VerdictAccent      VerdictCode = "accent"
	VerdictMissing     VerdictCode = "missing"
	VerdictUnknown     VerdictCode = "unknown"
	VerdictConflicting VerdictCode = "conflicting"
)

// Verdict is the result of matching one exported file name against the part
// catalog: a print color, or a diagnostic code with the offending matches
// attached.
type Verdict struct {
	Code   VerdictCode
	Detail string
}

func (v Verdict) String() string {
	if v.Detail == "" {
		return string(v.Code)
	}
	return fmt.Sprintf("%s colors found: %s", v.Code, v.Detail)
}

// Resolver matches exported mesh file names against the classified part list.
// The list is read-only; a Resolver is safe for concurrent use.
type Resolver struct {
	parts     []models.Part
	threshold float64
	logger    *zap.Logger
}

// NewResolver creates a resolver over an already-classified part list. A
// non-positive threshold falls back to DefaultThreshold.
func NewResolver(parts []models.Part, threshold float64, logger *zap.Logger) *Resolver {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &Resolver{parts: parts, threshold: threshold, logger: logger}
}

// Resolve normalizes a file base name and runs the matching cascade. The
// tiers go from narrowest to most permissive and the first one yielding any
// candidate wins: part key contained in the file name, file name contained
// in a part key, fuzzy matches above the cutoff, then the best-scoring fuzzy
// matches regardless of cutoff. Exported names and CAD labels rarely agree
// byte for byte (quantity prefixes, truncation, revision tags), which is
// what the later tiers absorb.
func (r *Resolver) Resolve(fileName string) (Verdict, error) {
	key, err := catalog.Normalize(fileName)
	if err != nil {
		return Verdict{}, err
	}

	selectors := []func(string) []models.Part{
		r.partInFile,
		r.fileInPart,
		r.fuzzyCutoff,
		r.fuzzyBest,
	}
	var candidates []models.Part
	for _, selector := range selectors {
		if candidates = selector(key); len(candidates) > 0 {
			break
		}
	}

	return r.resolveColor(fileName, candidates)
}

func (r *Resolver) partInFile(key string) []models.Part {
	var out []models.Part
	for _, p := range r.parts {
		if strings.Contains(key, p.Key) {
			out = append(out, p)
		}
	}
	return out
}

func (r *Resolver) fileInPart(key string) []models.Part {
	var out []models.Part
	for _, p := range r.parts {
		if strings.Contains(p.Key, key) {
			out = append(out, p)
		}
	}
	return out
}

func (r *Resolver) fuzzyCutoff(key string) []models.Part {
	var out []models.Part
	for _, p := range r.parts {
		if similarity(key, p.Key) >= r.threshold {
			out = append(out, p)
		}
	}
	if len(out) > 0 {
		r.logger.Warn("Fuzzy matches",
			zap.String("file", key),
			zap.String("matches", partList(out)),
		)
	}
	return out
}

func (r *Resolver) fuzzyBest(key string) []models.Part {
	var best []models.Part
	top := 0.0
	for _, p := range r.parts {
		ratio := similarity(key, p.Key)
		switch {
		case ratio > top:
			best = []models.Part{p}
			top = ratio
		case ratio == top:
			best = append(best, p)
		}
	}
	if len(best) > 0 {
		r.logger.Warn("Top fuzzy matches",
			zap.String("file", key),
			zap.Float64("ratio", top),
			zap.String("matches", partList(best)),
		)
	}
	return best
}

// similarity is a symmetric longest-matching-blocks ratio over single
// characters, range [0,1].
func similarity(a, b string) float64 {
	return difflib.NewMatcher(splitChars(a), splitChars(b)).Ratio()
}

func splitChars(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}

// resolveColor reduces a candidate set to a single verdict. One colored
// candidate decides directly; several candidates of the same color resolve
// to that color with a log entry; a mix of both colors is conflicting. No
// colored candidates means missing, or unknown when only uncolored parts
// matched.
func (r *Resolver) resolveColor(fileName string, candidates []models.Part) (Verdict, error) {
	var main, accent, other []models.Part
	for _, p := range candidates {
		switch p.Category {
		case models.CategoryMain:
			main = append(main, p)
		case models.CategoryAccent:
			accent = append(accent, p)
		default:
			other = append(other, p)
		}
	}

	total := len(main) + len(accent)
	switch {
	case total == 1:
		if len(main) == 1 {
			return Verdict{Code: VerdictMain}, nil
		}
		if len(accent) == 1 {
			return Verdict{Code: VerdictAccent}, nil
		}
		return Verdict{}, fmt.Errorf("total colored count is 1 but neither main nor accent count is 1")
	case total == 0:
		if len(other) > 0 {
			v := Verdict{Code: VerdictUnknown, Detail: partList(other)}
			r.logger.Error("Unknown colored matches",
				zap.String("file", fileName),
				zap.String("matches", v.Detail),
			)
			return v, nil
		}
		return Verdict{Code: VerdictMissing}, nil
	case total == len(main):
		r.logger.Warn("Multiple matches of the same color",
			zap.String("file", fileName),
			zap.String("matches", partList(main)),
		)
		return Verdict{Code: VerdictMain}, nil
	case total == len(accent):
		r.logger.Warn("Multiple matches of the same color",
			zap.String("file", fileName),
			zap.String("matches", partList(accent)),
		)
		return Verdict{Code: VerdictAccent}, nil
	default:
		v := Verdict{
			Code:   VerdictConflicting,
			Detail: fmt.Sprintf("main: %s; accent: %s", partList(main), partList(accent)),
		}
		r.logger.Error("Conflicting colored matches",
			zap.String("file", fileName),
			zap.String("matches", v.Detail),
		)
		return v, nil
	}
}

func partList(parts []models.Part) string {
	names := make([]string, 0, len(parts))
	for _, p := range parts {
		names = append(names, p.String())
	}
	return strings.Join(names, ", ")
}
