// Package learnstyle profiles how the learner studies best: preferred
// style bucket (VARK), session length, time of day and concentration
// pattern, scored from historical method usage, focus and linked results.
package learnstyle

// Style is one of the four VARK learning-style buckets.
type Style string

const (
	StyleVisual         Style = "visual"
	StyleAuditory       Style = "auditory"
	StyleKinesthetic    Style = "kinesthetic"
	StyleReadingWriting Style = "reading_writing"

	// StyleMultimodal is assigned when no single bucket dominates.
	StyleMultimodal Style = "multimodal"
)

// AllStyles lists the four scored buckets in a fixed order.
var AllStyles = []Style{StyleVisual, StyleAuditory, StyleKinesthetic, StyleReadingWriting}

// methodStyles maps each known study method to exactly one style bucket.
// Methods not in this table are skipped and reported as unclassified rather
// than silently scored.
var methodStyles = map[string]Style{
	"flashcards":   StyleVisual,
	"diagrams":     StyleVisual,
	"mind_mapping": StyleVisual,
	"videos":       StyleVisual,
	"charts":       StyleVisual,

	"lectures":    StyleAuditory,
	"podcasts":    StyleAuditory,
	"discussion":  StyleAuditory,
	"study_group": StyleAuditory,
	"recitation":  StyleAuditory,

	"practice_problems": StyleKinesthetic,
	"lab_work":          StyleKinesthetic,
	"experiments":       StyleKinesthetic,
	"simulations":       StyleKinesthetic,
	"projects":          StyleKinesthetic,

	"reading":     StyleReadingWriting,
	"note_taking": StyleReadingWriting,
	"summarizing": StyleReadingWriting,
	"textbook":    StyleReadingWriting,
	"essays":      StyleReadingWriting,
}

// StyleFor returns the style bucket for a method name.
func StyleFor(method string) (Style, bool) {
	s, ok := methodStyles[method]
	return s, ok
}

// KnownMethods returns every method name in the lookup table.
func KnownMethods() []string {
	out := make([]string, 0, len(methodStyles))
	for m := range methodStyles {
		out = append(out, m)
	}
	return out
}
