package predict

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/amitrohan/sequence-llm/utility"
	"github.com/rs/zerolog"
)

const (
	defaultHistorySize = 3

	stuckNotice = "--- [I'm stuck! My knowledge is limited.] ---"
)

// Predictor extends a word sequence by looking up the trailing words of the
// sequence in a PhraseMap. When the full context window has no match, it falls
// back to a 1-word window before giving up. It mimics the "sequence memory" of
// an LSTM: nothing is learned, prediction is a table lookup with a random
// choice among candidates.
type Predictor struct {
	phrases PhraseMap
	history int
	rng     Rng
	notice  io.Writer
	log     zerolog.Logger
}

type Option func(*Predictor)

// WithHistorySize sets the number of trailing words used as the lookup
// context. Must be positive.
func WithHistorySize(n int) Option {
	if n <= 0 {
		panic("predict: history size must be a positive integer")
	}

	return func(p *Predictor) {
		p.history = n
	}
}

// WithRng overrides the random source used to pick among candidates
func WithRng(rng Rng) Option {
	return func(p *Predictor) {
		p.rng = rng
	}
}

// WithNotice sets the writer that receives the stuck notice. Defaults to
// stdout.
func WithNotice(w io.Writer) Option {
	return func(p *Predictor) {
		p.notice = w
	}
}

// WithLogger enables a per-step debug trace of context probes
func WithLogger(log zerolog.Logger) Option {
	return func(p *Predictor) {
		p.log = log
	}
}

func New(phrases PhraseMap, opts ...Option) *Predictor {
	p := &Predictor{
		phrases: phrases,
		history: defaultHistorySize,
		rng:     defaultRng{},
		notice:  os.Stdout,
		log:     zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Result is the outcome of a single generation call
type Result struct {
	// Text is the final sequence joined into a space-delimited string,
	// including the normalized starting text
	Text string

	// Steps is the number of words appended
	Steps int

	// Stuck reports whether generation halted because no context window
	// matched, as opposed to running out of steps
	Stuck bool
}

// Generate extends startingText by up to maxSteps words. The starting text is
// lowercased, stripped of '.' and '?', and split on whitespace; appended
// candidates keep their original casing and punctuation and are matched
// verbatim in later lookups.
//
// An unknown context is not an error: when neither the full window nor the
// 1-word fallback matches, generation stops, a notice is written, and the
// partial sequence is returned.
func (p *Predictor) Generate(startingText string, maxSteps int) Result {
	sequence := Normalize(startingText)

	// The ring holds the trailing history words, so the context window is
	// always available without re-slicing the sequence
	ring := utility.NewRing[string](p.history)
	for _, word := range sequence {
		ring.Push(word)
	}

	var steps int
	for ; steps < maxSteps; steps++ {
		context := ring.Items()

		next, ok := p.choose(context)
		if !ok && len(context) > 1 {
			// Fall back to the single most recent word. Intermediate window
			// sizes are never probed.
			next, ok = p.choose(context[len(context)-1:])
		}

		if !ok {
			p.stuck(context)
			return Result{
				Text:  strings.Join(sequence, " "),
				Steps: steps,
				Stuck: true,
			}
		}

		sequence = append(sequence, next)
		ring.Push(next)
	}

	return Result{
		Text:  strings.Join(sequence, " "),
		Steps: steps,
	}
}

func (p *Predictor) choose(context []string) (string, bool) {
	candidates, ok := p.phrases.Lookup(context)
	if !ok {
		p.log.Debug().
			Str("context", contextKey(context)).
			Msg("no match")
		return "", false
	}

	next := candidates[p.rng.Intn(len(candidates))]
	p.log.Debug().
		Str("context", contextKey(context)).
		Str("next", next).
		Msg("context match")

	return next, true
}

func (p *Predictor) stuck(context []string) {
	fmt.Fprintf(p.notice, "\n%s\n", stuckNotice)

	if nearest, distance, ok := p.phrases.Nearest(contextKey(context)); ok {
		p.log.Debug().
			Str("context", contextKey(context)).
			Str("nearest", nearest).
			Int("distance", distance).
			Msg("knowledge exhausted")
	}
}

// Normalize lowercases text, strips '.' and '?', and splits it into words.
// Blank input yields an empty slice.
func Normalize(text string) []string {
	lowered := strings.ToLower(text)
	stripped := strings.NewReplacer(".", "", "?", "").Replace(lowered)

	return strings.Fields(stripped)
}
