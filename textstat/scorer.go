// Package textstat computes readability statistics over extracted content:
// word, sentence and syllable counts, the Flesch Reading Ease, SMOG and
// Coleman-Liau indices, passive-voice and transition-word coverage, and
// sentence/paragraph length distributions. Scoring is language-aware: CJK
// scripts are counted by character and report sentinel values for
// syllable-dependent metrics.
package textstat

import (
	"context"
	"math"
	"regexp"
	"sort"
	"strings"
	"unicode"

	"github.com/RadhiFadlillah/whatlanggo"
	"github.com/pagelens/pagelens"
	"github.com/pagelens/pagelens/words"
)

// Ensure Scorer implements pagelens.ReadabilityScorer at compile time.
var _ pagelens.ReadabilityScorer = (*Scorer)(nil)

// Scorer computes readability metrics. All rule tables are injected at
// construction so locales and tests can swap them.
type Scorer struct {
	transitionWords   func(lang string) []string
	complexExceptions map[string]struct{}
	passiveThreshold  float64
}

// Option configures a Scorer.
type Option func(*Scorer)

// WithTransitionWords replaces the transition word list provider.
func WithTransitionWords(provider func(lang string) []string) Option {
	return func(s *Scorer) { s.transitionWords = provider }
}

// WithComplexWordExceptions replaces the complex-word exception set.
func WithComplexWordExceptions(set map[string]struct{}) Option {
	return func(s *Scorer) { s.complexExceptions = set }
}

// WithPassiveVoiceThreshold sets the percentage above which the
// passive-voice flag is raised. Default 10.
func WithPassiveVoiceThreshold(percent float64) Option {
	return func(s *Scorer) { s.passiveThreshold = percent }
}

// NewScorer creates a Scorer with the default English tables.
func NewScorer(opts ...Option) *Scorer {
	s := &Scorer{
		transitionWords:   words.TransitionWords,
		complexExceptions: words.ComplexWordExceptions(),
		passiveThreshold:  10,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Sentence- and paragraph-length distribution bands, in words.
var (
	sentenceBands  = []lengthBand{{"1-10", 1, 10}, {"11-20", 11, 20}, {"21-30", 21, 30}, {"31+", 31, math.MaxInt}}
	paragraphBands = []lengthBand{{"1-50", 1, 50}, {"51-100", 51, 100}, {"101-150", 101, 150}, {"151+", 151, math.MaxInt}}
)

const (
	maxLongSentences  = 5
	maxLongParagraphs = 3
)

type lengthBand struct {
	label    string
	min, max int
}

// ScoreReadability computes all metrics for the extracted content. Empty
// content yields a well-formed zero report, never an error.
func (s *Scorer) ScoreReadability(_ context.Context, content *pagelens.ExtractedContent, language string) (*pagelens.ReadabilityReport, error) {
	report := &pagelens.ReadabilityReport{Language: language}

	var text string
	var paragraphs []string
	if content != nil {
		for _, p := range content.Paragraphs() {
			paragraphs = append(paragraphs, p.Text)
		}
		text = strings.Join(paragraphs, "\n")
	}
	if strings.TrimSpace(text) == "" {
		report.SentenceLengths = bucketize(nil, sentenceBands)
		report.ParagraphLengths = bucketize(nil, paragraphBands)
		return report, nil
	}

	report.CJK = isCJK(language, text)

	sentences := splitSentences(text, report.CJK)
	report.SentenceCount = len(sentences)
	report.WordCount = countWords(text, report.CJK)
	if report.SentenceCount > 0 {
		report.AvgWordsPerSentence = round2(float64(report.WordCount) / float64(report.SentenceCount))
	}

	if report.CJK {
		report.SyllableCount = pagelens.NotApplicable
		report.ComplexWords = pagelens.NotApplicable
		report.FleschReadingEase = pagelens.NotApplicable
		report.FleschGrade = "not_applicable"
		report.SMOG = pagelens.NotApplicable
		report.ColemanLiau = pagelens.NotApplicable
	} else {
		tokens := tokenize(text)
		report.SyllableCount = countSyllables(tokens)
		report.ComplexWords = s.countComplexWords(tokens)
		report.FleschReadingEase = fleschReadingEase(report.WordCount, report.SentenceCount, report.SyllableCount)
		report.FleschGrade = fleschGrade(report.FleschReadingEase)
		report.SMOG = smog(report.ComplexWords, report.SentenceCount)
		report.ColemanLiau = colemanLiau(tokens, report.SentenceCount)

		report.PassiveVoicePercent = passiveVoicePercent(sentences)
		report.PassiveVoiceExceeds = report.PassiveVoicePercent > s.passiveThreshold
		report.TransitionWordPercent = transitionPercent(sentences, s.transitionWords(languageCode(language)))
	}

	sentenceWordCounts := make([]int, len(sentences))
	for i, sent := range sentences {
		sentenceWordCounts[i] = countWords(sent, report.CJK)
	}
	paragraphWordCounts := make([]int, len(paragraphs))
	for i, para := range paragraphs {
		paragraphWordCounts[i] = countWords(para, report.CJK)
	}

	report.SentenceLengths = bucketize(sentenceWordCounts, sentenceBands)
	report.ParagraphLengths = bucketize(paragraphWordCounts, paragraphBands)
	report.LongSentences = longestExamples(sentences, sentenceWordCounts, maxLongSentences)
	report.LongParagraphs = longestExamples(paragraphs, paragraphWordCounts, maxLongParagraphs)

	return report, nil
}

// languageCode reduces a BCP 47 tag to its primary subtag ("de_DE" -> "de").
func languageCode(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	for i, r := range lang {
		if r == '-' || r == '_' {
			return lang[:i]
		}
	}
	return lang
}

// isCJK reports whether the content is in a CJK script, preferring the
// declared language tag and falling back to script detection on the text.
func isCJK(language, text string) bool {
	switch languageCode(language) {
	case "zh", "ja", "ko":
		return true
	case "":
		script := whatlanggo.DetectScript(text)
		return script == unicode.Han || script == unicode.Hiragana ||
			script == unicode.Katakana || script == unicode.Hangul
	default:
		return false
	}
}

var sentenceBoundaryRe = regexp.MustCompile(`[.!?。！？]+[\s]+|[.!?。！？]+$|[。！？]`)

// splitSentences splits on terminal punctuation followed by whitespace,
// discarding fragments that contain no word.
func splitSentences(text string, cjk bool) []string {
	parts := sentenceBoundaryRe.Split(text, -1)
	var out []string
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" || countWords(p, cjk) == 0 {
			continue
		}
		out = append(out, p)
	}
	return out
}

// countWords counts whitespace-delimited tokens containing at least one
// letter or digit; for CJK it counts letter/digit characters instead.
func countWords(text string, cjk bool) int {
	if cjk {
		n := 0
		for _, r := range text {
			if unicode.IsLetter(r) || unicode.IsDigit(r) {
				n++
			}
		}
		return n
	}

	n := 0
	for _, f := range strings.Fields(text) {
		if strings.IndexFunc(f, func(r rune) bool { return unicode.IsLetter(r) || unicode.IsDigit(r) }) >= 0 {
			n++
		}
	}
	return n
}

// tokenize lowercases and returns alphabetic word tokens.
func tokenize(text string) []string {
	var tokens []string
	for _, f := range strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '\''
	}) {
		f = strings.Trim(f, "'")
		if f != "" {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

func countSyllables(tokens []string) int {
	total := 0
	for _, t := range tokens {
		total += syllablesInWord(t)
	}
	return total
}

// syllablesInWord estimates syllables with a vowel-group heuristic and
// English refinements: trailing silent e/es/ed is stripped, words of three
// characters or fewer count as one syllable, and every word has at least one.
func syllablesInWord(word string) int {
	word = strings.ToLower(word)
	if len(word) == 0 {
		return 0
	}
	if len(word) <= 3 {
		return 1
	}

	switch {
	case strings.HasSuffix(word, "es"), strings.HasSuffix(word, "ed"):
		word = word[:len(word)-2]
	case strings.HasSuffix(word, "e") && !strings.HasSuffix(word, "le"):
		word = word[:len(word)-1]
	}

	count := 0
	prevVowel := false
	for _, r := range word {
		isVowel := strings.ContainsRune("aeiouy", r)
		if isVowel && !prevVowel {
			count++
		}
		prevVowel = isVowel
	}

	if count < 1 {
		count = 1
	}
	return count
}

func (s *Scorer) countComplexWords(tokens []string) int {
	n := 0
	for _, t := range tokens {
		if _, exempt := s.complexExceptions[t]; exempt {
			continue
		}
		if syllablesInWord(t) >= 3 {
			n++
		}
	}
	return n
}

// fleschReadingEase computes 206.835 - 1.015*(words/sentences) -
// 84.6*(syllables/words), clamped to [0, 100].
func fleschReadingEase(wordCount, sentenceCount, syllableCount int) float64 {
	if wordCount == 0 || sentenceCount == 0 {
		return 0
	}
	score := 206.835 -
		1.015*(float64(wordCount)/float64(sentenceCount)) -
		84.6*(float64(syllableCount)/float64(wordCount))
	return round2(math.Min(100, math.Max(0, score)))
}

// fleschGrade maps a reading-ease score to its seven-band grade label.
func fleschGrade(score float64) string {
	switch {
	case score >= 90:
		return "very_easy"
	case score >= 80:
		return "easy"
	case score >= 70:
		return "fairly_easy"
	case score >= 60:
		return "standard"
	case score >= 50:
		return "fairly_difficult"
	case score >= 30:
		return "difficult"
	default:
		return "very_difficult"
	}
}

// smog computes the SMOG grade. The 30/sentences factor scales short
// samples up to the 30-sentence basis the formula assumes.
func smog(complexWords, sentenceCount int) float64 {
	if sentenceCount == 0 {
		return 0
	}
	return round2(1.043*math.Sqrt(float64(complexWords)*30/float64(sentenceCount)) + 3.1291)
}

// colemanLiau computes 0.0588*L - 0.296*S - 15.8 where L is letters per 100
// words and S is sentences per 100 words.
func colemanLiau(tokens []string, sentenceCount int) float64 {
	if len(tokens) == 0 || sentenceCount == 0 {
		return 0
	}
	letters := 0
	for _, t := range tokens {
		for _, r := range t {
			if unicode.IsLetter(r) || unicode.IsDigit(r) {
				letters++
			}
		}
	}
	l := float64(letters) / float64(len(tokens)) * 100
	s := float64(sentenceCount) / float64(len(tokens)) * 100
	return round2(0.0588*l - 0.296*s - 15.8)
}

var passiveRe = regexp.MustCompile(`(?i)\b(is|are|was|were|be|been|being)\s+\w+(ed|en|t)\b`)

// passiveVoicePercent reports the share of sentences matching the
// auxiliary + participle pattern.
func passiveVoicePercent(sentences []string) float64 {
	if len(sentences) == 0 {
		return 0
	}
	n := 0
	for _, s := range sentences {
		if passiveRe.MatchString(s) {
			n++
		}
	}
	return round2(float64(n) / float64(len(sentences)) * 100)
}

// transitionPercent reports the share of sentences containing at least one
// transition word or phrase.
func transitionPercent(sentences []string, transitions []string) float64 {
	if len(sentences) == 0 || len(transitions) == 0 {
		return 0
	}
	n := 0
	for _, s := range sentences {
		lower := " " + strings.ToLower(s) + " "
		lower = strings.Map(func(r rune) rune {
			if unicode.IsPunct(r) {
				return ' '
			}
			return r
		}, lower)
		for _, t := range transitions {
			if strings.Contains(lower, " "+t+" ") {
				n++
				break
			}
		}
	}
	return round2(float64(n) / float64(len(sentences)) * 100)
}

// bucketize distributes word counts into fixed bands and reports percentages.
func bucketize(wordCounts []int, bands []lengthBand) []pagelens.LengthBucket {
	buckets := make([]pagelens.LengthBucket, len(bands))
	for i, b := range bands {
		buckets[i].Label = b.label
	}
	total := 0
	for _, wc := range wordCounts {
		if wc == 0 {
			continue
		}
		total++
		for i, b := range bands {
			if wc >= b.min && wc <= b.max {
				buckets[i].Count++
				break
			}
		}
	}
	if total > 0 {
		for i := range buckets {
			buckets[i].Percent = round2(float64(buckets[i].Count) / float64(total) * 100)
		}
	}
	return buckets
}

// longestExamples returns up to limit texts with the highest word counts,
// longest first. Ties keep document order.
func longestExamples(texts []string, wordCounts []int, limit int) []pagelens.LongExample {
	type indexed struct {
		idx   int
		words int
	}
	var all []indexed
	for i, wc := range wordCounts {
		if wc > 0 {
			all = append(all, indexed{i, wc})
		}
	}
	sort.SliceStable(all, func(a, b int) bool { return all[a].words > all[b].words })

	if len(all) > limit {
		all = all[:limit]
	}
	var out []pagelens.LongExample
	for _, item := range all {
		out = append(out, pagelens.LongExample{Text: texts[item.idx], Words: item.words})
	}
	return out
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
