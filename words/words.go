// Package words supplies the static language tables the analyzers consume:
// stop words, transition words, complex-word exceptions, and domain term
// lists. Tables are returned as fresh copies so callers can extend or swap
// them per locale without affecting other consumers.
package words

// StopWords returns the English stop word set.
func StopWords() map[string]struct{} {
	return toSet(stopWordsEN)
}

// TransitionWords returns the transition word list for a language tag.
// Supported: "en", "de", "fr". Unknown tags fall back to English.
func TransitionWords(lang string) []string {
	var src []string
	switch lang {
	case "de":
		src = transitionWordsDE
	case "fr":
		src = transitionWordsFR
	default:
		src = transitionWordsEN
	}
	out := make([]string, len(src))
	copy(out, src)
	return out
}

// ComplexWordExceptions returns English words with three or more syllables
// that readers nonetheless process as simple; they are excluded from
// complex-word counts.
func ComplexWordExceptions() map[string]struct{} {
	return toSet(complexExceptions)
}

// BrandTerms returns well-known brand names used as navigational-intent signals.
func BrandTerms() map[string]struct{} {
	return toSet(brandTerms)
}

// ProductNouns returns generic product nouns used as commercial-intent signals.
func ProductNouns() map[string]struct{} {
	return toSet(productNouns)
}

func toSet(list []string) map[string]struct{} {
	set := make(map[string]struct{}, len(list))
	for _, w := range list {
		set[w] = struct{}{}
	}
	return set
}

var stopWordsEN = []string{
	"a", "about", "above", "after", "again", "against", "all", "am", "an",
	"and", "any", "are", "as", "at", "be", "because", "been", "before",
	"being", "below", "between", "both", "but", "by", "can", "could", "did",
	"do", "does", "doing", "down", "during", "each", "few", "for", "from",
	"further", "had", "has", "have", "having", "he", "her", "here", "hers",
	"herself", "him", "himself", "his", "how", "i", "if", "in", "into", "is",
	"it", "its", "itself", "just", "me", "more", "most", "my", "myself",
	"no", "nor", "not", "now", "of", "off", "on", "once", "only", "or",
	"other", "our", "ours", "ourselves", "out", "over", "own", "same", "she",
	"should", "so", "some", "such", "than", "that", "the", "their", "theirs",
	"them", "themselves", "then", "there", "these", "they", "this", "those",
	"through", "to", "too", "under", "until", "up", "very", "was", "we",
	"were", "what", "when", "where", "which", "while", "who", "whom", "why",
	"will", "with", "you", "your", "yours", "yourself", "yourselves",
}

var transitionWordsEN = []string{
	"accordingly", "additionally", "afterward", "also", "although",
	"anyway", "because", "besides", "but", "certainly", "consequently",
	"conversely", "finally", "first", "firstly", "following", "furthermore",
	"hence", "however", "indeed", "instead", "lastly", "likewise",
	"meanwhile", "moreover", "nevertheless", "next", "nonetheless",
	"otherwise", "overall", "rather", "second", "secondly", "similarly",
	"since", "specifically", "still", "subsequently", "then", "therefore",
	"third", "thirdly", "though", "thus", "ultimately", "whereas", "while",
	"yet", "in addition", "in conclusion", "in contrast", "in fact",
	"for example", "for instance", "on the other hand", "as a result",
}

var transitionWordsDE = []string{
	"aber", "allerdings", "also", "anschließend", "außerdem", "beispielsweise",
	"dabei", "dadurch", "dagegen", "daher", "danach", "dann", "darum",
	"dazu", "demnach", "dennoch", "deshalb", "deswegen", "ebenfalls",
	"ebenso", "erstens", "folglich", "hingegen", "infolgedessen", "jedoch",
	"schließlich", "somit", "sowie", "trotzdem", "weiterhin", "zudem",
	"zuerst", "zuletzt", "zum beispiel", "zunächst", "zusätzlich", "zweitens",
}

var transitionWordsFR = []string{
	"ainsi", "alors", "aussi", "cependant", "certes", "d'abord", "d'ailleurs",
	"de plus", "donc", "du coup", "en effet", "en fait", "en outre", "en revanche",
	"enfin", "ensuite", "finalement", "mais", "malgré", "néanmoins",
	"par ailleurs", "par conséquent", "par exemple", "pourtant", "puis",
	"puisque", "tandis que", "toutefois",
}

var complexExceptions = []string{
	"anybody", "anywhere", "everybody", "everything", "everywhere",
	"another", "business", "category", "company", "different", "energy",
	"family", "however", "important", "interest", "interesting", "internet",
	"medium", "probably", "together", "usually", "version", "video",
}

var brandTerms = []string{
	"amazon", "apple", "ebay", "etsy", "facebook", "github", "gmail",
	"google", "instagram", "linkedin", "microsoft", "netflix", "paypal",
	"pinterest", "reddit", "samsung", "shopify", "spotify", "tiktok",
	"twitter", "walmart", "wikipedia", "wordpress", "youtube",
}

var productNouns = []string{
	"app", "appliance", "camera", "course", "device", "gadget", "headphones",
	"hosting", "kit", "laptop", "machine", "maker", "mattress", "monitor",
	"phone", "plugin", "printer", "router", "service", "software",
	"subscription", "theme", "tool", "vacuum", "watch",
}
