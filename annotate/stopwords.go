package annotate

// determiners are skipped between a trigger verb and its noun phrase,
// so "ordered the pad thai" and "ordered pad thai" extract the same span.
var determiners = map[string]struct{}{
	"the": {}, "a": {}, "an": {},
	"some": {}, "any": {}, "more": {}, "another": {}, "every": {},
	"my": {}, "our": {}, "your": {}, "his": {}, "her": {}, "its": {}, "their": {},
	"this": {}, "that": {}, "these": {}, "those": {},
	"one": {}, "two": {}, "three": {}, "few": {}, "couple": {},
}

// functionWords terminate a contextual noun phrase. English function words
// and high-frequency auxiliaries that carry no dish-naming value.
var functionWords = map[string]struct{}{
	// Conjunctions
	"and": {}, "or": {}, "but": {}, "so": {}, "because": {}, "though": {},
	"although": {}, "while": {}, "if": {}, "then": {}, "that": {},
	// Prepositions
	"with": {}, "without": {}, "for": {}, "at": {}, "in": {}, "on": {},
	"to": {}, "from": {}, "of": {}, "over": {}, "under": {}, "about": {},
	"after": {}, "before": {}, "during": {}, "into": {}, "near": {}, "by": {},
	// Pronouns
	"i": {}, "we": {}, "you": {}, "he": {}, "she": {}, "they": {}, "it": {},
	"me": {}, "us": {}, "them": {}, "him": {},
	// Auxiliaries and copulas
	"was": {}, "were": {}, "is": {}, "are": {}, "am": {}, "be": {},
	"been": {}, "being": {}, "do": {}, "does": {}, "did": {},
	"will": {}, "would": {}, "can": {}, "could": {}, "should": {}, "have": {}, "has": {},
	// Adverbial fillers
	"not": {}, "very": {}, "really": {}, "quite": {}, "too": {}, "also": {},
	"just": {}, "again": {}, "there": {}, "here": {}, "as": {}, "than": {},
	"when": {}, "where": {}, "which": {}, "who": {}, "what": {}, "how": {}, "why": {},
	// Temporal adverbs that trail dish mentions
	"once": {}, "twice": {}, "yesterday": {}, "today": {}, "tonight": {},
	"always": {}, "often": {}, "usually": {}, "sometimes": {}, "ever": {}, "never": {},
}

func isDeterminer(key string) bool {
	_, ok := determiners[key]
	return ok
}

func isFunctionWord(key string) bool {
	_, ok := functionWords[key]
	return ok
}
