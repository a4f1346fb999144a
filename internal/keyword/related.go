package keyword

import "strings"

const (
	maxRelated     = 8
	maxSuggestions = 10
)

// Modifier groups applied when generating related-keyword variations. Two
// per group keeps the list broad without flooding it.
var questionModifiers = []string{"how to", "what is"}
var commercialModifiers = []string{"best", "top"}
var localModifiers = []string{"near me", "local"}
var longTailModifiers = []string{"guide", "tips"}

var synonymMap = map[string][]string{
	"seo":          {"search engine optimization", "organic search", "search marketing"},
	"marketing":    {"advertising", "promotion", "branding"},
	"website":      {"site", "web page", "online presence"},
	"business":     {"company", "enterprise", "organization"},
	"tool":         {"software", "application", "platform"},
	"service":      {"solution", "offering", "support"},
	"analysis":     {"analytics", "examination", "assessment"},
	"strategy":     {"plan", "approach", "methodology"},
	"optimization": {"improvement", "enhancement", "refinement"},
	"digital":      {"online", "internet", "web-based"},
}

// Ordered iteration over synonymMap so output is stable.
var synonymOrder = []string{
	"seo", "marketing", "website", "business", "tool",
	"service", "analysis", "strategy", "optimization", "digital",
}

var industryMap = map[string][]string{
	"seo":       {"SERP", "backlinks", "keyword ranking"},
	"marketing": {"lead generation", "conversion rate", "ROI"},
	"web":       {"responsive design", "user experience", "page speed"},
	"business":  {"revenue growth", "market share", "competitive advantage"},
	"digital":   {"online presence", "social media", "content marketing"},
}

var industryOrder = []string{"seo", "marketing", "web", "business", "digital"}

// RelatedKeywords derives up to 8 variations of a keyword: question,
// commercial, local, and long-tail modifiers, then synonym substitutions,
// then a plural or singular form.
func RelatedKeywords(kw string) []string {
	base := strings.ToLower(kw)
	var related []string

	for _, m := range questionModifiers {
		related = append(related, m+" "+base)
	}
	for _, m := range commercialModifiers {
		related = append(related, m+" "+base)
	}
	for _, m := range localModifiers {
		related = append(related, base+" "+m)
	}
	for _, m := range longTailModifiers {
		related = append(related, m+" "+base)
	}

	synonyms := keywordSynonyms(base)
	if len(synonyms) > 3 {
		synonyms = synonyms[:3]
	}
	related = append(related, synonyms...)

	if !strings.HasSuffix(base, "s") {
		related = append(related, base+"s")
	} else if len(base) > 3 {
		related = append(related, base[:len(base)-1])
	}

	if len(related) > maxRelated {
		related = related[:maxRelated]
	}
	return related
}

// keywordSynonyms substitutes known synonyms into the keyword wherever a
// mapped word appears.
func keywordSynonyms(base string) []string {
	var out []string
	for _, word := range synonymOrder {
		if !strings.Contains(base, word) {
			continue
		}
		for _, syn := range synonymMap[word] {
			out = append(out, strings.ReplaceAll(base, word, syn))
		}
	}
	return out
}

// Suggestions builds cross-keyword suggestions: pairwise combinations of
// the input keywords plus industry terms matched against each keyword.
// First occurrence wins on duplicates; capped at 10.
func Suggestions(keywords []string) []string {
	var out []string
	seen := make(map[string]bool)
	add := func(s string) {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}

	for i, a := range keywords {
		for _, b := range keywords[i+1:] {
			add(a + " " + b)
			add(b + " " + a)
		}
	}

	for _, kw := range keywords {
		lower := strings.ToLower(kw)
		for _, industry := range industryOrder {
			if strings.Contains(lower, industry) {
				for _, term := range industryMap[industry] {
					add(term)
				}
			}
		}
	}

	if len(out) > maxSuggestions {
		out = out[:maxSuggestions]
	}
	return out
}
