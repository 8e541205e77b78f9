package insights

import (
	"regexp"
	"sort"
	"strings"

	"golang.org/x/text/cases"

	"github.com/seo-optimizer/aiready/textstat"
)

// Entity types.
const (
	EntityPerson       = "person"
	EntityOrganization = "organization"
	EntityDate         = "date"
	EntityLocation     = "location"
	EntityConcept      = "concept"
)

const minEntityMentions = 2

// typeOrder breaks ties between equally voted types.
var typeOrder = []string{EntityPerson, EntityOrganization, EntityLocation, EntityDate, EntityConcept}

// Entity is a capitalized phrase mentioned at least twice.
type Entity struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Mentions int    `json:"mentions"`
}

var (
	capitalizedRun = regexp.MustCompile(`[A-Z][\w&'-]*(?:\s+[A-Z][\w&'-]*){0,3}`)

	orgSuffix      = regexp.MustCompile(`(?i)\b(?:inc|corp|corporation|llc|ltd|company|co|group|university|institute|association|foundation|agency|labs?|technologies|systems)\.?$`)
	calendarWord   = regexp.MustCompile(`(?i)^(?:january|february|march|april|may|june|july|august|september|october|november|december|monday|tuesday|wednesday|thursday|friday|saturday|sunday)\b`)
	personBefore   = regexp.MustCompile(`(?i)\b(?:dr|mr|mrs|ms|prof|professor|ceo|founder|author|director|by)\.?\s*$`)
	personAfter    = regexp.MustCompile(`(?i)^\s*,?\s*(?:said|says|wrote|explains|argues|told|notes)\b`)
	orgAfter       = regexp.MustCompile(`(?i)^\s*(?:'s\s+)?(?:announced|reported|released|launched|acquired|employees|customers|platform)\b`)
	locationBefore = regexp.MustCompile(`(?i)\b(?:in|at|from|near|across)\s*$`)
)

// leadingStopwords are capitalized only because they open a sentence or a
// heading; they are trimmed from the front of a run.
var leadingStopwords = map[string]bool{
	"the": true, "a": true, "an": true, "this": true, "that": true, "these": true,
	"those": true, "in": true, "on": true, "at": true, "for": true, "and": true,
	"but": true, "or": true, "if": true, "when": true, "what": true, "how": true,
	"why": true, "where": true, "who": true, "it": true, "its": true, "we": true,
	"our": true, "you": true, "your": true, "they": true, "their": true, "he": true,
	"she": true, "i": true, "as": true, "by": true, "with": true, "from": true,
	"to": true, "of": true, "is": true, "are": true, "do": true, "does": true,
	"can": true, "will": true, "most": true, "many": true, "some": true, "all": true,
	"each": true, "every": true, "here": true, "there": true, "use": true, "add": true,
}

type entityTally struct {
	name     string
	mentions int
	votes    map[string]int
}

// Entities counts capitalized phrases across sentences and classifies each
// from its spelling and the words around it. Output is sorted by mentions,
// then name.
func Entities(sentences []textstat.Sentence) []Entity {
	fold := cases.Fold()
	tallies := make(map[string]*entityTally)

	for _, s := range sentences {
		for _, loc := range capitalizedRun.FindAllStringIndex(s.Text, -1) {
			name, offset := trimStopwords(s.Text[loc[0]:loc[1]])
			if name == "" {
				continue
			}
			start := loc[0] + offset
			// A lone capitalized word opening a sentence is most likely
			// ordinary prose.
			if start == 0 && !strings.Contains(name, " ") {
				continue
			}

			key := fold.String(name)
			t, ok := tallies[key]
			if !ok {
				t = &entityTally{name: name, votes: make(map[string]int)}
				tallies[key] = t
			}
			t.mentions++
			t.votes[classify(name, s.Text[:start], s.Text[loc[1]:])]++
		}
	}

	var entities []Entity
	for _, t := range tallies {
		if t.mentions < minEntityMentions {
			continue
		}
		entities = append(entities, Entity{Name: t.name, Type: t.winner(), Mentions: t.mentions})
	}

	sort.Slice(entities, func(i, j int) bool {
		if entities[i].Mentions != entities[j].Mentions {
			return entities[i].Mentions > entities[j].Mentions
		}
		return entities[i].Name < entities[j].Name
	})

	if len(entities) > maxEntities {
		entities = entities[:maxEntities]
	}
	return nonNil(entities)
}

// trimStopwords drops leading stopwords and single letters from run,
// returning the rest and its byte offset within run.
func trimStopwords(run string) (string, int) {
	offset := 0
	rest := run
	for rest != "" {
		word, tail, _ := strings.Cut(rest, " ")
		if !leadingStopwords[strings.ToLower(word)] && len(word) > 1 {
			break
		}
		offset += len(rest) - len(strings.TrimLeft(tail, " "))
		rest = strings.TrimLeft(tail, " ")
	}
	return strings.TrimRight(strings.TrimSuffix(rest, "'s"), "'-"), offset
}

func classify(name, before, after string) string {
	switch {
	case calendarWord.MatchString(name):
		return EntityDate
	case orgSuffix.MatchString(name):
		return EntityOrganization
	case personBefore.MatchString(before) || personAfter.MatchString(after):
		return EntityPerson
	case orgAfter.MatchString(after):
		return EntityOrganization
	case locationBefore.MatchString(before):
		return EntityLocation
	default:
		return EntityConcept
	}
}

func (t *entityTally) winner() string {
	best, bestVotes := EntityConcept, 0
	for _, typ := range typeOrder {
		if v := t.votes[typ]; v > bestVotes {
			best, bestVotes = typ, v
		}
	}
	return best
}
