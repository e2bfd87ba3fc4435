// Package catalog provides the static club catalog: a fixed, read-only
// set of club records loaded once at startup and shared by any number
// of concurrent scoring runs.
package catalog

import (
	"fmt"
	"sort"
	"strings"
)

// Club is one catalog entry. The catalog is immutable after New; callers
// receive copies and must not rely on shared slices.
type Club struct {
	ID               string
	Name             string
	FullName         string
	Category         string
	Tags             []string
	Description      string
	Activities       []string
	SkillsOffered    []string
	MeetingFrequency string
	MembershipLevel  string
	TimeCommitment   string
	ClubSize         string
	KeyPrograms      []string
}

// Catalog is an indexed, validated set of clubs.
type Catalog struct {
	clubs []Club
	byID  map[string]int
}

// New builds the catalog from the built-in club data.
func New() (*Catalog, error) {
	return FromClubs(clubData)
}

// FromClubs builds a catalog from the given entries. Every entry must
// carry an id and a category, and ids must be unique; a malformed
// catalog is rejected here rather than silently mis-scored later.
func FromClubs(clubs []Club) (*Catalog, error) {
	c := &Catalog{
		clubs: make([]Club, len(clubs)),
		byID:  make(map[string]int, len(clubs)),
	}
	copy(c.clubs, clubs)
	for i, club := range c.clubs {
		if strings.TrimSpace(club.ID) == "" {
			return nil, fmt.Errorf("%w: entry %d (%q)", ErrMissingID, i, club.Name)
		}
		if strings.TrimSpace(club.Category) == "" {
			return nil, fmt.Errorf("%w: %q", ErrMissingCategory, club.ID)
		}
		if _, exists := c.byID[club.ID]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateID, club.ID)
		}
		c.byID[club.ID] = i
	}
	return c, nil
}

// Len returns the number of clubs in the catalog.
func (c *Catalog) Len() int {
	return len(c.clubs)
}

// Clubs returns all clubs in catalog order.
func (c *Catalog) Clubs() []Club {
	out := make([]Club, len(c.clubs))
	copy(out, c.clubs)
	return out
}

// ByID returns the club with the given id.
func (c *Catalog) ByID(id string) (Club, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Club{}, false
	}
	return c.clubs[i], true
}

// ByCategory returns clubs whose category matches, case-insensitively.
func (c *Catalog) ByCategory(category string) []Club {
	var out []Club
	for _, club := range c.clubs {
		if strings.EqualFold(club.Category, category) {
			out = append(out, club)
		}
	}
	return out
}

// ByTag returns clubs tagged with the given keyword. Tags are stored
// lowercase, so the query is lowered before comparison.
func (c *Catalog) ByTag(tag string) []Club {
	tag = strings.ToLower(tag)
	var out []Club
	for _, club := range c.clubs {
		for _, t := range club.Tags {
			if t == tag {
				out = append(out, club)
				break
			}
		}
	}
	return out
}

// Search returns clubs whose name, description, activities, or offered
// skills contain the query, case-insensitively.
func (c *Catalog) Search(query string) []Club {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	var out []Club
	for _, club := range c.clubs {
		if clubMatchesQuery(club, q) {
			out = append(out, club)
		}
	}
	return out
}

func clubMatchesQuery(club Club, q string) bool {
	if strings.Contains(strings.ToLower(club.Name), q) ||
		strings.Contains(strings.ToLower(club.FullName), q) ||
		strings.Contains(strings.ToLower(club.Description), q) {
		return true
	}
	for _, a := range club.Activities {
		if strings.Contains(strings.ToLower(a), q) {
			return true
		}
	}
	for _, s := range club.SkillsOffered {
		if strings.Contains(strings.ToLower(s), q) {
			return true
		}
	}
	return false
}

// Categories returns the distinct categories in catalog order.
func (c *Catalog) Categories() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, club := range c.clubs {
		if _, ok := seen[club.Category]; !ok {
			seen[club.Category] = struct{}{}
			out = append(out, club.Category)
		}
	}
	return out
}

// Tags returns the distinct tags across all clubs, sorted.
func (c *Catalog) Tags() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, club := range c.clubs {
		for _, t := range club.Tags {
			if _, ok := seen[t]; !ok {
				seen[t] = struct{}{}
				out = append(out, t)
			}
		}
	}
	sort.Strings(out)
	return out
}

// SimilarTo returns up to n clubs ranked by shared-tag count with the
// given club, descending; ties keep catalog order. Useful as a static
// fallback when a user's answers produce no meaningful match.
func (c *Catalog) SimilarTo(id string, n int) []Club {
	target, ok := c.ByID(id)
	if !ok || n <= 0 {
		return nil
	}
	targetTags := make(map[string]struct{}, len(target.Tags))
	for _, t := range target.Tags {
		targetTags[t] = struct{}{}
	}

	type ranked struct {
		club   Club
		shared int
	}
	var candidates []ranked
	for _, club := range c.clubs {
		if club.ID == id {
			continue
		}
		shared := 0
		for _, t := range club.Tags {
			if _, ok := targetTags[t]; ok {
				shared++
			}
		}
		candidates = append(candidates, ranked{club: club, shared: shared})
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].shared > candidates[j].shared
	})
	if n > len(candidates) {
		n = len(candidates)
	}
	out := make([]Club, n)
	for i := 0; i < n; i++ {
		out[i] = candidates[i].club
	}
	return out
}
