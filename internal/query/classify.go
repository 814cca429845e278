package query

import (
	"strings"

	"github.com/wagiedev/munival-go/internal/errors"
	"github.com/wagiedev/munival-go/internal/record"
)

// Category is how a candidate validator relates to a municipality.
type Category string

const (
	// CategoryNewValidator means the validator is unknown to the system.
	CategoryNewValidator Category = "NEW_VALIDATOR"
	// CategoryMigration means the municipality would move to a validator
	// the system already knows.
	CategoryMigration Category = "MIGRATION"
	// CategoryRuleChange means the municipality already uses the validator.
	CategoryRuleChange Category = "RULE_CHANGE"
)

// Reason refines a Category.
type Reason string

const (
	// ReasonNotInSystem: no loaded validator code or description matches.
	ReasonNotInSystem Reason = "not_in_system"
	// ReasonNeverUsed: known to the system, absent from this history.
	ReasonNeverUsed Reason = "never_used"
	// ReasonUsedBefore: present in this history but not the current one.
	ReasonUsedBefore Reason = "used_before"
	// ReasonCurrent: matches the current validator.
	ReasonCurrent Reason = "current"
)

// Classification is the verdict for one candidate and one municipality.
type Classification struct {
	Candidate    string              `json:"candidate"`
	Municipality record.Municipality `json:"municipality"`
	Category     Category            `json:"category"`
	Reason       Reason              `json:"reason"`
	// Previous is the current validator the municipality would move away
	// from. Set only for ReasonUsedBefore.
	Previous *record.Joined `json:"previous,omitempty"`
}

// ClassifyResult pairs a lookup with one classification per matched group.
type ClassifyResult struct {
	*FindResult

	Classifications []Classification `json:"classifications,omitempty"`
}

// ExistsGlobally reports whether candidate is contained, ignoring case, in
// any loaded validator code or description.
func (e *Engine) ExistsGlobally(candidate string) bool {
	c := strings.ToUpper(strings.TrimSpace(candidate))
	for _, k := range e.known {
		if strings.Contains(k, c) {
			return true
		}
	}

	return false
}

// ClassifyGroup classifies candidate against the history of g.
//
// Matching is case-insensitive containment in the validator code or
// description, so a short candidate such as "ISS" matches "ISS DIGITAL".
func (e *Engine) ClassifyGroup(g *Group, candidate string) (Classification, error) {
	candidate = strings.TrimSpace(candidate)
	if candidate == "" {
		return Classification{}, &errors.ArgumentError{Name: "validator"}
	}

	c := Classification{
		Candidate:    candidate,
		Municipality: g.Municipality,
	}

	if !e.ExistsGlobally(candidate) {
		c.Category = CategoryNewValidator
		c.Reason = ReasonNotInSystem

		return c, nil
	}

	used := false
	for _, entry := range g.History {
		if matchesValidator(entry.Joined, candidate) {
			used = true

			break
		}
	}

	if !used {
		c.Category = CategoryMigration
		c.Reason = ReasonNeverUsed

		return c, nil
	}

	current, ok := g.Current()
	if ok && matchesValidator(current.Joined, candidate) {
		c.Category = CategoryRuleChange
		c.Reason = ReasonCurrent

		return c, nil
	}

	c.Category = CategoryMigration
	c.Reason = ReasonUsedBefore

	if ok {
		prev := current.Joined
		c.Previous = &prev
	}

	return c, nil
}

// Classify looks municipality up and classifies candidate against every
// matched group. An unmatched name yields a result without classifications.
func (e *Engine) Classify(municipality, candidate string) (*ClassifyResult, error) {
	if strings.TrimSpace(candidate) == "" {
		return nil, &errors.ArgumentError{Name: "validator"}
	}

	found, err := e.Find(municipality)
	if err != nil {
		return nil, err
	}

	result := &ClassifyResult{FindResult: found}

	for i := range found.Groups {
		c, err := e.ClassifyGroup(&found.Groups[i], candidate)
		if err != nil {
			return nil, err
		}

		result.Classifications = append(result.Classifications, c)
	}

	return result, nil
}

func matchesValidator(row record.Joined, candidate string) bool {
	c := strings.ToUpper(candidate)

	return strings.Contains(strings.ToUpper(row.ValidatorCode), c) ||
		strings.Contains(strings.ToUpper(row.ValidatorDescription), c)
}
