package report

import (
	"fmt"
	"strings"

	"github.com/wagiedev/munival-go/internal/query"
)

// Classify renders the lookup followed by one classification block per
// matched municipality. An unmatched name renders the not-found block only.
func Classify(r *query.ClassifyResult) string {
	out := Find(r.FindResult)
	if !r.Found() {
		return out
	}

	var b strings.Builder

	b.WriteString(out)
	b.WriteString("\n")

	many := len(r.Classifications) > 1

	for _, c := range r.Classifications {
		b.WriteString("\n")

		if many {
			fmt.Fprintf(&b, "📋 CLASSIFICAÇÃO DO VALIDADOR '%s' (%s - %s):\n\n",
				c.Candidate, c.Municipality.Name, c.Municipality.State)
		} else {
			fmt.Fprintf(&b, "📋 CLASSIFICAÇÃO DO VALIDADOR '%s':\n\n", c.Candidate)
		}

		writeClassification(&b, c)
	}

	return b.String()
}

// CategoryLabel returns the display label of a category.
func CategoryLabel(c query.Category) string {
	switch c {
	case query.CategoryNewValidator:
		return "NOVO VALIDADOR"
	case query.CategoryMigration:
		return "MIGRAÇÃO DE VALIDADOR"
	case query.CategoryRuleChange:
		return "ALTERAÇÃO DE REGRAS"
	default:
		return string(c)
	}
}

// Rationale returns the one-line explanation of a classification.
func Rationale(c query.Classification) string {
	name := c.Municipality.Name

	switch c.Reason {
	case query.ReasonNotInSystem:
		return "Este validador não existe no sistema"
	case query.ReasonNeverUsed:
		return "O validador existe no sistema mas nunca foi usado por " + name
	case query.ReasonUsedBefore:
		return name + " já usou este validador, mas não é o atual"
	case query.ReasonCurrent:
		return name + " já usa este validador atualmente"
	default:
		return ""
	}
}

func writeClassification(b *strings.Builder, c query.Classification) {
	icon := map[query.Category]string{
		query.CategoryNewValidator: "✅",
		query.CategoryMigration:    "↔️",
		query.CategoryRuleChange:   "🔄",
	}[c.Category]

	fmt.Fprintf(b, "%s %s (%s)\n", icon, CategoryLabel(c.Category), c.Category)
	fmt.Fprintf(b, "→ %s\n", Rationale(c))

	if c.Previous != nil {
		fmt.Fprintf(b, "→ Mudança de '%s' para '%s'\n", c.Previous.ValidatorDescription, c.Candidate)
	}
}
