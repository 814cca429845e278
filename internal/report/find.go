package report

import (
	"fmt"
	"strings"

	"github.com/wagiedev/munival-go/internal/query"
)

// Find renders a lookup: one block per municipality or, when nothing
// matched, the not-found block with similar names.
func Find(r *query.FindResult) string {
	var b strings.Builder

	if !r.Found() {
		fmt.Fprintf(&b, "Município '%s' não encontrado!\n\n", r.Query)
		b.WriteString("Municípios similares:\n")

		for _, s := range r.Suggestions {
			fmt.Fprintf(&b, "  - %s\n", s)
		}

		return b.String()
	}

	if r.Match == query.MatchPartial {
		fmt.Fprintf(&b, "⚠️  Não foi encontrado município com nome exato '%s'. Mostrando resultados parciais.\n", r.Query)
	}

	for i := range r.Groups {
		writeGroup(&b, &r.Groups[i])
	}

	return b.String()
}

func writeGroup(b *strings.Builder, g *query.Group) {
	m := g.Municipality

	fmt.Fprintf(b, "\nMUNICÍPIO: %s - %s (Código: %d)\n", m.Name, m.State, m.Code)
	b.WriteString(rule("=", 80))
	b.WriteString("\n")

	if !g.HasHistory() {
		b.WriteString("❌ Este município NÃO possui validadores cadastrados.\n")

		return
	}

	b.WriteString("📋 VALIDADORES DO MUNICÍPIO:\n\n")
	fmt.Fprintf(b, "%s | %s | %s | %s | %s\n",
		left("VALIDADOR", 25), left("DESCRIÇÃO", 35), left("DT INICIAL", 10), left("DT VALID", 10), left("STATUS", 10))
	b.WriteString(rule("-", 100))

	for _, e := range g.History {
		fmt.Fprintf(b, "%s | %s | %s | %s | %s\n",
			left(e.ValidatorCode, 25),
			left(e.ValidatorDescription, 35),
			center(e.StartDate, 10),
			center(e.ExpiryDate, 10),
			left(e.Status.String(), 10),
		)
	}

	if current, ok := g.Current(); ok {
		fmt.Fprintf(b, "\n🔍 VALIDADOR MAIS ATUAL: %s\n", current.ValidatorDescription)
	}
}
