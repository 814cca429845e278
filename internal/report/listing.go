package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/wagiedev/munival-go/internal/query"
	"github.com/wagiedev/munival-go/internal/record"
)

// Validators renders the validator listing. state is echoed in the header
// when non-empty.
func Validators(list []query.ValidatorUsage, state string) string {
	var b strings.Builder

	b.WriteString("VALIDADORES CADASTRADOS NO SISTEMA\n")

	if state = strings.TrimSpace(state); state != "" {
		fmt.Fprintf(&b, "Filtrado por estado: %s\n", strings.ToUpper(state))
	}

	b.WriteString(rule("=", 80))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s | %s | %s | %s\n",
		left("CÓDIGO", 25), left("DESCRIÇÃO", 35), left("ESTADOS", 10), left("MUNICÍPIOS", 10))
	b.WriteString(rule("-", 85))

	for _, v := range list {
		fmt.Fprintf(&b, "%s | %s | %s | %s\n",
			left(v.Code, 25),
			left(v.Description, 35),
			left(strings.Join(v.States, ","), 10),
			right(strconv.Itoa(v.Municipalities), 10),
		)
	}

	fmt.Fprintf(&b, "\nTotal de validadores únicos: %d\n", len(list))

	return b.String()
}

// Rows renders joined rows as a table. A positive limit stops after that
// many rows and notes how many were left out.
func Rows(rows []record.Joined, limit int) string {
	var b strings.Builder

	writeRowsHeader(&b)

	for i, r := range rows {
		if limit > 0 && i >= limit {
			fmt.Fprintf(&b, "\n... e mais %d registros\n", len(rows)-limit)

			break
		}

		writeRow(&b, r)
	}

	return b.String()
}

// Export writes the full association report: title, generation time,
// optional state, every row and the total.
func Export(w io.Writer, rows []record.Joined, state string, now time.Time) error {
	var b strings.Builder

	b.WriteString("ASSOCIAÇÃO DE MUNICÍPIOS COM VALIDADORES\n")
	b.WriteString(rule("=", 140))
	fmt.Fprintf(&b, "Data: %s\n", now.Format("02/01/2006 15:04"))

	if state != "" {
		fmt.Fprintf(&b, "Estado: %s\n", strings.ToUpper(state))
	}

	b.WriteString(rule("=", 140))
	b.WriteString("\n")

	writeRowsHeader(&b)

	for _, r := range rows {
		writeRow(&b, r)
	}

	b.WriteString("\n")
	b.WriteString(rule("=", 140))
	fmt.Fprintf(&b, "Total de registros: %d\n", len(rows))

	_, err := io.WriteString(w, b.String())

	return err
}

// Stats renders the summary counters.
func Stats(s query.Stats) string {
	var b strings.Builder

	b.WriteString("=== ESTATÍSTICAS ===\n")
	fmt.Fprintf(&b, "Total de municípios: %d\n", s.Municipalities)
	fmt.Fprintf(&b, "Municípios com validador: %d\n", s.WithValidator)
	fmt.Fprintf(&b, "Municípios sem validador: %d\n", s.WithoutValidator)
	fmt.Fprintf(&b, "Estados com pelo menos um validador: %d\n", s.StatesWithValidator)
	fmt.Fprintf(&b, "Total de registros associados: %d\n", s.JoinedRows)
	fmt.Fprintf(&b, "Total de registros de validadores: %d\n", s.ValidatorRows)

	return b.String()
}

func writeRowsHeader(b *strings.Builder) {
	b.WriteString(rule("-", 140))
	fmt.Fprintf(b, "%s | %s | %s | %s | %s | %s | %s\n",
		left("UF", 2), left("CÓD", 4), left("MUNICÍPIO", 40), left("CÓD VAL", 20),
		left("VALIDADOR", 30), left("DT VALID", 10), left("FINAL", 5))
	b.WriteString(rule("-", 140))
}

func writeRow(b *strings.Builder, r record.Joined) {
	fmt.Fprintf(b, "%s | %s | %s | %s | %s | %s | %s\n",
		left(r.State, 2),
		right(strconv.Itoa(r.Code), 4),
		left(r.Name, 40),
		left(r.ValidatorCode, 20),
		left(r.ValidatorDescription, 30),
		left(r.ExpiryDate, 10),
		left(string(r.Final), 5),
	)
}
