package query

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	munerrors "github.com/wagiedev/munival-go/internal/errors"
	"github.com/wagiedev/munival-go/internal/join"
	"github.com/wagiedev/munival-go/internal/record"
)

var fixedNow = time.Date(2026, time.October, 19, 12, 0, 0, 0, time.Local)

type fixtureMunicipality struct {
	state      string
	code       int
	name       string
	validators []record.Validator
}

func final(code, desc, expiry string) record.Validator {
	return record.Validator{Code: code, Description: desc, ExpiryDate: expiry, Final: record.FlagFinal}
}

func notFinal(code, desc, expiry string) record.Validator {
	return record.Validator{Code: code, Description: desc, ExpiryDate: expiry, Final: record.FlagNotFinal}
}

var fixture = []fixtureMunicipality{
	{"RJ", 3304557, "RIO DE JANEIRO", []record.Validator{
		notFinal("ISSNET", "ISS.NET", "31/12/2009"),
		final("NOTACARIOCA", "NOTA CARIOCA", ""),
	}},
	{"AC", 1200013, "ACRELÂNDIA", nil},
	{"SP", 3524402, "JACAREÍ", []record.Validator{
		final("BETHA", "BETHA SISTEMAS", ""),
	}},
	{"RJ", 3303500, "NOVA IGUAÇU", []record.Validator{
		notFinal("WEBISS", "WEBISS", "31/12/2011"),
		final("ISSDIGITAL", "ISS DIGITAL", "31/12/2099"),
	}},
	{"RJ", 3303401, "NOVA FRIBURGO", []record.Validator{
		final("DMS", "DMS", "01/01/2020"),
		notFinal("SIGISS", "SIGISS", ""),
	}},
	{"MG", 3144805, "NOVA LIMA", nil},
	{"SC", 4216602, "SÃO JOSÉ", nil},
	{"SP", 3549904, "SÃO JOSÉ DOS CAMPOS", []record.Validator{
		final("ISSDIGITAL", "ISS DIGITAL", ""),
	}},
	{"MG", 3106705, "BETIM", []record.Validator{
		final("A", "SISTEMA A", "31/12/2030"),
		final("B", "SISTEMA B", "31/12/2040"),
		final("C", "SISTEMA C", "31/12/2035"),
		notFinal("D", "SISTEMA D", ""),
	}},
}

func newFixtureEngine(t *testing.T) *Engine {
	t.Helper()

	municipalities := record.NewMunicipalityTable(len(fixture))
	validators := record.NewValidatorTable()

	for _, f := range fixture {
		m := record.Municipality{State: f.state, Code: f.code, Name: f.name}
		municipalities.Put(m)

		for _, v := range f.validators {
			validators.Append(m.Key(), v)
		}
	}

	return New(join.Join(municipalities, validators), validators, WithClock(func() time.Time { return fixedNow }))
}

func findOne(t *testing.T, e *Engine, name string) *Group {
	t.Helper()

	result, err := e.Find(name)
	require.NoError(t, err)
	require.Len(t, result.Groups, 1, "expected a single municipality for %q", name)

	return &result.Groups[0]
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{in: "  São Paulo ", want: "SAO PAULO"},
		{in: "Jacareí", want: "JACAREI"},
		{in: "nova iguaçu", want: "NOVA IGUACU"},
		{in: "Acrelândia-AC 123", want: "ACRELANDIA-AC 123"},
		{in: "", want: ""},
	}

	for _, tc := range tests {
		require.Equal(t, tc.want, Normalize(tc.in), "Normalize(%q)", tc.in)
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"São José dos Campos", "  ÀÉÎÕÜ ç ñ ", "Mogi-Guaçu", "ǰ", "plain", "a \u0301", "\u0301 niteroi", " \u0301"} {
		once := Normalize(s)
		require.Equal(t, once, Normalize(once), "Normalize not idempotent for %q", s)
	}
}

func TestFind_ExactMatch(t *testing.T) {
	t.Parallel()

	e := newFixtureEngine(t)

	result, err := e.Find("rio de janeiro")
	require.NoError(t, err)
	require.True(t, result.Found())
	require.Equal(t, MatchExact, result.Match)
	require.Len(t, result.Groups, 1)

	g := result.Groups[0]
	require.Equal(t, "RIO DE JANEIRO", g.Municipality.Name)
	require.Len(t, g.History, 2)
	require.Equal(t, "S-ATIVO", g.History[1].Status.String())
	require.Equal(t, "N-EXPIRADO", g.History[0].Status.String())

	current, ok := g.Current()
	require.True(t, ok)
	require.Equal(t, "NOTA CARIOCA", current.ValidatorDescription)
}

func TestFind_ExactBeatsPartial(t *testing.T) {
	t.Parallel()

	g := findOne(t, newFixtureEngine(t), "sao jose")
	require.Equal(t, "SC", g.Municipality.State)
	require.False(t, g.HasHistory())
}

func TestFind_PartialFallback(t *testing.T) {
	t.Parallel()

	result, err := newFixtureEngine(t).Find("NOVA")
	require.NoError(t, err)
	require.True(t, result.Found())
	require.Equal(t, MatchPartial, result.Match)

	names := make([]string, 0, len(result.Groups))
	for _, g := range result.Groups {
		names = append(names, g.Municipality.Name)
	}

	require.Equal(t, []string{"NOVA IGUAÇU", "NOVA FRIBURGO", "NOVA LIMA"}, names)
}

func TestFind_NoMatchSuggestions(t *testing.T) {
	t.Parallel()

	result, err := newFixtureEngine(t).Find("Nova Xyzzy")
	require.NoError(t, err)
	require.False(t, result.Found())
	require.Equal(t, MatchNone, result.Match)
	require.Equal(t, []string{
		"NOVA FRIBURGO (RJ)",
		"NOVA IGUAÇU (RJ)",
		"NOVA LIMA (MG)",
	}, result.Suggestions)

	result, err = newFixtureEngine(t).Find("xy zz")
	require.NoError(t, err)
	require.False(t, result.Found())
	require.Empty(t, result.Suggestions)
}

func TestFind_SuggestionsCapped(t *testing.T) {
	t.Parallel()

	municipalities := record.NewMunicipalityTable(0)
	for i := range 25 {
		municipalities.Put(record.Municipality{State: "SP", Code: i, Name: fmt.Sprintf("CIDADE %02d", i)})
	}

	validators := record.NewValidatorTable()
	e := New(join.Join(municipalities, validators), validators)

	result, err := e.Find("cidade inexistente")
	require.NoError(t, err)
	require.Len(t, result.Suggestions, MaxSuggestions)
	require.Equal(t, "CIDADE 00 (SP)", result.Suggestions[0])
	require.Equal(t, "CIDADE 19 (SP)", result.Suggestions[MaxSuggestions-1])
}

func TestFind_EmptyQuery(t *testing.T) {
	t.Parallel()

	_, err := newFixtureEngine(t).Find("   ")
	require.ErrorIs(t, err, munerrors.ErrEmptyQuery)
}

func TestFind_DeduplicatesByValidatorCode(t *testing.T) {
	t.Parallel()

	rows := []record.Joined{
		{State: "RJ", Code: 1, Name: "NITEROI", ValidatorCode: "ISSNET", ValidatorDescription: "ISS.NET", StartDate: "01/01/2010", Final: record.FlagFinal},
		{State: "RJ", Code: 1, Name: "NITEROI", ValidatorCode: "ISSNET", ValidatorDescription: "ISS.NET", StartDate: "01/01/2015", Final: record.FlagFinal},
		{State: "RJ", Code: 1, Name: "NITEROI", ValidatorCode: "WEBISS", ValidatorDescription: "WEBISS", Final: record.FlagNotFinal},
	}

	e := New(rows, nil, WithClock(func() time.Time { return fixedNow }))
	g := findOne(t, e, "niteroi")

	require.Len(t, g.History, 2)
	require.Equal(t, "01/01/2010", g.History[0].StartDate)
	require.Equal(t, "WEBISS", g.History[1].ValidatorCode)
}

func TestStatusOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		row    record.Joined
		expect string
	}{
		{name: "no expiry", row: record.Joined{Final: record.FlagFinal}, expect: "S-ATIVO"},
		{name: "future expiry", row: record.Joined{Final: record.FlagNotFinal, ExpiryDate: "31/12/2099"}, expect: "N-ATIVO"},
		{name: "past expiry", row: record.Joined{Final: record.FlagFinal, ExpiryDate: "01/01/2020"}, expect: "S-EXPIRADO"},
		{name: "unparseable expiry", row: record.Joined{Final: record.FlagFinal, ExpiryDate: "32/13/2023"}, expect: "S-ATIVO"},
		{name: "expires today", row: record.Joined{Final: record.FlagFinal, ExpiryDate: "19/10/2026"}, expect: "S-EXPIRADO"},
		{name: "expires tomorrow", row: record.Joined{Final: record.FlagFinal, ExpiryDate: "20/10/2026"}, expect: "S-ATIVO"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tc.expect, StatusOf(tc.row, fixedNow).String())
		})
	}
}

func TestStatusOf_ExpiryDayBoundary(t *testing.T) {
	t.Parallel()

	row := record.Joined{Final: record.FlagNotFinal, ExpiryDate: "19/10/2026"}
	midnight := time.Date(2026, time.October, 19, 0, 0, 0, 0, time.Local)

	require.Equal(t, "N-ATIVO", StatusOf(row, midnight).String())
	require.Equal(t, "N-EXPIRADO", StatusOf(row, midnight.Add(time.Nanosecond)).String())
	require.Equal(t, "N-ATIVO", StatusOf(row, midnight.Add(-time.Nanosecond)).String())
}

func TestCurrent_LatestUnexpiredFinal(t *testing.T) {
	t.Parallel()

	g := findOne(t, newFixtureEngine(t), "betim")

	current, ok := g.Current()
	require.True(t, ok)
	require.Equal(t, "B", current.ValidatorCode)
}

func TestCurrent_FinalWithoutExpiryWinsOutright(t *testing.T) {
	t.Parallel()

	history := []Entry{
		{Joined: record.Joined{ValidatorCode: "X", Final: record.FlagFinal, ExpiryDate: "31/12/2090"}},
		{Joined: record.Joined{ValidatorCode: "Y", Final: record.FlagFinal}},
		{Joined: record.Joined{ValidatorCode: "Z", Final: record.FlagFinal}},
	}

	require.Equal(t, 1, currentIndex(history, fixedNow))
}

func TestCurrent_PositionalFallback(t *testing.T) {
	t.Parallel()

	g := findOne(t, newFixtureEngine(t), "nova friburgo")

	current, ok := g.Current()
	require.True(t, ok)
	require.Equal(t, "SIGISS", current.ValidatorCode)
}

func TestCurrent_EmptyHistory(t *testing.T) {
	t.Parallel()

	g := findOne(t, newFixtureEngine(t), "acrelandia")
	require.False(t, g.HasHistory())

	_, ok := g.Current()
	require.False(t, ok)
}

func TestClassify_RioDeJaneiro(t *testing.T) {
	t.Parallel()

	e := newFixtureEngine(t)
	g := findOne(t, e, "Rio de Janeiro")

	tests := []struct {
		candidate string
		category  Category
		reason    Reason
	}{
		{candidate: "NOTA CARIOCA", category: CategoryRuleChange, reason: ReasonCurrent},
		{candidate: "nota carioca", category: CategoryRuleChange, reason: ReasonCurrent},
		{candidate: "BETHA", category: CategoryMigration, reason: ReasonNeverUsed},
		{candidate: "VALIDADOR_TESTE_123", category: CategoryNewValidator, reason: ReasonNotInSystem},
		{candidate: "ISS.NET", category: CategoryMigration, reason: ReasonUsedBefore},
	}

	for _, tc := range tests {
		c, err := e.ClassifyGroup(g, tc.candidate)
		require.NoError(t, err)
		require.Equal(t, tc.category, c.Category, "candidate %q", tc.candidate)
		require.Equal(t, tc.reason, c.Reason, "candidate %q", tc.candidate)
	}

	c, err := e.ClassifyGroup(g, "ISS.NET")
	require.NoError(t, err)
	require.NotNil(t, c.Previous)
	require.Equal(t, "NOTA CARIOCA", c.Previous.ValidatorDescription)
}

func TestClassify_NoHistory(t *testing.T) {
	t.Parallel()

	e := newFixtureEngine(t)
	g := findOne(t, e, "ACRELANDIA")

	c, err := e.ClassifyGroup(g, "VALIDADOR_TESTE_123")
	require.NoError(t, err)
	require.Equal(t, CategoryNewValidator, c.Category)

	c, err = e.ClassifyGroup(g, "betha")
	require.NoError(t, err)
	require.Equal(t, CategoryMigration, c.Category)
	require.Equal(t, ReasonNeverUsed, c.Reason)
	require.Nil(t, c.Previous)
}

func TestClassify_LooseSubstringMatch(t *testing.T) {
	t.Parallel()

	e := newFixtureEngine(t)
	g := findOne(t, e, "nova iguacu")

	c, err := e.ClassifyGroup(g, "ISS")
	require.NoError(t, err)
	require.Equal(t, CategoryRuleChange, c.Category)
}

func TestClassify_BlankCandidate(t *testing.T) {
	t.Parallel()

	e := newFixtureEngine(t)
	g := findOne(t, e, "jacarei")

	_, err := e.ClassifyGroup(g, "  ")

	var argErr *munerrors.ArgumentError
	require.ErrorAs(t, err, &argErr)
}

func TestClassify_ByMunicipalityName(t *testing.T) {
	t.Parallel()

	e := newFixtureEngine(t)

	result, err := e.Classify("nova", "ISS DIGITAL")
	require.NoError(t, err)
	require.Len(t, result.Classifications, 3)
	require.Equal(t, CategoryRuleChange, result.Classifications[0].Category)
	require.Equal(t, CategoryMigration, result.Classifications[1].Category)
	require.Equal(t, ReasonNeverUsed, result.Classifications[1].Reason)
	require.Equal(t, CategoryMigration, result.Classifications[2].Category)

	missing, err := e.Classify("xyzzy", "ISS DIGITAL")
	require.NoError(t, err)
	require.False(t, missing.Found())
	require.Empty(t, missing.Classifications)
}

func TestListValidators(t *testing.T) {
	t.Parallel()

	e := newFixtureEngine(t)

	all := e.ListValidators("")
	require.Equal(t, "ISSDIGITAL", all[0].Code)
	require.Equal(t, 2, all[0].Municipalities)
	require.Equal(t, []string{"RJ", "SP"}, all[0].States)
	require.Len(t, all, 11)

	// Ties keep load order.
	require.Equal(t, "ISSNET", all[1].Code)
	require.Equal(t, "NOTACARIOCA", all[2].Code)

	rj := e.ListValidators("rj")
	codes := make([]string, 0, len(rj))
	for _, u := range rj {
		codes = append(codes, u.Code)
		require.Equal(t, []string{"RJ"}, u.States)
	}

	require.Equal(t, []string{"ISSNET", "NOTACARIOCA", "WEBISS", "ISSDIGITAL", "DMS", "SIGISS"}, codes)
}

func TestStats(t *testing.T) {
	t.Parallel()

	stats := newFixtureEngine(t).Stats()

	require.Equal(t, Stats{
		Municipalities:      9,
		WithValidator:       6,
		WithoutValidator:    3,
		StatesWithValidator: 3,
		JoinedRows:          15,
		ValidatorRows:       12,
	}, stats)
}
