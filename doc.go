// Package munival looks up Brazilian municipalities and classifies the
// tax-document validators they use.
//
// Two flat tables are loaded (municipalities and validator history), joined
// in memory and queried by municipality name. Names match after uppercasing
// and stripping accents: exact matches first, substring matches otherwise.
//
// # Basic Usage
//
//	ctx := context.Background()
//	catalog, err := munival.Open(ctx,
//	    munival.WithMunicipalityFile("PresetFiles/TACES06.TXT"),
//	    munival.WithValidatorFile("PresetFiles/TFIX105.txt"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := catalog.Classify("Rio de Janeiro", "NOTA CARIOCA")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, c := range result.Classifications {
//	    fmt.Println(c.Municipality.Name, c.Category) // RIO DE JANEIRO RULE_CHANGE
//	}
//
// # Tool Server
//
// The same catalog backs an MCP server exposing buscar_municipio,
// classificar_validador and listar_validadores. See NewLazyCatalog for
// load-on-first-use behavior.
//
// # Error Handling
//
// Load failures are returned as *LoadError. A name that matches nothing is
// not an error; check FindResult.Found and FindResult.Suggestions:
//
//	catalog, err := munival.Open(ctx)
//	if loadErr, ok := errors.AsType[*munival.LoadError](err); ok {
//	    log.Fatalf("cannot read %s table %s: %v", loadErr.Source, loadErr.Path, loadErr.Err)
//	}
package munival
