package loader

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/wagiedev/munival-go/internal/record"
)

const (
	// MinMunicipalityFields is the minimum field count of a municipality line.
	MinMunicipalityFields = 8
	// MinValidatorFields is the minimum field count of a validator line.
	MinValidatorFields = 6

	validatorFinalField  = 17
	validatorExpiryField = 18

	maxLineSize = 1024 * 1024
)

// ReadMunicipalities parses municipality lines from r.
//
// Fields 0, 1 and 2 hold the state code, the numeric municipality code and
// the name. A blank or unparseable code becomes 0. Duplicate keys overwrite
// the earlier value.
func ReadMunicipalities(r io.Reader) (*record.MunicipalityTable, error) {
	table := record.NewMunicipalityTable(0)

	err := eachRecord(r, MinMunicipalityFields, func(fields []string) {
		table.Put(record.Municipality{
			State: strings.TrimSpace(fields[0]),
			Code:  parseCode(fields[1]),
			Name:  strings.TrimSpace(fields[2]),
		})
	})
	if err != nil {
		return nil, err
	}

	return table, nil
}

// ReadValidators parses validator lines from r.
//
// Fields 0 and 1 form the municipality key, 2 and 3 the validator code and
// description, 4 the start date. The final flag (17) and expiry date (18)
// are read only when the line is long enough.
func ReadValidators(r io.Reader) (*record.ValidatorTable, error) {
	table := record.NewValidatorTable()

	err := eachRecord(r, MinValidatorFields, func(fields []string) {
		key := record.Key{
			State: strings.TrimSpace(fields[0]),
			Code:  parseCode(fields[1]),
		}

		v := record.Validator{
			Code:        strings.TrimSpace(fields[2]),
			Description: strings.TrimSpace(fields[3]),
			StartDate:   record.FormatDate(strings.TrimSpace(fields[4])),
			Final:       record.FlagNotFinal,
		}

		if len(fields) > validatorExpiryField {
			v.ExpiryDate = record.FormatDate(strings.TrimSpace(fields[validatorExpiryField]))
		}

		if len(fields) > validatorFinalField {
			v.Final = record.ParseFlag(strings.TrimSpace(fields[validatorFinalField]))
		}

		table.Append(key, v)
	})
	if err != nil {
		return nil, err
	}

	return table, nil
}

// eachRecord trims every line, skips blank ones, splits on TAB and hands
// lines with at least minFields fields to fn.
func eachRecord(r io.Reader, minFields int, fn func([]string)) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields := strings.Split(line, "\t")
		if len(fields) < minFields {
			continue
		}

		fn(fields)
	}

	return scanner.Err()
}

func parseCode(raw string) int {
	code, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0
	}

	return code
}
