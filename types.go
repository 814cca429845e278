package munival

import (
	"github.com/wagiedev/munival-go/internal/query"
	"github.com/wagiedev/munival-go/internal/record"
)

// Re-export record types.
type (
	// Municipality is a row of the municipality table.
	Municipality = record.Municipality

	// Validator is one entry of a municipality's validator history.
	Validator = record.Validator

	// JoinedRecord is a municipality paired with one validator, or with the
	// "SEM VALIDADOR" placeholder.
	JoinedRecord = record.Joined

	// Key identifies a municipality by state and code.
	Key = record.Key

	// Flag is the S/N final marker of a validator entry.
	Flag = record.Flag
)

// Re-export query types.
type (
	// FindResult is the outcome of a municipality lookup.
	FindResult = query.FindResult

	// Group is the validator history of one municipality.
	Group = query.Group

	// Entry is one validator of a Group with its status.
	Entry = query.Entry

	// Status is the displayed flag/situation pair, e.g. "S-ATIVO".
	Status = query.Status

	// Classification is the verdict for one candidate and one municipality.
	Classification = query.Classification

	// ClassifyResult pairs a lookup with its classifications.
	ClassifyResult = query.ClassifyResult

	// Category is NEW_VALIDATOR, MIGRATION or RULE_CHANGE.
	Category = query.Category

	// Reason refines a Category.
	Reason = query.Reason

	// ValidatorUsage summarises where one validator code is used.
	ValidatorUsage = query.ValidatorUsage

	// Stats summarises the joined table.
	Stats = query.Stats
)

// Re-export classification values.
const (
	CategoryNewValidator = query.CategoryNewValidator
	CategoryMigration    = query.CategoryMigration
	CategoryRuleChange   = query.CategoryRuleChange

	ReasonNotInSystem = query.ReasonNotInSystem
	ReasonNeverUsed   = query.ReasonNeverUsed
	ReasonUsedBefore  = query.ReasonUsedBefore
	ReasonCurrent     = query.ReasonCurrent
)

// NoValidatorDescription is the description of placeholder rows.
const NoValidatorDescription = record.NoValidatorDescription

// Re-export flag values.
const (
	FlagFinal    = record.FlagFinal
	FlagNotFinal = record.FlagNotFinal
)
