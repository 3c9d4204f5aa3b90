package repl

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Lint flags a stylistic defect in a parser's description. Lints keep the
// help listing consistent across commands contributed by different authors;
// they are advisory and checked from tests, never at decode time.
type Lint int

const (
	PurposeHasExcessWhitespace Lint = iota
	PurposeIsEmpty
	PurposeDoesNotBeginWithUppercase
	PurposeDoesNotEndWithPeriod
	UsageHasExcessWhitespace
	UsageBeginsWithCommandName
	ExampleScenarioHasExcessWhitespace
	ExampleScenarioIsEmpty
	ExampleScenarioBeginsWithUppercase
	ExampleScenarioEndsWithPeriod
	ExampleCommandHasExcessWhitespace
	ExampleCommandIsEmpty
	ExampleCommandBeginsWithCommandName
)

var lintNames = map[Lint]string{
	PurposeHasExcessWhitespace:          "purpose has excess whitespace",
	PurposeIsEmpty:                      "purpose is empty",
	PurposeDoesNotBeginWithUppercase:    "purpose does not begin with an uppercase letter",
	PurposeDoesNotEndWithPeriod:         "purpose does not end with a period",
	UsageHasExcessWhitespace:            "usage has excess whitespace",
	UsageBeginsWithCommandName:          "usage begins with the command name",
	ExampleScenarioHasExcessWhitespace:  "example scenario has excess whitespace",
	ExampleScenarioIsEmpty:              "example scenario is empty",
	ExampleScenarioBeginsWithUppercase:  "example scenario begins with an uppercase letter",
	ExampleScenarioEndsWithPeriod:       "example scenario ends with a period",
	ExampleCommandHasExcessWhitespace:   "example command has excess whitespace",
	ExampleCommandIsEmpty:               "example command is empty",
	ExampleCommandBeginsWithCommandName: "example command begins with the command name",
}

func (l Lint) String() string {
	if name, ok := lintNames[l]; ok {
		return name
	}
	return fmt.Sprintf("lint(%d)", int(l))
}

// Validate checks the parser's description and returns every failed lint.
func Validate[C any](p NamedCommandParser[C]) []Lint {
	var failed []Lint
	name := p.Name()
	desc := p.Description()

	check(&failed, PurposeHasExcessWhitespace, strings.TrimSpace(desc.Purpose) == desc.Purpose)
	if check(&failed, PurposeIsEmpty, desc.Purpose != "") {
		first, _ := utf8.DecodeRuneInString(desc.Purpose)
		check(&failed, PurposeDoesNotBeginWithUppercase, unicode.IsUpper(first))
		check(&failed, PurposeDoesNotEndWithPeriod, strings.HasSuffix(desc.Purpose, "."))
	}

	check(&failed, UsageHasExcessWhitespace, strings.TrimSpace(desc.Usage) == desc.Usage)
	if desc.Usage != "" {
		check(&failed, UsageBeginsWithCommandName, !strings.HasPrefix(desc.Usage, name))
	}

	for _, ex := range desc.Examples {
		check(&failed, ExampleScenarioHasExcessWhitespace, strings.TrimSpace(ex.Scenario) == ex.Scenario)
		if check(&failed, ExampleScenarioIsEmpty, ex.Scenario != "") {
			first, _ := utf8.DecodeRuneInString(ex.Scenario)
			check(&failed, ExampleScenarioBeginsWithUppercase, !unicode.IsUpper(first))
			check(&failed, ExampleScenarioEndsWithPeriod, !strings.HasSuffix(ex.Scenario, "."))
		}

		check(&failed, ExampleCommandHasExcessWhitespace, strings.TrimSpace(ex.Command) == ex.Command)
		if check(&failed, ExampleCommandIsEmpty, ex.Command != "") {
			check(&failed, ExampleCommandBeginsWithCommandName, !strings.HasPrefix(ex.Command, name))
		}
	}

	return failed
}

func check(failed *[]Lint, lint Lint, ok bool) bool {
	if !ok {
		*failed = append(*failed, lint)
	}
	return ok
}

// Assert panics if validating the parser raises a lint outside the
// exclusions list. The panic message names the first unexpected lint.
func Assert[C any](p NamedCommandParser[C], exclusions ...Lint) {
	for _, failed := range Validate(p) {
		excluded := false
		for _, ex := range exclusions {
			if failed == ex {
				excluded = true
				break
			}
		}
		if !excluded {
			panic(fmt.Sprintf("failed lint for %q: %s", p.Name(), failed))
		}
	}
}

// AssertPedantic panics if validating the parser raises any lint at all.
func AssertPedantic[C any](p NamedCommandParser[C]) {
	Assert(p)
}
