package main

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"surveygate-service/internal/pkg/survey"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: validate <json_file>")
		os.Exit(1)
	}

	path := os.Args[1]

	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Printf("Error: cannot read file: %s\n", path)
		os.Exit(1)
	}

	fmt.Printf("Validating: %s\n", path)
	fmt.Println(strings.Repeat("=", 60))

	input, err := survey.ParseSurveyInput(data)
	if err != nil {
		fmt.Println("Validation failed!")
		fmt.Println()
		printError(err)
		os.Exit(1)
	}

	fmt.Println("Validation successful!")
	fmt.Printf("\nSurvey title: %s\n", input.Title)
	fmt.Printf("Number of questions: %d\n", len(input.Questionnaire.Questions))

	if input.UserQuery != nil {
		fmt.Printf("User query roles: %d\n", len(input.UserQuery.Roles))
	}
	if input.FactSheetQuery != nil {
		fmt.Println("Fact sheet query: Present")
	}

	questionTypes := make(map[string]int)
	for _, q := range input.Questionnaire.Questions {
		questionTypes[q.Type]++
	}

	types := make([]string, 0, len(questionTypes))
	for qtype := range questionTypes {
		types = append(types, qtype)
	}
	sort.Strings(types)

	fmt.Println("\nQuestion types:")
	for _, qtype := range types {
		fmt.Printf("  - %s: %d\n", qtype, questionTypes[qtype])
	}
}

func printError(err error) {
	var validationErr *survey.ValidationError
	if errors.As(err, &validationErr) {
		fmt.Println("Validation errors:")
		for _, fieldErr := range validationErr.Fields {
			fmt.Printf("  - %s\n", fieldErr.String())
		}
		return
	}
	fmt.Println(err.Error())
}
