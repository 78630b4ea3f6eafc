// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package naming

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Names is the family of identifiers derived from one base name.
//
// Every generated file refers to its siblings through these names, so all
// generators must derive them with [Derive] instead of concatenating ad hoc.
type Names struct {
	// Base is the capitalized base name ("Order").
	Base string
	// Lower is the base name with its first rune lowercased ("order").
	Lower string
	// Repository is the repository interface ("OrderRepository").
	Repository string
	// RepositoryImpl is the repository implementation ("OrderRepositoryImpl").
	RepositoryImpl string
	// Data is the plain data shape ("OrderData").
	Data string
	// Methods is the methods shape of an entity ("OrderMethods").
	Methods string
	// Error is the error union type ("OrderError").
	Error string
	// Errors is the file stem holding error types ("OrderErrors").
	Errors string
	// Params is the validated parameter type ("OrderParams").
	Params string
	// Model is the ORM model class ("OrderModel").
	Model string
	// Entity is the DynamoDB entity ("OrderEntity").
	Entity string
	// Factory is the factory function ("createOrder").
	Factory string
	// Table is the default SQL table name ("order").
	Table string
}

// Derive computes the identifier family for base.
//
// The base may be given in camelCase or PascalCase; type names are always
// PascalCase and value names camelCase. Derive is pure and total: an empty
// base yields a family of bare suffixes.
func Derive(base string) Names {
	typeName := Capitalize(base)
	valueName := Decapitalize(base)

	return Names{
		Base:           typeName,
		Lower:          valueName,
		Repository:     typeName + "Repository",
		RepositoryImpl: typeName + "RepositoryImpl",
		Data:           typeName + "Data",
		Methods:        typeName + "Methods",
		Error:          typeName + "Error",
		Errors:         typeName + "Errors",
		Params:         typeName + "Params",
		Model:          typeName + "Model",
		Entity:         typeName + "Entity",
		Factory:        "create" + typeName,
		Table:          SnakeCase(typeName),
	}
}

// Capitalize uppercases the first letter of s and leaves the rest untouched
// ("transferMoney" becomes "TransferMoney").
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	// Casers are stateful and must not be shared between goroutines.
	return cases.Title(language.Und, cases.NoLower).String(string(r)) + s[size:]
}

// Decapitalize lowercases the first letter of s ("OrderItem" becomes "orderItem").
func Decapitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToLower(r)) + s[size:]
}

// SnakeCase converts a camelCase or PascalCase identifier to snake_case.
//
// Runs of capitals are kept together, so "HTTPRequestLog" becomes
// "http_request_log". Existing underscores, dashes and spaces act as
// separators.
func SnakeCase(s string) string {
	runes := []rune(s)

	var b strings.Builder
	b.Grow(len(s) + 4)

	for i, r := range runes {
		if r == '_' || r == '-' || unicode.IsSpace(r) {
			if b.Len() > 0 && !strings.HasSuffix(b.String(), "_") {
				b.WriteByte('_')
			}
			continue
		}

		if unicode.IsUpper(r) && i > 0 {
			prev := runes[i-1]
			nextIsLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if (unicode.IsLower(prev) || unicode.IsDigit(prev)) || (unicode.IsUpper(prev) && nextIsLower) {
				if b.Len() > 0 && !strings.HasSuffix(b.String(), "_") {
					b.WriteByte('_')
				}
			}
		}

		b.WriteRune(r)
	}

	return strings.Trim(cases.Lower(language.Und).String(b.String()), "_")
}
