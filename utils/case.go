package utils

import (
	"strings"

	"github.com/iancoleman/strcase"
)

func CamelCase(s string) string {
	return strcase.ToCamel(s)
}

func SnakeCase(s string) string {
	return strcase.ToSnake(s)
}

func Lower(s string) string {
	return strings.ToLower(s)
}
