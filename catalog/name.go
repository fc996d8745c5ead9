package catalog

import (
	"regexp"
	"strings"
)

const constantPrefix = "MSG_CODE_"

var (
	acronymBoundary = regexp.MustCompile(`([A-Z]+)([A-Z][a-z])`)
	camelBoundary   = regexp.MustCompile(`([a-z\d])([A-Z])`)
)

// DeriveConstantName turns a message type name into the uppercase constant
// used for its protocol code. The leading "Rpb" family prefix is assumed
// and stripped when present; underscores are inserted at acronym-to-word
// and camelCase boundaries.
//
//	RpbErrorResp      -> MSG_CODE_ERROR_RESP
//	RpbGetClientIdReq -> MSG_CODE_GET_CLIENT_ID_REQ
func DeriveConstantName(message string) string {
	word := strings.TrimPrefix(message, "Rpb")
	word = acronymBoundary.ReplaceAllString(word, "${1}_${2}")
	word = camelBoundary.ReplaceAllString(word, "${1}_${2}")
	word = strings.ReplaceAll(word, "-", "_")
	return constantPrefix + strings.ToUpper(word)
}
