package cli

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
)

type Message struct {
	Code  int
	Name  string
	Proto string
}

var identRegexp = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_-]*$`)

// validIdent reports whether s is usable as a message or family name:
// [a-zA-Z0-9_-], not starting with a digit.
func validIdent(s string) bool {
	return identRegexp.MatchString(s)
}

// CheckMessage checks if the message string is valid format.
// The message string format is:
//
//	<code>:<name>:<family>
//
//	code   - wire protocol message code, base-10 integer
//	name   - message type name, e.g. RpbGetReq
//	family - protocol family, e.g. riak_kv
//
// Example:
//
//	9:RpbGetReq:riak_kv
func CheckMessage(s string) error {
	_, err := ParseMessage(s)
	return err
}

// ParseMessage parses the message string to a Message struct. See
// CheckMessage for the format.
func ParseMessage(s string) (*Message, error) {
	sections := strings.Split(s, ":")
	if len(sections) != 3 {
		return nil, errors.New("invalid message format, want <code>:<name>:<family>")
	}

	code, err := strconv.Atoi(sections[0])
	if err != nil {
		return nil, errors.New("invalid message code")
	}

	if sections[1] == "" || !validIdent(sections[1]) {
		return nil, errors.New("message name must be ident format")
	}

	if sections[2] == "" || !validIdent(sections[2]) {
		return nil, errors.New("family name must be ident format")
	}

	return &Message{
		Code:  code,
		Name:  sections[1],
		Proto: sections[2],
	}, nil
}
