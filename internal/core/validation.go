package core

// validation.go holds the structural row checks (E01-E05).
//
// All four checks always run, in a fixed order, and each failure appends its
// code and the affected cell. The outcome depends only on the trimmed field
// values and the AllowNoDocType setting.

import (
	"net/url"
	"regexp"
	"strings"
)

// identifierPattern is the charset allowed in PIDs and document types.
var identifierPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// uriCharset lists the characters a URI may contain (RFC 3986 reserved,
// unreserved and percent).
var uriCharset = regexp.MustCompile(`^[A-Za-z0-9:/?#\[\]@!$&'()*+,;=.\-_~%]+$`)

// badEscape matches a '%' that does not start a two-digit hex escape.
var badEscape = regexp.MustCompile(`%(?:[^0-9A-Fa-f]|[0-9A-Fa-f](?:[^0-9A-Fa-f]|$)|$)`)

// ValidIdentifier reports whether s is a non-empty run of letters, digits,
// dashes and underscores.
func ValidIdentifier(s string) bool {
	return identifierPattern.MatchString(s)
}

// IsWebURI reports whether s is a well-formed absolute http or https URI
// with a host.
func IsWebURI(s string) bool {
	if !uriCharset.MatchString(s) || badEscape.MatchString(s) {
		return false
	}
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	switch strings.ToLower(u.Scheme) {
	case "http", "https":
	default:
		return false
	}
	return u.Hostname() != ""
}

// validate runs the structural checks and reports whether none failed.
func (r *Row) validate(allowNoDocType bool) bool {
	ok := true

	if !ValidIdentifier(r.PID) {
		r.addError(CodeInvalidPID, r.cellRef(ColPID))
		ok = false
	}

	if r.DocType != "" {
		if !ValidIdentifier(r.DocType) {
			r.addError(CodeInvalidDocType, r.cellRef(ColDocType))
			ok = false
		}
	} else if !allowNoDocType {
		r.addError(CodeMissingDocType, r.cellRef(ColDocType))
		ok = false
	}

	if !IsWebURI(r.URL) {
		r.addError(CodeInvalidURL, r.cellRef(ColURL))
		ok = false
	}

	if r.Enabled != "0" && r.Enabled != "1" {
		r.addError(CodeInvalidEnabled, r.cellRef(ColEnabled))
		ok = false
	}

	return ok
}
