package idempiere

import (
	"net/url"
	"strconv"
	"strings"
)

// quote renders s as an OData string literal.
func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

func eqString(field, value string) string {
	return field + " eq " + quote(value)
}

func eqInt(field string, value int64) string {
	return field + " eq " + strconv.FormatInt(value, 10)
}

func eqBool(field string, value bool) string {
	return field + " eq " + strconv.FormatBool(value)
}

// le and ge compare against an unquoted timestamp literal as the ERP expects.
func le(field, timestamp string) string {
	return field + " le " + timestamp
}

func ge(field, timestamp string) string {
	return field + " ge " + timestamp
}

func and(clauses ...string) string {
	return strings.Join(clauses, " and ")
}

// query builds the OData query parameters. Empty values are skipped.
func query(filter, expand, orderBy string) url.Values {
	q := url.Values{}
	if filter != "" {
		q.Set("$filter", filter)
	}
	if expand != "" {
		q.Set("$expand", expand)
	}
	if orderBy != "" {
		q.Set("$orderby", orderBy)
	}
	return q
}
