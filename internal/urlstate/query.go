package urlstate

import (
	"net/url"
	"strings"
)

// Param is one key/value pair of a query string.
type Param struct {
	Key   string
	Value string
}

// Query is a query string as an ordered parameter sequence. Unlike
// url.Values it keeps key order, which is what decides the display order of
// lists.
type Query []Param

// ParseQuery parses a raw query string. It accepts a bare query ("a=b"), a
// search string ("?a=b") or an absolute URL, in which case only its query is
// used. A bare query is taken as is, so a '?' or "://" inside a value stays
// part of that value. Malformed escapes are tolerated: the raw text is kept.
func ParseQuery(raw string) Query {
	raw = strings.TrimSpace(raw)
	if u, err := url.Parse(raw); err == nil && u.Scheme != "" && u.Host != "" {
		raw = u.RawQuery
	} else {
		if i := strings.IndexByte(raw, '#'); i >= 0 {
			raw = raw[:i]
		}
		raw = strings.TrimPrefix(raw, "?")
	}

	var q Query
	for _, part := range strings.Split(raw, "&") {
		if part == "" {
			continue
		}
		k, v, _ := strings.Cut(part, "=")
		q = append(q, Param{Key: unescapeForm(k), Value: unescapeForm(v)})
	}
	return q
}

func unescapeForm(s string) string {
	out, err := url.QueryUnescape(s)
	if err != nil {
		return strings.ReplaceAll(s, "+", " ")
	}
	return out
}

// Get returns the first value stored under key.
func (q Query) Get(key string) (string, bool) {
	for _, p := range q {
		if p.Key == key {
			return p.Value, true
		}
	}
	return "", false
}

// Set replaces the first value under key in place, dropping any duplicates,
// or appends the pair when the key is new.
func (q Query) Set(key, value string) Query {
	out := q[:0:0]
	found := false
	for _, p := range q {
		if p.Key != key {
			out = append(out, p)
			continue
		}
		if !found {
			out = append(out, Param{Key: key, Value: value})
			found = true
		}
	}
	if !found {
		out = append(out, Param{Key: key, Value: value})
	}
	return out
}

// Del removes every value stored under key.
func (q Query) Del(key string) Query {
	out := q[:0:0]
	for _, p := range q {
		if p.Key != key {
			out = append(out, p)
		}
	}
	return out
}

// String serializes q with form encoding, then turns the escaped commas back
// into literal commas so the URL stays readable and hand-editable. Commas
// that are part of item values were already escaped once by
// EncodeComponent, so they survive here as "%252C".
func (q Query) String() string {
	var b strings.Builder
	for i, p := range q {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(p.Key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(p.Value))
	}
	return strings.ReplaceAll(b.String(), "%2C", ",")
}
