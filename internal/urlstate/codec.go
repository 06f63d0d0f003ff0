// Package urlstate maps checklists to and from URL query parameters.
//
// Each list n owns a family of four keys:
//
//	l<n>name    heading text
//	l<n>type    "ul" or "ol" (default "ul")
//	l<n>items   comma-joined, individually percent-encoded item values
//	l<n>checks  one '0' or '1' per item; missing trailing entries are '0'
//
// A list exists when its name key exists. Every other key is ignored by the
// decoder.
package urlstate

import (
	"strconv"
	"strings"

	"github.com/idilsaglam/checklist/internal/model"
)

// Field names one member of a list's key family.
type Field string

const (
	FieldName   Field = "name"
	FieldType   Field = "type"
	FieldItems  Field = "items"
	FieldChecks Field = "checks"
)

// Fields lists the family members in the order they are written.
var Fields = []Field{FieldName, FieldType, FieldItems, FieldChecks}

// Key returns the query key of field f for list number n.
func Key(n int, f Field) string { return model.ListID(n) + string(f) }

// ParseKey splits a family key into its list number and field. Keys outside
// the schema, including ones whose number overflows an int or is written with
// a leading zero ("l01name"), report ok=false. Such keys are not the family of
// any list and are kept as foreign parameters.
func ParseKey(key string) (n int, f Field, ok bool) {
	rest, found := strings.CutPrefix(key, "l")
	if !found {
		return 0, "", false
	}
	end := 0
	for end < len(rest) && rest[end] >= '0' && rest[end] <= '9' {
		end++
	}
	if end == 0 || (end > 1 && rest[0] == '0') {
		return 0, "", false
	}
	f = Field(rest[end:])
	switch f {
	case FieldName, FieldType, FieldItems, FieldChecks:
	default:
		return 0, "", false
	}
	n, err := strconv.Atoi(rest[:end])
	if err != nil {
		return 0, "", false
	}
	return n, f, true
}

// Decode rebuilds the lists described by q, in the order their name keys
// appear. Missing or malformed members fall back to defaults: type to
// unordered, checks to unchecked, items to an empty list. When a name key is
// repeated the first occurrence wins.
func Decode(q Query) []model.List {
	var lists []model.List
	seen := map[int]bool{}
	for _, p := range q {
		n, f, ok := ParseKey(p.Key)
		if !ok || f != FieldName || seen[n] {
			continue
		}
		seen[n] = true

		l := model.List{Number: n, Name: p.Value, Type: model.Unordered}
		if t, ok := q.Get(Key(n, FieldType)); ok {
			l.Type = model.ParseListType(t)
		}
		if raw, ok := q.Get(Key(n, FieldItems)); ok {
			checks, _ := q.Get(Key(n, FieldChecks))
			l.Items = decodeItems(raw, checks)
		}
		lists = append(lists, l)
	}
	return lists
}

// DecodeString is Decode over a raw query string or URL.
func DecodeString(raw string) []model.List { return Decode(ParseQuery(raw)) }

func decodeItems(raw, checks string) []model.Item {
	fields := strings.Split(raw, ",")
	items := make([]model.Item, len(fields))
	for i, v := range fields {
		items[i] = model.Item{
			Value:   DecodeComponent(v),
			Checked: i < len(checks) && checks[i] == '1',
		}
	}
	return items
}

// Encode returns the key family of l. A list without items writes neither
// items nor checks, which decodes back to an empty list.
func Encode(l model.List) Query {
	t := l.Type
	if !t.Valid() {
		t = model.Unordered
	}
	q := Query{
		{Key: Key(l.Number, FieldName), Value: l.Name},
		{Key: Key(l.Number, FieldType), Value: string(t)},
	}
	if l.Empty() {
		return q
	}
	values := make([]string, len(l.Items))
	for i, it := range l.Items {
		values[i] = EncodeComponent(it.Value)
	}
	return append(q,
		Param{Key: Key(l.Number, FieldItems), Value: strings.Join(values, ",")},
		Param{Key: Key(l.Number, FieldChecks), Value: l.Checks()},
	)
}

// EncodeAll writes the families of lists in order.
func EncodeAll(lists []model.List) Query {
	var q Query
	for _, l := range lists {
		q = append(q, Encode(l)...)
	}
	return q
}
