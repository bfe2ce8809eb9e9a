package store

import (
	"strconv"
	"strings"

	"github.com/lib/pq"

	"github.com/example/products-slider/internal/query"
)

// DefaultTablePrefix is the table prefix of a stock installation.
const DefaultTablePrefix = "wp_"

// numericPattern guards casts so empty or non-numeric meta values compare as NULL.
const numericPattern = `'^\s*-?[0-9]+(\.[0-9]+)?\s*$'`

var comparisons = map[string]string{
	"=":  "=",
	"!=": "<>",
	">":  ">",
	">=": ">=",
	"<":  "<",
	"<=": "<=",
}

type sqlBuilder struct {
	prefix string
	args   []any
}

func (b *sqlBuilder) arg(v any) string {
	b.args = append(b.args, v)
	return "$" + strconv.Itoa(len(b.args))
}

func (b *sqlBuilder) table(name string) string {
	return b.prefix + name
}

// BuildSQL translates a descriptor into a PostgreSQL query over the post,
// postmeta and term tables. The query selects product ids only.
func BuildSQL(d *query.Descriptor, tablePrefix string) (string, []any) {
	if tablePrefix == "" {
		tablePrefix = DefaultTablePrefix
	}
	b := &sqlBuilder{prefix: tablePrefix}

	where := []string{
		"p.post_type = " + b.arg(d.PostType),
		"p.post_status = " + b.arg(d.PostStatus),
	}
	if len(d.PostIn) > 0 {
		where = append(where, "p.id = ANY("+b.arg(pq.Array(int64s(d.PostIn)))+")")
	}
	for _, c := range d.TaxQuery {
		where = append(where, b.taxClause(c))
	}
	if d.MetaQuery != nil {
		if cond := b.metaGroup(*d.MetaQuery); cond != "" {
			where = append(where, cond)
		}
	}

	join, orderBy := b.orderBy(d)

	var sb strings.Builder
	sb.WriteString("SELECT p.id FROM ")
	sb.WriteString(b.table("posts"))
	sb.WriteString(" p")
	sb.WriteString(join)
	sb.WriteString(" WHERE ")
	sb.WriteString(strings.Join(where, " AND "))
	sb.WriteString(" ORDER BY ")
	sb.WriteString(orderBy)
	if d.Limit > 0 {
		sb.WriteString(" LIMIT ")
		sb.WriteString(b.arg(d.Limit))
	}
	return sb.String(), b.args
}

func (b *sqlBuilder) taxClause(c query.TaxClause) string {
	var match string
	switch c.Field {
	case query.FieldSlug:
		match = "t.slug = ANY(" + b.arg(pq.Array(c.Terms)) + ")"
	case query.FieldName:
		match = "t.name = ANY(" + b.arg(pq.Array(c.Terms)) + ")"
	default:
		ids := make([]int64, 0, len(c.Terms))
		for _, term := range c.Terms {
			if id, err := strconv.ParseInt(strings.TrimSpace(term), 10, 64); err == nil {
				ids = append(ids, id)
			}
		}
		match = "t.term_id = ANY(" + b.arg(pq.Array(ids)) + ")"
	}

	exists := "EXISTS (SELECT 1 FROM " + b.table("term_relationships") + " tr" +
		" JOIN " + b.table("term_taxonomy") + " tt ON tt.term_taxonomy_id = tr.term_taxonomy_id" +
		" JOIN " + b.table("terms") + " t ON t.term_id = tt.term_id" +
		" WHERE tr.object_id = p.id AND tt.taxonomy = " + b.arg(c.Taxonomy) +
		" AND " + match + ")"

	if strings.EqualFold(c.Operator, "NOT IN") {
		return "NOT " + exists
	}
	return exists
}

func (b *sqlBuilder) metaGroup(m query.MetaQuery) string {
	var parts []string
	for _, c := range m.Clauses {
		parts = append(parts, b.metaClause(c))
	}
	for _, g := range m.Groups {
		if cond := b.metaGroup(g); cond != "" {
			parts = append(parts, cond)
		}
	}
	if len(parts) == 0 {
		return ""
	}

	sep := " AND "
	if strings.EqualFold(m.Relation, query.RelationOr) {
		sep = " OR "
	}
	return "(" + strings.Join(parts, sep) + ")"
}

func (b *sqlBuilder) metaClause(c query.MetaClause) string {
	cond := "EXISTS (SELECT 1 FROM " + b.table("postmeta") + " pm" +
		" WHERE pm.post_id = p.id AND pm.meta_key = " + b.arg(c.Key)

	compare := strings.ToUpper(strings.TrimSpace(c.Compare))
	switch compare {
	case "EXISTS":
		return cond + ")"
	case query.CompareIn:
		return cond + " AND pm.meta_value = ANY(" + b.arg(pq.Array(c.Values)) + "))"
	}

	op, ok := comparisons[compare]
	if !ok {
		op = "="
	}
	if strings.EqualFold(c.Type, query.TypeNumeric) {
		return cond + " AND " + numeric("pm.meta_value") + " " + op + " CAST(" + b.arg(c.Value) + " AS NUMERIC))"
	}
	return cond + " AND pm.meta_value " + op + " " + b.arg(c.Value) + ")"
}

func (b *sqlBuilder) orderBy(d *query.Descriptor) (join, orderBy string) {
	dir := "DESC"
	if strings.EqualFold(d.Order, query.OrderAsc) {
		dir = "ASC"
	}

	switch strings.ToLower(d.OrderBy) {
	case query.OrderByPostIn:
		if len(d.PostIn) > 0 {
			return "", "array_position(CAST(" + b.arg(pq.Array(int64s(d.PostIn))) + " AS BIGINT[]), CAST(p.id AS BIGINT))"
		}
	case "rand":
		return "", "random()"
	case query.OrderByMenuOrder:
		return "", "p.menu_order " + dir + ", p.id " + dir
	case "title":
		return "", "p.post_title " + dir + ", p.id " + dir
	case "id":
		return "", "p.id " + dir
	case "modified":
		return "", "p.post_modified " + dir + ", p.id " + dir
	case "meta_value", query.OrderByMetaValueNum:
		key := d.MetaKey
		if key == "" {
			key = d.MetaQuery.FirstKey()
		}
		if key == "" {
			break
		}
		join = " JOIN " + b.table("postmeta") + " om ON om.post_id = p.id AND om.meta_key = " + b.arg(key)
		expr := "om.meta_value"
		if strings.EqualFold(d.OrderBy, query.OrderByMetaValueNum) {
			expr = numeric(expr)
		}
		return join, expr + " " + dir + ", p.id " + dir
	}
	return "", "p.post_date " + dir + ", p.id " + dir
}

func numeric(col string) string {
	return "(CASE WHEN " + col + " ~ " + numericPattern + " THEN CAST(" + col + " AS NUMERIC) END)"
}

func int64s(ids []int) []int64 {
	out := make([]int64, len(ids))
	for i, id := range ids {
		out[i] = int64(id)
	}
	return out
}
