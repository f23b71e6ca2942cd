package gateway

import (
	"fmt"
	"strconv"
	"strings"

	"legacy-gateway/internal/mock"
)

// claimFields maps lowercase query field names to typed extractors. Every
// WHERE lookup goes through this table; there is no reflective field access.
var claimFields = map[string]func(mock.Claim) string{
	"id":           func(c mock.Claim) string { return c.ID },
	"policynumber": func(c mock.Claim) string { return c.PolicyNumber },
	"holdername":   func(c mock.Claim) string { return c.HolderName },
	"location":     func(c mock.Claim) string { return c.Location },
	"damagetype":   func(c mock.Claim) string { return c.DamageType },
	"amount":       func(c mock.Claim) string { return strconv.Itoa(c.Amount) },
	"incidentdate": func(c mock.Claim) string { return c.IncidentDate.Format("2006-01-02") },
	"status":       func(c mock.Claim) string { return c.Status },
}

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidCommand, fmt.Sprintf(format, args...))
}

// execute parses and runs one statement against the in-memory dataset after
// a seeded simulated processing delay. Keywords match case-insensitively.
func (g *Gateway) execute(command string) ([]Row, string, error) {
	if d := g.drawProcessingDelay(); d > 0 {
		g.clk.Sleep(d)
	}

	tokens := strings.Fields(strings.TrimSpace(command))
	if len(tokens) == 0 {
		return nil, "", invalidf("empty command")
	}

	switch strings.ToUpper(tokens[0]) {
	case "SELECT":
		return g.execSelect(tokens)
	case "INSERT":
		return g.execInsert()
	case "COUNT":
		if len(tokens) != 1 {
			return nil, "", invalidf("COUNT takes no arguments")
		}
		return []Row{{"count": strconv.Itoa(len(g.claims))}}, "CLAIM COUNT", nil
	case "SHOW":
		if len(tokens) == 2 && strings.EqualFold(tokens[1], "TABLES") {
			return g.execShowTables()
		}
		return nil, "", invalidf("unrecognized SHOW statement")
	default:
		return nil, "", invalidf("unsupported command %q", tokens[0])
	}
}

func (g *Gateway) execSelect(tokens []string) ([]Row, string, error) {
	if len(tokens) < 4 || tokens[1] != "*" || !strings.EqualFold(tokens[2], "FROM") {
		return nil, "", invalidf("expected SELECT * FROM <table>")
	}
	if !strings.EqualFold(tokens[3], "CLAIMS") {
		return nil, "", invalidf("unknown table %q", tokens[3])
	}

	matched := g.claims
	if len(tokens) > 4 {
		if !strings.EqualFold(tokens[4], "WHERE") {
			return nil, "", invalidf("expected WHERE after table name")
		}
		field, op, value, err := parseCondition(strings.Join(tokens[5:], " "))
		if err != nil {
			return nil, "", err
		}
		matched = filterClaims(g.claims, field, op, value)
	}

	rows := make([]Row, 0, len(matched))
	for _, c := range matched {
		rows = append(rows, claimRow(c))
	}
	return rows, "CLAIM INQUIRY", nil
}

// parseCondition accepts exactly one <field> <op> <value> clause, op one of
// = > <. The value may be quoted or bare.
func parseCondition(cond string) (field string, op byte, value string, err error) {
	upper := " " + strings.ToUpper(cond) + " "
	if strings.Contains(upper, " AND ") || strings.Contains(upper, " OR ") {
		return "", 0, "", invalidf("only a single WHERE condition is supported")
	}

	idx := strings.IndexAny(cond, "=<>")
	if idx <= 0 || idx == len(cond)-1 {
		return "", 0, "", invalidf("malformed WHERE clause %q", cond)
	}
	field = strings.TrimSpace(cond[:idx])
	op = cond[idx]
	value = strings.TrimSpace(cond[idx+1:])
	if strings.ContainsAny(value, "=<>") {
		return "", 0, "", invalidf("malformed WHERE clause %q", cond)
	}
	value = strings.Trim(value, `"'`)
	if field == "" || value == "" {
		return "", 0, "", invalidf("malformed WHERE clause %q", cond)
	}
	return field, op, value, nil
}

// filterClaims matches an unknown field against nothing rather than failing:
// the legacy system answered such queries with an empty result set.
func filterClaims(claims []mock.Claim, field string, op byte, value string) []mock.Claim {
	extract, ok := claimFields[strings.ToLower(field)]
	if !ok {
		return nil
	}
	var out []mock.Claim
	for _, c := range claims {
		if matchValue(extract(c), op, value) {
			out = append(out, c)
		}
	}
	return out
}

// matchValue compares = case-insensitively on strings; > and < require both
// sides to parse as integers, so non-numeric fields never match numerically.
func matchValue(got string, op byte, want string) bool {
	switch op {
	case '=':
		return strings.EqualFold(got, want)
	case '>':
		a, errA := strconv.Atoi(got)
		b, errB := strconv.Atoi(want)
		return errA == nil && errB == nil && a > b
	case '<':
		a, errA := strconv.Atoi(got)
		b, errB := strconv.Atoi(want)
		return errA == nil && errB == nil && a < b
	default:
		return false
	}
}

// execInsert acknowledges without mutating the dataset; the simulated system
// is read-only by design.
func (g *Gateway) execInsert() ([]Row, string, error) {
	return []Row{{
		"status":       "ACKNOWLEDGED",
		"rowsAffected": "1",
	}}, "INSERT ACKNOWLEDGMENT", nil
}

func (g *Gateway) execShowTables() ([]Row, string, error) {
	return []Row{
		{"table": "CLAIMS", "rows": strconv.Itoa(len(g.claims)), "description": "Claim master records"},
		{"table": "POLICIES", "rows": "250", "description": "Policy catalog"},
		{"table": "CUSTOMERS", "rows": "180", "description": "Customer catalog"},
	}, "TABLE CATALOG", nil
}

func claimRow(c mock.Claim) Row {
	return Row{
		"id":           c.ID,
		"policyNumber": c.PolicyNumber,
		"holderName":   c.HolderName,
		"location":     c.Location,
		"damageType":   c.DamageType,
		"amount":       strconv.Itoa(c.Amount),
		"incidentDate": c.IncidentDate.Format("2006-01-02"),
		"status":       c.Status,
	}
}
