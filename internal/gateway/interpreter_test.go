package gateway

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"testing"
)

func TestSelectWithoutWhereReturnsFullDataset(t *testing.T) {
	g := newTestGateway(t)
	mustConnect(t, g)

	resp, err := g.RunCommand(context.Background(), "SELECT * FROM CLAIMS", CommandOptions{})
	if err != nil {
		t.Fatalf("SELECT: %v", err)
	}
	if len(resp.Rows) != 100 {
		t.Fatalf("rows = %d, want 100", len(resp.Rows))
	}
	for _, key := range []string{"id", "policyNumber", "holderName", "location", "damageType", "amount", "incidentDate", "status"} {
		if _, ok := resp.Rows[0][key]; !ok {
			t.Fatalf("row missing column %q", key)
		}
	}
}

func TestSelectFilterByDamageType(t *testing.T) {
	g := newTestGateway(t)
	mustConnect(t, g)

	want := 0
	for _, c := range g.MockClaims() {
		if c.DamageType == "Fire" {
			want++
		}
	}

	queries := []string{
		"SELECT * FROM CLAIMS WHERE damageType=Fire",
		"select * from claims where DAMAGETYPE = fire",
		`SELECT * FROM CLAIMS WHERE damageType="Fire"`,
		"SELECT * FROM CLAIMS WHERE damageType='Fire'",
	}
	for _, q := range queries {
		t.Run(q, func(t *testing.T) {
			resp, err := g.RunCommand(context.Background(), q, CommandOptions{})
			if err != nil {
				t.Fatalf("query: %v", err)
			}
			if len(resp.Rows) != want {
				t.Fatalf("rows = %d, dataset has %d Fire claims", len(resp.Rows), want)
			}
			for i, row := range resp.Rows {
				if !strings.EqualFold(row["damageType"], "Fire") {
					t.Fatalf("row %d damageType = %q, want Fire", i, row["damageType"])
				}
			}
		})
	}
}

func TestSelectFilterByNumericAmount(t *testing.T) {
	g := newTestGateway(t)
	mustConnect(t, g)

	claims := g.MockClaims()
	wantGreater, wantLess := 0, 0
	for _, c := range claims {
		if c.Amount > 10000 {
			wantGreater++
		}
		if c.Amount < 10000 {
			wantLess++
		}
	}

	resp, err := g.RunCommand(context.Background(), "SELECT * FROM CLAIMS WHERE amount>10000", CommandOptions{})
	if err != nil {
		t.Fatalf("amount>10000: %v", err)
	}
	if len(resp.Rows) != wantGreater {
		t.Fatalf("rows = %d, dataset has %d claims above 10000", len(resp.Rows), wantGreater)
	}
	for i, row := range resp.Rows {
		amount, err := strconv.Atoi(row["amount"])
		if err != nil {
			t.Fatalf("row %d amount %q not numeric", i, row["amount"])
		}
		if amount <= 10000 {
			t.Fatalf("row %d amount = %d, want > 10000", i, amount)
		}
	}

	resp, err = g.RunCommand(context.Background(), "SELECT * FROM CLAIMS WHERE amount < 10000", CommandOptions{})
	if err != nil {
		t.Fatalf("amount<10000: %v", err)
	}
	if len(resp.Rows) != wantLess {
		t.Fatalf("rows = %d, dataset has %d claims below 10000", len(resp.Rows), wantLess)
	}
}

func TestNumericOperatorOnStringFieldNeverMatches(t *testing.T) {
	g := newTestGateway(t)
	mustConnect(t, g)

	resp, err := g.RunCommand(context.Background(), "SELECT * FROM CLAIMS WHERE damageType>100", CommandOptions{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(resp.Rows) != 0 {
		t.Fatalf("rows = %d, want 0 for numeric operator on a string field", len(resp.Rows))
	}
}

func TestUnknownFieldMatchesNothing(t *testing.T) {
	g := newTestGateway(t)
	mustConnect(t, g)

	resp, err := g.RunCommand(context.Background(), "SELECT * FROM CLAIMS WHERE adjuster=Smith", CommandOptions{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(resp.Rows) != 0 {
		t.Fatalf("rows = %d, want empty result for unknown field", len(resp.Rows))
	}
}

func TestInsertReturnsSyntheticAck(t *testing.T) {
	g := newTestGateway(t)
	mustConnect(t, g)

	resp, err := g.RunCommand(context.Background(), "INSERT INTO CLAIMS VALUES ('CLM-2026-999')", CommandOptions{})
	if err != nil {
		t.Fatalf("INSERT: %v", err)
	}
	if len(resp.Rows) != 1 {
		t.Fatalf("rows = %d, want single acknowledgment row", len(resp.Rows))
	}
	if resp.Rows[0]["status"] != "ACKNOWLEDGED" {
		t.Fatalf("status = %q, want ACKNOWLEDGED", resp.Rows[0]["status"])
	}

	count, err := g.RunCommand(context.Background(), "COUNT", CommandOptions{})
	if err != nil {
		t.Fatalf("COUNT: %v", err)
	}
	if count.Rows[0]["count"] != "100" {
		t.Fatalf("count after INSERT = %q, dataset must stay at 100", count.Rows[0]["count"])
	}
}

func TestShowTablesReturnsCatalog(t *testing.T) {
	g := newTestGateway(t)
	mustConnect(t, g)

	resp, err := g.RunCommand(context.Background(), "SHOW TABLES", CommandOptions{})
	if err != nil {
		t.Fatalf("SHOW TABLES: %v", err)
	}
	if len(resp.Rows) != 3 {
		t.Fatalf("rows = %d, want 3 catalog entries", len(resp.Rows))
	}
	if resp.Rows[0]["table"] != "CLAIMS" || resp.Rows[0]["rows"] != "100" {
		t.Fatalf("first catalog row = %v, want CLAIMS with 100 rows", resp.Rows[0])
	}
}

func TestInvalidCommands(t *testing.T) {
	g := newTestGateway(t)
	mustConnect(t, g)

	commands := []struct {
		name    string
		command string
	}{
		{name: "delete unsupported", command: "DELETE FROM CLAIMS"},
		{name: "update unsupported", command: "UPDATE CLAIMS SET status=CLOSED"},
		{name: "empty", command: "   "},
		{name: "select column list", command: "SELECT id FROM CLAIMS"},
		{name: "unknown table", command: "SELECT * FROM POLICIES"},
		{name: "bare where", command: "SELECT * FROM CLAIMS WHERE"},
		{name: "where without operator", command: "SELECT * FROM CLAIMS WHERE amount"},
		{name: "compound where", command: "SELECT * FROM CLAIMS WHERE amount>100 AND damageType=Fire"},
		{name: "double operator", command: "SELECT * FROM CLAIMS WHERE amount>=100"},
		{name: "count with arguments", command: "COUNT CLAIMS"},
		{name: "show without tables", command: "SHOW COLUMNS"},
	}
	for _, tt := range commands {
		t.Run(tt.name, func(t *testing.T) {
			_, err := g.RunCommand(context.Background(), tt.command, CommandOptions{})
			if !errors.Is(err, ErrInvalidCommand) {
				t.Fatalf("error = %v, want ErrInvalidCommand", err)
			}
			var ge *Error
			if !errors.As(err, &ge) {
				t.Fatalf("error %T does not expose *Error", err)
			}
			if ge.Recoverable {
				t.Fatal("invalid commands must not be marked recoverable")
			}
		})
	}
}
