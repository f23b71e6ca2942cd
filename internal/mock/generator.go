package mock

import (
	"fmt"
	"hash/fnv"
	"math/rand"

	"github.com/benbjohnson/clock"
)

const (
	minAmount = 1000
	maxAmount = 50000
)

// Generator produces claims from a seeded pseudo-random sequence. Two
// generators built with the same seed and clock yield identical output for
// the same sequence of calls; no wall-clock or OS entropy is involved.
type Generator struct {
	rnd *rand.Rand
	clk clock.Clock
}

func NewGenerator(seed string) *Generator {
	return NewGeneratorWithClock(seed, clock.New())
}

func NewGeneratorWithClock(seed string, clk clock.Clock) *Generator {
	h := fnv.New64a()
	_, _ = h.Write([]byte(seed))
	return &Generator{
		rnd: rand.New(rand.NewSource(int64(h.Sum64()))),
		clk: clk,
	}
}

// Claim draws the next record from the sequence.
func (g *Generator) Claim() Claim {
	now := g.clk.Now()
	seq := g.rnd.Intn(1000)
	damage := damageTypes[g.rnd.Intn(len(damageTypes))]
	location := locations[g.rnd.Intn(len(locations))]
	amount := minAmount + g.rnd.Intn(maxAmount-minAmount)
	policy := fmt.Sprintf("POL-%07d", g.rnd.Intn(10000000))
	holder := firstNames[g.rnd.Intn(len(firstNames))] + " " + lastNames[g.rnd.Intn(len(lastNames))]
	daysAgo := g.rnd.Intn(30)

	return Claim{
		ID:           fmt.Sprintf("CLM-%d-%03d", now.Year(), seq),
		PolicyNumber: policy,
		HolderName:   holder,
		Location:     location,
		DamageType:   damage,
		Amount:       amount,
		IncidentDate: now.AddDate(0, 0, -daysAgo),
		Status:       "OPEN",
	}
}

// Claims draws n records in sequence order.
func (g *Generator) Claims(n int) []Claim {
	out := make([]Claim, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, g.Claim())
	}
	return out
}
