package penalty_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jamestiotio/silver/penalty"
	"github.com/jamestiotio/silver/vertex"
)

func TestDefault_PriceMatchesWeightTable(t *testing.T) {
	assert.Equal(t, 20, penalty.Default.Price(vertex.Vertex{Kind: vertex.Function}))
	assert.Equal(t, 0, penalty.Default.Price(vertex.Vertex{Kind: vertex.Method}))
	assert.Equal(t, 5, penalty.Default.Price(vertex.Vertex{Kind: vertex.DomainAxiom}))
}

func TestDefault_MergePenaltyZeroWhenNoExclusiveWeight(t *testing.T) {
	assert.Equal(t, 0, penalty.Default.MergePenalty(0, 0, 100))
}

func TestDefault_MergePenaltyGrowsWithSharedWeight(t *testing.T) {
	low := penalty.Default.MergePenalty(10, 10, 0)
	high := penalty.Default.MergePenalty(10, 10, 60)
	assert.Greater(t, high, low)
}

func TestStrict_NeverReturnsZero(t *testing.T) {
	assert.Equal(t, 1, penalty.Strict.MergePenalty(0, 0, 100))
	assert.Equal(t, 1, penalty.Strict.MergePenalty(0, 0, 0))
}

func TestContravariantLift_DelegatesPrice(t *testing.T) {
	type wrapper struct{ v vertex.Vertex }
	lifted := penalty.ContravariantLift(penalty.Default, func(w wrapper) vertex.Vertex { return w.v })

	assert.Equal(t, 20, lifted.Price(wrapper{v: vertex.Vertex{Kind: vertex.Function}}))
}

func TestContravariantSumLift_SumsPrices(t *testing.T) {
	type group struct{ members []vertex.Vertex }
	lifted := penalty.ContravariantSumLift(penalty.Default, func(g group) []vertex.Vertex { return g.members })

	g := group{members: []vertex.Vertex{{Kind: vertex.Function}, {Kind: vertex.DomainAxiom}}}
	assert.Equal(t, 25, lifted.Price(g))
}
