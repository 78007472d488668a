package questionbank

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_ShippedCorpus(t *testing.T) {
	bank, err := Load("../../configs/question_bank.json", "../../schemas/question_bank.schema.json")
	require.NoError(t, err)
	assert.Greater(t, bank.Len(), 0)

	// Every daily-practice round has at least one question in the corpus
	for _, round := range []string{"ml_theory", "ml_system_design", "behavioral", "ml_coding"} {
		assert.NotEmpty(t, bank.Select(Filter{Round: round}), "round %s", round)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("testdata/missing.json", "../../schemas/question_bank.schema.json")
	assert.Error(t, err)
}
