package bibliography_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arrangeio/linarr/bibliography"
)

func TestRegister_NoopWhenDisabled(t *testing.T) {
	bibliography.Enabled = false
	bibliography.Reset()
	bibliography.Register(bibliography.ProjectiveHS)
	assert.Empty(t, bibliography.Exercised())
}

func TestRegister_RecordsWhenEnabled(t *testing.T) {
	bibliography.Enabled = true
	defer func() { bibliography.Enabled = false }()
	bibliography.Reset()

	bibliography.Register(bibliography.ProjectiveHS)
	bibliography.Register(bibliography.DMaxBnB)
	bibliography.Register(bibliography.ProjectiveHS) // duplicate, harmless

	exercised := bibliography.Exercised()
	assert.Len(t, exercised, 2)
	assert.Contains(t, exercised, bibliography.ProjectiveHS)
	assert.Contains(t, exercised, bibliography.DMaxBnB)
}

func TestReset_ClearsSet(t *testing.T) {
	bibliography.Enabled = true
	defer func() { bibliography.Enabled = false }()
	bibliography.Register(bibliography.CrossingsLadder)
	bibliography.Reset()
	assert.Empty(t, bibliography.Exercised())
}
