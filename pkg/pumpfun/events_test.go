package pumpfun

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgramIDs(t *testing.T) {
	assert.Equal(t, []byte{1, 86, 224, 246}, ProgramID[:4])
	assert.Equal(t, []byte{12, 20, 222, 252}, AmmProgramID[:4])
}
