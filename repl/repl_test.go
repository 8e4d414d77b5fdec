package repl

import (
	"bytes"
	"strings"
	"testing"

	"cidl/internal/types"

	"github.com/stretchr/testify/assert"
)

func TestDescribe(t *testing.T) {
	assert.Equal(t, "u64 size 8 align 8", Describe(types.Of("u64")))
	assert.Equal(t, "[u8; 32] size 32 align 1", Describe(types.Of("u8[32]")))
	assert.Equal(t, "[u32; N] size N align 4", Describe(types.Of("u32[N]")))
	assert.Equal(t, "pubkey size 32 align 1", Describe(types.Of("address")))
}

func TestStart(t *testing.T) {
	var out bytes.Buffer
	Start(strings.NewReader("u16\n\nu8[4]\n:quit\nu64\n"), &out)

	assert.Equal(t, ">> u16 size 2 align 2\n>> >> [u8; 4] size 4 align 1\n>> ", out.String())
}

func TestStartEndOfInput(t *testing.T) {
	var out bytes.Buffer
	Start(strings.NewReader("i32"), &out)

	assert.Equal(t, ">> i32 size 4 align 4\n>> \n", out.String())
}
