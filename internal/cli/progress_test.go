package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgress_Finish(t *testing.T) {
	var buf bytes.Buffer
	p := NewProgress(&buf, 10, "Auditing")

	p.Update(4, 10)
	p.Update(2, 10) // never moves backwards
	p.Finish()

	assert.Contains(t, buf.String(), "10/10")
	assert.True(t, strings.HasSuffix(buf.String(), "\n"))
}

func TestProgress_Abort(t *testing.T) {
	var buf bytes.Buffer
	p := NewProgress(&buf, 10, "Auditing")

	p.Update(3, 10)
	p.Abort()

	out := buf.String()
	assert.Contains(t, out, "3/10")
	assert.NotContains(t, out, "10/10")
	assert.True(t, strings.HasSuffix(out, "\n"), "aborted bar must end its line")
}
