package diag

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

func TestUnknownContentRefLogsKindAndID(t *testing.T) {
	var buf bytes.Buffer
	s := NewSink(&buf, log.WarnLevel)
	s.UnknownContentRef("joker", "joker_missing")
	out := buf.String()
	assert.Contains(t, out, "joker_missing")
	assert.Contains(t, out, "unknown content reference")
}

func TestDiscardSinkAcceptsCalls(t *testing.T) {
	s := NewDiscardSink()
	s.UnknownContentRef("voucher", "whatever")
	s.Warnf("should not panic")
}
