package logger

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBaseLogger_Log(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&buf, "[Client]")

	l.Log("posted %s in %d ms", "xml_import_products", 12)

	assert.Equal(t, "[Client] posted xml_import_products in 12 ms\n", buf.String())
}

func TestBaseLogger_WithPrefix(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&buf, "[Client]").WithPrefix("[import]")

	l.Log("done")

	assert.Equal(t, "[Client] [import] done\n", buf.String())
}

func TestBaseLogger_SetPrefix(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&buf, "[A]")
	l.SetPrefix("[B]")

	l.Log("x")

	assert.Equal(t, "[B] x\n", buf.String())
}

func TestBaseLogger_NoPrefixAndTrailingNewline(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&buf, "")

	l.Log("loaded %d listings\n", 3)

	assert.Equal(t, "loaded 3 listings\n", buf.String())
}

func TestBaseLogger_DerivedLoggersShareWriter(t *testing.T) {
	var buf bytes.Buffer
	root := NewLogger(&buf, "[spartoo]")
	client := root.WithPrefix("[client]")
	feed := NewLogger(nil, "").WithPrefix("[feed]")

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() { defer wg.Done(); root.Log("root") }()
		go func() { defer wg.Done(); client.Log("call") }()
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	assert.Len(t, lines, 40)
	for _, line := range lines {
		assert.Contains(t, []string{"[spartoo] root", "[spartoo] [client] call"}, line)
	}

	feed.SetPrefix("[feed] [it]")
	assert.Equal(t, "[feed] [it]", feed.prefix)
}
