package instrument

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AnatoleLucet/reactivity"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var entries []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}

		entry := map[string]any{}
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		entries = append(entries, entry)
	}

	return entries
}

func TestLogger(t *testing.T) {
	t.Run("logs every event at trace level", func(t *testing.T) {
		var buf bytes.Buffer
		reactivity.SetObserver(NewLogger(zerolog.New(&buf).Level(zerolog.TraceLevel)))
		defer reactivity.SetObserver(nil)

		count := reactivity.NewSignal(0).WithLabel("count")
		r := reactivity.NewReactive(func(...any) int { return count.Get() }).WithLabel("printer")
		r.Bind()
		count.Set(1)
		r.Clear()

		entries := decodeLines(t, &buf)
		messages := make([]string, 0, len(entries))
		for _, e := range entries {
			messages = append(messages, e["message"].(string))
			assert.Equal(t, "reactivity", e["component"])
		}

		assert.Equal(t, []string{"invoked", "linked", "changed", "invoked", "unlinked"}, messages)
		assert.Equal(t, "count", entries[1]["signal_label"])
		assert.Equal(t, "printer", entries[1]["reactive_label"])
		assert.Equal(t, float64(1), entries[2]["subscribers"])
		assert.Equal(t, true, entries[3]["tracked"])
	})

	t.Run("debug level hides graph edits", func(t *testing.T) {
		var buf bytes.Buffer
		reactivity.SetObserver(NewLogger(zerolog.New(&buf).Level(zerolog.DebugLevel)))
		defer reactivity.SetObserver(nil)

		count := reactivity.NewSignal(0)
		reactivity.NewEffect(func() { count.Get() })
		count.Set(1)

		for _, e := range decodeLines(t, &buf) {
			assert.NotEqual(t, "linked", e["message"])
			assert.Equal(t, "debug", e["level"])
		}
	})
}

type counting struct{ events int }

func (c *counting) Linked(reactivity.Node, reactivity.Node)   { c.events++ }
func (c *counting) Unlinked(reactivity.Node, reactivity.Node) { c.events++ }
func (c *counting) Changed(reactivity.Node, int)              { c.events++ }
func (c *counting) Invoked(reactivity.Node, bool)             { c.events++ }

func TestMulti(t *testing.T) {
	a, b := &counting{}, &counting{}
	reactivity.SetObserver(Multi(a, nil, b))
	defer reactivity.SetObserver(nil)

	s := reactivity.NewSignal(0)
	reactivity.NewEffect(func() { s.Get() }) // invoked, linked
	s.Set(1)                                 // changed, invoked
	s.Clear()                                // unlinked

	assert.Equal(t, 5, a.events)
	assert.Equal(t, 5, b.events)
}
