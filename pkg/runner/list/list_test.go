package list

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"tableflip.dev/tourdiary/pkg/app"
	"tableflip.dev/tourdiary/pkg/commands/options"
	"tableflip.dev/tourdiary/pkg/notify"
	"tableflip.dev/tourdiary/pkg/store"
)

func newDiary(t *testing.T, forms ...app.Form) *app.Diary {
	t.Helper()
	p := store.New(&store.Settings{Path: t.TempDir(), StorageKey: store.DefaultKey})
	if err := p.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}
	d := app.New(p, notify.None{})
	for _, f := range forms {
		if _, err := d.Submit(context.Background(), f); err != nil {
			t.Fatalf("Submit: %v", err)
		}
	}
	return d
}

func TestStructuredOutputMatchesTableColumns(t *testing.T) {
	d := newDiary(t,
		app.Form{Topic: "Market", Place: "Osaka", Purpose: "Shopping", DateTime: "2024-05-02T14:00", Alarm: true},
		app.Form{Topic: "Temple", Place: "Kyoto", Purpose: "Sightseeing", DateTime: "2024-05-01T09:00"},
	)

	var buf bytes.Buffer
	l := List{Diary: d, Format: options.FormatOptions{Output: "json"}, Out: &buf}
	if err := l.Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}

	var rows []map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &rows); err != nil {
		t.Fatalf("decode %q: %v", buf.String(), err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	want := map[string]interface{}{"date": "5/1/2024", "place": "Kyoto", "purpose": "Sightseeing"}
	for k, v := range want {
		if rows[0][k] != v {
			t.Fatalf("row 0 %s = %v, want %v", k, rows[0][k], v)
		}
	}
	if len(rows[0]) != len(want) {
		t.Fatalf("expected only table columns, got %v", rows[0])
	}
}

func TestStructuredYAMLFiltered(t *testing.T) {
	d := newDiary(t,
		app.Form{Topic: "Market", Place: "Osaka", Purpose: "Shopping", DateTime: "2024-05-02T14:00"},
		app.Form{Topic: "Temple", Place: "Kyoto", Purpose: "Sightseeing", DateTime: "2024-05-01T09:00"},
	)

	var buf bytes.Buffer
	l := List{Diary: d, Filter: "osaka", Format: options.FormatOptions{Output: "yaml"}, Out: &buf}
	if err := l.Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}
	got := buf.String()
	if !strings.Contains(got, "place: Osaka") || strings.Contains(got, "Kyoto") || strings.Contains(got, "topic") {
		t.Fatalf("unexpected yaml:\n%s", got)
	}
}
