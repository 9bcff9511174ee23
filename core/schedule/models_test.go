package schedule

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeSlots(t *testing.T) {
	got := NormalizeSlots([]SlotInput{
		{Day: "Mon", Start: "8:00 AM", End: "9:00 AM", Subject: "Math", Teacher: "Mr. Smith"},
		{Day: "Tue", Start: "9:00 AM", End: "10:00 AM"},
	})
	want := Schedule{
		{Day: "Mon", Start: "8:00 AM", End: "9:00 AM", Subject: "Math"}, // teacher dropped
		{Day: "Tue", Start: "9:00 AM", End: "10:00 AM"},
	}
	assert.Equal(t, want, got)
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Schedule
	}{
		{
			name: "slot array",
			raw:  `[{"day":"Mon","start":"8:00 AM","end":"9:00 AM","subject":"Math","teacher":"X"}]`,
			want: Schedule{{Day: "Mon", Start: "8:00 AM", End: "9:00 AM", Subject: "Math"}},
		},
		{name: "legacy string record", raw: `"Mon-Fri 8:00 AM"`, want: Schedule{}},
		{name: "null", raw: `null`, want: Schedule{}},
		{name: "object", raw: `{"day":"Mon"}`, want: Schedule{}},
		{name: "garbage", raw: `{{{`, want: Schedule{}},
		{name: "empty input", raw: ``, want: Schedule{}},
		{name: "empty array", raw: `[]`, want: Schedule{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(json.RawMessage(tt.raw))
			assert.Equal(t, tt.want, got)
		})
	}
}

// a normalized schedule must serialize without a teacher key
func TestNormalizedScheduleJSON(t *testing.T) {
	sched := Normalize(json.RawMessage(`[{"day":"Mon","start":"8:00 AM","end":"9:00 AM","subject":"Math","teacher":"X"}]`))
	data, err := json.Marshal(sched)
	if err != nil {
		t.Fatalf("json.Marshal() failed: %v", err)
	}
	assert.NotContains(t, string(data), "teacher")
}
