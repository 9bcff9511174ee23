package schedule

import "testing"

func TestShiftForGrade(t *testing.T) {
	tests := []struct {
		grade    string
		wantName string
		wantOk   bool
	}{
		{grade: "7", wantName: Morning, wantOk: true},
		{grade: "8", wantName: Morning, wantOk: true},
		{grade: "9", wantName: Afternoon, wantOk: true},
		{grade: "10", wantName: Afternoon, wantOk: true},
		{grade: " 7 ", wantName: Morning, wantOk: true},
		{grade: "6"},
		{grade: "11"},
		{grade: "0"},
		{grade: "-7"},
		{grade: "lol"},
		{grade: ""},
	}
	for _, tt := range tests {
		t.Run("grade "+tt.grade, func(t *testing.T) {
			sh, ok := ShiftForGrade(tt.grade)
			if ok != tt.wantOk {
				t.Fatalf("ShiftForGrade(%q) ok = %v, want %v", tt.grade, ok, tt.wantOk)
			}
			if ok && sh.Name != tt.wantName {
				t.Errorf("ShiftForGrade(%q).Name = %s, want %s", tt.grade, sh.Name, tt.wantName)
			}
		})
	}
}

func TestShiftBoundaries(t *testing.T) {
	morning, _ := ShiftForGrade("7")
	if morning.StartMinutes != 390 || morning.EndMinutes != 720 {
		t.Errorf("morning shift = [%d, %d], want [390, 720]", morning.StartMinutes, morning.EndMinutes)
	}
	if morning.Start != "6:30 AM" || morning.End != "12:00 PM" {
		t.Errorf("morning shift display = %s - %s", morning.Start, morning.End)
	}

	afternoon, _ := ShiftForGrade("10")
	if afternoon.StartMinutes != 750 || afternoon.EndMinutes != 1080 {
		t.Errorf("afternoon shift = [%d, %d], want [750, 1080]", afternoon.StartMinutes, afternoon.EndMinutes)
	}
	if afternoon.Start != "12:30 PM" || afternoon.End != "6:00 PM" {
		t.Errorf("afternoon shift display = %s - %s", afternoon.Start, afternoon.End)
	}
}

func TestInShift(t *testing.T) {
	tests := []struct {
		name  string
		time  string
		grade string
		want  bool
	}{
		{name: "morning time, morning grade", time: "8:00 AM", grade: "7", want: true},
		{name: "afternoon time, morning grade", time: "2:00 PM", grade: "7", want: false},
		{name: "afternoon time, afternoon grade", time: "2:00 PM", grade: "9", want: true},
		{name: "inclusive start boundary", time: "6:30 AM", grade: "8", want: true},
		{name: "inclusive end boundary", time: "12:00 PM", grade: "8", want: true},
		{name: "just before shift", time: "6:29 AM", grade: "8", want: false},
		{name: "no shift", time: "8:00 AM", grade: "12", want: false},
		{name: "empty time", time: "", grade: "7", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InShift(tt.time, tt.grade); got != tt.want {
				t.Errorf("InShift(%q, %q) = %v, want %v", tt.time, tt.grade, got, tt.want)
			}
		})
	}
}
