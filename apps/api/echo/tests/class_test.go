package tests

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"testing"

	. "github.com/trezcool/darasa/apps/api/echo"
	"github.com/trezcool/darasa/core/class"
	"github.com/trezcool/darasa/core/schedule"
	testutil "github.com/trezcool/darasa/tests"
)

func Test_classApi_create(t *testing.T) {
	admin := testutil.CreateUser(t, usrRepo, "Class Admin", "class.admin@test.cd", "LePassword007", true)
	room := testutil.CreateClassroom(t, roomRepo, "Rizal Building", "101")
	token := getToken(t, admin)

	reqMsg := "this field is required"
	monMorning := []schedule.SlotInput{{Day: "Mon", Start: "8:00 AM", End: "9:00 AM", Subject: "Math", Teacher: "Mr. Smith"}}

	tests := []httpTest{
		{name: "Auth required", wantCode: http.StatusUnauthorized, wantData: marchallObj(t, errMissingToken)},
		{
			name: "empty data", token: token, body: marchallObj(t, class.NewClass{}),
			wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, map[string]string{
				"class_grade": reqMsg, "class_section": reqMsg, "classroom_id": reqMsg, "schedule": reqMsg,
			}),
		},
		{
			name:  "unsupported grade",
			token: token,
			body: marchallObj(t, class.NewClass{
				Grade: "11", Section: "A", ClassroomID: room.ID, Schedule: monMorning,
			}),
			wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, map[string]string{"schedule": "Invalid grade level: 11. Only grades 7-10 are supported."}),
		},
		{
			name:  "slot outside shift",
			token: token,
			body: marchallObj(t, class.NewClass{
				Grade: "7", Section: "A", ClassroomID: room.ID,
				Schedule: []schedule.SlotInput{{Day: "Mon", Start: "1:00 PM", End: "2:00 PM", Subject: "Math"}},
			}),
			wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, map[string]string{
				"schedule": "Mon start time (1:00 PM) is outside the Morning Shift (6:30 AM - 12:00 PM); " +
					"Mon end time (2:00 PM) is outside the Morning Shift (6:30 AM - 12:00 PM)",
			}),
		},
		{
			name:  "every schedule violation is reported",
			token: token,
			body: marchallObj(t, class.NewClass{
				Grade: "7", Section: "A", ClassroomID: room.ID,
				Schedule: []schedule.SlotInput{{Day: "Tue", Start: "8:00 AM", End: "8:10 AM", Subject: "  "}},
			}),
			wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, map[string]string{
				"schedule": "Tue class duration must be at least 30 minutes; Tue subject is required",
			}),
		},
		{
			name:  "create",
			token: token,
			body: marchallObj(t, class.NewClass{
				Grade: "7", Section: "A", Subject: "Mathematics", AdviserName: "Mr. Smith",
				SchoolYear: "2026-2027", ClassroomID: room.ID, Schedule: monMorning,
			}),
			wantCode: http.StatusCreated,
		},
		{
			name:  "classroom conflict",
			token: token,
			body: marchallObj(t, class.NewClass{
				Grade: "8", Section: "B", ClassroomID: room.ID,
				Schedule: []schedule.SlotInput{{Day: "Mon", Start: "8:30 AM", End: "9:30 AM", Subject: "Science"}},
			}),
			wantCode: http.StatusConflict,
			wantData: marchallObj(t, httpErr{
				Error: "Schedule conflict: Classroom is already taken on Mon from 8:00 AM to 9:00 AM by Grade 7 Section A.",
			}),
		},
		{
			name:  "other shift same classroom is free",
			token: token,
			body: marchallObj(t, class.NewClass{
				Grade: "9", Section: "A", ClassroomID: room.ID,
				Schedule: []schedule.SlotInput{{Day: "Mon", Start: "1:00 PM", End: "2:00 PM", Subject: "English"}},
			}),
			wantCode: http.StatusCreated,
		},
	}
	for _, tt := range tests {
		tt.method = http.MethodPost
		tt.path = "/v1/classes"

		t.Run(tt.name, func(t *testing.T) {
			req, rec := newAuthRequest(tt.method, tt.path, tt.token, tt.body)
			app.ServeHTTP(rec, req)

			if tt.wantCode == http.StatusCreated {
				if rec.Code != tt.wantCode {
					t.Fatalf("failed! code = %v; body = %s", rec.Code, rec.Body.String())
				}
				var respData ClassResponse
				if err := json.Unmarshal(rec.Body.Bytes(), &respData); err != nil {
					t.Fatalf("json.Unmarshal() failed, %v", err)
				}
				if respData.ID == "" {
					t.Error("failed! empty ID")
				}
				if respData.ScheduleDisplay == "" {
					t.Error("failed! empty schedule_display")
				}
				// the teacher field of raw slots is dropped on normalization
				for _, slot := range respData.Schedule {
					if slot.Subject == "" {
						t.Error("failed! slot subject lost in normalization")
					}
				}
				return
			}
			checkCodeAndData(t, tt, rec)
		})
	}
}

func Test_classApi_detail(t *testing.T) {
	admin := testutil.CreateUser(t, usrRepo, "Class Detail", "class.detail@test.cd", "LePassword007", true)
	roomA := testutil.CreateClassroom(t, roomRepo, "Mabini Building", "201")
	roomB := testutil.CreateClassroom(t, roomRepo, "Mabini Building", "202")
	token := getToken(t, admin)

	cls := testutil.CreateClass(t, clsRepo, "7", "C", roomA.ID,
		schedule.Schedule{{Day: "Tue", Start: "8:00 AM", End: "9:00 AM", Subject: "History"}})
	other := testutil.CreateClass(t, clsRepo, "7", "D", roomB.ID,
		schedule.Schedule{{Day: "Wed", Start: "9:00 AM", End: "10:00 AM", Subject: "Biology"}})

	t.Run("retrieve", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodGet, "/v1/classes/"+cls.ID, token)
		app.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("failed! code = %v; body = %s", rec.Code, rec.Body.String())
		}
		var respData ClassResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &respData); err != nil {
			t.Fatalf("json.Unmarshal() failed, %v", err)
		}
		want := "Tue 8:00 AM - 9:00 AM - History (Morning Shift)"
		if respData.ScheduleDisplay != want {
			t.Errorf("schedule_display = %q; want %q", respData.ScheduleDisplay, want)
		}
	})

	t.Run("retrieve not found", func(t *testing.T) {
		tt := httpTest{wantCode: http.StatusNotFound, wantData: marchallObj(t, httpErr{Error: "not found"})}
		req, rec := newAuthRequest(http.MethodGet, "/v1/classes/c0ffee", token)
		app.ServeHTTP(rec, req)
		checkCodeAndData(t, tt, rec)
	})

	t.Run("update section keeps schedule", func(t *testing.T) {
		body := marchallObj(t, class.UpdateClass{Section: "C2"})
		req, rec := newAuthRequest(http.MethodPut, "/v1/classes/"+cls.ID, token, body)
		app.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("failed! code = %v; body = %s", rec.Code, rec.Body.String())
		}
		refreshed, err := clsRepo.GetClassByID(context.Background(), cls.ID)
		if err != nil {
			t.Fatalf("GetClassByID() failed, %v", err)
		}
		if refreshed.Section != "C2" {
			t.Errorf("Section = %s; want C2", refreshed.Section)
		}
		if len(refreshed.Schedule) != 1 || refreshed.Schedule[0].Subject != "History" {
			t.Errorf("schedule lost on partial update: %+v", refreshed.Schedule)
		}
	})

	t.Run("update own schedule does not self-conflict", func(t *testing.T) {
		body := marchallObj(t, class.UpdateClass{
			Schedule: []schedule.SlotInput{{Day: "Tue", Start: "8:30 AM", End: "9:30 AM", Subject: "History"}},
		})
		req, rec := newAuthRequest(http.MethodPut, "/v1/classes/"+cls.ID, token, body)
		app.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("failed! code = %v; body = %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("update into occupied classroom conflicts", func(t *testing.T) {
		tt := httpTest{
			wantCode: http.StatusConflict,
			wantData: marchallObj(t, httpErr{
				Error: "Schedule conflict: Classroom is already taken on Wed from 9:00 AM to 10:00 AM by Grade 7 Section D.",
			}),
		}
		body := marchallObj(t, class.UpdateClass{
			ClassroomID: roomB.ID,
			Schedule:    []schedule.SlotInput{{Day: "Wed", Start: "9:30 AM", End: "10:30 AM", Subject: "History"}},
		})
		req, rec := newAuthRequest(http.MethodPut, "/v1/classes/"+cls.ID, token, body)
		app.ServeHTTP(rec, req)
		checkCodeAndData(t, tt, rec)
	})

	t.Run("delete", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodDelete, "/v1/classes/"+other.ID, token)
		app.ServeHTTP(rec, req)
		if rec.Code != http.StatusNoContent {
			t.Fatalf("failed! code = %v; wantCode %v", rec.Code, http.StatusNoContent)
		}
		if _, err := clsRepo.GetClassByID(context.Background(), other.ID); err != class.ErrNotFound {
			t.Errorf("GetClassByID() error = %v; want %v", err, class.ErrNotFound)
		}
	})
}

func Test_classApi_query(t *testing.T) {
	admin := testutil.CreateUser(t, usrRepo, "Class Query", "class.query@test.cd", "LePassword007", true)
	room := testutil.CreateClassroom(t, roomRepo, "Luna Building", "301")
	token := getToken(t, admin)

	sched := schedule.Schedule{{Day: "Thu", Start: "8:00 AM", End: "9:00 AM", Subject: "Chemistry"}}
	testutil.CreateClass(t, clsRepo, "8", "Q1", room.ID, sched)
	testutil.CreateClass(t, clsRepo, "8", "Q2", room.ID,
		schedule.Schedule{{Day: "Fri", Start: "8:00 AM", End: "9:00 AM", Subject: "Physics"}})

	path := func(search, classroomID string) string {
		v := make(url.Values)
		if search != "" {
			v.Add("search", search)
		}
		if classroomID != "" {
			v.Add("classroom_id", classroomID)
		}
		return "/v1/classes?" + v.Encode()
	}

	t.Run("filter by classroom", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodGet, path("", room.ID), token)
		app.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("failed! code = %v; body = %s", rec.Code, rec.Body.String())
		}
		var respData []ClassResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &respData); err != nil {
			t.Fatalf("json.Unmarshal() failed, %v", err)
		}
		if len(respData) != 2 {
			t.Errorf("len = %d; want 2", len(respData))
		}
	})

	t.Run("search subject", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodGet, path("chemis", ""), token)
		app.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("failed! code = %v; body = %s", rec.Code, rec.Body.String())
		}
		var respData []ClassResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &respData); err != nil {
			t.Fatalf("json.Unmarshal() failed, %v", err)
		}
		if len(respData) != 1 || respData[0].Section != "Q1" {
			t.Errorf("unexpected results: %+v", respData)
		}
	})
}

func Test_classApi_queryTimeSlots(t *testing.T) {
	admin := testutil.CreateUser(t, usrRepo, "Slots Admin", "slots.admin@test.cd", "LePassword007", true)
	token := getToken(t, admin)

	tests := []httpTest{
		{name: "Auth required", path: "/v1/classes/timeslots?grade=7", wantCode: http.StatusUnauthorized, wantData: marchallObj(t, errMissingToken)},
		{
			name: "unsupported grade", path: "/v1/classes/timeslots?grade=12", token: token,
			wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, httpErr{Error: "Invalid grade level: 12. Only grades 7-10 are supported."}),
		},
		{
			name: "invalid duration", path: "/v1/classes/timeslots?grade=7&duration=lol", token: token,
			wantCode: http.StatusBadRequest, wantData: marchallObj(t, httpErr{Error: "invalid duration"}),
		},
		{name: "morning default duration", path: "/v1/classes/timeslots?grade=7", token: token, wantCode: http.StatusOK},
		{name: "afternoon 90min", path: "/v1/classes/timeslots?grade=9&duration=90", token: token, wantCode: http.StatusOK},
	}
	for _, tt := range tests {
		tt.method = http.MethodGet

		t.Run(tt.name, func(t *testing.T) {
			req, rec := newAuthRequest(tt.method, tt.path, tt.token, tt.body)
			app.ServeHTTP(rec, req)

			if tt.wantCode == http.StatusOK {
				if rec.Code != tt.wantCode {
					t.Fatalf("failed! code = %v; body = %s", rec.Code, rec.Body.String())
				}
				var windows []schedule.Window
				if err := json.Unmarshal(rec.Body.Bytes(), &windows); err != nil {
					t.Fatalf("json.Unmarshal() failed, %v", err)
				}
				switch tt.name {
				case "morning default duration":
					if len(windows) != 5 {
						t.Fatalf("len = %d; want 5", len(windows))
					}
					want := schedule.Window{Start: "06:30 AM", End: "07:30 AM", StartMinutes: 390, EndMinutes: 450}
					if windows[0] != want {
						t.Errorf("windows[0] = %+v; want %+v", windows[0], want)
					}
				case "afternoon 90min":
					if len(windows) != 3 {
						t.Fatalf("len = %d; want 3", len(windows))
					}
					want := schedule.Window{Start: "12:30 PM", End: "02:00 PM", StartMinutes: 750, EndMinutes: 840}
					if windows[0] != want {
						t.Errorf("windows[0] = %+v; want %+v", windows[0], want)
					}
				}
				return
			}
			checkCodeAndData(t, tt, rec)
		})
	}
}
