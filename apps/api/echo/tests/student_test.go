package tests

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"testing"

	"github.com/trezcool/darasa/core/student"
	testutil "github.com/trezcool/darasa/tests"
)

func Test_studentApi_create(t *testing.T) {
	admin := testutil.CreateUser(t, usrRepo, "Std Admin", "std.admin@test.cd", "LePassword007", true)
	token := getToken(t, admin)

	reqMsg := "this field is required"

	tests := []httpTest{
		{name: "Auth required", wantCode: http.StatusUnauthorized, wantData: marchallObj(t, errMissingToken)},
		{
			name: "empty data", token: token, body: marchallObj(t, student.NewStudent{}),
			wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, map[string]string{"first_name": reqMsg, "last_name": reqMsg, "grade": reqMsg}),
		},
		{
			name:  "unsupported grade",
			token: token,
			body: marchallObj(t, student.NewStudent{
				FirstName: "Juan", LastName: "Dela Cruz", Grade: "11",
			}),
			wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, map[string]string{"grade": "only grades 7-10 are supported"}),
		},
		{
			name:  "invalid gender & period",
			token: token,
			body: marchallObj(t, student.NewStudent{
				FirstName: "Juan", LastName: "Dela Cruz", Grade: "7", Gender: "robot", Period: "evening",
			}),
			wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, map[string]string{
				"gender": "gender must be one of [male female]",
				"period": "shift must be one of: morning, afternoon",
			}),
		},
		{
			name:  "create",
			token: token,
			body: marchallObj(t, student.NewStudent{
				FirstName: "  Juan ", LastName: "Dela Cruz", Grade: "7", Gender: "MALE",
				Email: "Juan.DelaCruz@test.cd", Period: "Morning",
			}),
			wantCode: http.StatusCreated,
		},
	}
	for _, tt := range tests {
		tt.method = http.MethodPost
		tt.path = "/v1/students"

		t.Run(tt.name, func(t *testing.T) {
			req, rec := newAuthRequest(tt.method, tt.path, tt.token, tt.body)
			app.ServeHTTP(rec, req)

			if tt.wantCode == http.StatusCreated {
				if rec.Code != tt.wantCode {
					t.Fatalf("failed! code = %v; body = %s", rec.Code, rec.Body.String())
				}
				var respData student.Student
				if err := json.Unmarshal(rec.Body.Bytes(), &respData); err != nil {
					t.Fatalf("json.Unmarshal() failed, %v", err)
				}
				// input is cleaned before persisting
				if respData.FirstName != "Juan" {
					t.Errorf("FirstName = %q; want Juan", respData.FirstName)
				}
				if respData.Gender != "male" {
					t.Errorf("Gender = %q; want male", respData.Gender)
				}
				if respData.Email != "juan.delacruz@test.cd" {
					t.Errorf("Email = %q; want juan.delacruz@test.cd", respData.Email)
				}
				if respData.Period != "morning" {
					t.Errorf("Period = %q; want morning", respData.Period)
				}
				return
			}
			checkCodeAndData(t, tt, rec)
		})
	}
}

func Test_studentApi_query(t *testing.T) {
	admin := testutil.CreateUser(t, usrRepo, "Std Query", "std.query@test.cd", "LePassword007", true)
	token := getToken(t, admin)

	std1 := testutil.CreateStudent(t, stdRepo, "Amara", "Qlearner", "7", "morning")
	std2 := testutil.CreateStudent(t, stdRepo, "Binta", "Qlearner", "9", "afternoon")

	path := func(search, grade, period string) string {
		v := make(url.Values)
		if search != "" {
			v.Add("search", search)
		}
		if grade != "" {
			v.Add("grade", grade)
		}
		if period != "" {
			v.Add("period", period)
		}
		return "/v1/students?" + v.Encode()
	}
	empty := marchallList(t, []interface{}{}...)

	tests := []httpTest{
		{name: "Auth required", path: "/v1/students", wantCode: http.StatusUnauthorized, wantData: marchallObj(t, errMissingToken)},
		{name: "search (unknown)", path: path("nosuchlearner", "", ""), token: token, wantData: empty},
		{name: "search", path: path("qlearner", "", ""), token: token, wantData: marchallList(t, std1, std2)},
		{name: "search+grade", path: path("qlearner", "9", ""), token: token, wantData: marchallList(t, std2)},
		{name: "search+period", path: path("qlearner", "", "morning"), token: token, wantData: marchallList(t, std1)},
	}
	for _, tt := range tests {
		tt.method = http.MethodGet
		if tt.wantCode == 0 {
			tt.wantCode = http.StatusOK
		}

		t.Run(tt.name, func(t *testing.T) {
			req, rec := newAuthRequest(tt.method, tt.path, tt.token, tt.body)
			app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}
}

func Test_studentApi_detail(t *testing.T) {
	admin := testutil.CreateUser(t, usrRepo, "Std Detail", "std.detail@test.cd", "LePassword007", true)
	token := getToken(t, admin)

	std := testutil.CreateStudent(t, stdRepo, "Chike", "Dlearner", "8", "morning")

	t.Run("retrieve", func(t *testing.T) {
		tt := httpTest{wantCode: http.StatusOK, wantData: marchallObj(t, std)}
		req, rec := newAuthRequest(http.MethodGet, "/v1/students/"+std.ID, token)
		app.ServeHTTP(rec, req)
		checkCodeAndData(t, tt, rec)
	})

	t.Run("retrieve not found", func(t *testing.T) {
		tt := httpTest{wantCode: http.StatusNotFound, wantData: marchallObj(t, httpErr{Error: "not found"})}
		req, rec := newAuthRequest(http.MethodGet, "/v1/students/c0ffee", token)
		app.ServeHTTP(rec, req)
		checkCodeAndData(t, tt, rec)
	})

	t.Run("update grade keeps names", func(t *testing.T) {
		body := marchallObj(t, student.UpdateStudent{Grade: "9", Period: "afternoon"})
		req, rec := newAuthRequest(http.MethodPut, "/v1/students/"+std.ID, token, body)
		app.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("failed! code = %v; body = %s", rec.Code, rec.Body.String())
		}
		refreshed, err := stdRepo.GetStudentByID(context.Background(), std.ID)
		if err != nil {
			t.Fatalf("GetStudentByID() failed, %v", err)
		}
		if refreshed.Grade != "9" || refreshed.Period != "afternoon" {
			t.Errorf("Grade/Period = %s/%s; want 9/afternoon", refreshed.Grade, refreshed.Period)
		}
		if refreshed.FirstName != "Chike" || refreshed.LastName != "Dlearner" {
			t.Errorf("names lost on partial update: %s %s", refreshed.FirstName, refreshed.LastName)
		}
	})

	t.Run("delete", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodDelete, "/v1/students/"+std.ID, token)
		app.ServeHTTP(rec, req)
		if rec.Code != http.StatusNoContent {
			t.Fatalf("failed! code = %v; wantCode %v", rec.Code, http.StatusNoContent)
		}
		if _, err := stdRepo.GetStudentByID(context.Background(), std.ID); err != student.ErrNotFound {
			t.Errorf("GetStudentByID() error = %v; want %v", err, student.ErrNotFound)
		}
	})
}
