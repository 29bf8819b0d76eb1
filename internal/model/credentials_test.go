package model

import (
	"encoding/json"
	"reflect"
	"testing"
)

func decodeLogin(t *testing.T, body string) LoginResponse {
	t.Helper()
	var resp LoginResponse
	if err := json.Unmarshal([]byte(body), &resp); err != nil {
		t.Fatalf("failed to decode %s: %v", body, err)
	}
	return resp
}

func TestCredentials_Login_DropsProfileFields(t *testing.T) {
	t.Parallel()

	creds := Credentials{
		Name:     "Admin",
		Surname:  "Test",
		Email:    "admin@test.com",
		Password: "Password123!",
		Role:     "ADMIN",
	}

	data, err := json.Marshal(creds.Login())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if string(data) != `{"email":"admin@test.com","password":"Password123!"}` {
		t.Errorf("unexpected login body %s", data)
	}
}

func TestCredentials_MarshalJSON_FieldNames(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(Credentials{Name: "A", Surname: "B", Email: "e", Password: "p", Role: "ADMIN"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := `{"nombre":"A","apellidos":"B","email":"e","password":"p","rol":"ADMIN"}`
	if string(data) != want {
		t.Errorf("expected %s, got %s", want, data)
	}
}

func TestLoginResponse_Token(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
		want string
	}{
		{"token field", `{"token": "abc"}`, "abc"},
		{"access_token field", `{"access_token": "xyz"}`, "xyz"},
		{"token wins", `{"token": "abc", "access_token": "xyz"}`, "abc"},
		{"empty token falls back", `{"token": "", "access_token": "xyz"}`, "xyz"},
		{"non-string token falls back", `{"token": 12, "access_token": "xyz"}`, "xyz"},
		{"no token", `{"user": {"email": "a"}}`, ""},
		{"null token", `{"token": null}`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := decodeLogin(t, tt.body).Token(); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestLoginResponse_User_RoleNames(t *testing.T) {
	t.Parallel()

	resp := decodeLogin(t, `{"token":"t","user":{"id":1,"email":"a@b.c","nombre":"Admin","rol":"COMPRADOR, ADMINISTRADOR"}}`)

	user := resp.User()
	if user == nil {
		t.Fatal("expected user summary")
	}
	if got := user.RoleNames(); !reflect.DeepEqual(got, []string{"COMPRADOR", "ADMINISTRADOR"}) {
		t.Errorf("unexpected roles %v", got)
	}
}

func TestLoginResponse_User_RolesArray(t *testing.T) {
	t.Parallel()

	resp := decodeLogin(t, `{"token":"t","user":{"email":"a@b.c","roles":["ADMINISTRADOR"]}}`)

	if got := resp.User().RoleNames(); !reflect.DeepEqual(got, []string{"ADMINISTRADOR"}) {
		t.Errorf("unexpected roles %v", got)
	}
}

func TestLoginResponse_User_Missing(t *testing.T) {
	t.Parallel()

	resp := decodeLogin(t, `{"token":"t"}`)

	if resp.User() != nil {
		t.Error("expected nil user")
	}
	if resp.User().RoleNames() != nil {
		t.Error("expected nil roles for nil user")
	}
}
