package sheet

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/mmynk/rsvp/internal/models"
	"github.com/mmynk/rsvp/internal/storage/sqlite"
)

func setupSheetServer(t *testing.T) *httptest.Server {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "sheet.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	server := httptest.NewServer(NewHandler(store).Routes())
	t.Cleanup(func() {
		server.Close()
		store.Close()
	})
	return server
}

func post(t *testing.T, url, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(url, "application/json", bytes.NewBufferString(body))
	if err != nil {
		t.Fatalf("POST failed: %v", err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestReceiveAndList(t *testing.T) {
	server := setupSheetServer(t)

	body := `{"guests":[
		{"firstName":"Ana","lastName":"Pop","ageCategory":"adult","menu":"vegetarian"},
		{"firstName":"Ion","lastName":"Pop","ageCategory":"copil","menu":"carne"}
	]}`
	resp := post(t, server.URL+"/", body)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	var ack map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&ack); err != nil {
		t.Fatalf("decode ack: %v", err)
	}
	if ack["result"] != "success" || ack["id"] == "" {
		t.Fatalf("ack = %v", ack)
	}

	got, err := http.Get(server.URL + "/responses/" + ack["id"])
	if err != nil {
		t.Fatalf("GET failed: %v", err)
	}
	defer got.Body.Close()
	var stored models.Response
	if err := json.NewDecoder(got.Body).Decode(&stored); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	want := []models.Guest{
		{FirstName: "Ana", LastName: "Pop", AgeCategory: models.AgeAdult, Menu: models.MenuVegetarian},
		{FirstName: "Ion", LastName: "Pop", AgeCategory: models.AgeChild, Menu: models.MenuMeat},
	}
	if !reflect.DeepEqual(stored.Guests, want) {
		t.Errorf("stored guests = %+v, want %+v", stored.Guests, want)
	}

	list, err := http.Get(server.URL + "/responses")
	if err != nil {
		t.Fatalf("GET failed: %v", err)
	}
	defer list.Body.Close()
	var listed struct {
		Responses []models.Response `json:"responses"`
	}
	if err := json.NewDecoder(list.Body).Decode(&listed); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(listed.Responses) != 1 {
		t.Errorf("listed %d responses, want 1", len(listed.Responses))
	}
}

func TestReceiveRejectsBadInput(t *testing.T) {
	server := setupSheetServer(t)

	tests := []struct {
		name string
		body string
	}{
		{"not json", "guests=1"},
		{"no guests", `{"guests":[]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := post(t, server.URL+"/", tt.body)
			if resp.StatusCode != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", resp.StatusCode)
			}
		})
	}
}

func TestGetMissing(t *testing.T) {
	server := setupSheetServer(t)
	resp, err := http.Get(server.URL + "/responses/nope")
	if err != nil {
		t.Fatalf("GET failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
}

func TestSummarize(t *testing.T) {
	responses := []*models.Response{
		{Guests: []models.Guest{
			{FirstName: "Ana", LastName: "Pop", AgeCategory: models.AgeAdult, Menu: models.MenuVegetarian},
			{FirstName: "Ion", LastName: "POP ", AgeCategory: models.AgeChild, Menu: models.MenuMeat},
		}},
		{Guests: []models.Guest{
			{FirstName: "Maria", LastName: "ionescu", AgeCategory: models.AgeAdult, Menu: models.MenuMeat},
		}},
	}

	got := Summarize(responses)
	if got.Responses != 2 || got.Guests != 3 {
		t.Errorf("responses/guests = %d/%d, want 2/3", got.Responses, got.Guests)
	}
	if got.Adults != 2 || got.Children != 1 || got.Meat != 2 || got.Vegetarian != 1 {
		t.Errorf("unexpected counts: %+v", got.Summary)
	}
	if got.Households != 2 {
		t.Errorf("Households = %d, want 2", got.Households)
	}
	if !reflect.DeepEqual(got.Surnames, []string{"Ionescu", "Pop"}) {
		t.Errorf("Surnames = %v", got.Surnames)
	}
}
