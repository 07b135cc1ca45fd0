package api

import (
	"net/http"
	"reflect"
	"testing"

	"github.com/praxislabs/praxis/internal/models"
	"github.com/praxislabs/praxis/internal/store"
)

func TestCreateProjectRoundTrip(t *testing.T) {
	app, _ := newTestApp(t, store.NewSeeded())

	payload := models.Project{
		ID: "p42", Code: "P-2026-007", Title: "Cloud Migration", ClientID: "c2", LeaderID: "u1",
		Type: models.ProjectTypeTimeMaterial, Status: models.ProjectStatusActive,
		StartDate: "2026-06-01", BudgetFees: 90000, BudgetExpenses: 3000,
	}

	response, err := app.Test(jsonRequest(t, http.MethodPost, "/api/projects", payload), -1)
	if err != nil {
		t.Fatalf("create request failed: %v", err)
	}
	defer response.Body.Close()
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", response.StatusCode)
	}

	listResponse, err := app.Test(jsonRequest(t, http.MethodGet, "/api/projects", nil), -1)
	if err != nil {
		t.Fatalf("list request failed: %v", err)
	}
	defer listResponse.Body.Close()

	var projects []models.Project
	decodeJSON(t, listResponse.Body, &projects)
	if len(projects) == 0 {
		t.Fatal("expected projects in response")
	}
	if !reflect.DeepEqual(projects[len(projects)-1], payload) {
		t.Fatalf("expected tail project deep-equal to submitted record, got %#v", projects[len(projects)-1])
	}
}

func TestCreateProjectGeneratesID(t *testing.T) {
	app, handler := newTestApp(t, store.NewSeeded())

	payload := map[string]any{"code": "P-2026-008", "title": "Discovery Workshop"}
	response, err := app.Test(jsonRequest(t, http.MethodPost, "/api/projects", payload), -1)
	if err != nil {
		t.Fatalf("create request failed: %v", err)
	}
	defer response.Body.Close()

	var created models.Project
	decodeJSON(t, response.Body, &created)
	if created.ID == "" {
		t.Fatal("expected a generated id")
	}
	if created.Status != models.ProjectStatusActive {
		t.Fatalf("expected default active status, got %q", created.Status)
	}

	projects := handler.store.Projects()
	if projects[len(projects)-1].ID != created.ID {
		t.Fatalf("expected stored project %q at tail, got %q", created.ID, projects[len(projects)-1].ID)
	}
}

func TestCreateProjectRequiresCodeAndTitle(t *testing.T) {
	app, _ := newTestApp(t, store.NewSeeded())

	response, err := app.Test(jsonRequest(t, http.MethodPost, "/api/projects", map[string]any{"title": "No Code"}), -1)
	if err != nil {
		t.Fatalf("create request failed: %v", err)
	}
	defer response.Body.Close()
	if response.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", response.StatusCode)
	}
}

func TestPatchProjectArchivesKeepingOtherFields(t *testing.T) {
	dataStore := store.NewSeeded()
	app, _ := newTestApp(t, dataStore)
	before := dataStore.Projects()[0]

	response, err := app.Test(jsonRequest(t, http.MethodPatch, "/api/projects/p1", map[string]any{"status": "archived"}), -1)
	if err != nil {
		t.Fatalf("patch request failed: %v", err)
	}
	defer response.Body.Close()
	if response.StatusCode != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d", response.StatusCode)
	}

	after := dataStore.Projects()[0]
	if after.Status != models.ProjectStatusArchived {
		t.Fatalf("expected archived, got %q", after.Status)
	}
	after.Status = before.Status
	if !reflect.DeepEqual(after, before) {
		t.Fatalf("patch touched fields beyond status: %#v vs %#v", after, before)
	}
}

func TestPatchProjectUnknownIDIsSilentNoOp(t *testing.T) {
	dataStore := store.NewSeeded()
	app, _ := newTestApp(t, dataStore)
	before := dataStore.Projects()

	response, err := app.Test(jsonRequest(t, http.MethodPatch, "/api/projects/nope", map[string]any{"status": "archived"}), -1)
	if err != nil {
		t.Fatalf("patch request failed: %v", err)
	}
	defer response.Body.Close()
	if response.StatusCode != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d", response.StatusCode)
	}

	if !reflect.DeepEqual(before, dataStore.Projects()) {
		t.Fatal("expected collection unchanged after no-op patch")
	}
}
