package integration

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/Sternrassler/rest-find-client/internal/testutil"
	"github.com/Sternrassler/rest-find-client/pkg/find"
	"github.com/Sternrassler/rest-find-client/pkg/transport"
	"github.com/rs/zerolog"
)

type ticket struct {
	ID     int    `json:"id"`
	Status string `json:"status"`
	Date   string `json:"date"`
}

func ticketConverter() find.Converter[ticket] {
	return find.ConvertFunc[ticket](func(raw json.RawMessage) (ticket, error) {
		var tk ticket
		if err := json.Unmarshal(raw, &tk); err != nil {
			return ticket{}, err
		}
		return tk, nil
	})
}

func setupFinder(t *testing.T, mock *testutil.MockCollection) *find.Finder[ticket] {
	t.Helper()

	tr, err := transport.New(transport.DefaultConfig("finder-integration/1.0"))
	if err != nil {
		t.Fatalf("Failed to create transport: %v", err)
	}

	finder, err := find.New(find.Config{
		Endpoint:  mock.URL() + "/tickets",
		Transport: tr,
	}, ticketConverter())
	if err != nil {
		t.Fatalf("Failed to create finder: %v", err)
	}

	return finder
}

func TestFindAll_EndToEnd(t *testing.T) {
	mock := testutil.NewMockCollection()
	defer mock.Close()

	mock.SetResponse("/tickets", testutil.NewListResponse(
		`[{"id":1,"status":"OPEN","date":"2026-01-02"},{"id":2,"status":"OPEN","date":"2026-01-01"}]`,
		0, 20, 2, 1, 2,
	))

	finder := setupFinder(t, mock)

	result, err := finder.FindAll(context.Background(), &find.FindOptions{
		Page:    &find.PageRequest{Size: 20},
		Sort:    &find.Sort{Field: "date", Direction: find.SortDesc},
		Filters: []find.Filter{{Field: "status", Type: find.FilterEquals, Value: "OPEN"}},
	})
	if err != nil {
		t.Fatalf("FindAll() failed: %v", err)
	}

	// Request side: wire protocol as encoded.
	query := mock.GetLastQuery()
	if got := query.Get("q"); got != "status=OPEN" {
		t.Errorf("q = %q, want status=OPEN", got)
	}
	if got := query.Get("s"); got != "dateDESC" {
		t.Errorf("s = %q, want dateDESC", got)
	}
	header := mock.GetLastHeader()
	if got := header.Get("X-Page-Size"); got != "20" {
		t.Errorf("X-Page-Size = %q, want 20", got)
	}
	if got := header.Get("X-Page"); got != "0" {
		t.Errorf("X-Page = %q, want 0", got)
	}

	// Response side: converted items plus page headers.
	if len(result.Items) != 2 {
		t.Fatalf("len(Items) = %d, want 2", len(result.Items))
	}
	if result.Items[0].Status != "OPEN" {
		t.Errorf("Items[0].Status = %q, want OPEN", result.Items[0].Status)
	}
	if result.Page.Size != 20 || result.Page.Count != 2 || result.Page.Total != 1 {
		t.Errorf("Page = %+v, want {0 20 2 1}", result.Page)
	}
	if result.Total != 2 {
		t.Errorf("Total = %d, want 2", result.Total)
	}
}

func TestFindByID_EndToEnd(t *testing.T) {
	mock := testutil.NewMockCollection()
	defer mock.Close()

	mock.SetResponse("/tickets/42", testutil.MockResponse{
		StatusCode: 200,
		Body:       `{"id":42,"status":"CLOSED","date":"2026-02-01"}`,
		Headers:    map[string]string{"Content-Type": "application/json"},
	})

	finder := setupFinder(t, mock)

	got, err := finder.FindByID(context.Background(), "42")
	if err != nil {
		t.Fatalf("FindByID() failed: %v", err)
	}
	if got.ID != 42 || got.Status != "CLOSED" {
		t.Errorf("FindByID() = %+v, want id 42 status CLOSED", got)
	}
}

func TestFindByID_NotFoundPropagates(t *testing.T) {
	mock := testutil.NewMockCollection()
	defer mock.Close()

	mock.SetResponse("/tickets/99", testutil.NewNotFoundResponse())

	finder := setupFinder(t, mock)

	_, err := finder.FindByID(context.Background(), "99")
	if err == nil {
		t.Fatal("Expected not-found error, got nil")
	}

	var statusErr *transport.StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("Error = %T, want *transport.StatusError passed through", err)
	}
	if statusErr.StatusCode != 404 {
		t.Errorf("StatusCode = %d, want 404", statusErr.StatusCode)
	}
	if mock.GetRequestCount() != 1 {
		t.Errorf("Request count = %d, want 1 (no retries)", mock.GetRequestCount())
	}
}

func TestFind_SubResource_EndToEnd(t *testing.T) {
	type comment struct {
		Author string `json:"author"`
		Text   string `json:"text"`
	}

	mock := testutil.NewMockCollection()
	defer mock.Close()

	mock.SetResponse("/tickets/42/comments", testutil.NewListResponse(
		`[{"author":"ana","text":"looks fine"}]`,
		0, 10, 1, 1, 1,
	))

	tr, err := transport.New(transport.DefaultConfig("finder-integration/1.0"))
	if err != nil {
		t.Fatalf("Failed to create transport: %v", err)
	}

	result, err := find.Find[comment](
		context.Background(),
		tr,
		mock.URL()+"/tickets/42/comments",
		&find.FindOptions{Page: &find.PageRequest{Size: 10}},
		nil,
		zerolog.Nop(),
	)
	if err != nil {
		t.Fatalf("Find() failed: %v", err)
	}

	if len(result.Items) != 1 || result.Items[0].Author != "ana" {
		t.Errorf("Items = %+v, want one comment by ana", result.Items)
	}
	if result.Total != 1 {
		t.Errorf("Total = %d, want 1", result.Total)
	}
}

func TestFindAll_DefaultEmptyCollection(t *testing.T) {
	mock := testutil.NewMockCollection()
	defer mock.Close()

	finder := setupFinder(t, mock)

	result, err := finder.FindAll(context.Background(), nil)
	if err != nil {
		t.Fatalf("FindAll() failed: %v", err)
	}

	if len(result.Items) != 0 {
		t.Errorf("Items = %+v, want empty", result.Items)
	}
	if result.Page != (find.PageInfo{}) || result.Total != 0 {
		t.Errorf("Page/Total = %+v/%d, want all zero", result.Page, result.Total)
	}
}
