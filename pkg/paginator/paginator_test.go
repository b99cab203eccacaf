package paginator

import "testing"

func TestAdjust(t *testing.T) {
	tests := []struct {
		name      string
		in        PaginateQuery
		wantPage  int
		wantLimit int64
	}{
		{"defaults", PaginateQuery{}, DefaultPage, DefaultLimit},
		{"negative", PaginateQuery{Page: -3, Limit: -1}, DefaultPage, DefaultLimit},
		{"capped", PaginateQuery{Page: 2, Limit: 1000}, 2, MaxLimit},
		{"kept", PaginateQuery{Page: 4, Limit: 10}, 4, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := tt.in
			q.Adjust()
			if q.Page != tt.wantPage || q.Limit != tt.wantLimit {
				t.Errorf("Adjust() = {%d %d}, want {%d %d}", q.Page, q.Limit, tt.wantPage, tt.wantLimit)
			}
		})
	}
}

func TestOffset(t *testing.T) {
	q := PaginateQuery{Page: 3, Limit: 20}
	if got := q.Offset(); got != 40 {
		t.Errorf("Offset() = %d, want 40", got)
	}
}

func TestToResponse(t *testing.T) {
	resp := New(PaginateQuery{Page: 2, Limit: 10}, 25, 10).ToResponse()
	if resp.TotalPages != 3 {
		t.Errorf("TotalPages = %d, want 3", resp.TotalPages)
	}
	if !resp.HasNext || !resp.HasPrev {
		t.Errorf("HasNext = %v, HasPrev = %v, want both true", resp.HasNext, resp.HasPrev)
	}

	last := New(PaginateQuery{Page: 3, Limit: 10}, 25, 5).ToResponse()
	if last.HasNext {
		t.Error("last page should not have next")
	}

	empty := New(PaginateQuery{Page: 1, Limit: 10}, 0, 0).ToResponse()
	if empty.TotalPages != 0 || empty.HasNext || empty.HasPrev {
		t.Errorf("empty = %+v", empty)
	}
}
