package pagination

import "testing"

func TestPageRequest_Defaults(t *testing.T) {
	p := PageRequest{}
	p.Defaults()
	if p.Page != 1 || p.PerPage != DefaultPerPage {
		t.Errorf("expected page=1 per_page=%d, got %+v", DefaultPerPage, p)
	}

	p = PageRequest{Page: 3, PerPage: 500}
	p.Defaults()
	if p.PerPage != MaxPerPage {
		t.Errorf("expected per_page capped at %d, got %d", MaxPerPage, p.PerPage)
	}
	if p.Offset() != 200 {
		t.Errorf("expected offset 200, got %d", p.Offset())
	}
}

func TestNewPageResponse(t *testing.T) {
	resp := NewPageResponse[int](nil, 1, 20, 0)
	if resp.Data == nil || len(resp.Data) != 0 {
		t.Error("expected empty non-nil data")
	}
	if resp.TotalPages != 0 {
		t.Errorf("expected 0 pages, got %d", resp.TotalPages)
	}

	resp = NewPageResponse([]int{1, 2}, 2, 2, 5)
	if resp.TotalPages != 3 {
		t.Errorf("expected 3 pages, got %d", resp.TotalPages)
	}
}

func TestMap(t *testing.T) {
	in := NewPageResponse([]int{1, 2, 3}, 1, 3, 7)
	out := Map(in, func(i int) string { return string(rune('a' + i - 1)) })

	if len(out.Data) != 3 || out.Data[2] != "c" {
		t.Errorf("unexpected data %v", out.Data)
	}
	if out.TotalItems != 7 || out.TotalPages != 3 || out.PerPage != 3 {
		t.Errorf("metadata not preserved: %+v", out)
	}
}
