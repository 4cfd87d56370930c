package services

import (
	"reflect"
	"testing"
)

func intsUpTo(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

func TestPaginatePartition(t *testing.T) {
	items := intsUpTo(23)
	pageSize := 5

	var reassembled []int
	first := Paginate(items, 1, pageSize)
	for page := 1; page <= first.TotalPages; page++ {
		res := Paginate(items, page, pageSize)
		reassembled = append(reassembled, res.Items...)
	}
	if !reflect.DeepEqual(reassembled, items) {
		t.Fatalf("pages do not reassemble the input: %v", reassembled)
	}
	if first.TotalPages != 5 {
		t.Fatalf("total pages = %d, want 5", first.TotalPages)
	}
}

func TestPaginateClamping(t *testing.T) {
	tests := []struct {
		name       string
		total      int
		page       int
		pageSize   int
		wantPage   int
		wantLen    int
		wantPages  int
		wantTotals int
	}{
		{"first page full", 7, 1, 5, 1, 5, 2, 7},
		{"last page partial", 7, 2, 5, 2, 2, 2, 7},
		{"page beyond end clamps back", 7, 5, 5, 2, 2, 2, 7},
		{"page zero clamps to first", 7, 0, 5, 1, 5, 2, 7},
		{"negative page clamps to first", 7, -3, 5, 1, 5, 2, 7},
		{"page size zero treated as one", 3, 2, 0, 2, 1, 3, 3},
		{"empty collection", 0, 1, 5, 1, 0, 1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Paginate(intsUpTo(tt.total), tt.page, tt.pageSize)
			if res.Page != tt.wantPage {
				t.Errorf("page = %d, want %d", res.Page, tt.wantPage)
			}
			if len(res.Items) != tt.wantLen {
				t.Errorf("len(items) = %d, want %d", len(res.Items), tt.wantLen)
			}
			if res.TotalPages != tt.wantPages {
				t.Errorf("total pages = %d, want %d", res.TotalPages, tt.wantPages)
			}
			if res.Total != tt.wantTotals {
				t.Errorf("total = %d, want %d", res.Total, tt.wantTotals)
			}
		})
	}
}

func TestCursorBatchWalk(t *testing.T) {
	items := intsUpTo(14)
	batchSize := 6

	var reassembled []int
	cursor := 0
	for steps := 0; ; steps++ {
		if steps > 10 {
			t.Fatal("cursor walk did not terminate")
		}
		res := CursorBatch(items, cursor, batchSize)
		reassembled = append(reassembled, res.Items...)
		if !res.HasMore {
			if res.NextCursor != nil {
				t.Fatal("has_more false but next_cursor set")
			}
			break
		}
		if res.NextCursor == nil {
			t.Fatal("has_more true but next_cursor nil")
		}
		cursor = *res.NextCursor
	}
	if !reflect.DeepEqual(reassembled, items) {
		t.Fatalf("batches do not reassemble the input: %v", reassembled)
	}
}

func TestCursorBatchBounds(t *testing.T) {
	items := intsUpTo(5)
	tests := []struct {
		name      string
		cursor    int
		batchSize int
		wantLen   int
		wantMore  bool
	}{
		{"negative cursor starts at zero", -2, 3, 3, true},
		{"cursor past end", 99, 3, 0, false},
		{"exact end", 5, 3, 0, false},
		{"batch size zero treated as one", 0, 0, 1, true},
		{"whole collection in one batch", 0, 10, 5, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := CursorBatch(items, tt.cursor, tt.batchSize)
			if len(res.Items) != tt.wantLen {
				t.Errorf("len(items) = %d, want %d", len(res.Items), tt.wantLen)
			}
			if res.HasMore != tt.wantMore {
				t.Errorf("has_more = %v, want %v", res.HasMore, tt.wantMore)
			}
			if res.Total != 5 {
				t.Errorf("total = %d, want 5", res.Total)
			}
		})
	}
}
