package results

import (
	"errors"
	"testing"

	"github.com/bawdo/gaql/internal/testutil"
)

func sample(n int) []Row {
	rows := make([]Row, n)
	for i := range rows {
		rows[i] = Row{Columns: []string{"campaign.id"}, Values: []string{string(rune('a' + i))}}
	}
	return rows
}

func TestCollectAll(t *testing.T) {
	t.Parallel()
	rows, truncated, err := Collect(FromSlice(sample(3)), 0)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, len(rows), 3)
	testutil.AssertEqual(t, truncated, false)
}

func TestCollectTruncates(t *testing.T) {
	t.Parallel()
	rows, truncated, err := Collect(FromSlice(sample(5)), 2)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, len(rows), 2)
	testutil.AssertEqual(t, truncated, true)
}

func TestCollectExactLimitIsNotTruncated(t *testing.T) {
	t.Parallel()
	_, truncated, err := Collect(FromSlice(sample(2)), 2)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, truncated, false)
}

func TestCollectError(t *testing.T) {
	t.Parallel()
	boom := errors.New("boom")
	_, _, err := Collect(Fail(boom), 0)
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
}

func TestRowGet(t *testing.T) {
	t.Parallel()
	r := Row{Columns: []string{"campaign.id", "campaign.name"}, Values: []string{"1", "Brand"}}
	v, ok := r.Get("campaign.name")
	testutil.AssertEqual(t, ok, true)
	testutil.AssertEqual(t, v, "Brand")
	_, ok = r.Get("metrics.clicks")
	testutil.AssertEqual(t, ok, false)
}
