package roster

import (
	"errors"
	"testing"

	"github.com/alecthomas/assert"
)

func testRoster(t *testing.T) *Roster {
	r := New()
	assert.NoError(t, r.Add(Record{Roll: 1, Name: "A", Marks: 90}))
	assert.NoError(t, r.Add(Record{Roll: 2, Name: "B", Marks: 30}))
	assert.NoError(t, r.Add(Record{Roll: 3, Name: "C", Marks: 40}))
	return r
}

func rolls(r *Roster) []int {
	var res []int
	for _, rec := range r.Records() {
		res = append(res, rec.Roll)
	}
	return res
}

func TestNew(t *testing.T) {
	r := New()
	assert.Equal(t, 0, r.Len())
	assert.False(t, r.Modified)
	assert.Equal(t, "", r.LastPath)
}

func TestAddAndFind(t *testing.T) {
	r := testRoster(t)
	assert.Equal(t, 3, r.Len())
	assert.True(t, r.Modified)

	i, err := r.FindByRoll(2)
	assert.NoError(t, err)
	assert.Equal(t, Record{Roll: 2, Name: "B", Marks: 30}, r.At(i))

	_, err = r.FindByRoll(42)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestAddDuplicate(t *testing.T) {
	r := testRoster(t)
	before := append([]Record{}, r.Records()...)
	err := r.Add(Record{Roll: 2, Name: "X", Marks: 50})
	assert.True(t, errors.Is(err, ErrDuplicate))
	// the roster is unchanged
	assert.Equal(t, before, r.Records())
}

func TestAddInvalid(t *testing.T) {
	r := New()
	for _, rec := range []Record{
		{Roll: 0, Name: "A", Marks: 50},
		{Roll: -1, Name: "A", Marks: 50},
		{Roll: 1, Name: "A", Marks: -1},
		{Roll: 1, Name: "A", Marks: 101},
	} {
		err := r.Add(rec)
		assert.True(t, errors.Is(err, ErrInvalidInput), "%+v", rec)
	}
	assert.Equal(t, 0, r.Len())
	assert.False(t, r.Modified)
}

func TestRemoveAt(t *testing.T) {
	r := testRoster(t)
	assert.NoError(t, r.RemoveAt(1))
	// survivors keep their relative order
	assert.Equal(t, []int{1, 3}, rolls(r))

	err := r.RemoveAt(2)
	assert.True(t, errors.Is(err, ErrInvalidInput))
	err = r.RemoveAt(-1)
	assert.True(t, errors.Is(err, ErrInvalidInput))
	assert.Equal(t, 2, r.Len())
}

func TestModifyAt(t *testing.T) {
	r := testRoster(t)

	// all three fields replaced
	assert.NoError(t, r.ModifyAt(1, 20, "B2", 35))
	assert.Equal(t, Record{Roll: 20, Name: "B2", Marks: 35}, r.At(1))
	assert.True(t, r.Modified)

	// keeping your own roll is not a collision
	assert.NoError(t, r.ModifyAt(1, 20, "B3", 36))
	assert.Equal(t, Record{Roll: 20, Name: "B3", Marks: 36}, r.At(1))

	// colliding with a different record changes nothing
	err := r.ModifyAt(1, 3, "B4", 37)
	assert.True(t, errors.Is(err, ErrDuplicate))
	assert.Equal(t, Record{Roll: 20, Name: "B3", Marks: 36}, r.At(1))

	// invalid values change nothing
	err = r.ModifyAt(1, 20, "B4", 200)
	assert.True(t, errors.Is(err, ErrInvalidInput))
	assert.Equal(t, Record{Roll: 20, Name: "B3", Marks: 36}, r.At(1))

	err = r.ModifyAt(5, 9, "X", 10)
	assert.True(t, errors.Is(err, ErrInvalidInput))
}

func TestUniqueness(t *testing.T) {
	// no sequence of add/modify leaves two records with the same roll
	r := New()
	for i := 1; i <= 10; i++ {
		r.Add(Record{Roll: i, Name: "S", Marks: i * 7 % 101})
	}
	r.Add(Record{Roll: 5, Name: "dup", Marks: 1})
	r.ModifyAt(0, 7, "clash", 1)
	r.ModifyAt(2, 99, "ok", 1)

	seen := map[int]bool{}
	for _, rec := range r.Records() {
		assert.False(t, seen[rec.Roll], "duplicate roll %d", rec.Roll)
		seen[rec.Roll] = true
	}
}
