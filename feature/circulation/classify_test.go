package circulation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// circulating returns an item that passes every check.
func circulating() Item {
	return Item{Location: "MAIN", ItemType: "BOOK"}
}

func with(item Item, code byte, value string) Item {
	out := Item{}
	for k, v := range item {
		out[k] = v
	}
	out[code] = value
	return out
}

func TestClassify_ValidItems(t *testing.T) {
	tests := []struct {
		name string
		item Item
	}{
		{"Minimal", circulating()},
		{"Zero coded flags", Item{Location: "CART", ItemType: "SUPPL", NotForLoan: "0", Damaged: "0", Lost: "0", Withdrawn: "0", CheckedOut: "0"}},
		{"Empty flags", Item{Location: "DISPLAY", ItemType: "BOOK", NotForLoan: "", Lost: ""}},
	}

	for _, loc := range []string{"CART", "FACDEV", "MAIN", "NEWBOOK", "DISPLAY"} {
		for _, typ := range []string{"BOOK", "SUPPL"} {
			tests = append(tests, struct {
				name string
				item Item
			}{loc + "/" + typ, Item{Location: loc, ItemType: typ}})
		}
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Classify(tt.item)
			assert.True(t, v.Valid)
			assert.Empty(t, v.Labels)
			assert.Empty(t, v.Unknown)
		})
	}
}

func TestClassify_CheckedOutStaysValid(t *testing.T) {
	v := Classify(with(circulating(), CheckedOut, "2024-05-01"))
	assert.True(t, v.Valid)
	assert.Equal(t, []string{"checked out"}, v.Labels)
}

func TestClassify_SingleFlagInvalidates(t *testing.T) {
	tests := []struct {
		name  string
		code  byte
		value string
		label string
	}{
		{"Not for loan repair", NotForLoan, "-3", "Repair"},
		{"Not for loan in processing", NotForLoan, "-2", "In Processing"},
		{"Not for loan ordered", NotForLoan, "-1", "Ordered"},
		{"Not for loan library use", NotForLoan, "1", "Library Use Only"},
		{"Not for loan staff", NotForLoan, "2", "Staff Collection"},
		{"Not for loan bindery", NotForLoan, "3", "Bindery"},
		{"Not for loan appointment", NotForLoan, "4", "By Appointment"},
		{"Not for loan display", NotForLoan, "5", "On display"},
		{"Damaged", Damaged, "1", "damaged"},
		{"Lost", Lost, "1", "Lost"},
		{"Long overdue", Lost, "2", "Long Overdue (Lost)"},
		{"Lost and paid", Lost, "3", "Lost and Paid For"},
		{"Missing", Lost, "4", "Missing"},
		{"Lost on search", Lost, "5", "Lost (On Search)"},
		{"Claims returned", Lost, "6", "Claims Returned"},
		{"Withdrawn", Withdrawn, "1", "withdrawn"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Classify(with(circulating(), tt.code, tt.value))
			assert.False(t, v.Valid)
			assert.Equal(t, []string{tt.label}, v.Labels)
			assert.Empty(t, v.Unknown)
		})
	}
}

func TestClassify_AllowLists(t *testing.T) {
	tests := []struct {
		name string
		item Item
	}{
		{"Unknown location", Item{Location: "STORAGE", ItemType: "BOOK"}},
		{"Missing location", Item{ItemType: "BOOK"}},
		{"Unknown type", Item{Location: "MAIN", ItemType: "DVD"}},
		{"Missing type", Item{Location: "MAIN"}},
		{"Lower case location", Item{Location: "main", ItemType: "BOOK"}},
		{"Bad location while checked out", Item{Location: "REF", ItemType: "BOOK", CheckedOut: "2024-01-01"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Classify(tt.item)
			assert.False(t, v.Valid)
			for _, l := range v.Labels {
				assert.Equal(t, "checked out", l, "allow-list failures add no label")
			}
		})
	}
}

func TestClassify_LabelOrder(t *testing.T) {
	item := Item{
		CheckedOut: "2024-01-01",
		NotForLoan: "2",
		Damaged:    "1",
		Lost:       "4",
		Withdrawn:  "1",
		Location:   "VAULT",
		ItemType:   "MAP",
	}

	v := Classify(item)
	assert.False(t, v.Valid)
	assert.Equal(t, []string{"checked out", "Staff Collection", "damaged", "Missing", "withdrawn"}, v.Labels)
}

func TestClassify_UnknownCodes(t *testing.T) {
	t.Run("Lost", func(t *testing.T) {
		v := Classify(with(circulating(), Lost, "9"))
		assert.False(t, v.Valid)
		assert.Equal(t, []string{"unknown lost code 9"}, v.Labels)
		assert.Equal(t, []UnknownCode{{Field: Lost, Code: "9"}}, v.Unknown)
	})

	t.Run("Not for loan", func(t *testing.T) {
		v := Classify(with(circulating(), NotForLoan, "-4"))
		assert.False(t, v.Valid)
		assert.Equal(t, []string{"unknown not-for-loan code -4"}, v.Labels)
		assert.Equal(t, "7=-4", v.Unknown[0].String())
	})
}

func TestIsValid(t *testing.T) {
	assert.True(t, IsValid(circulating()))
	assert.False(t, IsValid(with(circulating(), Withdrawn, "1")))
	assert.False(t, IsValid(Item{}))
}
