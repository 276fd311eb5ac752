package export

import "testing"

func TestTable(t *testing.T) {
	got := Table([]string{"Hotel", "Price"}, [][]string{
		{"Hotel Lakeside", "250"},
		{"Alp", "890.5"},
	})

	want := "| Hotel          | Price |\n" +
		"| -------------- | ----- |\n" +
		"| Hotel Lakeside | 250   |\n" +
		"| Alp            | 890.5 |\n"
	if got != want {
		t.Errorf("table mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestTable_ShortRows(t *testing.T) {
	got := Table([]string{"A", "B"}, [][]string{{"x"}})

	want := "| A   | B   |\n" +
		"| --- | --- |\n" +
		"| x   |     |\n"
	if got != want {
		t.Errorf("table mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}
