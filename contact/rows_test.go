package contact

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

var johnDoe = Row{FirstName: "John", LastName: "Doe"}

func TestReadRows_SingleColumnUsesDefaults(t *testing.T) {
	req := require.New(t)
	input := "0123456789\n0243613271\n0125678904\n"

	rows, err := ReadRows(strings.NewReader(input), johnDoe)
	req.NoError(err)
	req.Equal([]Row{
		{Line: 1, FirstName: "John", LastName: "Doe", PhoneNumber: "0123456789"},
		{Line: 2, FirstName: "John", LastName: "Doe", PhoneNumber: "0243613271"},
		{Line: 3, FirstName: "John", LastName: "Doe", PhoneNumber: "0125678904"},
	}, rows)
	req.Equal([]string{"0123456789", "0243613271", "0125678904"}, PhoneNumbers(rows))
}

func TestReadRows_ThreeColumnsAndComments(t *testing.T) {
	req := require.New(t)
	input := "# first,last,phone\nJohn, Locke, 0123456789\n\nJohn,Abruzzi,0987654321\n"

	rows, err := ReadRows(strings.NewReader(input), johnDoe)
	req.NoError(err)
	req.Len(rows, 2)
	req.Equal(Row{Line: 2, FirstName: "John", LastName: "Locke", PhoneNumber: "0123456789"}, rows[0])
	req.Equal(Row{Line: 4, FirstName: "John", LastName: "Abruzzi", PhoneNumber: "0987654321"}, rows[1])
}

func TestReadRows_KeepsEmptyFields(t *testing.T) {
	req := require.New(t)

	rows, err := ReadRows(strings.NewReader(",Doe,0123456789\n"), johnDoe)
	req.NoError(err)
	req.Len(rows, 1)
	req.Empty(rows[0].FirstName)
}

func TestReadRows_WrongFieldCount(t *testing.T) {
	_, err := ReadRows(strings.NewReader("0123456789\nJohn,0123456789\n"), johnDoe)
	require.EqualError(t, err, "line 2: expected 1 or 3 fields, got 2")
}

func TestReadRows_EmptyInput(t *testing.T) {
	rows, err := ReadRows(strings.NewReader(""), johnDoe)
	require.NoError(t, err)
	require.Empty(t, rows)
}
