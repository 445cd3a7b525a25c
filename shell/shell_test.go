package shell

import (
	"testing"

	"github.com/matryer/is"
)

func TestExtractFields(t *testing.T) {
	is := is.New(t)
	type testdata struct {
		line   string
		expCmd *shellcmd
		expErr error
	}
	cases := []testdata{
		{"", nil, errNoData},
		{"   ", nil, errNoData},
		{"solve", &shellcmd{"solve", []string{}}, nil},
		{"load structure.txt words.txt",
			&shellcmd{"load", []string{"structure.txt", "words.txt"}},
			nil},
		{`load "my grid.txt" words.txt`,
			&shellcmd{"load", []string{"my grid.txt", "words.txt"}},
			nil},
		{"save /tmp/out.png", &shellcmd{"save", []string{"/tmp/out.png"}}, nil},
	}
	for _, c := range cases {
		cmd, err := extractFields(c.line)
		is.Equal(cmd, c.expCmd)
		is.Equal(err, c.expErr)
	}
}
