package seed

import (
	"testing"

	"github.com/matryer/is"
)

func TestDefault(t *testing.T) {
	is := is.New(t)

	d := Default()
	is.Equal(len(d.Users), 3)
	is.Equal(len(d.Tasks), 7)
	is.Equal(d.Users[0].Role, "Scrum Master")
	is.Equal(d.Tasks[6].Assignee, "") // TIS-7 is unassigned
	for _, task := range d.Tasks {
		is.True(len(task.History) > 0)
	}
}

func TestParse(t *testing.T) {
	t.Run("rejects duplicate ids", func(t *testing.T) {
		is := is.New(t)
		_, err := Parse([]byte("tasks:\n  - id: A\n  - id: A\n"))
		is.True(err != nil)
	})

	t.Run("rejects missing ids", func(t *testing.T) {
		is := is.New(t)
		_, err := Parse([]byte("tasks:\n  - title: nameless\n"))
		is.True(err != nil)
	})

	t.Run("rejects malformed yaml", func(t *testing.T) {
		is := is.New(t)
		_, err := Parse([]byte("users: [\n"))
		is.True(err != nil)
	})
}
