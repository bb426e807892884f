package migrations

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The models carry these foreign keys as plain int64, so the schema must
// reject NULL for them even on writes that bypass the API.
func TestInitSchemaRequiredForeignKeys(t *testing.T) {
	sql, err := os.ReadFile(filepath.Join("..", "..", "..", "migrations", "001_init.sql"))
	require.NoError(t, err)

	schema := string(sql)
	tests := []struct {
		column string
		count  int
	}{
		// instructors.department_id and courses.department_id
		{"department_id BIGINT NOT NULL REFERENCES departments", 2},
		// department_heads.instructor_id; courses.instructor_id stays
		// nullable for courses without an assigned instructor
		{"instructor_id BIGINT NOT NULL REFERENCES instructors", 1},
		{"student_id      BIGINT NOT NULL REFERENCES students", 1},
		{"course_id       BIGINT NOT NULL REFERENCES courses", 1},
		{"enrollment_id BIGINT NOT NULL REFERENCES enrollments", 1},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.count, strings.Count(schema, tc.column), tc.column)
	}
}
