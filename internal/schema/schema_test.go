package schema_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sivacabs/backend/internal/schema"
)

// fakeExecer records executed statements and answers each one with the
// configured error (keyed by statement index).
type fakeExecer struct {
	executed []string
	errs     map[int]error
}

func (f *fakeExecer) Exec(_ context.Context, sql string, _ ...any) (pgconn.CommandTag, error) {
	i := len(f.executed)
	f.executed = append(f.executed, sql)
	return pgconn.CommandTag{}, f.errs[i]
}

// ---- Split -----------------------------------------------------------------

func TestSplit_Basic(t *testing.T) {
	got := schema.Split("CREATE TABLE a (id int);\nCREATE TABLE b (id int);")

	require.Len(t, got, 2)
	assert.Equal(t, "CREATE TABLE a (id int)", got[0])
	assert.Equal(t, "CREATE TABLE b (id int)", got[1])
}

func TestSplit_StripsComments(t *testing.T) {
	script := `-- leading comment
CREATE TABLE a (
    id int -- inline comment
);`

	got := schema.Split(script)

	require.Len(t, got, 1)
	assert.NotContains(t, got[0], "--")
	assert.Contains(t, got[0], "id int")
}

func TestSplit_DropsShortFragments(t *testing.T) {
	// Trailing semicolons and stray whitespace produce empty fragments.
	got := schema.Split("CREATE TABLE a (id int);;\n;  ;")

	require.Len(t, got, 1)
}

func TestSplit_KeepsDollarQuotedBodies(t *testing.T) {
	script := `CREATE FUNCTION f() RETURNS trigger AS $$
BEGIN
    PERFORM pg_notify('c', TG_OP);
    RETURN NULL;
END;
$$ LANGUAGE plpgsql;
CREATE TABLE a (id int);`

	got := schema.Split(script)

	require.Len(t, got, 2)
	assert.Contains(t, got[0], "PERFORM pg_notify('c', TG_OP);")
	assert.Contains(t, got[0], "$$ LANGUAGE plpgsql")
	assert.Equal(t, "CREATE TABLE a (id int)", got[1])
}

func TestSplit_MultilineStatement(t *testing.T) {
	got := schema.Split("CREATE TABLE a (\n  id int,\n  name text\n);")

	require.Len(t, got, 1)
	assert.Contains(t, got[0], "id int,\nname text")
}

// ---- IsAlreadyExists ---------------------------------------------------------

func TestIsAlreadyExists(t *testing.T) {
	assert.True(t, schema.IsAlreadyExists(&pgconn.PgError{Code: "42P07"}))
	assert.True(t, schema.IsAlreadyExists(errors.New(`relation "trips" already exists`)))
	assert.True(t, schema.IsAlreadyExists(errors.New("duplicate object")))
	assert.False(t, schema.IsAlreadyExists(&pgconn.PgError{Code: "42P01"}))
	assert.False(t, schema.IsAlreadyExists(errors.New("connection refused")))
	assert.False(t, schema.IsAlreadyExists(nil))
}

// ---- Apply -------------------------------------------------------------------

func TestApply_AllStatements(t *testing.T) {
	db := &fakeExecer{}

	res, err := schema.Apply(context.Background(), db, "CREATE TABLE a (id int);\nCREATE TABLE b (id int);")

	require.NoError(t, err)
	assert.Equal(t, 2, res.Applied)
	assert.Equal(t, 0, res.Skipped)
	assert.Len(t, db.executed, 2)
}

func TestApply_SkipsExisting(t *testing.T) {
	db := &fakeExecer{errs: map[int]error{
		0: &pgconn.PgError{Code: "42P07"},
	}}

	res, err := schema.Apply(context.Background(), db, "CREATE TABLE a (id int);\nCREATE TABLE b (id int);")

	require.NoError(t, err)
	assert.Equal(t, 1, res.Applied)
	assert.Equal(t, 1, res.Skipped)
}

func TestApply_AbortsOnOtherError(t *testing.T) {
	boom := errors.New("permission denied")
	db := &fakeExecer{errs: map[int]error{
		0: boom,
	}}

	res, err := schema.Apply(context.Background(), db,
		"CREATE TABLE a (id int);\nCREATE TABLE b (id int);")

	assert.ErrorIs(t, err, boom)
	assert.ErrorContains(t, err, "statement 1/2")
	assert.Equal(t, 0, res.Applied)
	assert.Len(t, db.executed, 1, "remaining statements must not run after a hard failure")
}
